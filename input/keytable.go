package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents for both modes
type KeyTable struct {
	// Special keys (Ctrl+*, Enter, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Normal mode rune bindings
	NormalRunes map[rune]IntentType

	// Identifier editor keys; digits are handled separately
	EditKeys map[tcell.Key]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyEnter:  IntentTrigger,
		},

		NormalRunes: map[rune]IntentType{
			' ': IntentTrigger,
			'q': IntentQuit,
			'm': IntentToggleMute,
			's': IntentShake,
			'g': IntentToggleLocation,
			'k': IntentToggleStreak,
			'd': IntentToggleDivination,
			'i': IntentEditIdentifier,
		},

		EditKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:      IntentQuit,
			tcell.KeyEscape:     IntentTextCancel,
			tcell.KeyEnter:      IntentTextConfirm,
			tcell.KeyBackspace:  IntentTextBackspace,
			tcell.KeyBackspace2: IntentTextBackspace,
		},
	}
}

// Merge copies every binding present in override onto kt
// Binding to IntentNone removes the default
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	mergeMap(kt.SpecialKeys, override.SpecialKeys)
	mergeMap(kt.NormalRunes, override.NormalRunes)
	mergeMap(kt.EditKeys, override.EditKeys)
}

func mergeMap[K comparable](dst, src map[K]IntentType) {
	for k, v := range src {
		if v == IntentNone {
			delete(dst, k)
			continue
		}
		dst[k] = v
	}
}
