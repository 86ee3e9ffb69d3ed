package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be written bare in a binding list
var runeAliases = map[string]rune{
	"space": ' ',
	"comma": ',',
	"equal": '=',
}

// Special key names accepted on the left of a binding
var specialKeyNames = map[string]tcell.Key{
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"ctrl+c": tcell.KeyCtrlC,
	"tab":    tcell.KeyTab,
}

// ParseBindings parses "key=action" pairs into a sparse override KeyTable
// Returns error on unknown action names, invalid key names, or malformed pairs
func ParseBindings(pairs []string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType),
		NormalRunes: make(map[rune]IntentType),
	}

	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		keyName, action, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("binding %q: expected key=action", pair)
		}
		keyName = strings.TrimSpace(keyName)
		lower := strings.ToLower(keyName)
		action = strings.TrimSpace(action)

		intent, ok := actionRegistry[action]
		if !ok {
			return nil, fmt.Errorf("binding %q: unknown action %q", pair, action)
		}

		if key, ok := specialKeyNames[lower]; ok {
			kt.SpecialKeys[key] = intent
			continue
		}
		if r, ok := runeAliases[lower]; ok {
			kt.NormalRunes[r] = intent
			continue
		}
		if utf8.RuneCountInString(keyName) != 1 {
			return nil, fmt.Errorf("binding %q: invalid key %q", pair, keyName)
		}
		r, _ := utf8.DecodeRuneInString(keyName)
		kt.NormalRunes[r] = intent
	}

	return kt, nil
}
