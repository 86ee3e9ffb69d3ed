package input

// actionRegistry maps canonical action names to intents
// Used by the binding parser to resolve BAEBAE_KEYS entries
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":              IntentQuit,
	"toggle_mute":       IntentToggleMute,
	"trigger":           IntentTrigger,
	"shake":             IntentShake,
	"toggle_location":   IntentToggleLocation,
	"toggle_streak":     IntentToggleStreak,
	"toggle_divination": IntentToggleDivination,
	"edit_identifier":   IntentEditIdentifier,
}

// String returns the canonical action name, or the editor intent name
func (t IntentType) String() string {
	for name, it := range actionRegistry {
		if it == t && name != "none" {
			return name
		}
	}
	switch t {
	case IntentNone:
		return "none"
	case IntentResize:
		return "resize"
	case IntentTextChar:
		return "text_char"
	case IntentTextBackspace:
		return "text_backspace"
	case IntentTextConfirm:
		return "text_confirm"
	case IntentTextCancel:
		return "text_cancel"
	}
	return "unknown"
}
