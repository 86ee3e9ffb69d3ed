package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentResize     // Terminal resize event
	IntentToggleMute // m

	// Toss
	IntentTrigger // Space, Enter, mouse release, accepted shake
	IntentShake   // s, synthetic shake sample

	// Settings
	IntentToggleLocation   // g
	IntentToggleStreak     // k
	IntentToggleDivination // d
	IntentEditIdentifier   // i, opens the identifier line editor

	// Identifier line editor
	IntentTextChar      // Digit appended to the buffer
	IntentTextBackspace // Backspace
	IntentTextConfirm   // Enter, Text carries the buffer
	IntentTextCancel    // Esc
)

// Intent is the parsed result of one terminal event
type Intent struct {
	Type IntentType
	Char rune
	Text string
}
