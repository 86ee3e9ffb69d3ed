package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine is the input state machine
// Parses tcell events into semantic Intent
type Machine struct {
	mode     InputMode
	keyTable *KeyTable

	// Identifier editor buffer
	buffer []rune

	// Left button held since the last mouse event
	pressed bool
}

// NewMachine creates a new input machine with the default bindings
func NewMachine() *Machine {
	return NewMachineWithTable(DefaultKeyTable())
}

// NewMachineWithTable creates a machine using kt for lookups
func NewMachineWithTable(kt *KeyTable) *Machine {
	return &Machine{
		mode:     ModeNormal,
		keyTable: kt,
		buffer:   make([]rune, 0, IdentifierLength),
	}
}

// Mode returns the active binding set
func (m *Machine) Mode() InputMode { return m.mode }

// Buffer returns the identifier editor contents for UI display
func (m *Machine) Buffer() string { return string(m.buffer) }

// SetBuffer seeds the editor, keeping at most IdentifierLength digits
func (m *Machine) SetBuffer(s string) {
	m.buffer = m.buffer[:0]
	for _, r := range s {
		if len(m.buffer) == IdentifierLength {
			break
		}
		if unicode.IsDigit(r) {
			m.buffer = append(m.buffer, r)
		}
	}
}

// Reset returns to normal mode and clears pending state
func (m *Machine) Reset() {
	m.mode = ModeNormal
	m.buffer = m.buffer[:0]
	m.pressed = false
}

// Process parses a terminal event and returns an Intent
// Returns nil if the event carries no action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		if m.mode == ModeIdentifier {
			return m.processEdit(ev)
		}
		return m.processNormal(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processNormal(ev *tcell.EventKey) *Intent {
	var it IntentType
	if ev.Key() == tcell.KeyRune {
		it = m.keyTable.NormalRunes[ev.Rune()]
	} else {
		it = m.keyTable.SpecialKeys[ev.Key()]
	}

	switch it {
	case IntentNone:
		return nil
	case IntentEditIdentifier:
		m.mode = ModeIdentifier
		m.buffer = m.buffer[:0]
	}
	return &Intent{Type: it}
}

func (m *Machine) processEdit(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r < '0' || r > '9' || len(m.buffer) == IdentifierLength {
			return nil
		}
		m.buffer = append(m.buffer, r)
		return &Intent{Type: IntentTextChar, Char: r}
	}

	switch it := m.keyTable.EditKeys[ev.Key()]; it {
	case IntentTextBackspace:
		if len(m.buffer) > 0 {
			m.buffer = m.buffer[:len(m.buffer)-1]
		}
		return &Intent{Type: it}
	case IntentTextConfirm:
		text := string(m.buffer)
		m.Reset()
		return &Intent{Type: it, Text: text}
	case IntentTextCancel:
		m.Reset()
		return &Intent{Type: it}
	case IntentQuit:
		return &Intent{Type: it}
	}
	return nil
}

// processMouse reports a trigger on left button release
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	if m.mode != ModeNormal {
		return nil
	}
	if ev.Buttons()&tcell.Button1 != 0 {
		m.pressed = true
		return nil
	}
	if !m.pressed {
		return nil
	}
	m.pressed = false
	return &Intent{Type: IntentTrigger}
}
