package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func special(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestNormalBindings(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"space", key(' '), IntentTrigger},
		{"enter", special(tcell.KeyEnter), IntentTrigger},
		{"location", key('g'), IntentToggleLocation},
		{"streak", key('k'), IntentToggleStreak},
		{"divination", key('d'), IntentToggleDivination},
		{"shake", key('s'), IntentShake},
		{"mute", key('m'), IntentToggleMute},
		{"quit q", key('q'), IntentQuit},
		{"quit esc", special(tcell.KeyEscape), IntentQuit},
		{"quit ctrl-c", special(tcell.KeyCtrlC), IntentQuit},
		{"resize", tcell.NewEventResize(80, 24), IntentResize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			got := m.Process(tt.ev)
			if got == nil {
				t.Fatalf("Expected Process to return %v, got nil", tt.want)
			}
			if got.Type != tt.want {
				t.Errorf("Expected Type to be %v, got %v", tt.want, got.Type)
			}
		})
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	m := NewMachine()
	if got := m.Process(key('z')); got != nil {
		t.Errorf("Expected Process('z') to be nil, got %+v", got)
	}
}

func TestMouseReleaseTriggers(t *testing.T) {
	m := NewMachine()

	if got := m.Process(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone)); got != nil {
		t.Errorf("Expected release without press to be nil, got %+v", got)
	}
	if got := m.Process(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone)); got != nil {
		t.Errorf("Expected press to be nil, got %+v", got)
	}
	got := m.Process(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone))
	if got == nil || got.Type != IntentTrigger {
		t.Fatalf("Expected release to be trigger, got %+v", got)
	}
	if got := m.Process(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone)); got != nil {
		t.Errorf("Expected second release to be nil, got %+v", got)
	}
}

func TestIdentifierEditing(t *testing.T) {
	m := NewMachine()

	got := m.Process(key('i'))
	if got == nil || got.Type != IntentEditIdentifier {
		t.Fatalf("Expected 'i' to be edit, got %+v", got)
	}
	if m.Mode() != ModeIdentifier {
		t.Fatalf("Expected Mode to be identifier, got %v", m.Mode())
	}

	// Normal bindings are inert while editing
	if got := m.Process(key('q')); got != nil {
		t.Errorf("Expected 'q' while editing to be nil, got %+v", got)
	}

	for _, r := range "199001015" {
		m.Process(key(r))
	}
	if m.Buffer() != "19900101" {
		t.Errorf("Expected Buffer to be 8 digits, got %q", m.Buffer())
	}

	m.Process(special(tcell.KeyBackspace2))
	m.Process(key('2'))

	got = m.Process(special(tcell.KeyEnter))
	if got == nil || got.Type != IntentTextConfirm {
		t.Fatalf("Expected enter to be confirm, got %+v", got)
	}
	if got.Text != "19900102" {
		t.Errorf("Expected Text to be %q, got %q", "19900102", got.Text)
	}
	if m.Mode() != ModeNormal || m.Buffer() != "" {
		t.Errorf("Expected normal mode and empty buffer after confirm, got mode=%v buffer=%q", m.Mode(), m.Buffer())
	}
}

func TestIdentifierCancel(t *testing.T) {
	m := NewMachine()
	m.Process(key('i'))
	m.SetBuffer("2024-01-31")
	if m.Buffer() != "20240131" {
		t.Errorf("Expected SetBuffer to keep digits only, got %q", m.Buffer())
	}

	got := m.Process(special(tcell.KeyEscape))
	if got == nil || got.Type != IntentTextCancel {
		t.Fatalf("Expected esc to be cancel, got %+v", got)
	}
	if m.Mode() != ModeNormal {
		t.Errorf("Expected Mode to be normal, got %v", m.Mode())
	}
}

func TestIdentifierEmptyConfirm(t *testing.T) {
	m := NewMachine()
	m.Process(key('i'))
	got := m.Process(special(tcell.KeyEnter))
	if got == nil || got.Text != "" {
		t.Errorf("Expected confirm to be empty text, got %+v", got)
	}
}

func TestMouseIgnoredWhileEditing(t *testing.T) {
	m := NewMachine()
	m.Process(key('i'))
	m.Process(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	if got := m.Process(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone)); got != nil {
		t.Errorf("Expected release while editing to be nil, got %+v", got)
	}
}
