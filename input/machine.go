package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses terminal events into intents, feeding mouse events to the tracker
type Machine struct {
	tracker *Tracker
}

// NewMachine creates a parser that forwards mouse events to tracker
func NewMachine(tracker *Tracker) *Machine {
	return &Machine{tracker: tracker}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no meaning here
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventMouse:
		m.tracker.Handle(ev)
		return &Intent{Type: IntentPointer}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventError:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
	default:
		return nil
	}

	r := ev.Rune()
	switch {
	case r == 'q':
		return &Intent{Type: IntentQuit}
	case r == ' ':
		return &Intent{Type: IntentPause}
	case r == '.':
		return &Intent{Type: IntentStep}
	case r == 'r':
		return &Intent{Type: IntentReset}
	case r == 'm':
		return &Intent{Type: IntentMute}
	case r == 'h':
		return &Intent{Type: IntentHUD}
	case r >= '1' && r <= '9':
		return &Intent{Type: IntentCall, Level: int(r - '1')}
	}
	return nil
}
