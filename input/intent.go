package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Esc, q, Ctrl+C, terminal closed
	IntentPause  // Space
	IntentStep   // '.' advances one tick while paused
	IntentReset  // r rebuilds the startup scene
	IntentMute   // m
	IntentHUD    // h toggles the status line
	IntentResize // Terminal resize event

	// Elevator control
	IntentPointer // Mouse event folded into the tracker
	IntentCall    // 1-9 sends the cab to that level, 1 is the ground floor
)

// Intent is a parsed terminal event
type Intent struct {
	Type  IntentType
	Level int // Floor counted from the ground (0) for IntentCall
}

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "Quit"
	case IntentPause:
		return "Pause"
	case IntentStep:
		return "Step"
	case IntentReset:
		return "Reset"
	case IntentMute:
		return "Mute"
	case IntentHUD:
		return "HUD"
	case IntentResize:
		return "Resize"
	case IntentPointer:
		return "Pointer"
	case IntentCall:
		return "Call"
	default:
		return "None"
	}
}
