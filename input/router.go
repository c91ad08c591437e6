package input

import (
	"github.com/lixenwraith/vi-elevator/parameter"
	"github.com/lixenwraith/vi-elevator/world"
)

// Command is what the router did with this tick's pointer
type Command uint8

const (
	CommandNone Command = iota
	CommandDrag         // Cab moved directly under the pointer
	CommandCall         // Cab sent to a floor
)

func (c Command) String() string {
	switch c {
	case CommandDrag:
		return "Drag"
	case CommandCall:
		return "Call"
	default:
		return "None"
	}
}

// Route applies one pointer snapshot to the elevator
// A drag that started on the cab wins over a click
func Route(state *world.State, p Pointer) Command {
	e := &state.Elevator

	if p.Down && e.Rect().Contains(p.X-p.DX, p.Y-p.DY) {
		e.Y = p.Y - parameter.ElevatorDragOffset
		return CommandDrag
	}

	if !p.Pressed {
		return CommandNone
	}

	for _, floor := range state.Floors {
		if float32(floor.Y) >= p.Y {
			e.SetTarget(floor.CabTarget())
			return CommandCall
		}
	}
	return CommandNone
}

// Call sends the cab to a level counted from the ground floor (0), ignoring levels out of range
// Floors are stored top to bottom
func Call(state *world.State, level int) bool {
	if level < 0 || level >= len(state.Floors) {
		return false
	}
	floor := state.Floors[len(state.Floors)-1-level]
	state.Elevator.SetTarget(floor.CabTarget())
	return true
}
