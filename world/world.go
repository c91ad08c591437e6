// Package world holds the simulation state: one elevator cab, the floors it
// serves and the stick figures wandering around it. Types here are plain data;
// the systems in other packages mutate them once per tick.
package world

import (
	"fmt"

	"github.com/lixenwraith/vi-elevator/parameter"
)

// Rect is an axis-aligned rectangle in world pixels
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies inside the rectangle, edges included
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Elevator is the single cab moving along the shaft
type Elevator struct {
	YOld      float32 // Position when the current target was set
	YTarget   *int    // Destination, nil when idle
	YVelocity float32 // Signed speed per tick
	Y         float32
	Door      float32 // Openness 0..1
}

// SetTarget starts a new trip from the current position, also mid-flight
func (e *Elevator) SetTarget(y int) {
	e.YOld = e.Y
	e.YTarget = &y
}

// ClearTarget stops the cab where it is
func (e *Elevator) ClearTarget() {
	e.YTarget = nil
	e.YVelocity = 0
}

// Idle reports whether the cab has no destination
func (e *Elevator) Idle() bool {
	return e.YTarget == nil
}

// Target returns the destination and whether one is set
func (e *Elevator) Target() (int, bool) {
	if e.YTarget == nil {
		return 0, false
	}
	return *e.YTarget, true
}

// Rect returns the cab bounding box, used for drag hit testing
func (e *Elevator) Rect() Rect {
	return Rect{
		X: parameter.ElevatorX,
		Y: e.Y,
		W: parameter.ElevatorWidth,
		H: parameter.ElevatorHeight,
	}
}

func (e *Elevator) String() string {
	target := "none"
	if t, ok := e.Target(); ok {
		target = fmt.Sprintf("%d", t)
	}
	return fmt.Sprintf("y=%.2f v=%.3f target=%s", e.Y, e.YVelocity, target)
}

// Floor is a fixed slab; Y is the slab line
type Floor struct {
	Y int
}

// CabTarget is the cab position resting on this floor
func (f Floor) CabTarget() int {
	return f.Y - parameter.FloorTargetOffset
}

// StickFigure is a walking or riding occupant
type StickFigure struct {
	X, Y             float32
	WalkingState     *int // Walking cycle phase, nil when standing still
	WalkingDirection int  // +1 right, -1 left
	InElevator       bool
}

// NewStickFigure creates a standing figure facing right
func NewStickFigure(x, y float32) StickFigure {
	return StickFigure{
		X:                x,
		Y:                y,
		WalkingDirection: 1,
	}
}

// Walk starts the walking cycle at the given phase
func (s *StickFigure) Walk(phase int) {
	s.WalkingState = &phase
}

// Stand stops the walking cycle
func (s *StickFigure) Stand() {
	s.WalkingState = nil
}

// Phase returns the walking phase and whether the figure is walking
func (s *StickFigure) Phase() (int, bool) {
	if s.WalkingState == nil {
		return 0, false
	}
	return *s.WalkingState, true
}

// State owns every entity of the simulation
type State struct {
	Elevator     Elevator
	Floors       []Floor // Order is significant for floor-click matching
	StickFigures []StickFigure
}

// NewState builds the idle cab and the evenly spaced floors
func NewState() *State {
	floors := make([]Floor, 0, parameter.FloorCount)
	for idx := 1; idx <= parameter.FloorCount; idx++ {
		floors = append(floors, Floor{Y: idx*parameter.FloorSpacing + parameter.FloorOffset})
	}

	return &State{
		Elevator: Elevator{
			Y:    parameter.ElevatorStartY,
			Door: parameter.ElevatorDoorOpen,
		},
		Floors:       floors,
		StickFigures: make([]StickFigure, 0, 2),
	}
}

// NewScenario builds the startup scene: the cab heading down with one rider
// aboard and a walker pacing the fourth slab
func NewScenario() *State {
	s := NewState()
	s.Elevator.SetTarget(parameter.ElevatorScenarioTarget)

	rider := NewStickFigure(0, 0)
	rider.InElevator = true
	s.StickFigures = append(s.StickFigures, rider)

	walker := NewStickFigure(
		parameter.WalkerStartX,
		float32(s.Floors[parameter.WalkerFloorIndex].Y-parameter.WalkerOffsetY),
	)
	walker.Walk(0)
	walker.WalkingDirection = 1
	s.StickFigures = append(s.StickFigures, walker)

	return s
}
