package system

import (
	"github.com/lixenwraith/vi-elevator/parameter"
	"github.com/lixenwraith/vi-elevator/physics"
	"github.com/lixenwraith/vi-elevator/world"
)

// ArrivalFunc is called once when the cab reaches its target
type ArrivalFunc func(y float32)

// MotionSystem drives the cab toward its target with the brake profile
type MotionSystem struct {
	profile  physics.Profile
	onArrive []ArrivalFunc
}

// NewMotionSystem creates a motion system using the given brake profile
func NewMotionSystem(profile physics.Profile) *MotionSystem {
	return &MotionSystem{profile: profile}
}

// OnArrive registers an arrival callback
func (s *MotionSystem) OnArrive(fn ArrivalFunc) {
	s.onArrive = append(s.onArrive, fn)
}

// Init
func (s *MotionSystem) Init() {}

// Priority returns the system's priority
func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

// Update steps the controller and fires arrival callbacks
func (s *MotionSystem) Update(state *world.State) {
	if !physics.Step(&state.Elevator, &s.profile) {
		return
	}
	for _, fn := range s.onArrive {
		fn(state.Elevator.Y)
	}
}
