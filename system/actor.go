package system

import (
	"github.com/lixenwraith/vi-elevator/parameter"
	"github.com/lixenwraith/vi-elevator/world"
)

// Rand draws a uniform integer in [0, n)
type Rand interface {
	IntN(n int) int
}

// ActorConfig tunes stick-figure wandering
type ActorConfig struct {
	// FlipOdds is the range of the per-tick draw; a draw of FlipValue turns the walker around
	FlipOdds  int
	FlipValue int

	// RiderDrift adds the walking step to riders after they are pinned to the cab,
	// leaving them one step off the cab center
	RiderDrift bool
}

// DefaultActorConfig keeps riders centered in the cab
func DefaultActorConfig() ActorConfig {
	return ActorConfig{
		FlipOdds:  parameter.FlipOdds,
		FlipValue: parameter.FlipValue,
	}
}

// ActorSystem animates stick figures: walking cycle, wandering and riding
type ActorSystem struct {
	rng Rand
	cfg ActorConfig
}

// NewActorSystem creates the animator
func NewActorSystem(rng Rand, cfg ActorConfig) *ActorSystem {
	return &ActorSystem{rng: rng, cfg: cfg}
}

// Init
func (s *ActorSystem) Init() {}

// Priority returns the system's priority
func (s *ActorSystem) Priority() int {
	return parameter.PriorityActor
}

// Update advances every figure one tick
func (s *ActorSystem) Update(state *world.State) {
	for i := range state.StickFigures {
		s.step(&state.StickFigures[i], &state.Elevator)
	}
}

func (s *ActorSystem) step(f *world.StickFigure, e *world.Elevator) {
	if f.InElevator {
		f.Y = e.Y + parameter.RiderOffsetY
		f.X = parameter.RiderX
	}

	if phase, walking := f.Phase(); walking {
		f.Walk((phase + 1) % parameter.WalkCycle)
	}

	if !f.InElevator || s.cfg.RiderDrift {
		f.X += float32(f.WalkingDirection)
	}

	if f.InElevator {
		return
	}

	if f.X <= parameter.WalkBoundMin || f.X >= parameter.WalkBoundMax {
		f.WalkingDirection = -f.WalkingDirection
	} else if s.cfg.FlipOdds > 0 && s.rng.IntN(s.cfg.FlipOdds) == s.cfg.FlipValue {
		f.WalkingDirection = -f.WalkingDirection
	}
}
