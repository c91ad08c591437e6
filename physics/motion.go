package physics

import (
	"math"

	"github.com/lixenwraith/vi-elevator/world"
)

// Step advances the cab one tick toward its target and reports arrival
// A cab without a target is left untouched
func Step(e *world.Elevator, p *Profile) bool {
	target, ok := e.Target()
	if !ok {
		return false
	}
	yTarget := float32(target)

	// Direction is fixed when the target is set, not recomputed from the current position
	direction := sign(yTarget - e.YOld)
	if direction == 0 {
		e.ClearTarget()
		return true
	}

	total := abs(e.YOld - yTarget)
	current := abs(e.Y - yTarget)

	a := p.Accel(total, current) * direction

	// Moving the wrong way (drag overshoot) corrects twice as hard; a cab at rest counts as moving up
	if velocitySign(e.YVelocity) != direction {
		a *= 2
	}

	e.YVelocity = clamp(e.YVelocity+a, -p.MaxSpeed, p.MaxSpeed)
	e.Y += e.YVelocity

	// No snap: discrete steps may overshoot slightly
	if (direction > 0 && e.Y >= yTarget) || (direction < 0 && e.Y <= yTarget) {
		e.ClearTarget()
		return true
	}
	return false
}

func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// velocitySign treats +0 as positive and -0 as negative
func velocitySign(v float32) float32 {
	if math.Signbit(float64(v)) {
		return -1
	}
	return 1
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi float32) float32 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}
