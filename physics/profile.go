package physics

import (
	"fmt"

	"github.com/lixenwraith/vi-elevator/parameter"
)

// Bracket is one row of the brake table keyed by total trip distance
type Bracket struct {
	MaxDistance float32 `yaml:"max_distance"` // Inclusive upper bound on total trip distance
	Accel       float32 `yaml:"accel"`        // Signed magnitude before direction is applied
	KeepBase    bool    `yaml:"keep_base"`    // Row matches but leaves the base acceleration in place
}

// Profile is the tunable brake curve consumed by Step
// Longer trips brake earlier and harder so travel time stays roughly proportional to distance
type Profile struct {
	BaseAccel      float32   `yaml:"base_accel"`
	ApproachWindow float32   `yaml:"approach_window"`
	MaxSpeed       float32   `yaml:"max_speed"`
	Brackets       []Bracket `yaml:"brackets"`
	Fallback       float32   `yaml:"fallback"` // Applies past the last bracket
}

// DefaultProfile returns the hand-tuned curve; bracket bounds and constants are exact
func DefaultProfile() Profile {
	return Profile{
		BaseAccel:      parameter.MotionBaseAccel,
		ApproachWindow: parameter.MotionApproachWindow,
		MaxSpeed:       parameter.MotionMaxSpeed,
		Brackets: []Bracket{
			{MaxDistance: 30, KeepBase: true},
			{MaxDistance: 60, Accel: -0.0005},
			{MaxDistance: 80, Accel: -0.005},
			{MaxDistance: 86, Accel: -0.0175},
			{MaxDistance: 120, Accel: -0.0175},
			{MaxDistance: 171, Accel: -0.030125},
		},
		Fallback: parameter.MotionFallbackAccel,
	}
}

// Accel returns the acceleration magnitude for a trip of total length at the given remaining distance
// Direction is not applied
func (p *Profile) Accel(total, current float32) float32 {
	if current >= p.ApproachWindow {
		return p.BaseAccel
	}
	for _, b := range p.Brackets {
		if total <= b.MaxDistance {
			if b.KeepBase {
				return p.BaseAccel
			}
			return b.Accel
		}
	}
	return p.Fallback
}

// Validate checks the profile can drive the controller
func (p *Profile) Validate() error {
	if p.MaxSpeed <= 0 {
		return fmt.Errorf("max speed must be positive, got %v", p.MaxSpeed)
	}
	if p.ApproachWindow < 0 {
		return fmt.Errorf("approach window must not be negative, got %v", p.ApproachWindow)
	}
	for i := 1; i < len(p.Brackets); i++ {
		if p.Brackets[i].MaxDistance <= p.Brackets[i-1].MaxDistance {
			return fmt.Errorf("bracket %d: max distance %v not above previous %v",
				i, p.Brackets[i].MaxDistance, p.Brackets[i-1].MaxDistance)
		}
	}
	return nil
}
