package parameter

// Elevator motion defaults, see physics.DefaultProfile
const (
	// MotionBaseAccel is the cruising acceleration magnitude per tick
	MotionBaseAccel = 0.01

	// MotionApproachWindow is the remaining distance under which the brake table applies
	MotionApproachWindow = 30

	// MotionMaxSpeed caps the absolute cab velocity per tick
	MotionMaxSpeed = 1.4

	// MotionFallbackAccel applies to trips longer than every bracket
	MotionFallbackAccel = -0.032125
)
