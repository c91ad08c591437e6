package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityMotion = 10 // Elevator position settles before riders are pinned to it
	PriorityActor  = 20
)
