package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityElevator RenderPriority = iota
	PriorityFloors
	PriorityFigures
	PriorityUI
)
