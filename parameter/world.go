package parameter

// Floors
const (
	// FloorCount is the number of floors built at startup
	FloorCount = 7

	// FloorSpacing is the vertical distance between floors
	FloorSpacing = 85

	// FloorOffset is added to idx*FloorSpacing for floor idx in 1..FloorCount
	FloorOffset = 20

	// FloorTargetOffset is subtracted from a floor's Y to get the cab target resting on it
	FloorTargetOffset = 78

	// FloorLineStartX and FloorLineEndX frame the drawn floor slab
	FloorLineStartX = 102
	FloorLineEndX   = 768
)

// Elevator cab
const (
	ElevatorX      = 50
	ElevatorWidth  = 50
	ElevatorHeight = 80

	// ElevatorStartY is the cab position at startup
	ElevatorStartY = 50

	// ElevatorDoorOpen is the door openness at startup (0 closed, 1 open)
	ElevatorDoorOpen = 1

	// ElevatorDragOffset is subtracted from pointer Y while dragging so the cab hangs under the pointer
	ElevatorDragOffset = 40

	// ElevatorScenarioTarget is the startup destination (4*85+28)
	ElevatorScenarioTarget = 4*FloorSpacing + 28
)

// Stick figures
const (
	// RiderOffsetY places a rider's head inside the cab relative to cab Y
	RiderOffsetY = 44

	// RiderX is the fixed horizontal position of a rider
	RiderX = 75

	// WalkBoundMin and WalkBoundMax are the horizontal bounds of the walkable floor area
	WalkBoundMin = 105
	WalkBoundMax = 765

	// WalkCycle is the length of the walking animation counter (0..WalkCycle-1)
	WalkCycle = 30

	// FlipOdds is the range of the per-tick random draw for a spontaneous turn
	FlipOdds = 200

	// FlipValue is the drawn value that triggers a spontaneous turn
	FlipValue = 10

	// WalkerStartX is the startup horizontal position of the scenario walker
	WalkerStartX = 150

	// WalkerFloorIndex is the floor the scenario walker stands on
	WalkerFloorIndex = 4

	// WalkerOffsetY places the walker's head above the floor slab
	WalkerOffsetY = 35
)
