package parameter

import "time"

// Frame Loop Timing
const (
	// TickRate is the fixed simulation and render rate in ticks per second
	TickRate = 60

	// TickInterval is the duration of one tick (~16.6ms)
	TickInterval = time.Second / TickRate

	// EventQueueSize is the capacity of the terminal event channel between poller and loop
	EventQueueSize = 256
)

// Window Defaults
const (
	// WindowTitle is shown as the terminal title
	WindowTitle = "Elevator Simulator"

	// WorldWidth and WorldHeight are the world extent in pixels, projected onto the terminal
	WorldWidth  = 1024
	WorldHeight = 740
)
