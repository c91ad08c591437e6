package input

import (
	"github.com/gdamore/tcell/v2"
)

// Pointer is the per-tick mouse snapshot in world coordinates
type Pointer struct {
	X, Y    float32
	DX, DY  float32 // Movement since the previous snapshot
	Down    bool    // Primary button held
	Pressed bool    // Primary button went down since the previous snapshot
}

// Projection maps a terminal cell to the world point at its center
type Projection interface {
	ToWorld(col, row int) (float32, float32)
}

// Tracker folds mouse events between ticks into one Pointer snapshot per tick
type Tracker struct {
	proj Projection

	x, y         float32
	lastX, lastY float32
	down         bool
	pressed      bool
}

// NewTracker creates a tracker projecting cells through proj
func NewTracker(proj Projection) *Tracker {
	return &Tracker{proj: proj}
}

// Handle records a mouse event
func (t *Tracker) Handle(ev *tcell.EventMouse) {
	col, row := ev.Position()
	t.x, t.y = t.proj.ToWorld(col, row)

	down := ev.Buttons()&tcell.Button1 != 0
	// Latched so a press and release inside one tick still registers as a click
	if down && !t.down {
		t.pressed = true
	}
	t.down = down
}

// Snapshot returns the pointer state for this tick and starts the next one
func (t *Tracker) Snapshot() Pointer {
	p := Pointer{
		X:       t.x,
		Y:       t.y,
		DX:      t.x - t.lastX,
		DY:      t.y - t.lastY,
		Down:    t.down,
		Pressed: t.pressed,
	}
	t.lastX, t.lastY = t.x, t.y
	t.pressed = false
	return p
}

// Reset forgets button state, used after focus loss or scene reset
func (t *Tracker) Reset() {
	t.down = false
	t.pressed = false
	t.lastX, t.lastY = t.x, t.y
}
