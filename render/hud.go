package render

import (
	"fmt"
)

// HUDRenderer writes the status line on the top row
type HUDRenderer struct {
	visible bool
}

// NewHUDRenderer creates a status line renderer
func NewHUDRenderer(visible bool) *HUDRenderer {
	return &HUDRenderer{visible: visible}
}

// IsVisible reports whether the status line is drawn
func (h *HUDRenderer) IsVisible() bool {
	return h.visible
}

// Toggle flips visibility
func (h *HUDRenderer) Toggle() {
	h.visible = !h.visible
}

// Render writes elevator telemetry and key hints
func (h *HUDRenderer) Render(ctx RenderContext, c Canvas) {
	c.Text(0, 0, StatusLine(ctx), RGBStatus)
	if ctx.Paused {
		c.Text(0, 1, "PAUSED", RGBPaused)
	}
}

// StatusLine formats the telemetry shown on the top row
func StatusLine(ctx RenderContext) string {
	e := &ctx.State.Elevator
	target := "-"
	if t, ok := e.Target(); ok {
		target = fmt.Sprintf("%d", t)
	}
	sound := "on"
	if ctx.Muted {
		sound = "off"
	}
	return fmt.Sprintf("y %6.1f  v %+.3f  target %4s  sound %-3s  |  click floor, drag cab, 1-7 call, space pause, r reset, q quit",
		e.Y, e.YVelocity, target, sound)
}
