package render

import "github.com/lixenwraith/vi-elevator/world"

// RenderContext is the read-only view handed to renderers each frame
type RenderContext struct {
	State  *world.State
	Tick   uint64
	Paused bool
	Muted  bool
}
