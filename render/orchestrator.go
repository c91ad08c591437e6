package render

import (
	"github.com/gdamore/tcell/v2"
)

type rendererEntry struct {
	renderer SceneRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	raster    *Raster
	renderers []rendererEntry
	regCount  int
	resizable bool
}

// NewRenderOrchestrator creates an orchestrator drawing into screen through raster
// A non-resizable orchestrator keeps the raster's initial projection on terminal resize
func NewRenderOrchestrator(screen tcell.Screen, raster *Raster, resizable bool) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		raster:    raster,
		renderers: make([]rendererEntry, 0, 4),
		resizable: resizable,
	}
}

// Register adds a renderer at the given priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SceneRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize re-projects the raster onto the new terminal size and syncs the screen
func (o *RenderOrchestrator) Resize(cols, rows int) {
	if o.resizable {
		o.raster.Resize(cols, rows)
	}
	o.screen.Clear()
	o.screen.Sync()
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.raster.Clear(RGBBlack)

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.raster)
	}

	o.raster.Flush(o.screen)
	o.screen.Show()
}

// RegisterDefaults registers the scene layers in draw order
func (o *RenderOrchestrator) RegisterDefaults(hud *HUDRenderer) {
	o.Register(ElevatorRenderer{}, PriorityElevator)
	o.Register(FloorRenderer{}, PriorityFloors)
	o.Register(FigureRenderer{}, PriorityFigures)
	if hud != nil {
		o.Register(hud, PriorityUI)
	}
}
