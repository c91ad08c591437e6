package render

// SceneRenderer draws one layer of the world
type SceneRenderer interface {
	Render(ctx RenderContext, c Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
