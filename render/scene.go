package render

import (
	"github.com/lixenwraith/vi-elevator/parameter"
	"github.com/lixenwraith/vi-elevator/world"
)

// ElevatorRenderer draws the cab: light fixture, frame, control panel and door
type ElevatorRenderer struct{}

// Render draws the elevator cab
func (ElevatorRenderer) Render(ctx RenderContext, c Canvas) {
	e := &ctx.State.Elevator
	pos := Vec2{parameter.ElevatorX, e.Y}

	c.Triangle(pos.Add(15, 12), pos.Add(35, 12), pos.Add(25, 4), RGBOrange)

	c.RectLines(Rect{pos.X, pos.Y, parameter.ElevatorWidth, parameter.ElevatorHeight}, 5, RGBWhiteSmoke)

	c.Line(pos.Add(3, 35), pos.Add(3, 60), 2, RGBLightSteelBlue)

	// Door opening blacks out part of the right frame
	c.Line(pos.Add(47, 17), pos.Add(47, 17+58*e.Door), 6, RGBBlack)
}

// FloorRenderer draws one slab line per floor
type FloorRenderer struct{}

// Render draws the floors
func (FloorRenderer) Render(ctx RenderContext, c Canvas) {
	for _, f := range ctx.State.Floors {
		y := float32(f.Y)
		c.Line(Vec2{parameter.FloorLineStartX, y}, Vec2{parameter.FloorLineEndX, y}, 5, RGBWhite)
	}
}

// FigureRenderer draws stick figures posed by their walking phase
type FigureRenderer struct{}

// Render draws every stick figure
func (FigureRenderer) Render(ctx RenderContext, c Canvas) {
	for i := range ctx.State.StickFigures {
		drawStickFigure(c, &ctx.State.StickFigures[i])
	}
}

type limb struct {
	from, to Vec2
}

// Pose returns arms and legs for a figure whose head is centered at (x, y)
// Early phases swing the arms wide, middle phases the legs; the rest of the cycle is neutral
func Pose(x, y float32, phase int, walking bool) (arms, legs [2]limb) {
	bottom := y + 7

	shoulder := Vec2{x, bottom + 2}
	hip := Vec2{x, bottom + 15}
	arms = [2]limb{
		{shoulder, Vec2{x - 7, bottom + 12}},
		{shoulder, Vec2{x + 7, bottom + 12}},
	}
	legs = [2]limb{
		{hip, Vec2{x - 7, bottom + 24}},
		{hip, Vec2{x + 7, bottom + 24}},
	}

	if !walking {
		return arms, legs
	}

	var armSwing, legSwing float32
	switch {
	case phase < 7:
		armSwing, legSwing = 4, 2
	case phase < 15:
		armSwing, legSwing = 2, 4
	default:
		return arms, legs
	}

	arms[0].to = arms[0].to.Add(armSwing, armSwing)
	arms[1].to = arms[1].to.Add(-armSwing, armSwing)
	legs[0].to = legs[0].to.Add(legSwing, legSwing)
	legs[1].to = legs[1].to.Add(-legSwing, legSwing)
	return arms, legs
}

func drawStickFigure(c Canvas, f *world.StickFigure) {
	// Head ring: filled white disc with a black center, at integer pixels
	head := Vec2{float32(int(f.X)), float32(int(f.Y))}
	c.Circle(head, 7, RGBWhite)
	c.Circle(head, 5, RGBBlack)

	bottom := f.Y + 7
	c.Line(Vec2{f.X, bottom}, Vec2{f.X, bottom + 15}, 2, RGBWhite)

	phase, walking := f.Phase()
	arms, legs := Pose(f.X, f.Y, phase, walking)
	for _, l := range arms {
		c.Line(l.from, l.to, 2, RGBWhite)
	}
	for _, l := range legs {
		c.Line(l.from, l.to, 2, RGBWhite)
	}
}
