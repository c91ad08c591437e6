package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Palette used by the scene renderers
var (
	RGBBlack          = RGB{0, 0, 0}
	RGBWhite          = RGB{255, 255, 255}
	RGBWhiteSmoke     = RGB{245, 245, 245}
	RGBOrange         = RGB{255, 161, 0}
	RGBLightSteelBlue = RGB{176, 196, 222}
	RGBStatus         = RGB{130, 130, 130}
	RGBPaused         = RGB{253, 249, 0}
)

// Tcell converts to a tcell true color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
