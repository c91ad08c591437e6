package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// QuadrantChars maps 4-bit patterns to Unicode quadrant characters
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = foreground)
var QuadrantChars = [16]rune{
	' ', // 0000 - empty
	'▘', // 0001 - upper-left
	'▝', // 0010 - upper-right
	'▀', // 0011 - upper half
	'▖', // 0100 - lower-left
	'▌', // 0101 - left half
	'▞', // 0110 - anti-diagonal
	'▛', // 0111 - UL + UR + LL
	'▗', // 1000 - lower-right
	'▚', // 1001 - diagonal
	'▐', // 1010 - right half
	'▜', // 1011 - UL + UR + LR
	'▄', // 1100 - lower half
	'▙', // 1101 - UL + LL + LR
	'▟', // 1110 - UR + LL + LR
	'█', // 1111 - full block
}

type subPixel struct {
	color RGB
	set   bool
}

type textCell struct {
	r     rune
	color RGB
}

// Raster is a Canvas projecting world pixels onto 2x2 sub-pixels per terminal cell
type Raster struct {
	cols, rows     int
	worldW, worldH float32
	sx, sy         float32 // Sub-pixels per world pixel
	bg             RGB

	pixels []subPixel // (cols*2) x (rows*2), row-major
	text   []textCell // cols x rows, rune 0 = empty
}

// NewRaster creates a raster covering a world of worldW x worldH pixels
func NewRaster(cols, rows int, worldW, worldH float32) *Raster {
	r := &Raster{
		worldW: worldW,
		worldH: worldH,
		bg:     RGBBlack,
	}
	r.Resize(cols, rows)
	return r
}

// Resize re-projects the world onto a new cell grid, reallocating only if capacity is insufficient
func (r *Raster) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	r.cols, r.rows = cols, rows

	size := cols * 2 * rows * 2
	if cap(r.pixels) < size {
		r.pixels = make([]subPixel, size)
	} else {
		r.pixels = r.pixels[:size]
	}
	if cap(r.text) < cols*rows {
		r.text = make([]textCell, cols*rows)
	} else {
		r.text = r.text[:cols*rows]
	}

	r.sx = float32(cols*2) / r.worldW
	r.sy = float32(rows*2) / r.worldH
	r.Clear(r.bg)
}

// Size returns the grid size in cells
func (r *Raster) Size() (int, int) {
	return r.cols, r.rows
}

// ToWorld returns the world point at the center of a cell
func (r *Raster) ToWorld(col, row int) (float32, float32) {
	return (float32(col) + 0.5) * 2 / r.sx, (float32(row) + 0.5) * 2 / r.sy
}

// Clear resets every sub-pixel and label to the background
func (r *Raster) Clear(bg RGB) {
	r.bg = bg
	clear(r.pixels)
	clear(r.text)
}

func (r *Raster) plot(px, py int, c RGB) {
	w := r.cols * 2
	if px < 0 || py < 0 || px >= w || py >= r.rows*2 {
		return
	}
	i := py*w + px
	if c == r.bg {
		r.pixels[i] = subPixel{}
		return
	}
	r.pixels[i] = subPixel{color: c, set: true}
}

// edgeEpsilon absorbs float32 scale error so rectangle edges on cell boundaries do not bleed
const edgeEpsilon = 1e-4

func floorInt(v float32) int {
	return int(math.Floor(float64(v)))
}

func ceilInt(v float32) int {
	return int(math.Ceil(float64(v)))
}

// fillRect fills world rectangle [x0,x1) x [y0,y1), at least one sub-pixel
func (r *Raster) fillRect(x0, y0, x1, y1 float32, c RGB) {
	px0, py0 := floorInt(x0*r.sx+edgeEpsilon), floorInt(y0*r.sy+edgeEpsilon)
	px1, py1 := ceilInt(x1*r.sx-edgeEpsilon)-1, ceilInt(y1*r.sy-edgeEpsilon)-1
	if px1 < px0 {
		px1 = px0
	}
	if py1 < py0 {
		py1 = py0
	}
	for py := py0; py <= py1; py++ {
		for px := px0; px <= px1; px++ {
			r.plot(px, py, c)
		}
	}
}

// RectLines draws a rectangle outline with the stroke inside the bounds
func (r *Raster) RectLines(rect Rect, thick float32, c RGB) {
	if thick*2 >= rect.W || thick*2 >= rect.H {
		r.fillRect(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H, c)
		return
	}
	x0, y0 := rect.X, rect.Y
	x1, y1 := rect.X+rect.W, rect.Y+rect.H
	r.fillRect(x0, y0, x1, y0+thick, c)
	r.fillRect(x0, y1-thick, x1, y1, c)
	r.fillRect(x0, y0+thick, x0+thick, y1-thick, c)
	r.fillRect(x1-thick, y0+thick, x1, y1-thick, c)
}

// Line draws a stroke by stamping a thick square along the segment
func (r *Raster) Line(a, b Vec2, thick float32, c RGB) {
	ax, ay := a.X*r.sx, a.Y*r.sy
	bx, by := b.X*r.sx, b.Y*r.sy
	dx, dy := bx-ax, by-ay

	steps := int(math.Ceil(math.Max(math.Abs(float64(dx)), math.Abs(float64(dy)))))
	hx, hy := thick*r.sx/2, thick*r.sy/2

	for i := 0; i <= steps; i++ {
		t := float32(0)
		if steps > 0 {
			t = float32(i) / float32(steps)
		}
		x, y := ax+dx*t, ay+dy*t
		for py := floorInt(y - hy); py <= floorInt(y+hy); py++ {
			for px := floorInt(x - hx); px <= floorInt(x+hx); px++ {
				r.plot(px, py, c)
			}
		}
	}
}

// Circle draws a filled ellipse, round in world space
func (r *Raster) Circle(center Vec2, radius float32, c RGB) {
	cx, cy := center.X*r.sx, center.Y*r.sy
	rx, ry := radius*r.sx, radius*r.sy

	// Center pixel always lands so tiny circles stay visible
	r.plot(floorInt(cx), floorInt(cy), c)
	if rx <= 0 || ry <= 0 {
		return
	}

	for py := floorInt(cy - ry); py <= floorInt(cy+ry); py++ {
		ny := (float32(py) + 0.5 - cy) / ry
		for px := floorInt(cx - rx); px <= floorInt(cx+rx); px++ {
			nx := (float32(px) + 0.5 - cx) / rx
			if nx*nx+ny*ny <= 1 {
				r.plot(px, py, c)
			}
		}
	}
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// Triangle draws a filled triangle, either winding
func (r *Raster) Triangle(a, b, c Vec2, color RGB) {
	ax, ay := a.X*r.sx, a.Y*r.sy
	bx, by := b.X*r.sx, b.Y*r.sy
	cx, cy := c.X*r.sx, c.Y*r.sy

	r.plot(floorInt((ax+bx+cx)/3), floorInt((ay+by+cy)/3), color)

	minX := floorInt(min(ax, bx, cx))
	maxX := floorInt(max(ax, bx, cx))
	minY := floorInt(min(ay, by, cy))
	maxY := floorInt(max(ay, by, cy))

	for py := minY; py <= maxY; py++ {
		sy := float32(py) + 0.5
		for px := minX; px <= maxX; px++ {
			sx := float32(px) + 0.5
			w0 := edge(bx, by, cx, cy, sx, sy)
			w1 := edge(cx, cy, ax, ay, sx, sy)
			w2 := edge(ax, ay, bx, by, sx, sy)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				r.plot(px, py, color)
			}
		}
	}
}

// Text writes a label in cell coordinates, clipped to the grid
func (r *Raster) Text(col, row int, s string, color RGB) {
	if row < 0 || row >= r.rows {
		return
	}
	for _, ch := range s {
		if col >= r.cols {
			return
		}
		if col >= 0 {
			r.text[row*r.cols+col] = textCell{r: ch, color: color}
		}
		col++
	}
}

// Cell resolves the glyph and foreground color of a cell
// The foreground is the most common color among its lit sub-pixels
func (r *Raster) Cell(col, row int) (rune, RGB) {
	if t := r.text[row*r.cols+col]; t.r != 0 {
		return t.r, t.color
	}

	w := r.cols * 2
	base := row*2*w + col*2
	quad := [4]subPixel{
		r.pixels[base],
		r.pixels[base+1],
		r.pixels[base+w],
		r.pixels[base+w+1],
	}

	var mask int
	var colors [4]RGB
	var counts [4]int
	n := 0
	for bit, sp := range quad {
		if !sp.set {
			continue
		}
		mask |= 1 << bit
		found := false
		for i := 0; i < n; i++ {
			if colors[i] == sp.color {
				counts[i]++
				found = true
				break
			}
		}
		if !found {
			colors[n] = sp.color
			counts[n] = 1
			n++
		}
	}
	if mask == 0 {
		return ' ', r.bg
	}

	best := 0
	for i := 1; i < n; i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return QuadrantChars[mask], colors[best]
}

// Flush writes every cell to the screen; the caller shows the screen
func (r *Raster) Flush(screen tcell.Screen) {
	base := tcell.StyleDefault.Background(r.bg.Tcell())
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			ch, fg := r.Cell(col, row)
			screen.SetContent(col, row, ch, nil, base.Foreground(fg.Tcell()))
		}
	}
}
