package render

import (
	"math"
	"strings"
)

// Braille patterns pack a 2x4 dot cell into one rune:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Unicode offset 0x2800.
var dotBits = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille dot matrix. A w x h character canvas addresses
// (w*2) x (h*4) dots, origin top-left.
type Canvas struct {
	Width, Height int
	cells         [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, cells: make([][]rune, h)}
	for i := range c.cells {
		c.cells[i] = make([]rune, w)
		for j := range c.cells[i] {
			c.cells[i][j] = 0x2800
		}
	}
	return c
}

// DotWidth and DotHeight are the canvas dimensions in dots.
func (c *Canvas) DotWidth() int  { return c.Width * 2 }
func (c *Canvas) DotHeight() int { return c.Height * 4 }

// Set turns on the dot at (x, y) in dot coordinates. Out-of-range
// coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.cells[row][col] |= dotBits[y%4][x%2]
}

// On reports whether the dot at (x, y) is set.
func (c *Canvas) On(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.cells[row][col]&dotBits[y%4][x%2] != 0
}

// Clear turns every dot off.
func (c *Canvas) Clear() {
	for i := range c.cells {
		for j := range c.cells[i] {
			c.cells[i][j] = 0x2800
		}
	}
}

// Line draws from (x0, y0) to (x1, y1), Bresenham.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Blob fills a filled square of the given dot radius, for bobs and
// bodies.
func (c *Canvas) Blob(x, y, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			c.Set(x+dx, y+dy)
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Bounds is a world-coordinate rectangle a frame is drawn within.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// pad grows the rectangle by a fraction on every side, and by an
// absolute minimum so degenerate rectangles stay drawable.
func (b Bounds) pad(frac float64) Bounds {
	w, h := b.MaxX-b.MinX, b.MaxY-b.MinY
	px := math.Max(w*frac, 1e-6)
	py := math.Max(h*frac, 1e-6)
	return Bounds{b.MinX - px, b.MinY - py, b.MaxX + px, b.MaxY + py}
}

// viewport maps world coordinates onto canvas dots, preserving aspect
// ratio and flipping y so world up is screen up. Dot cells are roughly
// twice as tall as wide in a terminal, which the y scale absorbs.
type viewport struct {
	b      Bounds
	scale  float64
	offX   float64
	offY   float64
	height int
}

// terminal cell aspect: one Braille dot is ~1x2 in screen units
const dotAspect = 2.0

func newViewport(c *Canvas, b Bounds) viewport {
	w, h := float64(c.DotWidth()), float64(c.DotHeight())
	spanX, spanY := b.MaxX-b.MinX, b.MaxY-b.MinY

	scale := math.Min(w/spanX, h*dotAspect/spanY)
	usedW := spanX * scale
	usedH := spanY * scale / dotAspect
	return viewport{
		b:      b,
		scale:  scale,
		offX:   (w - usedW) / 2,
		offY:   (h - usedH) / 2,
		height: int(h),
	}
}

// dot converts a world point to dot coordinates.
func (v viewport) dot(x, y float64) (int, int) {
	dx := v.offX + (x-v.b.MinX)*v.scale
	dy := v.offY + (y-v.b.MinY)*v.scale/dotAspect
	return int(math.Round(dx)), v.height - 1 - int(math.Round(dy))
}
