// Package term draws the game on a character terminal through tcell.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"snek/internal/geom"
)

const (
	blockRune = ' '
	pillRune  = '●'
)

// Renderer maps the fixed canvas onto the screen's cell grid. Each cell
// covers canvasWidth/cols by canvasHeight/rows canvas units. Line widths
// collapse to a single cell.
type Renderer struct {
	screen       tcell.Screen
	canvasWidth  float64
	canvasHeight float64
	cols, rows   int
	scaleX       float64
	scaleY       float64
	background   tcell.Color
}

func NewRenderer(screen tcell.Screen, canvasWidth, canvasHeight float64) *Renderer {
	r := &Renderer{
		screen:       screen,
		canvasWidth:  canvasWidth,
		canvasHeight: canvasHeight,
		background:   tcell.ColorBlack,
	}
	r.resize()
	return r
}

func (r *Renderer) resize() {
	r.cols, r.rows = r.screen.Size()
	r.scaleX = float64(r.cols) / r.canvasWidth
	r.scaleY = float64(r.rows) / r.canvasHeight
}

// Cell returns the screen cell holding canvas point p.
func (r *Renderer) Cell(p geom.Point) (int, int) {
	return clamp(int(math.Floor(p.X*r.scaleX)), r.cols), clamp(int(math.Floor(p.Y*r.scaleY)), r.rows)
}

// Clear picks up the current screen size and blanks every cell.
func (r *Renderer) Clear() {
	r.resize()
	r.screen.Fill(blockRune, tcell.StyleDefault.Background(r.background))
}

func (r *Renderer) Rect(rect geom.Rect, fill, stroke color.Color, _ float64) {
	c0, c1 := span(rect.X, rect.Right(), r.scaleX, r.cols)
	r0, r1 := span(rect.Y, rect.Bottom(), r.scaleY, r.rows)
	if fill != nil {
		style := tcell.StyleDefault.Background(tcell.FromImageColor(fill))
		for y := r0; y <= r1; y++ {
			for x := c0; x <= c1; x++ {
				r.screen.SetContent(x, y, blockRune, nil, style)
			}
		}
	}
	if stroke != nil {
		style := tcell.StyleDefault.Background(tcell.FromImageColor(stroke))
		for x := c0; x <= c1; x++ {
			r.screen.SetContent(x, r0, blockRune, nil, style)
			r.screen.SetContent(x, r1, blockRune, nil, style)
		}
		for y := r0; y <= r1; y++ {
			r.screen.SetContent(c0, y, blockRune, nil, style)
			r.screen.SetContent(c1, y, blockRune, nil, style)
		}
	}
}

func (r *Renderer) Path(points []geom.Point, stroke color.Color, _ float64) {
	if stroke == nil || len(points) == 0 {
		return
	}
	style := tcell.StyleDefault.Background(tcell.FromImageColor(stroke))
	x0, y0 := r.Cell(points[0])
	r.screen.SetContent(x0, y0, blockRune, nil, style)
	for _, p := range points[1:] {
		x1, y1 := r.Cell(p)
		r.line(x0, y0, x1, y1, style)
		x0, y0 = x1, y1
	}
}

func (r *Renderer) line(x0, y0, x1, y1 int, style tcell.Style) {
	dx, dy := x1-x0, y1-y0
	n := max(abs(dx), abs(dy))
	for i := 0; i <= n; i++ {
		x, y := x0, y0
		if n > 0 {
			x += int(math.Round(float64(i*dx) / float64(n)))
			y += int(math.Round(float64(i*dy) / float64(n)))
		}
		r.screen.SetContent(x, y, blockRune, nil, style)
	}
}

// Circle marks the cell under the center. Discs are far smaller than a cell.
func (r *Renderer) Circle(center geom.Point, _ float64, fill color.Color) {
	if fill == nil {
		return
	}
	x, y := r.Cell(center)
	r.put(x, y, pillRune, fill)
}

// Text starts at the cell holding (x, y). The background of the cells
// underneath is kept.
func (r *Renderer) Text(s string, clr color.Color, _, x, y float64) {
	cx, cy := r.Cell(geom.Point{X: x, Y: y})
	for _, ch := range s {
		if cx >= r.cols {
			return
		}
		r.put(cx, cy, ch, clr)
		cx++
	}
}

func (r *Renderer) put(x, y int, ch rune, fg color.Color) {
	_, _, style, _ := r.screen.GetContent(x, y)
	if fg != nil {
		style = style.Foreground(tcell.FromImageColor(fg))
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// span returns the inclusive cell range covering [lo, hi).
func span(lo, hi, scale float64, n int) (int, int) {
	a := clamp(int(math.Floor(lo*scale)), n)
	b := clamp(int(math.Ceil(hi*scale))-1, n)
	if b < a {
		b = a
	}
	return a, b
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
