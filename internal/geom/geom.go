// Package geom holds the plain geometry the simulation is built on.
package geom

import (
	"math"

	"github.com/pkg/errors"
)

type Point struct{ X, Y float64 }

// Manhattan returns |dx|+|dy|. For orthogonal segments it equals the
// euclidean length.
func (p Point) Manhattan(o Point) float64 {
	return math.Abs(p.X-o.X) + math.Abs(p.Y-o.Y)
}

// Rect is an axis-aligned rectangle with the origin at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Contains is an open test: points on an edge are outside.
func (r Rect) Contains(p Point) bool {
	return p.X > r.X && p.X < r.X+r.Width && p.Y > r.Y && p.Y < r.Y+r.Height
}

// Inset shrinks the rect by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// SegmentRect returns the rect covering the segment a-b thickened by half on
// each side of its axis. A zero-length segment is treated as vertical and so
// yields a rect of zero height.
func SegmentRect(a, b Point, half float64) Rect {
	x, y := math.Min(a.X, b.X), math.Min(a.Y, b.Y)
	if a.X == b.X {
		return Rect{X: x - half, Y: y, Width: 2 * half, Height: math.Abs(a.Y - b.Y)}
	}
	return Rect{X: x, Y: y - half, Width: math.Abs(a.X - b.X), Height: 2 * half}
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	panic(errors.Errorf("geom: invalid direction %d", int(d)))
}

// Horizontal reports whether d is Left or Right. It panics on values outside
// the four defined directions.
func (d Direction) Horizontal() bool {
	switch d {
	case Left, Right:
		return true
	case Up, Down:
		return false
	}
	panic(errors.Errorf("geom: invalid direction %d", int(d)))
}

// Perpendicular reports whether turning from d to o is a 90 degree turn.
func (d Direction) Perpendicular(o Direction) bool {
	return d.Horizontal() != o.Horizontal()
}

// Step returns p moved by dist along d. Screen coordinates: Up is -Y.
func (d Direction) Step(p Point, dist float64) Point {
	switch d {
	case Up:
		p.Y -= dist
	case Down:
		p.Y += dist
	case Left:
		p.X -= dist
	case Right:
		p.X += dist
	default:
		panic(errors.Errorf("geom: invalid direction %d", int(d)))
	}
	return p
}

// Probe returns the two points straddling p perpendicular to d, each half
// units away.
func (d Direction) Probe(p Point, half float64) (Point, Point) {
	if d.Horizontal() {
		return Point{X: p.X, Y: p.Y - half}, Point{X: p.X, Y: p.Y + half}
	}
	return Point{X: p.X - half, Y: p.Y}, Point{X: p.X + half, Y: p.Y}
}
