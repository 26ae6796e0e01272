package snek

import (
	"slices"

	"github.com/pkg/errors"

	"snek/internal/geom"
)

// Path is an orthogonal polyline, tail first. The last point is the head.
type Path struct {
	points  []geom.Point
	heading geom.Direction
}

// NewPath builds a single straight segment of the given length ending at
// head and pointing along heading.
func NewPath(head geom.Point, heading geom.Direction, length float64) *Path {
	tail := heading.Step(head, -length)
	return &Path{points: []geom.Point{tail, head}, heading: heading}
}

// Points returns the path points. The slice is owned by the path.
func (p *Path) Points() []geom.Point { return p.points }

func (p *Path) Head() geom.Point { return p.points[len(p.points)-1] }

func (p *Path) Heading() geom.Direction { return p.heading }

// Length sums the segment lengths.
func (p *Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.points); i++ {
		total += p.points[i-1].Manhattan(p.points[i])
	}
	return total
}

// Advance moves the head by distance. A perpendicular d starts a new segment
// at the head first; same or reversed directions keep the current heading.
// It reports whether a turn happened.
func (p *Path) Advance(d geom.Direction, distance float64) bool {
	turned := false
	if p.heading.Perpendicular(d) {
		p.points = append(p.points, p.Head())
		p.heading = d
		turned = true
	}
	i := len(p.points) - 1
	p.points[i] = p.heading.Step(p.points[i], distance)
	return turned
}

// TrimTail removes amount of length from the tail end. amount must be
// strictly below Length(); anything else is a broken caller and panics.
func (p *Path) TrimTail(amount float64) {
	if total := p.Length(); amount >= total {
		panic(errors.Errorf("snek: trim %.4f reaches path length %.4f", amount, total))
	}
	for {
		if len(p.points) < 2 {
			panic(errors.Errorf("snek: path collapsed to %d points", len(p.points)))
		}
		d := p.points[0].Manhattan(p.points[1])
		if d <= amount && len(p.points) > 2 {
			p.points = slices.Delete(p.points, 0, 1)
			amount -= d
			continue
		}
		p.points[0] = toward(p.points[0], p.points[1], amount)
		return
	}
}

// ShortenByFraction trims f of the current length from the tail.
func (p *Path) ShortenByFraction(f float64) {
	p.TrimTail(p.Length() * f)
}

// toward moves a along the axis of segment a-b by amount.
func toward(a, b geom.Point, amount float64) geom.Point {
	if a.X == b.X {
		if a.Y < b.Y {
			a.Y += amount
		} else {
			a.Y -= amount
		}
		return a
	}
	if a.X < b.X {
		a.X += amount
	} else {
		a.X -= amount
	}
	return a
}
