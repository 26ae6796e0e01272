// Package engine defines what the simulation expects from its host: a
// held-key snapshot, a set of draw primitives and a fixed-timestep driver.
package engine

import (
	"image/color"

	"snek/internal/geom"
)

// KeyState is a snapshot of which direction keys are currently held.
type KeyState struct {
	Up, Down, Left, Right bool
}

// Direction returns the held direction, resolving conflicts in the order
// Up > Down > Left > Right.
func (k KeyState) Direction() (geom.Direction, bool) {
	switch {
	case k.Up:
		return geom.Up, true
	case k.Down:
		return geom.Down, true
	case k.Left:
		return geom.Left, true
	case k.Right:
		return geom.Right, true
	}
	return 0, false
}

// Renderer draws primitives in canvas coordinates. A nil color skips that
// part of the shape.
type Renderer interface {
	Clear()
	Rect(r geom.Rect, fill, stroke color.Color, lineWidth float64)
	Path(points []geom.Point, stroke color.Color, lineWidth float64)
	Circle(center geom.Point, radius float64, fill color.Color)
	Text(s string, clr color.Color, size, x, y float64)
}

// Game is stepped by Loop.
type Game interface {
	Update(keys KeyState)
	Draw(r Renderer)
}
