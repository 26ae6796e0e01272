package snek

import (
	"math"
	"math/rand"

	"snek/internal/engine"
	"snek/internal/geom"
)

// Boundary is the playable arena. It only ever grows.
type Boundary struct {
	rect         geom.Rect
	canvasWidth  float64
	canvasHeight float64
}

func NewBoundary(rect geom.Rect, canvasWidth, canvasHeight float64) *Boundary {
	return &Boundary{rect: rect, canvasWidth: canvasWidth, canvasHeight: canvasHeight}
}

func (b *Boundary) Rect() geom.Rect { return b.rect }

// Safe is the interior a head probe must stay strictly inside.
func (b *Boundary) Safe() geom.Rect { return b.rect.Inset(BoundaryInset) }

// Expand pushes every side out by ExpandStep, keeping the arena inside the
// canvas minus CanvasMargin.
func (b *Boundary) Expand() {
	r := b.rect
	b.rect = geom.Rect{
		X:      math.Max(r.X-ExpandStep, CanvasMargin/2),
		Y:      math.Max(r.Y-ExpandStep, CanvasMargin/2),
		Width:  math.Min(r.Width+2*ExpandStep, b.canvasWidth-CanvasMargin),
		Height: math.Min(r.Height+2*ExpandStep, b.canvasHeight-CanvasMargin),
	}
}

// RandomPoint samples uniformly inside the arena shrunk by SpawnMargin.
func (b *Boundary) RandomPoint(rng *rand.Rand) geom.Point {
	r := b.rect.Inset(SpawnMargin)
	return geom.Point{
		X: r.X + r.Width*rng.Float64(),
		Y: r.Y + r.Height*rng.Float64(),
	}
}

func (b *Boundary) Draw(r engine.Renderer) {
	r.Rect(b.rect, ColorBlack, ColorRed, StrokeWidth)
}

// Exit ends the game with a win when the player's head reaches it.
type Exit struct {
	rect geom.Rect
}

func NewExit(rect geom.Rect) *Exit { return &Exit{rect: rect} }

func (e *Exit) Rect() geom.Rect { return e.rect }

func (e *Exit) Contains(p geom.Point) bool { return e.rect.Contains(p) }

// Draw renders the exit as a white bar labelled vertically.
func (e *Exit) Draw(r engine.Renderer) {
	r.Rect(e.rect, ColorWhite, nil, 0)
	step := e.rect.Height / 4
	for i, ch := range []string{"E", "X", "I", "T"} {
		r.Text(ch, ColorBlack, 16, e.rect.X+3, e.rect.Y+float64(i)*step+step*0.75)
	}
}
