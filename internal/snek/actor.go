package snek

import (
	"image/color"
	"math/rand"

	"snek/internal/engine"
	"snek/internal/geom"
)

// Snek is an actor: a path plus speed and color.
type Snek struct {
	color color.Color
	speed float64 // units per second
	path  *Path
}

// NewSnek places a snek whose head is at position, with a short tail behind
// it.
func NewSnek(clr color.Color, speed float64, position geom.Point, d geom.Direction) *Snek {
	return &Snek{color: clr, speed: speed, path: NewPath(position, d, StartLength)}
}

func (s *Snek) Path() *Path { return s.path }
func (s *Snek) Head() geom.Point { return s.path.Head() }
func (s *Snek) Direction() geom.Direction { return s.path.Heading() }
func (s *Snek) Speed() float64 { return s.speed }
func (s *Snek) Color() color.Color { return s.color }

// Move advances the head one tick towards d, then trims the tail by trim
// times the distance moved. It reports whether the snek turned.
func (s *Snek) Move(d geom.Direction, tick, trim float64) bool {
	distance := s.speed * tick
	turned := s.path.Advance(d, distance)
	s.path.TrimTail(distance * trim)
	return turned
}

func (s *Snek) Shorten(fraction float64) {
	s.path.ShortenByFraction(fraction)
}

func (s *Snek) IncreaseSpeed(amount float64) {
	s.speed += amount
}

func (s *Snek) Draw(r engine.Renderer) {
	r.Path(s.path.Points(), s.color, StrokeWidth)
}

// AiSnek wanders the arena, turning at a fixed interval. Once dead it stays
// where it is as an obstacle.
type AiSnek struct {
	Snek
	alive     bool
	sinceTurn int
}

func NewAiSnek(clr color.Color, speed float64, position geom.Point, d geom.Direction) *AiSnek {
	return &AiSnek{Snek: *NewSnek(clr, speed, position, d), alive: true}
}

func (a *AiSnek) Alive() bool { return a.alive }

func (a *AiSnek) Die() { a.alive = false }

// Update runs one tick of movement. Every turnEvery ticks the snek turns
// left or right of its heading with equal odds.
func (a *AiSnek) Update(rng *rand.Rand, turnEvery int, tick, trim float64) {
	if !a.alive {
		return
	}
	d := a.Direction()
	a.sinceTurn++
	if a.sinceTurn >= turnEvery {
		a.sinceTurn = 0
		d = randomTurn(rng, d)
	}
	a.Move(d, tick, trim)
}

func randomTurn(rng *rand.Rand, d geom.Direction) geom.Direction {
	heads := rng.Intn(2) == 0
	if d.Horizontal() {
		if heads {
			return geom.Up
		}
		return geom.Down
	}
	if heads {
		return geom.Left
	}
	return geom.Right
}
