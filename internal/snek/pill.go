package snek

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"snek/internal/engine"
	"snek/internal/geom"
)

type PillKind int

const (
	ExpandBoundary PillKind = iota
	ShortenSnek
	SpawnEnemySnek
	IncreaseSpeed
)

func (k PillKind) String() string {
	switch k {
	case ExpandBoundary:
		return "expand_boundary"
	case ShortenSnek:
		return "shorten_snek"
	case SpawnEnemySnek:
		return "spawn_enemy_snek"
	case IncreaseSpeed:
		return "increase_speed"
	}
	panic(errors.Errorf("snek: invalid pill kind %d", int(k)))
}

func (k PillKind) Color() color.Color {
	switch k {
	case ExpandBoundary:
		return ColorYellow
	case ShortenSnek:
		return ColorBlue
	case SpawnEnemySnek:
		return ColorRed
	case IncreaseSpeed:
		return ColorGreen
	}
	panic(errors.Errorf("snek: invalid pill kind %d", int(k)))
}

// Pill is a collectible. It stays until the player eats it.
type Pill struct {
	Kind     PillKind
	Position geom.Point
}

// Contains tests p against the open disc of radius PillRadius.
func (p Pill) Contains(pt geom.Point) bool {
	dx, dy := p.Position.X-pt.X, p.Position.Y-pt.Y
	return dx*dx+dy*dy < PillRadius*PillRadius
}

func (p Pill) Draw(r engine.Renderer) {
	r.Circle(p.Position, PillRadius, p.Kind.Color())
}

// Spawner decides when pills appear. The chance of a spawn grows linearly
// with the ticks since the previous one.
type Spawner struct {
	rate  float64
	kinds []PillKind
	since uint64
}

func NewSpawner(rate float64, kinds []PillKind) *Spawner {
	return &Spawner{rate: rate, kinds: kinds}
}

func (s *Spawner) Tick() { s.since++ }

func (s *Spawner) Since() uint64 { return s.since }

// Chance is the spawn probability for the current tick.
func (s *Spawner) Chance() float64 {
	return math.Min(1, s.rate*float64(s.since))
}

// Maybe rolls for a spawn and, on success, returns a pill of a uniformly
// chosen kind somewhere inside the boundary and resets the counter.
func (s *Spawner) Maybe(rng *rand.Rand, b *Boundary) (Pill, bool) {
	if len(s.kinds) == 0 || rng.Float64() >= s.Chance() {
		return Pill{}, false
	}
	s.since = 0
	pos := b.RandomPoint(rng)
	return Pill{Kind: s.kinds[rng.Intn(len(s.kinds))], Position: pos}, true
}
