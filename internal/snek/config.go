package snek

import (
	"image/color"
	"strings"

	"github.com/pkg/errors"

	"snek/internal/geom"
)

// Canvas dimensions, shared by the boundary clamp and the frontends.
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)

// Collision geometry. The body is drawn as a 10 unit wide stroke, so every
// test thickens lines and points by half of that.
const (
	StrokeWidth      = 10.0
	ProbeHalfWidth   = 5.0
	SegmentHalfWidth = 5.0
	BoundaryInset    = 5.0
	PillRadius       = 5.0
)

// Arena.
const (
	ExpandStep   = 5.0
	CanvasMargin = 10.0
	SpawnMargin  = 10.0
)

// Actors.
const (
	StartLength   = 20.0
	TurnEvery     = 50
	SpeedBoost    = 5.0
	ShortenBy     = 0.1
	DefaultTrim   = 0.95
	PlayerSpeed   = 60.0
	EnemySpeed    = 40.0
	PillSpawnRate = 0.0001
)

var (
	ColorWhite  = color.RGBA{255, 255, 255, 255}
	ColorBlack  = color.RGBA{0, 0, 0, 255}
	ColorRed    = color.RGBA{255, 0, 0, 255}
	ColorYellow = color.RGBA{255, 255, 0, 255}
	ColorBlue   = color.RGBA{0, 0, 255, 255}
	ColorGreen  = color.RGBA{0, 200, 0, 255}
)

// Mode selects which pills can spawn and whether the exit exists.
type Mode int

const (
	Minimal Mode = iota
	Extended
)

func (m Mode) String() string {
	if m == Minimal {
		return "minimal"
	}
	return "extended"
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimal":
		return Minimal, nil
	case "extended", "":
		return Extended, nil
	}
	return 0, errors.Errorf("unknown game mode %q", s)
}

// PillKinds lists the kinds a mode spawns, in a fixed order.
func (m Mode) PillKinds() []PillKind {
	if m == Minimal {
		return []PillKind{ExpandBoundary, ShortenSnek}
	}
	return []PillKind{ExpandBoundary, ShortenSnek, SpawnEnemySnek, IncreaseSpeed}
}

// Config carries the tuning of one game.
type Config struct {
	Mode       Mode
	TickLength float64 // seconds per tick
	TrimFactor float64 // tail trim per unit moved; below 1 the body grows slowly

	PlayerStart  geom.Point
	PlayerSpeed  float64
	EnemySpeed   float64
	SpeedBoost   float64
	ShortenBy    float64
	TurnEvery    int
	SpawnRate    float64
	Arena        geom.Rect
	ExitRect     geom.Rect
	CanvasWidth  float64
	CanvasHeight float64
}

func DefaultConfig() Config {
	return Config{
		Mode:         Extended,
		TickLength:   1.0 / 30,
		TrimFactor:   DefaultTrim,
		PlayerStart:  geom.Point{X: 400, Y: 300},
		PlayerSpeed:  PlayerSpeed,
		EnemySpeed:   EnemySpeed,
		SpeedBoost:   SpeedBoost,
		ShortenBy:    ShortenBy,
		TurnEvery:    TurnEvery,
		SpawnRate:    PillSpawnRate,
		Arena:        geom.NewRect(300, 200, 200, 200),
		ExitRect:     geom.NewRect(780, 260, 20, 80),
		CanvasWidth:  CanvasWidth,
		CanvasHeight: CanvasHeight,
	}
}

func (c Config) Validate() error {
	switch {
	case c.TickLength <= 0:
		return errors.Errorf("tick length must be positive, got %v", c.TickLength)
	case c.TrimFactor <= 0 || c.TrimFactor >= 1:
		return errors.Errorf("trim factor must be in (0,1), got %v", c.TrimFactor)
	case c.ShortenBy < 0 || c.ShortenBy >= 1:
		return errors.Errorf("shorten fraction must be in [0,1), got %v", c.ShortenBy)
	case c.TurnEvery <= 0:
		return errors.Errorf("turn interval must be positive, got %d", c.TurnEvery)
	case c.PlayerSpeed <= 0 || c.EnemySpeed <= 0:
		return errors.New("speeds must be positive")
	case c.Arena.Width <= 2*SpawnMargin || c.Arena.Height <= 2*SpawnMargin:
		return errors.Errorf("arena %+v too small", c.Arena)
	}
	return nil
}
