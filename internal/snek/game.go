package snek

import (
	"math/rand"
	"time"

	"snek/internal/engine"
	"snek/internal/geom"
)

// Game owns all simulation state and advances it one tick per Update.
type Game struct {
	cfg    Config
	rng    *rand.Rand
	events *EventBus

	ready    bool
	gameOver bool
	win      bool
	frame    uint64

	spawner  *Spawner
	exit     *Exit
	snek     *Snek
	boundary *Boundary
	pills    []Pill
	enemies  []*AiSnek
}

// NewGame builds a game from cfg. A nil rng is seeded from the clock. cfg
// must pass Validate; NewGame panics otherwise.
func NewGame(cfg Config, rng *rand.Rand) *Game {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		cfg:      cfg,
		rng:      rng,
		events:   NewEventBus(),
		spawner:  NewSpawner(cfg.SpawnRate, cfg.Mode.PillKinds()),
		snek:     NewSnek(ColorWhite, cfg.PlayerSpeed, cfg.PlayerStart, geom.Up),
		boundary: NewBoundary(cfg.Arena, cfg.CanvasWidth, cfg.CanvasHeight),
	}
	if cfg.Mode == Extended {
		g.exit = NewExit(cfg.ExitRect)
	}
	return g
}

func (g *Game) Events() *EventBus { return g.events }
func (g *Game) Ready() bool { return g.ready }
func (g *Game) Over() bool { return g.gameOver }
func (g *Game) Won() bool { return g.win }
func (g *Game) Frame() uint64 { return g.frame }
func (g *Game) Player() *Snek { return g.snek }
func (g *Game) Boundary() *Boundary { return g.boundary }
func (g *Game) Exit() *Exit { return g.exit }
func (g *Game) Pills() []Pill { return g.pills }
func (g *Game) Enemies() []*AiSnek { return g.enemies }

// Update runs one tick: collisions first, then pill effects, movement and
// finally a possible pill spawn.
func (g *Game) Update(keys engine.KeyState) {
	if g.gameOver {
		return
	}

	// bookkeeping
	g.frame++
	g.spawner.Tick()
	dir, pressed := keys.Direction()
	if pressed && !g.ready {
		g.ready = true
		g.emit(EventStarted, g.snek.Head(), 0)
	}
	if !g.ready {
		return
	}

	// collisions
	if g.exit != nil && Collide(g.snek, ExitAt(g.exit)).Colliding {
		g.finish(true)
		return
	}
	if Collide(g.snek, Self()).Colliding || Collide(g.snek, Within(g.boundary)).Colliding {
		g.finish(false)
		return
	}
	for _, e := range g.enemies {
		if Collide(g.snek, Against(&e.Snek)).Colliding {
			g.finish(false)
			return
		}
	}
	g.killEnemies()

	if hit := Collide(g.snek, PillsAt(g.pills)); hit.Colliding {
		g.consume(hit.Index)
	}

	// movement
	if !pressed {
		dir = g.snek.Direction()
	}
	if g.snek.Move(dir, g.cfg.TickLength, g.cfg.TrimFactor) {
		g.emit(EventDirectionChanged, g.snek.Head(), int(dir))
	}
	for _, e := range g.enemies {
		e.Update(g.rng, g.cfg.TurnEvery, g.cfg.TickLength, g.cfg.TrimFactor)
	}

	if p, ok := g.spawner.Maybe(g.rng, g.boundary); ok {
		g.pills = append(g.pills, p)
		g.emit(EventPillSpawned, p.Position, int(p.Kind))
	}
}

// killEnemies marks every living enemy whose head hits itself, the player,
// the boundary or another enemy. All tests see the state before any of
// them die.
func (g *Game) killEnemies() {
	var dead []int
	for i, e := range g.enemies {
		if !e.Alive() {
			continue
		}
		s := &e.Snek
		if Collide(s, Self()).Colliding ||
			Collide(s, Against(g.snek)).Colliding ||
			Collide(s, Within(g.boundary)).Colliding {
			dead = append(dead, i)
			continue
		}
		for j, o := range g.enemies {
			if i != j && Collide(s, Against(&o.Snek)).Colliding {
				dead = append(dead, i)
				break
			}
		}
	}
	for _, i := range dead {
		g.enemies[i].Die()
		g.emit(EventEnemyDied, g.enemies[i].Head(), i)
	}
}

// consume applies the effect of pill i and removes it.
func (g *Game) consume(i int) {
	p := g.pills[i]
	switch p.Kind {
	case ExpandBoundary:
		g.boundary.Expand()
	case ShortenSnek:
		g.snek.Shorten(g.cfg.ShortenBy)
	case SpawnEnemySnek:
		e := NewAiSnek(ColorRed, g.cfg.EnemySpeed, g.boundary.RandomPoint(g.rng), geom.Up)
		g.enemies = append(g.enemies, e)
		g.emit(EventEnemySpawned, e.Head(), len(g.enemies)-1)
	case IncreaseSpeed:
		g.snek.IncreaseSpeed(g.cfg.SpeedBoost)
	}
	g.pills = append(g.pills[:i], g.pills[i+1:]...)
	g.emit(EventPillConsumed, p.Position, int(p.Kind))
}

func (g *Game) finish(won bool) {
	g.gameOver = true
	g.win = won
	data := 0
	if won {
		data = 1
	}
	g.emit(EventGameOver, g.snek.Head(), data)
}

func (g *Game) emit(t EventType, at geom.Point, data int) {
	g.events.Emit(Event{Type: t, Frame: g.frame, X: at.X, Y: at.Y, Data: data})
}

// Draw renders the arena, or the end screen once the game is over.
func (g *Game) Draw(r engine.Renderer) {
	r.Clear()
	r.Rect(geom.NewRect(0, 0, g.cfg.CanvasWidth, g.cfg.CanvasHeight), nil, ColorRed, 5)

	if g.gameOver {
		r.Text("GAME OVER", ColorRed, 30, 280, 320)
		if g.win {
			r.Text("you have won", ColorRed, 20, 320, 360)
		}
		return
	}

	g.boundary.Draw(r)
	if g.exit != nil {
		g.exit.Draw(r)
	}
	g.snek.Draw(r)
	for _, e := range g.enemies {
		e.Draw(r)
	}
	for _, p := range g.pills {
		p.Draw(r)
	}
}
