package snek

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snek/internal/geom"
)

func snekWith(p *Path) *Snek {
	return &Snek{color: ColorWhite, speed: PlayerSpeed, path: p}
}

func TestStraightPathNeverSelfCollides(t *testing.T) {
	for _, length := range []float64{1, 20, 100, 1000} {
		for _, d := range []geom.Direction{geom.Up, geom.Down, geom.Left, geom.Right} {
			s := snekWith(NewPath(geom.Point{X: 400, Y: 300}, d, length))
			for i := 0; i < 30; i++ {
				s.Move(d, 1.0/30, DefaultTrim)
			}
			assert.False(t, Collide(s, Self()).Colliding, "length %v heading %s", length, d)
		}
	}
}

func TestFreshTurnDoesNotSelfCollide(t *testing.T) {
	s := snekWith(NewPath(geom.Point{X: 400, Y: 300}, geom.Up, 20))
	s.Move(geom.Right, 1.0/30, DefaultTrim)
	assert.Len(t, s.Path().Points(), 3)
	assert.False(t, Collide(s, Self()).Colliding)
}

func TestTightLoopSelfCollides(t *testing.T) {
	s := snekWith(pathOf(geom.Left,
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 0, Y: -50},
		geom.Point{X: 20, Y: -50},
		geom.Point{X: 20, Y: -20},
		geom.Point{X: 2, Y: -20},
	))
	assert.True(t, Collide(s, Self()).Colliding)
}

func TestWideLoopDoesNotSelfCollide(t *testing.T) {
	s := snekWith(pathOf(geom.Left,
		geom.Point{X: -20, Y: 0},
		geom.Point{X: -20, Y: -50},
		geom.Point{X: 20, Y: -50},
		geom.Point{X: 20, Y: -20},
		geom.Point{X: 2, Y: -20},
	))
	assert.False(t, Collide(s, Self()).Colliding)
}

func TestLoopBuiltByTurning(t *testing.T) {
	s := NewSnek(ColorWhite, 30, geom.Point{X: 400, Y: 300}, geom.Up)
	tick := 1.0 / 30
	steer := func(d geom.Direction, ticks int) bool {
		for i := 0; i < ticks; i++ {
			s.Move(d, tick, 0.1)
			if Collide(s, Self()).Colliding {
				return true
			}
		}
		return false
	}
	// up 40, right 20, down 20, then left back across the first leg
	assert.False(t, steer(geom.Up, 40))
	assert.False(t, steer(geom.Right, 20))
	assert.False(t, steer(geom.Down, 20))
	assert.True(t, steer(geom.Left, 30))
}

func TestActorCollision(t *testing.T) {
	player := NewSnek(ColorWhite, PlayerSpeed, geom.Point{X: 400, Y: 300}, geom.Up)

	crossing := NewSnek(ColorRed, EnemySpeed, geom.Point{X: 390, Y: 296}, geom.Left)
	assert.True(t, Collide(player, Against(crossing)).Colliding)

	far := NewSnek(ColorRed, EnemySpeed, geom.Point{X: 100, Y: 100}, geom.Left)
	assert.False(t, Collide(player, Against(far)).Colliding)

	// no exclusion window against another actor, even at its head
	touching := NewSnek(ColorRed, EnemySpeed, geom.Point{X: 403, Y: 305}, geom.Down)
	assert.True(t, Collide(player, Against(touching)).Colliding)
}

func TestBoundaryCollision(t *testing.T) {
	b := NewBoundary(geom.NewRect(300, 200, 200, 200), CanvasWidth, CanvasHeight)

	inside := NewSnek(ColorWhite, PlayerSpeed, geom.Point{X: 400, Y: 300}, geom.Up)
	assert.False(t, Collide(inside, Within(b)).Colliding)

	// probes more than 5 units from every edge
	near := NewSnek(ColorWhite, PlayerSpeed, geom.Point{X: 400, Y: 211}, geom.Up)
	assert.False(t, Collide(near, Within(b)).Colliding)

	onInset := NewSnek(ColorWhite, PlayerSpeed, geom.Point{X: 400, Y: 205}, geom.Up)
	assert.True(t, Collide(onInset, Within(b)).Colliding)

	// vertical travel: the probes sit 5 units to the sides of the head
	probeOnEdge := NewSnek(ColorWhite, PlayerSpeed, geom.Point{X: 310, Y: 300}, geom.Up)
	assert.True(t, Collide(probeOnEdge, Within(b)).Colliding)

	outside := NewSnek(ColorWhite, PlayerSpeed, geom.Point{X: 100, Y: 100}, geom.Up)
	assert.True(t, Collide(outside, Within(b)).Colliding)
}

func TestPillCollisionFirstMatchWins(t *testing.T) {
	s := NewSnek(ColorWhite, PlayerSpeed, geom.Point{X: 400, Y: 300}, geom.Up)

	pills := []Pill{
		{Kind: IncreaseSpeed, Position: geom.Point{X: 100, Y: 100}},
		{Kind: ShortenSnek, Position: geom.Point{X: 403, Y: 300}},
		{Kind: ExpandBoundary, Position: geom.Point{X: 400, Y: 300}},
	}
	hit := Collide(s, PillsAt(pills))
	assert.True(t, hit.Colliding)
	assert.Equal(t, 1, hit.Index, "list order, not distance")

	probeOnly := []Pill{{Kind: ShortenSnek, Position: geom.Point{X: 408, Y: 300}}}
	assert.Equal(t, Hit{Colliding: true, Index: 0}, Collide(s, PillsAt(probeOnly)))

	none := []Pill{{Kind: ShortenSnek, Position: geom.Point{X: 420, Y: 300}}}
	assert.Equal(t, Hit{Index: -1}, Collide(s, PillsAt(none)))
	assert.Equal(t, Hit{Index: -1}, Collide(s, PillsAt(nil)))
}

func TestExitCollision(t *testing.T) {
	exit := NewExit(geom.NewRect(780, 260, 20, 80))
	in := NewSnek(ColorWhite, PlayerSpeed, geom.Point{X: 785, Y: 300}, geom.Right)
	assert.True(t, Collide(in, ExitAt(exit)).Colliding)

	out := NewSnek(ColorWhite, PlayerSpeed, geom.Point{X: 770, Y: 300}, geom.Right)
	assert.False(t, Collide(out, ExitAt(exit)).Colliding)
}

func TestUnknownTargetPanics(t *testing.T) {
	s := NewSnek(ColorWhite, PlayerSpeed, geom.Point{X: 400, Y: 300}, geom.Up)
	assert.Panics(t, func() { Collide(s, Target{Kind: TargetKind(42)}) })
}
