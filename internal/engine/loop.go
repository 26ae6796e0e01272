package engine

import "time"

// Loop decouples simulation speed from the host frame rate. The host calls
// Frame once per animation callback with the real time elapsed since the
// previous one; Loop runs as many fixed ticks as have accumulated and then
// draws exactly once.
type Loop struct {
	game        Game
	tick        time.Duration
	accumulated time.Duration
	ticks       uint64
}

func NewLoop(game Game, tick time.Duration) *Loop {
	if tick <= 0 {
		panic("engine: tick length must be positive")
	}
	return &Loop{game: game, tick: tick}
}

// TickRate converts ticks per second into a tick length.
func TickRate(perSecond int) time.Duration {
	return time.Second / time.Duration(perSecond)
}

// Step accumulates elapsed time and runs the pending ticks in order. keys is
// sampled once per tick. It returns how many ticks ran.
func (l *Loop) Step(elapsed time.Duration, keys func() KeyState) int {
	if elapsed > 0 {
		l.accumulated += elapsed
	}
	n := 0
	for l.accumulated >= l.tick {
		l.game.Update(keys())
		l.accumulated -= l.tick
		n++
	}
	l.ticks += uint64(n)
	return n
}

// Frame is Step followed by a single draw.
func (l *Loop) Frame(elapsed time.Duration, keys func() KeyState, r Renderer) int {
	n := l.Step(elapsed, keys)
	l.game.Draw(r)
	return n
}

// Reset swaps in a new game and drops any pending time.
func (l *Loop) Reset(game Game) {
	l.game = game
	l.accumulated = 0
}

func (l *Loop) Ticks() uint64 { return l.ticks }
func (l *Loop) Tick() time.Duration { return l.tick }
func (l *Loop) Pending() time.Duration { return l.accumulated }
