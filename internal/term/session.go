package term

import (
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"snek/internal/engine"
	"snek/internal/snek"
)

// Session runs games on a tcell screen. The caller feeds it events and
// frame ticks from a single goroutine.
type Session struct {
	screen   tcell.Screen
	newGame  func() *snek.Game
	game     *snek.Game
	loop     *engine.Loop
	keys     *Keys
	renderer *Renderer
	last     time.Time
}

func NewSession(screen tcell.Screen, newGame func() *snek.Game, tick time.Duration, now time.Time) *Session {
	g := newGame()
	return &Session{
		screen:   screen,
		newGame:  newGame,
		game:     g,
		loop:     engine.NewLoop(g, tick),
		keys:     NewKeys(DefaultHold),
		renderer: NewRenderer(screen, snek.CanvasWidth, snek.CanvasHeight),
		last:     now,
	}
}

func (s *Session) Game() *snek.Game { return s.game }

// HandleEvent applies ev and reports whether the session should keep
// running.
func (s *Session) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}
		if s.game.Over() && (ev.Key() == tcell.KeyEnter ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'))) {
			s.restart()
			return true
		}
		s.keys.Press(ev, now)
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func (s *Session) restart() {
	log.Info("restarting")
	s.game = s.newGame()
	s.loop.Reset(s.game)
	s.keys.Reset()
}

// Frame runs the ticks due since the previous frame, draws and shows the
// result. It returns the number of ticks run.
func (s *Session) Frame(now time.Time) int {
	elapsed := now.Sub(s.last)
	s.last = now
	n := s.loop.Frame(elapsed, func() engine.KeyState { return s.keys.State(now) }, s.renderer)
	s.screen.Show()
	return n
}
