package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"snek/internal/engine"
	"snek/internal/geom"
)

// DefaultHold is how long a key counts as held after its last press.
const DefaultHold = 150 * time.Millisecond

// Keys turns terminal key presses into held-key state. Terminals report
// presses and repeats but no releases, so a direction stays held for a
// short window after its last press. A new direction replaces the old one.
type Keys struct {
	hold    time.Duration
	dir     geom.Direction
	pressed time.Time
	any     bool
}

func NewKeys(hold time.Duration) *Keys {
	return &Keys{hold: hold}
}

// Press records ev and reports whether it was a direction key.
func (k *Keys) Press(ev *tcell.EventKey, now time.Time) bool {
	d, ok := direction(ev)
	if !ok {
		return false
	}
	k.dir = d
	k.pressed = now
	k.any = true
	return true
}

func (k *Keys) State(now time.Time) engine.KeyState {
	var ks engine.KeyState
	if !k.any || now.Sub(k.pressed) > k.hold {
		return ks
	}
	switch k.dir {
	case geom.Up:
		ks.Up = true
	case geom.Down:
		ks.Down = true
	case geom.Left:
		ks.Left = true
	case geom.Right:
		ks.Right = true
	}
	return ks
}

func (k *Keys) Reset() {
	k.any = false
}

func direction(ev *tcell.EventKey) (geom.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return geom.Up, true
	case tcell.KeyDown:
		return geom.Down, true
	case tcell.KeyLeft:
		return geom.Left, true
	case tcell.KeyRight:
		return geom.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return geom.Up, true
		case 's', 'S':
			return geom.Down, true
		case 'a', 'A':
			return geom.Left, true
		case 'd', 'D':
			return geom.Right, true
		}
	}
	return 0, false
}
