package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"snek/internal/config"
	"snek/internal/engine"
	"snek/internal/snek"
)

// fadeSeconds is how long the end screen takes to fade in.
const fadeSeconds = 0.6

type Game struct {
	cfg      config.Config
	sim      *snek.Game
	loop     *engine.Loop
	renderer *renderer
	last     time.Time
	games    int

	paused       bool
	isFullscreen bool    // Track maximized/full-screen state
	scaleFactor  float64 // For dynamic scaling

	fade      *gween.Tween
	fadeAlpha float32
}

func NewGame(cfg config.Config) *Game {
	g := &Game{
		cfg:         cfg,
		renderer:    newRenderer(),
		scaleFactor: 1.0,
	}
	g.reset()
	return g
}

// reset starts a fresh simulation and wires its events into the log.
func (g *Game) reset() {
	g.sim = snek.NewGame(g.cfg.Snek(), g.cfg.Rand())
	snek.LogEvents(g.sim.Events(), log.WithField("game", g.games))
	g.games++
	if g.loop == nil {
		g.loop = engine.NewLoop(g.sim, g.cfg.Tick())
	} else {
		g.loop.Reset(g.sim)
	}
	g.last = time.Now()
	g.paused = false
	g.fade = nil
	g.fadeAlpha = 0
}

func (g *Game) keys() engine.KeyState {
	return engine.KeyState{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

func (g *Game) Update() error {
	// Toggle full-screen/maximized with F key
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.isFullscreen = !g.isFullscreen
		if g.isFullscreen {
			ebiten.MaximizeWindow()
		} else {
			g.restoreWindow()
		}
	}

	// Exit full-screen/maximized with Esc key
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.isFullscreen {
		g.isFullscreen = false
		g.restoreWindow()
	}

	now := time.Now()
	elapsed := now.Sub(g.last)
	g.last = now

	if g.sim.Over() {
		g.updateFade()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			log.WithField("won", g.sim.Won()).Info("restarting")
			g.reset()
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	g.loop.Step(elapsed, g.keys)
	return nil
}

func (g *Game) restoreWindow() {
	ebiten.RestoreWindow()
	ebiten.SetWindowSize(int(snek.CanvasWidth*g.cfg.WindowScale), int(snek.CanvasHeight*g.cfg.WindowScale))
}

func (g *Game) updateFade() {
	if g.fade == nil {
		g.fade = gween.New(1, 0, fadeSeconds, ease.OutQuad)
		g.fadeAlpha = 1
	}
	curr, _ := g.fade.Update(1 / float32(ebiten.TPS()))
	g.fadeAlpha = curr
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.screen = screen
	g.renderer.scale = g.scaleFactor
	g.sim.Draw(g.renderer)

	if g.fadeAlpha > 0 {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		shade := color.NRGBA{A: uint8(g.fadeAlpha * 255)}
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), shade, false)
	}

	// HUD in top-left with padding
	lines := []string{"Controls: Arrow/WASD (Move), P (Pause), F (Maximize), Esc (Restore)"}
	switch {
	case g.sim.Over():
		lines = append(lines, "Press Enter/R to Retry")
	case g.paused:
		lines = append(lines, "Paused - Press P to Resume")
	case !g.sim.Ready():
		lines = append(lines, "Press a direction to start")
	default:
		lines = append(lines, fmt.Sprintf("Length: %.1f | Speed: %.0f | Enemies: %d",
			g.sim.Player().Path().Length(), g.sim.Player().Speed(), len(g.sim.Enemies())))
	}

	padding := 10.0 * g.scaleFactor
	lineHeight := 20.0 * g.scaleFactor
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(padding), int(padding+float64(i)*lineHeight))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// Update isFullscreen based on window state
	g.isFullscreen = ebiten.IsWindowMaximized()
	// Calculate scale factor
	scaleX := float64(outsideWidth) / snek.CanvasWidth
	scaleY := float64(outsideHeight) / snek.CanvasHeight
	g.scaleFactor = math.Min(scaleX, scaleY)
	return int(snek.CanvasWidth * g.scaleFactor), int(snek.CanvasHeight * g.scaleFactor)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(cfg.LogLevel)
	log.WithFields(log.Fields{"mode": cfg.Mode, "tick_rate": cfg.TickRate}).Info("starting")

	ebiten.SetWindowSize(int(snek.CanvasWidth*cfg.WindowScale), int(snek.CanvasHeight*cfg.WindowScale))
	ebiten.SetWindowTitle("Snek")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(NewGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
