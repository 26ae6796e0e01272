// Command snek-term plays snek in a terminal.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"snek/internal/config"
	"snek/internal/snek"
	"snek/internal/term"
)

// frameInterval paces redraws at roughly 60 FPS; ticks are paced by the
// configured tick rate.
const frameInterval = 16 * time.Millisecond

func run(cfg config.Config) error {
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "open log file")
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()
	screen.HideCursor()

	games := 0
	newGame := func() *snek.Game {
		g := snek.NewGame(cfg.Snek(), cfg.Rand())
		snek.LogEvents(g.Events(), log.WithField("game", games))
		games++
		return g
	}
	session := term.NewSession(screen, newGame, cfg.Tick(), time.Now())

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if ev == nil {
				return nil
			}
			if !session.HandleEvent(ev, time.Now()) {
				log.Info("quit")
				return nil
			}

		case now := <-ticker.C:
			session.Frame(now)
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})
	log.SetLevel(cfg.LogLevel)

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
