// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"snek/internal/snek"
)

const (
	KeyMode        = "SNEK_MODE"
	KeyTickRate    = "SNEK_TICK_RATE"
	KeyTrimFactor  = "SNEK_TRIM_FACTOR"
	KeySeed        = "SNEK_SEED"
	KeyLogLevel    = "SNEK_LOG_LEVEL"
	KeyLogFile     = "SNEK_LOG_FILE"
	KeyWindowScale = "SNEK_WINDOW_SCALE"
)

type Config struct {
	Mode        snek.Mode
	TickRate    int
	TrimFactor  float64
	Seed        int64 // 0 seeds from the clock
	LogLevel    log.Level
	LogFile     string
	WindowScale float64
}

func Default() Config {
	return Config{
		Mode:        snek.Extended,
		TickRate:    30,
		TrimFactor:  snek.DefaultTrim,
		LogLevel:    log.InfoLevel,
		LogFile:     "snek.log",
		WindowScale: 1,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment and then parses the SNEK_* keys over the defaults.
// Variables already set in the environment win over the files. A missing
// file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.WithError(err).Warn("no .env file found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv parses the SNEK_* keys over the defaults.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if v, ok := lookup(KeyMode); ok {
		if cfg.Mode, err = snek.ParseMode(v); err != nil {
			return cfg, errors.Wrap(err, KeyMode)
		}
	}
	if v, ok := lookup(KeyTickRate); ok {
		if cfg.TickRate, err = strconv.Atoi(v); err != nil {
			return cfg, errors.Wrap(err, KeyTickRate)
		}
	}
	if v, ok := lookup(KeyTrimFactor); ok {
		if cfg.TrimFactor, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, errors.Wrap(err, KeyTrimFactor)
		}
	}
	if v, ok := lookup(KeySeed); ok {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return cfg, errors.Wrap(err, KeySeed)
		}
	}
	if v, ok := lookup(KeyLogLevel); ok {
		if cfg.LogLevel, err = log.ParseLevel(v); err != nil {
			return cfg, errors.Wrap(err, KeyLogLevel)
		}
	}
	if v, ok := lookup(KeyLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(KeyWindowScale); ok {
		if cfg.WindowScale, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, errors.Wrap(err, KeyWindowScale)
		}
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return errors.Errorf("%s: tick rate must be positive, got %d", KeyTickRate, c.TickRate)
	}
	if c.TrimFactor <= 0 || c.TrimFactor >= 1 {
		return errors.Errorf("%s: trim factor must be in (0, 1), got %v", KeyTrimFactor, c.TrimFactor)
	}
	if c.WindowScale <= 0 {
		return errors.Errorf("%s: window scale must be positive, got %v", KeyWindowScale, c.WindowScale)
	}
	return nil
}

// Snek derives the simulation settings.
func (c Config) Snek() snek.Config {
	sc := snek.DefaultConfig()
	sc.Mode = c.Mode
	sc.TickLength = 1 / float64(c.TickRate)
	sc.TrimFactor = c.TrimFactor
	return sc
}

func (c Config) Tick() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Rand returns the random source for a game. Every call with a fixed seed
// replays the same sequence.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
