package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snek/internal/snek"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{KeyMode, KeyTickRate, KeyTrimFactor, KeySeed, KeyLogLevel, KeyLogFile, KeyWindowScale} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	sc := cfg.Snek()
	assert.Equal(t, snek.Extended, sc.Mode)
	assert.InDelta(t, 1.0/30, sc.TickLength, 1e-12)
	assert.Equal(t, 0.95, sc.TrimFactor)
	assert.NoError(t, sc.Validate())
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyMode, "Minimal")
	t.Setenv(KeyTickRate, "60")
	t.Setenv(KeyTrimFactor, "0.5")
	t.Setenv(KeySeed, "7")
	t.Setenv(KeyLogLevel, "debug")
	t.Setenv(KeyLogFile, "/tmp/x.log")
	t.Setenv(KeyWindowScale, "1.5")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, snek.Minimal, cfg.Mode)
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, 0.5, cfg.TrimFactor)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "/tmp/x.log", cfg.LogFile)
	assert.Equal(t, 1.5, cfg.WindowScale)
	assert.Equal(t, cfg.Rand().Int63(), cfg.Rand().Int63())
}

func TestInvalidValuesNameTheKey(t *testing.T) {
	cases := map[string]string{
		KeyMode:        "huge",
		KeyTickRate:    "fast",
		KeyTrimFactor:  "1",
		KeySeed:        "x",
		KeyLogLevel:    "loud",
		KeyWindowScale: "-2",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(KeyMode)
	os.Unsetenv(KeyTickRate)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SNEK_MODE=minimal\nSNEK_TICK_RATE=20\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv(KeyMode)
		os.Unsetenv(KeyTickRate)
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, snek.Minimal, cfg.Mode)
	assert.Equal(t, 20, cfg.TickRate)
}

func TestEnvironmentWinsOverDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(KeyMode)
	t.Setenv(KeyTickRate, "45")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SNEK_TICK_RATE=20\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 45, cfg.TickRate)
}

func TestMissingDotEnvIsFine(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TickRate)
}
