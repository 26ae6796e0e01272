package snek

import (
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snek/internal/geom"
)

func TestEventBusDispatchesByType(t *testing.T) {
	eb := NewEventBus()
	var started, all []Event
	eb.Subscribe(EventStarted, func(e Event) { started = append(started, e) })
	eb.SubscribeAll(func(e Event) { all = append(all, e) })

	eb.Emit(Event{Type: EventStarted})
	eb.Emit(Event{Type: EventPillSpawned})

	assert.Len(t, started, 1)
	assert.Len(t, all, 2)
}

func TestGameEmitsEvents(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnRate = 0
	g := NewGame(cfg, rand.New(rand.NewSource(8)))

	var seen []EventType
	g.Events().SubscribeAll(func(e Event) { seen = append(seen, e.Type) })

	g.Update(up)
	g.pills = []Pill{{Kind: SpawnEnemySnek, Position: g.Player().Head()}}
	g.Update(right)

	assert.Equal(t, []EventType{
		EventStarted,
		EventEnemySpawned,
		EventPillConsumed,
		EventDirectionChanged,
	}, seen)
}

func TestLogEvents(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	eb := NewEventBus()
	LogEvents(eb, logger)

	eb.Emit(Event{Type: EventPillConsumed, Frame: 12, X: 1, Y: 2, Data: int(ShortenSnek)})
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "pill_consumed", entry.Data["event"])
	assert.Equal(t, "shorten_snek", entry.Data["pill"])
	assert.Equal(t, uint64(12), entry.Data["frame"])

	eb.Emit(Event{Type: EventDirectionChanged, Data: int(geom.Left)})
	entry = hook.LastEntry()
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "left", entry.Data["direction"])

	eb.Emit(Event{Type: EventGameOver, Data: 1})
	assert.Equal(t, true, hook.LastEntry().Data["won"])
	assert.Len(t, hook.AllEntries(), 3)
}
