package snek

import (
	"github.com/sirupsen/logrus"

	"snek/internal/geom"
)

type EventType int

const (
	EventStarted EventType = iota
	EventDirectionChanged
	EventPillSpawned
	EventPillConsumed
	EventEnemySpawned
	EventEnemyDied
	EventGameOver
)

var eventNames = map[EventType]string{
	EventStarted:          "started",
	EventDirectionChanged: "direction_changed",
	EventPillSpawned:      "pill_spawned",
	EventPillConsumed:     "pill_consumed",
	EventEnemySpawned:     "enemy_spawned",
	EventEnemyDied:        "enemy_died",
	EventGameOver:         "game_over",
}

func (t EventType) String() string { return eventNames[t] }

// Event is emitted by Game as it ticks. Data depends on Type: the pill kind
// for pill events, the enemy index for enemy events, the new direction for
// direction changes and 1 for a won game.
type Event struct {
	Type  EventType
	Frame uint64
	X, Y  float64
	Data  int
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := range eventNames {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

// LogEvents writes every event to logger. Movement noise goes to debug,
// everything else to info.
func LogEvents(eb *EventBus, logger logrus.FieldLogger) {
	eb.SubscribeAll(func(e Event) {
		entry := logger.WithFields(logrus.Fields{
			"event": e.Type.String(),
			"frame": e.Frame,
			"x":     e.X,
			"y":     e.Y,
		})
		switch e.Type {
		case EventPillSpawned, EventPillConsumed:
			entry = entry.WithField("pill", PillKind(e.Data).String())
		case EventEnemySpawned, EventEnemyDied:
			entry = entry.WithField("enemy", e.Data)
		case EventGameOver:
			entry = entry.WithField("won", e.Data == 1)
		case EventDirectionChanged:
			entry = entry.WithField("direction", geom.Direction(e.Data).String())
		}
		if e.Type == EventDirectionChanged {
			entry.Debug("snek turned")
			return
		}
		entry.Info("snek event")
	})
}
