package events

import (
	"log"
	"time"

	"github.com/TaZMaN-tech/TodoApp/domain/task"
	"github.com/go-monolith/mono"
)

// Broadcaster is the narrow port the orchestrators publish through.
// Keeping the port this small lets presenter tests run without a
// broker behind them.
type Broadcaster interface {
	TaskListChanged()
	TaskUpdated(e task.Entity)
}

// BusBroadcaster publishes the signals on the mono event bus.
// Publishing is best-effort: a failed publish is logged and never
// fails the operation that triggered it.
type BusBroadcaster struct {
	bus mono.EventBus
}

// NewBusBroadcaster wraps an event bus. A nil bus yields a broadcaster
// that silently drops signals, matching modules that start without one.
func NewBusBroadcaster(bus mono.EventBus) *BusBroadcaster {
	return &BusBroadcaster{bus: bus}
}

// TaskListChanged implements Broadcaster.
func (b *BusBroadcaster) TaskListChanged() {
	if b.bus == nil {
		return
	}
	ev := TaskListChangedEvent{OccurredAt: time.Now()}
	if err := TaskListChangedV1.Publish(b.bus, ev, nil); err != nil {
		log.Printf("[events] Warning: failed to publish TaskListChanged: %v", err)
	}
}

// TaskUpdated implements Broadcaster.
func (b *BusBroadcaster) TaskUpdated(e task.Entity) {
	if b.bus == nil {
		return
	}
	if err := TaskUpdatedV1.Publish(b.bus, NewTaskUpdatedEvent(e), nil); err != nil {
		log.Printf("[events] Warning: failed to publish TaskUpdated for task %d: %v", e.ID, err)
	}
}
