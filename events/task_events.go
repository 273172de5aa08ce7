// Package events defines the typed cross-module events that replace
// the mobile app's notification-center broadcasts. Delivery is
// fire-and-forget and at-most-once: whoever is alive and subscribed
// sees the signal, missed signals are not replayed.
package events

import (
	"time"

	"github.com/TaZMaN-tech/TodoApp/domain/task"
	"github.com/go-monolith/mono/pkg/helper"
)

// TaskListChangedEvent signals that the set of stored tasks changed
// and any live list screen should reload. It carries no task payload.
type TaskListChangedEvent struct {
	OccurredAt time.Time `json:"occurred_at"`
}

// TaskListChangedV1 is the typed event definition for list changes.
// Subject: events.task.v1.task-list-changed
var TaskListChangedV1 = helper.EventDefinition[TaskListChangedEvent](
	"task", "TaskListChanged", "v1",
)

// TaskUpdatedEvent carries the full post-update record so a screen
// currently displaying that task can refresh in place without a
// round trip to the store.
type TaskUpdatedEvent struct {
	TaskID      int64     `json:"task_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedDate time.Time `json:"created_date"`
	IsCompleted bool      `json:"is_completed"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskUpdatedV1 is the typed event definition for single-task updates.
// Subject: events.task.v1.task-updated
var TaskUpdatedV1 = helper.EventDefinition[TaskUpdatedEvent](
	"task", "TaskUpdated", "v1",
)

// NewTaskUpdatedEvent builds the event payload from an entity.
func NewTaskUpdatedEvent(e task.Entity) TaskUpdatedEvent {
	return TaskUpdatedEvent{
		TaskID:      e.ID,
		Title:       e.Title,
		Description: e.Description,
		CreatedDate: e.CreatedDate,
		IsCompleted: e.IsCompleted,
		UpdatedAt:   time.Now(),
	}
}

// Entity rebuilds the updated entity from the event payload.
func (ev TaskUpdatedEvent) Entity() task.Entity {
	return task.Entity{
		ID:          ev.TaskID,
		Title:       ev.Title,
		Description: ev.Description,
		CreatedDate: ev.CreatedDate,
		IsCompleted: ev.IsCompleted,
	}
}
