// Package task holds the pure domain types for the todo list: the
// authoritative task entity, its presentation projection and the
// identifier generator. Nothing in this package touches storage,
// transport or the framework.
package task

import (
	"strings"
	"time"
)

// Entity is the authoritative domain record for a task. Values are
// treated as immutable: mutations go through the repository, which
// returns a fresh Entity.
type Entity struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedDate time.Time `json:"created_date"`
	IsCompleted bool      `json:"is_completed"`
}

// Equal reports whether two entities refer to the same task.
// Identity is the ID alone; title, description, date and completion
// are not part of it.
func (e Entity) Equal(other Entity) bool {
	return e.ID == other.ID
}

// HasDescription reports whether the task carries a description.
// An empty string means "absent".
func (e Entity) HasDescription() bool {
	return e.Description != ""
}

// NormalizeDescription trims a raw description and collapses
// whitespace-only input to the absent value. Applied at the edit
// boundary before an entity is built, never inside the store.
func NormalizeDescription(raw string) string {
	return strings.TrimSpace(raw)
}
