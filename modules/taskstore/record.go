package taskstore

import (
	"time"

	"github.com/TaZMaN-tech/TodoApp/domain/task"
)

// Record is the persisted shape of a task. The description is nullable
// so "absent" survives round trips instead of collapsing into an
// empty string at the storage layer.
type Record struct {
	ID              int64     `gorm:"primarykey" json:"id"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	TaskDescription *string   `gorm:"size:2000" json:"task_description,omitempty"`
	CreatedDate     time.Time `gorm:"index;not null" json:"created_date"`
	IsCompleted     bool      `gorm:"not null;default:false" json:"is_completed"`
}

// TableName returns the table name for the Record model.
func (Record) TableName() string {
	return "tasks"
}

// NewRecord builds a Record from a domain entity.
func NewRecord(e task.Entity) Record {
	rec := Record{
		ID:          e.ID,
		Title:       e.Title,
		CreatedDate: e.CreatedDate,
		IsCompleted: e.IsCompleted,
	}
	if e.HasDescription() {
		desc := e.Description
		rec.TaskDescription = &desc
	}
	return rec
}

// Entity converts the record back into a domain entity.
func (r Record) Entity() task.Entity {
	e := task.Entity{
		ID:          r.ID,
		Title:       r.Title,
		CreatedDate: r.CreatedDate,
		IsCompleted: r.IsCompleted,
	}
	if r.TaskDescription != nil {
		e.Description = *r.TaskDescription
	}
	return e
}
