// Package taskstore wraps the embedded SQLite database behind a small
// store adapter. Mutating calls are atomic: a failed statement or a
// failed batch transaction leaves the database exactly as it was.
// Concurrent writers are serialized by the single connection, so the
// most recent saved row wins without erroring.
package taskstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no record with the requested id exists.
var ErrNotFound = errors.New("task not found")

// Store provides access to persisted task records.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over an open database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FetchAll retrieves every record, newest first. Ties on the created
// date fall back to the id so the order is deterministic.
func (s *Store) FetchAll(ctx context.Context) ([]Record, error) {
	var recs []Record
	err := s.db.WithContext(ctx).
		Order("created_date DESC, id DESC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return recs, nil
}

// FetchByID retrieves a single record or ErrNotFound.
func (s *Store) FetchByID(ctx context.Context, id int64) (*Record, error) {
	var rec Record
	err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch task %d: %w", id, err)
	}
	return &rec, nil
}

// Insert persists a new record.
func (s *Store) Insert(ctx context.Context, rec *Record) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to insert task %d: %w", rec.ID, err)
	}
	return nil
}

// Update overwrites the mutable fields of an existing record. The id
// and created date are never touched. Returns ErrNotFound when no row
// matches.
func (s *Store) Update(ctx context.Context, rec *Record) error {
	result := s.db.WithContext(ctx).
		Model(&Record{}).
		Where("id = ?", rec.ID).
		Updates(map[string]any{
			"title":            rec.Title,
			"task_description": rec.TaskDescription,
			"is_completed":     rec.IsCompleted,
		})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update task %d: %w", rec.ID, err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes a record. Deleting an absent id is a successful
// no-op; the caller's contract treats it as already gone.
func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&Record{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}

// SaveBatch inserts all records in one transaction. Any failure rolls
// the whole batch back so none of the records persist.
func (s *Store) SaveBatch(ctx context.Context, recs []Record) error {
	if len(recs) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range recs {
			if err := tx.Create(&recs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save batch of %d tasks: %w", len(recs), err)
	}
	return nil
}
