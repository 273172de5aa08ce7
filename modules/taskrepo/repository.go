// Package taskrepo is the storage-agnostic contract the orchestrators
// depend on instead of talking to the store directly. The synchronous
// Repository carries the CRUD and search semantics; Async wraps it
// with the executor-delivery contract UI-facing callers rely on.
package taskrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/TaZMaN-tech/TodoApp/domain/task"
	"github.com/TaZMaN-tech/TodoApp/modules/taskstore"
)

// ErrNotFound is returned by FetchByID and Update when no task with
// the given id exists.
var ErrNotFound = errors.New("task not found")

// Repository provides synchronous access to the task store.
type Repository struct {
	store *taskstore.Store
}

// New creates a repository over the store adapter.
func New(store *taskstore.Store) *Repository {
	return &Repository{store: store}
}

// FetchAll returns every task, newest first.
func (r *Repository) FetchAll(ctx context.Context) ([]task.Entity, error) {
	recs, err := r.store.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return toEntities(recs), nil
}

// Search returns the tasks whose title or description contains the
// query, ignoring case and diacritics, in FetchAll order. An empty or
// whitespace-only query behaves exactly like FetchAll.
func (r *Repository) Search(ctx context.Context, query string) ([]task.Entity, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return r.FetchAll(ctx)
	}

	recs, err := r.store.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := fold(trimmed)
	matched := make([]task.Entity, 0, len(recs))
	for _, rec := range recs {
		e := rec.Entity()
		if strings.Contains(fold(e.Title), needle) ||
			strings.Contains(fold(e.Description), needle) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// FetchByID returns a single task by id, or ErrNotFound.
func (r *Repository) FetchByID(ctx context.Context, id int64) (task.Entity, error) {
	rec, err := r.store.FetchByID(ctx, id)
	if err != nil {
		if errors.Is(err, taskstore.ErrNotFound) {
			return task.Entity{}, ErrNotFound
		}
		return task.Entity{}, err
	}
	return rec.Entity(), nil
}

// Create persists a full new record and returns it. A failed save
// leaves the store unchanged.
func (r *Repository) Create(ctx context.Context, e task.Entity) (task.Entity, error) {
	rec := taskstore.NewRecord(e)
	if err := r.store.Insert(ctx, &rec); err != nil {
		return task.Entity{}, fmt.Errorf("failed to create task: %w", err)
	}
	return rec.Entity(), nil
}

// Update overwrites the mutable fields of an existing task and returns
// the post-update record. The stored id and created date are
// preserved regardless of what the caller passed. Returns ErrNotFound
// when the id does not exist.
func (r *Repository) Update(ctx context.Context, e task.Entity) (task.Entity, error) {
	existing, err := r.store.FetchByID(ctx, e.ID)
	if err != nil {
		if errors.Is(err, taskstore.ErrNotFound) {
			return task.Entity{}, ErrNotFound
		}
		return task.Entity{}, err
	}

	rec := taskstore.NewRecord(e)
	rec.CreatedDate = existing.CreatedDate
	if err := r.store.Update(ctx, &rec); err != nil {
		if errors.Is(err, taskstore.ErrNotFound) {
			return task.Entity{}, ErrNotFound
		}
		return task.Entity{}, fmt.Errorf("failed to update task: %w", err)
	}
	return rec.Entity(), nil
}

// Delete removes a task by id. Deleting an absent id is a success.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.store.DeleteByID(ctx, id)
}

// CreateBatch inserts all entities in one transaction, all-or-nothing.
// An empty input returns an empty success without touching the store.
func (r *Repository) CreateBatch(ctx context.Context, es []task.Entity) ([]task.Entity, error) {
	if len(es) == 0 {
		return []task.Entity{}, nil
	}

	recs := make([]taskstore.Record, 0, len(es))
	for _, e := range es {
		recs = append(recs, taskstore.NewRecord(e))
	}
	if err := r.store.SaveBatch(ctx, recs); err != nil {
		return nil, fmt.Errorf("failed to create batch: %w", err)
	}
	return toEntities(recs), nil
}

func toEntities(recs []taskstore.Record) []task.Entity {
	es := make([]task.Entity, 0, len(recs))
	for _, rec := range recs {
		es = append(es, rec.Entity())
	}
	return es
}
