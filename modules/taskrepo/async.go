package taskrepo

import (
	"context"

	"github.com/TaZMaN-tech/TodoApp/dispatch"
	"github.com/TaZMaN-tech/TodoApp/domain/task"
)

// Async wraps the repository with the delivery contract the screen
// orchestrators depend on: every operation runs off the caller's
// execution context and delivers exactly one terminal callback on the
// configured queue. Immediate results take the same path so callbacks
// always arrive in dispatch order.
type Async struct {
	repo  *Repository
	queue dispatch.Queue
}

// NewAsync creates the async facade delivering on queue.
func NewAsync(repo *Repository, queue dispatch.Queue) *Async {
	return &Async{repo: repo, queue: queue}
}

// FetchAll loads every task and delivers the result on the queue.
func (a *Async) FetchAll(ctx context.Context, fn func([]task.Entity, error)) {
	go func() {
		es, err := a.repo.FetchAll(ctx)
		a.queue.Dispatch(func() { fn(es, err) })
	}()
}

// Search runs a query and delivers the result on the queue.
func (a *Async) Search(ctx context.Context, query string, fn func([]task.Entity, error)) {
	go func() {
		es, err := a.repo.Search(ctx, query)
		a.queue.Dispatch(func() { fn(es, err) })
	}()
}

// Create persists a new task and delivers the result on the queue.
func (a *Async) Create(ctx context.Context, e task.Entity, fn func(task.Entity, error)) {
	go func() {
		created, err := a.repo.Create(ctx, e)
		a.queue.Dispatch(func() { fn(created, err) })
	}()
}

// Update overwrites an existing task and delivers the result on the
// queue.
func (a *Async) Update(ctx context.Context, e task.Entity, fn func(task.Entity, error)) {
	go func() {
		updated, err := a.repo.Update(ctx, e)
		a.queue.Dispatch(func() { fn(updated, err) })
	}()
}

// Delete removes a task by id and delivers the result on the queue.
func (a *Async) Delete(ctx context.Context, id int64, fn func(error)) {
	go func() {
		err := a.repo.Delete(ctx, id)
		a.queue.Dispatch(func() { fn(err) })
	}()
}

// CreateBatch inserts all entities atomically and delivers the result
// on the queue.
func (a *Async) CreateBatch(ctx context.Context, es []task.Entity, fn func([]task.Entity, error)) {
	go func() {
		created, err := a.repo.CreateBatch(ctx, es)
		a.queue.Dispatch(func() { fn(created, err) })
	}()
}
