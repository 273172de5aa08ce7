package tasklist

import (
	"context"

	"github.com/TaZMaN-tech/TodoApp/domain/task"
)

// View is the render surface the presenter drives. Implementations
// are called only on the presenter's dispatch queue. The loading
// indicator is boolean: ShowLoading and HideLoading set a state, they
// do not nest.
type View interface {
	DisplayTasks(viewModels []task.ViewModel)
	ShowLoading()
	HideLoading()
	ShowError(message string)
	ShowEmptyState(message string)
}

// Router handles navigation away from the list screen.
type Router interface {
	OpenCreateTask()
	OpenEditTask(e task.Entity)
	OpenTaskDetails(e task.Entity)
}

// Repository is the async repository surface the presenter consumes.
// Every operation delivers exactly one terminal callback on the
// presenter's queue. Satisfied by *taskrepo.Async.
type Repository interface {
	FetchAll(ctx context.Context, fn func([]task.Entity, error))
	Search(ctx context.Context, query string, fn func([]task.Entity, error))
	Update(ctx context.Context, e task.Entity, fn func(task.Entity, error))
	Delete(ctx context.Context, id int64, fn func(error))
	CreateBatch(ctx context.Context, es []task.Entity, fn func([]task.Entity, error))
}

// RemoteSource fetches the one-shot seed data. Satisfied by
// *remote.Client.
type RemoteSource interface {
	FetchTodos(ctx context.Context) ([]task.Entity, error)
}

// SeedFlags persists the one-shot "has seeded" marker. Satisfied by
// *taskstore.Store.
type SeedFlags interface {
	SeedFlag(ctx context.Context) (bool, error)
	SetSeedFlag(ctx context.Context) error
}
