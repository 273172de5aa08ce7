package taskedit

import (
	"context"

	"github.com/TaZMaN-tech/TodoApp/domain/task"
)

// Form is what the edit screen renders: pre-filled fields plus the
// read-only details of an existing task. Editable is false while the
// screen shows a task in view mode.
type Form struct {
	Title             string
	Description       string
	CreatedDateString string
	IsCompleted       bool
	Editable          bool
}

// View renders the form and surfaces failures. Implementations run on
// the screen's dispatch queue and need no locking. The loading
// indicator is boolean: ShowLoading and HideLoading set a state, they
// do not nest.
type View interface {
	DisplayForm(form Form)
	ShowLoading()
	HideLoading()
	ShowError(message string)
}

// Router closes the screen when a save lands or the user backs out.
type Router interface {
	CloseEditTask()
}

// Repository is the write surface the screen needs. Callbacks are
// delivered on the screen's dispatch queue, exactly once per call.
type Repository interface {
	Create(ctx context.Context, e task.Entity, fn func(task.Entity, error))
	Update(ctx context.Context, e task.Entity, fn func(task.Entity, error))
}
