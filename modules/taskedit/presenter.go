package taskedit

import (
	"context"
	"strings"
	"time"

	"github.com/TaZMaN-tech/TodoApp/domain/task"
	"github.com/TaZMaN-tech/TodoApp/events"
)

// Mode selects what the screen does with its task.
type Mode int

const (
	// ModeCreate starts from a blank form and inserts on submit.
	ModeCreate Mode = iota
	// ModeEdit pre-fills the form and overwrites on submit.
	ModeEdit
	// ModeView shows the task read-only until EnterEdit is called.
	ModeView
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	case ModeView:
		return "view"
	default:
		return "unknown"
	}
}

// Presenter orchestrates one edit screen. All methods run on the
// screen's dispatch queue; state needs no locking.
//
// A submitted create assigns the id and creation date here, before the
// repository call, so the screen can close on confirmation without a
// read-back. A submitted edit never touches the id, creation date, or
// completion state of the task it started from.
type Presenter struct {
	ctx         context.Context
	view        View
	router      Router
	repo        Repository
	broadcaster events.Broadcaster

	mode   Mode
	entity task.Entity
	saving bool

	now func() time.Time
}

// NewPresenter wires the edit screen for mode. The entity is ignored
// in create mode.
func NewPresenter(
	ctx context.Context,
	view View,
	router Router,
	repo Repository,
	broadcaster events.Broadcaster,
	mode Mode,
	entity task.Entity,
) *Presenter {
	return &Presenter{
		ctx:         ctx,
		view:        view,
		router:      router,
		repo:        repo,
		broadcaster: broadcaster,
		mode:        mode,
		entity:      entity,
		now:         time.Now,
	}
}

// ViewReady renders the initial form.
func (p *Presenter) ViewReady() {
	p.view.DisplayForm(p.form())
}

// Mode returns the screen's current mode.
func (p *Presenter) Mode() Mode {
	return p.mode
}

// Entity returns the task the screen was opened with, or the created
// task after a successful create submit.
func (p *Presenter) Entity() task.Entity {
	return p.entity
}

// EnterEdit switches a view-mode screen to edit mode and re-renders
// with the fields unlocked. No-op in any other mode.
func (p *Presenter) EnterEdit() {
	if p.mode != ModeView {
		return
	}
	p.mode = ModeEdit
	p.view.DisplayForm(p.form())
}

// Submit validates the form and persists it. The screen closes only
// after the repository confirms; a failure keeps it open with the
// user's input intact and broadcasts nothing. Submits while a save is
// in flight are ignored.
func (p *Presenter) Submit(title, description string) {
	if p.mode == ModeView || p.saving {
		return
	}

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		p.view.ShowError(msgTitleRequired)
		return
	}
	normalized := task.NormalizeDescription(description)

	p.saving = true
	p.view.ShowLoading()
	if p.mode == ModeCreate {
		e := task.Entity{
			ID:          task.NextID(),
			Title:       trimmed,
			Description: normalized,
			CreatedDate: p.now(),
		}
		p.repo.Create(p.ctx, e, p.onCreated)
		return
	}

	e := p.entity
	e.Title = trimmed
	e.Description = normalized
	p.repo.Update(p.ctx, e, p.onUpdated)
}

// Cancel closes the screen without saving or broadcasting.
func (p *Presenter) Cancel() {
	p.router.CloseEditTask()
}

// ApplyExternalUpdate refreshes a screen that is showing the task
// another screen just changed. Only a view-mode screen re-renders;
// an in-progress edit keeps the user's input.
func (p *Presenter) ApplyExternalUpdate(e task.Entity) {
	if p.mode != ModeView || e.ID != p.entity.ID {
		return
	}
	p.entity = e
	p.view.DisplayForm(p.form())
}

func (p *Presenter) onCreated(created task.Entity, err error) {
	p.saving = false
	p.view.HideLoading()
	if err != nil {
		p.view.ShowError(errorMessage(err, msgCreateFailed))
		return
	}
	p.entity = created
	p.broadcaster.TaskListChanged()
	p.router.CloseEditTask()
}

func (p *Presenter) onUpdated(updated task.Entity, err error) {
	p.saving = false
	p.view.HideLoading()
	if err != nil {
		p.view.ShowError(errorMessage(err, msgSaveFailed))
		return
	}
	p.entity = updated
	p.broadcaster.TaskListChanged()
	p.broadcaster.TaskUpdated(updated)
	p.router.CloseEditTask()
}

func (p *Presenter) form() Form {
	if p.mode == ModeCreate {
		return Form{Editable: true}
	}
	return Form{
		Title:             p.entity.Title,
		Description:       p.entity.Description,
		CreatedDateString: p.entity.CreatedDate.Format(task.DateLayout),
		IsCompleted:       p.entity.IsCompleted,
		Editable:          p.mode == ModeEdit,
	}
}
