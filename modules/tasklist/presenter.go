// Package tasklist is the list-screen orchestrator: it owns the
// in-memory view-model list, decides between first-launch seeding and
// local loads, applies optimistic updates and reconciles them against
// repository completions.
package tasklist

import (
	"context"
	"log"
	"strings"

	"github.com/TaZMaN-tech/TodoApp/dispatch"
	"github.com/TaZMaN-tech/TodoApp/domain/task"
)

// Presenter holds the list screen state. The view-model slice and the
// search query are only ever touched from the dispatch queue, so they
// need no locking. All exported methods expect to run on the queue;
// the module wiring dispatches external triggers onto it.
type Presenter struct {
	ctx    context.Context
	view   View
	router Router
	repo   Repository
	remote RemoteSource
	flags  SeedFlags
	queue  dispatch.Queue

	viewModels  []task.ViewModel
	searchQuery string
}

// NewPresenter wires a list presenter. The queue must be the same one
// the repository delivers on.
func NewPresenter(
	ctx context.Context,
	view View,
	router Router,
	repo Repository,
	remoteSource RemoteSource,
	flags SeedFlags,
	queue dispatch.Queue,
) *Presenter {
	return &Presenter{
		ctx:    ctx,
		view:   view,
		router: router,
		repo:   repo,
		remote: remoteSource,
		flags:  flags,
		queue:  queue,
	}
}

// ViewReady is the screen-ready trigger: show the loading indicator
// and load initial data if this is the first launch.
func (p *Presenter) ViewReady() {
	p.view.ShowLoading()
	p.LoadInitialDataIfNeeded()
}

// LoadInitialDataIfNeeded checks the persisted seed flag. On an
// unseeded install it bootstraps from the remote source; otherwise it
// falls through to a plain local load. The flag is flipped only after
// the seed batch committed, so a failed attempt retries on next start.
func (p *Presenter) LoadInitialDataIfNeeded() {
	go func() {
		seeded, err := p.flags.SeedFlag(p.ctx)
		p.queue.Dispatch(func() {
			if err != nil {
				p.view.HideLoading()
				p.view.ShowError(errorMessage(err, msgLoadFailed))
				return
			}
			if seeded {
				p.loadTasks()
				return
			}
			p.seedFromRemote()
		})
	}()
}

// LoadTasks reloads the unfiltered list from the repository.
func (p *Presenter) LoadTasks() {
	p.loadTasks()
}

// SearchTasks loads the tasks matching query.
func (p *Presenter) SearchTasks(query string) {
	p.repo.Search(p.ctx, query, p.onLoadResult)
}

// ChangeSearchQuery stores the raw query for messaging and reissues
// the matching load: a trimmed-empty query clears the filter.
func (p *Presenter) ChangeSearchQuery(query string) {
	p.searchQuery = query
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		p.loadTasks()
		return
	}
	p.SearchTasks(trimmed)
}

// Refresh reissues the current load-or-search operation, e.g. for
// pull-to-refresh.
func (p *Presenter) Refresh() {
	trimmed := strings.TrimSpace(p.searchQuery)
	if trimmed == "" {
		p.loadTasks()
		return
	}
	p.SearchTasks(trimmed)
}

// AddTask opens the create flow.
func (p *Presenter) AddTask() {
	p.router.OpenCreateTask()
}

// SelectTask opens the details of the task at index. Out-of-range
// indexes are ignored.
func (p *Presenter) SelectTask(index int) {
	if !p.inRange(index) {
		return
	}
	p.router.OpenTaskDetails(p.viewModels[index].Entity)
}

// EditTask opens the edit flow for the task at index.
func (p *Presenter) EditTask(index int) {
	if !p.inRange(index) {
		return
	}
	p.router.OpenEditTask(p.viewModels[index].Entity)
}

// RequestDelete deletes the task at index. The row is removed only
// after the repository confirms.
func (p *Presenter) RequestDelete(index int) {
	if !p.inRange(index) {
		return
	}
	id := p.viewModels[index].ID

	p.repo.Delete(p.ctx, id, func(err error) {
		if err != nil {
			p.view.ShowError(errorMessage(err, msgDeleteFailed))
			return
		}
		p.removeByID(id)
		if len(p.viewModels) == 0 {
			p.view.ShowEmptyState(p.emptyMessage())
			return
		}
		p.view.DisplayTasks(p.viewModels)
	})
}

// ToggleCompletion optimistically flips the completion state of the
// task at index: the list re-renders before the repository confirms,
// and a failed update self-heals with a full reload.
func (p *Presenter) ToggleCompletion(index int, isCompleted bool) {
	if !p.inRange(index) {
		return
	}

	updated := p.viewModels[index].Entity
	updated.IsCompleted = isCompleted
	p.viewModels[index] = task.NewViewModel(updated)
	p.view.DisplayTasks(p.viewModels)

	p.repo.Update(p.ctx, updated, func(confirmed task.Entity, err error) {
		if err != nil {
			p.view.ShowError(errorMessage(err, msgUpdateFailed))
			p.loadTasks()
			return
		}
		p.replaceByID(confirmed)
		p.view.DisplayTasks(p.viewModels)
	})
}

// ApplyExternalUpdate patches the row for an entity updated somewhere
// else (another screen, another adapter). No-op when the task is not
// currently listed.
func (p *Presenter) ApplyExternalUpdate(e task.Entity) {
	if !p.replaceByID(e) {
		return
	}
	p.view.DisplayTasks(p.viewModels)
}

// --- internals, queue context only ---

func (p *Presenter) loadTasks() {
	p.repo.FetchAll(p.ctx, p.onLoadResult)
}

// seedFromRemote bootstraps the store from the remote feed. The
// loading indicator is already up from ViewReady and stays up until
// the seed path resolves.
func (p *Presenter) seedFromRemote() {
	go func() {
		fetched, err := p.remote.FetchTodos(p.ctx)
		p.queue.Dispatch(func() {
			if err != nil {
				p.view.HideLoading()
				p.view.ShowError(errorMessage(err, msgSeedFailed))
				return
			}
			p.repo.CreateBatch(p.ctx, fetched, func(created []task.Entity, err error) {
				if err != nil {
					p.view.HideLoading()
					p.view.ShowError(errorMessage(err, msgSeedFailed))
					return
				}
				p.markSeeded()
				p.onLoadResult(created, nil)
			})
		})
	}()
}

// markSeeded flips the one-shot flag. The seed batch is already
// committed at this point, so a flag failure is logged rather than
// shown: the data is present and usable.
func (p *Presenter) markSeeded() {
	go func() {
		if err := p.flags.SetSeedFlag(p.ctx); err != nil {
			log.Printf("[tasklist] failed to persist seed flag: %v", err)
		}
	}()
}

// onLoadResult is the single reconciliation point for full-list
// results: it replaces the projection 1:1 in repository order.
func (p *Presenter) onLoadResult(es []task.Entity, err error) {
	p.view.HideLoading()
	if err != nil {
		p.view.ShowError(errorMessage(err, msgLoadFailed))
		return
	}

	p.viewModels = make([]task.ViewModel, 0, len(es))
	for _, e := range es {
		p.viewModels = append(p.viewModels, task.NewViewModel(e))
	}

	if len(p.viewModels) == 0 {
		p.view.ShowEmptyState(p.emptyMessage())
		return
	}
	p.view.DisplayTasks(p.viewModels)
}

func (p *Presenter) emptyMessage() string {
	trimmed := strings.TrimSpace(p.searchQuery)
	if trimmed != "" {
		return emptySearchMessage(trimmed)
	}
	return msgNoTasks
}

func (p *Presenter) inRange(index int) bool {
	if index < 0 || index >= len(p.viewModels) {
		log.Printf("[tasklist] ignoring out-of-range index %d (list size %d)", index, len(p.viewModels))
		return false
	}
	return true
}

func (p *Presenter) removeByID(id int64) {
	for i, vm := range p.viewModels {
		if vm.ID == id {
			p.viewModels = append(p.viewModels[:i], p.viewModels[i+1:]...)
			return
		}
	}
}

func (p *Presenter) replaceByID(e task.Entity) bool {
	for i, vm := range p.viewModels {
		if vm.ID == e.ID {
			p.viewModels[i] = task.NewViewModel(e)
			return true
		}
	}
	return false
}
