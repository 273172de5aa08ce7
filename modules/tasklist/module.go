package tasklist

import (
	"context"
	"fmt"
	"log"

	"github.com/TaZMaN-tech/TodoApp/dispatch"
	"github.com/TaZMaN-tech/TodoApp/events"
	"github.com/TaZMaN-tech/TodoApp/modules/remote"
	"github.com/TaZMaN-tech/TodoApp/modules/taskrepo"
	"github.com/TaZMaN-tech/TodoApp/modules/taskstore"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Module owns the list presenter and its serial dispatch queue, and
// subscribes to the cross-screen signals that keep a live list in
// sync with changes made elsewhere.
type Module struct {
	storeModule *taskstore.Module
	view        View
	router      Router

	queue     *dispatch.Serial
	presenter *Presenter
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.DependentModule = (*Module)(nil)
var _ mono.EventConsumerModule = (*Module)(nil)

// NewModule creates the list module over the store module. The store
// handle itself becomes valid once taskstore starts, which the
// declared dependency guarantees happens first.
func NewModule(storeModule *taskstore.Module) *Module {
	return &Module{
		storeModule: storeModule,
		view:        LogView{},
		router:      LogRouter{},
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "tasklist"
}

// Dependencies returns the modules that must start first.
func (m *Module) Dependencies() []string {
	return []string{"taskstore"}
}

// SetDependencyServiceContainer receives dependency containers. The
// store is injected by constructor, so nothing is read from it here.
func (m *Module) SetDependencyServiceContainer(string, mono.ServiceContainer) {}

// SetView replaces the default log-backed render surface. Must be
// called before Start.
func (m *Module) SetView(view View) {
	m.view = view
}

// SetRouter replaces the default log-backed navigation. Must be
// called before Start.
func (m *Module) SetRouter(router Router) {
	m.router = router
}

// RegisterEventConsumers subscribes to the cross-screen signals.
func (m *Module) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskListChangedV1, m.handleTaskListChanged, m); err != nil {
		return fmt.Errorf("failed to register TaskListChanged consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskUpdatedV1, m.handleTaskUpdated, m); err != nil {
		return fmt.Errorf("failed to register TaskUpdated consumer: %w", err)
	}
	log.Printf("[tasklist] Registered event consumers: TaskListChanged, TaskUpdated")
	return nil
}

func (m *Module) handleTaskListChanged(_ context.Context, _ events.TaskListChangedEvent, _ *mono.Msg) error {
	if m.presenter == nil {
		return nil
	}
	m.queue.Dispatch(m.presenter.Refresh)
	return nil
}

func (m *Module) handleTaskUpdated(_ context.Context, ev events.TaskUpdatedEvent, _ *mono.Msg) error {
	if m.presenter == nil {
		return nil
	}
	entity := ev.Entity()
	m.queue.Dispatch(func() { m.presenter.ApplyExternalUpdate(entity) })
	return nil
}

// Start builds the presenter stack and kicks off the initial load.
func (m *Module) Start(ctx context.Context) error {
	store := m.storeModule.Store()
	if store == nil {
		return fmt.Errorf("taskstore dependency not started")
	}

	m.queue = dispatch.NewSerial()
	repo := taskrepo.NewAsync(taskrepo.New(store), m.queue)
	m.presenter = NewPresenter(
		context.WithoutCancel(ctx),
		m.view,
		m.router,
		repo,
		remote.NewClient(),
		store,
		m.queue,
	)

	m.queue.Dispatch(m.presenter.ViewReady)

	log.Println("[tasklist] Module started")
	return nil
}

// Stop drains the dispatch queue.
func (m *Module) Stop(_ context.Context) error {
	if m.queue != nil {
		m.queue.Close()
	}
	log.Println("[tasklist] Module stopped")
	return nil
}

// Presenter exposes the list presenter for driving adapters. Valid
// after Start.
func (m *Module) Presenter() *Presenter {
	return m.presenter
}

// Queue exposes the presenter's dispatch queue so adapters can hand
// work to the screen's execution context.
func (m *Module) Queue() dispatch.Queue {
	return m.queue
}
