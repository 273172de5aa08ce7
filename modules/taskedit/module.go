package taskedit

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/TaZMaN-tech/TodoApp/dispatch"
	"github.com/TaZMaN-tech/TodoApp/domain/task"
	"github.com/TaZMaN-tech/TodoApp/events"
	"github.com/TaZMaN-tech/TodoApp/modules/taskrepo"
	"github.com/TaZMaN-tech/TodoApp/modules/taskstore"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Module owns the edit/detail screen flows. Screens are opened on
// demand through the Open* methods; at most one is active at a time,
// mirroring a single navigation stack.
type Module struct {
	storeModule *taskstore.Module
	eventBus    mono.EventBus

	ctx         context.Context
	queue       *dispatch.Serial
	repo        *taskrepo.Async
	broadcaster events.Broadcaster

	mu     sync.Mutex
	active *Presenter
}

// Compile-time interface checks.
var (
	_ mono.Module              = (*Module)(nil)
	_ mono.DependentModule     = (*Module)(nil)
	_ mono.EventBusAwareModule = (*Module)(nil)
	_ mono.EventEmitterModule  = (*Module)(nil)
	_ mono.EventConsumerModule = (*Module)(nil)
)

// NewModule creates the edit module over the store module.
func NewModule(storeModule *taskstore.Module) *Module {
	return &Module{storeModule: storeModule}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "taskedit"
}

// Dependencies returns the modules that must start first.
func (m *Module) Dependencies() []string {
	return []string{"taskstore"}
}

// SetDependencyServiceContainer receives dependency containers. The
// store is injected by constructor, so nothing is read from it here.
func (m *Module) SetDependencyServiceContainer(string, mono.ServiceContainer) {}

// SetEventBus receives the event bus used for cross-screen broadcasts.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.TaskListChangedV1.ToBase(),
		events.TaskUpdatedV1.ToBase(),
	}
}

// RegisterEventConsumers subscribes to single-task updates so an open
// detail screen refreshes when another screen changes its task.
func (m *Module) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskUpdatedV1, m.handleTaskUpdated, m); err != nil {
		return fmt.Errorf("failed to register TaskUpdated consumer: %w", err)
	}
	log.Printf("[taskedit] Registered event consumer: TaskUpdated")
	return nil
}

func (m *Module) handleTaskUpdated(_ context.Context, ev events.TaskUpdatedEvent, _ *mono.Msg) error {
	if m.queue == nil {
		return nil
	}
	entity := ev.Entity()
	m.queue.Dispatch(func() {
		m.mu.Lock()
		presenter := m.active
		m.mu.Unlock()
		if presenter != nil {
			presenter.ApplyExternalUpdate(entity)
		}
	})
	return nil
}

// Start builds the write repository and the screen dispatch queue.
func (m *Module) Start(ctx context.Context) error {
	store := m.storeModule.Store()
	if store == nil {
		return fmt.Errorf("taskstore dependency not started")
	}

	m.ctx = context.WithoutCancel(ctx)
	m.queue = dispatch.NewSerial()
	m.repo = taskrepo.NewAsync(taskrepo.New(store), m.queue)
	m.broadcaster = events.NewBusBroadcaster(m.eventBus)

	log.Println("[taskedit] Module started")
	return nil
}

// Stop drains the dispatch queue.
func (m *Module) Stop(_ context.Context) error {
	if m.queue != nil {
		m.queue.Close()
	}
	log.Println("[taskedit] Module stopped")
	return nil
}

// OpenCreate opens a blank create screen. Valid after Start.
func (m *Module) OpenCreate(view View, router Router) *Presenter {
	return m.open(view, router, ModeCreate, task.Entity{})
}

// OpenEdit opens an edit screen pre-filled with e.
func (m *Module) OpenEdit(view View, router Router, e task.Entity) *Presenter {
	return m.open(view, router, ModeEdit, e)
}

// OpenDetails opens a read-only detail screen for e.
func (m *Module) OpenDetails(view View, router Router, e task.Entity) *Presenter {
	return m.open(view, router, ModeView, e)
}

func (m *Module) open(view View, router Router, mode Mode, e task.Entity) *Presenter {
	presenter := NewPresenter(
		m.ctx,
		view,
		&trackedRouter{inner: router, module: m},
		m.repo,
		m.broadcaster,
		mode,
		e,
	)

	m.mu.Lock()
	m.active = presenter
	m.mu.Unlock()

	m.queue.Dispatch(presenter.ViewReady)
	log.Printf("[taskedit] opened %s screen", mode)
	return presenter
}

// Queue exposes the screens' dispatch queue so callers can drive
// presenter methods on the right execution context.
func (m *Module) Queue() dispatch.Queue {
	return m.queue
}

// trackedRouter clears the active screen before forwarding the close,
// so a dismissed presenter stops receiving external updates.
type trackedRouter struct {
	inner  Router
	module *Module
}

func (r *trackedRouter) CloseEditTask() {
	r.module.mu.Lock()
	r.module.active = nil
	r.module.mu.Unlock()
	r.inner.CloseEditTask()
}
