// Package taskservice exposes the task CRUD and search operations as
// request-reply services, so driving adapters reach the same
// repository semantics the screens use.
package taskservice

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/TaZMaN-tech/TodoApp/events"
	"github.com/TaZMaN-tech/TodoApp/modules/taskrepo"
	"github.com/TaZMaN-tech/TodoApp/modules/taskstore"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Module provides task management services over the shared store.
type Module struct {
	storeModule *taskstore.Module
	eventBus    mono.EventBus

	repo        *taskrepo.Repository
	broadcaster events.Broadcaster
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.DependentModule       = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
	_ mono.EventBusAwareModule   = (*Module)(nil)
	_ mono.EventEmitterModule    = (*Module)(nil)
)

// NewModule creates the task service module over the store module.
func NewModule(storeModule *taskstore.Module) *Module {
	return &Module{storeModule: storeModule}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "task"
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

// RegisterServices registers the request-reply services. The framework
// prefixes service names with "services.<module>." so "create" becomes
// "services.task.create" on the wire.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create", json.Unmarshal, json.Marshal, m.createTask,
	); err != nil {
		return fmt.Errorf("failed to register create service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get", json.Unmarshal, json.Marshal, m.getTask,
	); err != nil {
		return fmt.Errorf("failed to register get service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list", json.Unmarshal, json.Marshal, m.listTasks,
	); err != nil {
		return fmt.Errorf("failed to register list service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update", json.Unmarshal, json.Marshal, m.updateTask,
	); err != nil {
		return fmt.Errorf("failed to register update service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "toggle", json.Unmarshal, json.Marshal, m.toggleTask,
	); err != nil {
		return fmt.Errorf("failed to register toggle service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete", json.Unmarshal, json.Marshal, m.deleteTask,
	); err != nil {
		return fmt.Errorf("failed to register delete service: %w", err)
	}

	log.Printf("[task] Registered services: services.task.{create,get,list,update,toggle,delete}")
	return nil
}

// Start wires the repository over the started store.
func (m *Module) Start(_ context.Context) error {
	store := m.storeModule.Store()
	if store == nil {
		return fmt.Errorf("taskstore dependency not started")
	}

	m.repo = taskrepo.New(store)
	m.broadcaster = events.NewBusBroadcaster(m.eventBus)

	log.Println("[task] Module started")
	return nil
}

// Stop has nothing to release; the store module owns the connection.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[task] Module stopped")
	return nil
}
