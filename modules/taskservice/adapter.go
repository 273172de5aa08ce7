package taskservice

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
)

// TaskPort is the task operations surface other modules program
// against. It hides the service container plumbing.
type TaskPort interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	Get(ctx context.Context, id int64) (TaskResponse, error)
	List(ctx context.Context, query string) (ListTasksResponse, error)
	Update(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error)
	Toggle(ctx context.Context, req ToggleTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, id int64) (DeleteTaskResponse, error)
}

// taskAdapter implements TaskPort over the service container.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates an adapter for the task services.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	return &taskAdapter{container: container}
}

// Create creates a new task.
func (a *taskAdapter) Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error) {
	var resp TaskResponse
	err := a.call(ctx, "create", req, &resp)
	return resp, err
}

// Get fetches a single task by id.
func (a *taskAdapter) Get(ctx context.Context, id int64) (TaskResponse, error) {
	var resp TaskResponse
	err := a.call(ctx, "get", GetTaskRequest{ID: id}, &resp)
	return resp, err
}

// List fetches every task, or the search matches when query is
// non-empty.
func (a *taskAdapter) List(ctx context.Context, query string) (ListTasksResponse, error) {
	var resp ListTasksResponse
	err := a.call(ctx, "list", ListTasksRequest{Query: query}, &resp)
	return resp, err
}

// Update overwrites the title and/or description of a task.
func (a *taskAdapter) Update(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error) {
	var resp TaskResponse
	err := a.call(ctx, "update", req, &resp)
	return resp, err
}

// Toggle sets the completion state of a task.
func (a *taskAdapter) Toggle(ctx context.Context, req ToggleTaskRequest) (TaskResponse, error) {
	var resp TaskResponse
	err := a.call(ctx, "toggle", req, &resp)
	return resp, err
}

// Delete removes a task by id.
func (a *taskAdapter) Delete(ctx context.Context, id int64) (DeleteTaskResponse, error) {
	var resp DeleteTaskResponse
	err := a.call(ctx, "delete", DeleteTaskRequest{ID: id}, &resp)
	return resp, err
}

func (a *taskAdapter) call(ctx context.Context, name string, req, resp any) error {
	client, err := a.container.GetRequestReplyService(name)
	if err != nil {
		return fmt.Errorf("failed to get %s service: %w", name, err)
	}

	reqData, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", name, err)
	}

	respData, err := client.Call(ctx, reqData)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(respData.Data, resp); err != nil {
		return fmt.Errorf("failed to unmarshal %s response: %w", name, err)
	}
	return nil
}
