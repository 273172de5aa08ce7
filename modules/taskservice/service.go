package taskservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TaZMaN-tech/TodoApp/domain/task"
	"github.com/go-monolith/mono"
)

// createTask handles the task.create service request. The id and
// creation date are assigned here; new tasks always start incomplete.
func (m *Module) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return TaskResponse{}, fmt.Errorf("title is required")
	}

	e := task.Entity{
		ID:          task.NextID(),
		Title:       title,
		Description: task.NormalizeDescription(req.Description),
		CreatedDate: time.Now(),
	}

	created, err := m.repo.Create(ctx, e)
	if err != nil {
		return TaskResponse{}, fmt.Errorf("failed to save task: %w", err)
	}

	m.broadcaster.TaskListChanged()
	return toTaskResponse(created), nil
}

// getTask handles the task.get service request.
func (m *Module) getTask(ctx context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if req.ID == 0 {
		return TaskResponse{}, fmt.Errorf("id is required")
	}

	e, err := m.repo.FetchByID(ctx, req.ID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(e), nil
}

// listTasks handles the task.list service request. With a query it
// behaves like the list screen's search: case- and diacritic-
// insensitive, newest first.
func (m *Module) listTasks(ctx context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	es, err := m.repo.Search(ctx, req.Query)
	if err != nil {
		return ListTasksResponse{}, err
	}

	response := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(es)),
		Total: len(es),
	}
	for _, e := range es {
		response.Tasks = append(response.Tasks, toTaskResponse(e))
	}
	return response, nil
}

// updateTask handles the task.update service request. Only the title
// and description can change; the id, creation date, and completion
// state are never touched here.
func (m *Module) updateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if req.ID == 0 {
		return TaskResponse{}, fmt.Errorf("id is required")
	}

	e, err := m.repo.FetchByID(ctx, req.ID)
	if err != nil {
		return TaskResponse{}, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return TaskResponse{}, fmt.Errorf("title cannot be empty")
		}
		e.Title = title
	}
	if req.Description != nil {
		e.Description = task.NormalizeDescription(*req.Description)
	}

	updated, err := m.repo.Update(ctx, e)
	if err != nil {
		return TaskResponse{}, fmt.Errorf("failed to update task: %w", err)
	}

	m.broadcaster.TaskListChanged()
	m.broadcaster.TaskUpdated(updated)
	return toTaskResponse(updated), nil
}

// toggleTask handles the task.toggle service request.
func (m *Module) toggleTask(ctx context.Context, req ToggleTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if req.ID == 0 {
		return TaskResponse{}, fmt.Errorf("id is required")
	}

	e, err := m.repo.FetchByID(ctx, req.ID)
	if err != nil {
		return TaskResponse{}, err
	}
	e.IsCompleted = req.IsCompleted

	updated, err := m.repo.Update(ctx, e)
	if err != nil {
		return TaskResponse{}, fmt.Errorf("failed to toggle task: %w", err)
	}

	m.broadcaster.TaskListChanged()
	m.broadcaster.TaskUpdated(updated)
	return toTaskResponse(updated), nil
}

// deleteTask handles the task.delete service request. Deleting an
// absent id succeeds, matching the repository contract.
func (m *Module) deleteTask(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if req.ID == 0 {
		return DeleteTaskResponse{Deleted: false}, fmt.Errorf("id is required")
	}

	if err := m.repo.Delete(ctx, req.ID); err != nil {
		return DeleteTaskResponse{Deleted: false, ID: req.ID}, err
	}

	m.broadcaster.TaskListChanged()
	return DeleteTaskResponse{Deleted: true, ID: req.ID}, nil
}

// toTaskResponse converts an entity to the shared response shape.
func toTaskResponse(e task.Entity) TaskResponse {
	return TaskResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		CreatedDate: e.CreatedDate,
		IsCompleted: e.IsCompleted,
	}
}
