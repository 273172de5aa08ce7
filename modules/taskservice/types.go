package taskservice

import "time"

// CreateTaskRequest is the payload for the task.create service.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// GetTaskRequest is the payload for the task.get service.
type GetTaskRequest struct {
	ID int64 `json:"id"`
}

// ListTasksRequest is the payload for the task.list service. A
// non-empty query narrows the result the same way the list screen's
// search does.
type ListTasksRequest struct {
	Query string `json:"query,omitempty"`
}

// UpdateTaskRequest is the payload for the task.update service. Nil
// fields keep their stored value.
type UpdateTaskRequest struct {
	ID          int64   `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ToggleTaskRequest is the payload for the task.toggle service.
type ToggleTaskRequest struct {
	ID          int64 `json:"id"`
	IsCompleted bool  `json:"is_completed"`
}

// DeleteTaskRequest is the payload for the task.delete service.
type DeleteTaskRequest struct {
	ID int64 `json:"id"`
}

// TaskResponse is the shared task shape returned by the services.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedDate time.Time `json:"created_date"`
	IsCompleted bool      `json:"is_completed"`
}

// ListTasksResponse is the task.list service response.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// DeleteTaskResponse is the task.delete service response.
type DeleteTaskResponse struct {
	Deleted bool  `json:"deleted"`
	ID      int64 `json:"id"`
}
