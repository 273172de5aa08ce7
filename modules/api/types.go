package api

import "time"

// CreateTaskRequest is the POST /api/v1/tasks payload.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// UpdateTaskRequest is the PUT /api/v1/tasks/:id payload. Omitted
// fields keep their stored value.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CompletionRequest is the PATCH /api/v1/tasks/:id/completion payload.
type CompletionRequest struct {
	IsCompleted bool `json:"is_completed"`
}

// TaskResponse is the task shape returned by every endpoint.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedDate time.Time `json:"created_date"`
	IsCompleted bool      `json:"is_completed"`
}

// ListTasksResponse is the GET /api/v1/tasks response.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// DeleteTaskResponse is the DELETE /api/v1/tasks/:id response.
type DeleteTaskResponse struct {
	Deleted bool  `json:"deleted"`
	ID      int64 `json:"id"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}
