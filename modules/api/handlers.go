package api

import (
	"strconv"
	"strings"

	"github.com/TaZMaN-tech/TodoApp/modules/taskservice"
	"github.com/gofiber/fiber/v2"
)

const maxTitleLength = 255

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes() {
	m.app.Get("/health", m.healthHandler)

	api := m.app.Group("/api/v1")
	api.Get("/tasks", m.listTasks)
	api.Post("/tasks", m.createTask)
	api.Get("/tasks/:id", m.getTask)
	api.Put("/tasks/:id", m.updateTask)
	api.Patch("/tasks/:id/completion", m.setCompletion)
	api.Delete("/tasks/:id", m.deleteTask)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"port":   m.port,
		},
	})
}

// listTasks handles GET /api/v1/tasks. An optional ?query= narrows
// the result the same way the list screen's search does.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	resp, err := m.taskAdapter.List(c.UserContext(), c.Query("query"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "list_failed",
			Message: "Failed to list tasks",
		})
	}

	return c.JSON(ListTasksResponse{
		Tasks: toTaskResponses(resp.Tasks),
		Total: resp.Total,
	})
}

// createTask handles POST /api/v1/tasks.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Title) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Title is required",
		})
	}
	if len(req.Title) > maxTitleLength {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Title exceeds maximum length",
		})
	}

	resp, err := m.taskAdapter.Create(c.UserContext(), taskservice.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "create_failed",
			Message: "Failed to create task",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toTaskResponse(resp))
}

// getTask handles GET /api/v1/tasks/:id.
func (m *APIModule) getTask(c *fiber.Ctx) error {
	id, ok := parseTaskID(c)
	if !ok {
		return nil
	}

	resp, err := m.taskAdapter.Get(c.UserContext(), id)
	if err != nil {
		return taskError(c, err, "get_failed", "Failed to load task")
	}

	return c.JSON(toTaskResponse(resp))
}

// updateTask handles PUT /api/v1/tasks/:id.
func (m *APIModule) updateTask(c *fiber.Ctx) error {
	id, ok := parseTaskID(c)
	if !ok {
		return nil
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Title cannot be empty",
		})
	}

	resp, err := m.taskAdapter.Update(c.UserContext(), taskservice.UpdateTaskRequest{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return taskError(c, err, "update_failed", "Failed to update task")
	}

	return c.JSON(toTaskResponse(resp))
}

// setCompletion handles PATCH /api/v1/tasks/:id/completion.
func (m *APIModule) setCompletion(c *fiber.Ctx) error {
	id, ok := parseTaskID(c)
	if !ok {
		return nil
	}

	var req CompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	resp, err := m.taskAdapter.Toggle(c.UserContext(), taskservice.ToggleTaskRequest{
		ID:          id,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		return taskError(c, err, "toggle_failed", "Failed to update completion state")
	}

	return c.JSON(toTaskResponse(resp))
}

// deleteTask handles DELETE /api/v1/tasks/:id.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	id, ok := parseTaskID(c)
	if !ok {
		return nil
	}

	resp, err := m.taskAdapter.Delete(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "delete_failed",
			Message: "Failed to delete task",
		})
	}

	return c.JSON(DeleteTaskResponse{
		Deleted: resp.Deleted,
		ID:      resp.ID,
	})
}

// parseTaskID reads the :id path parameter. On failure it writes the
// 400 response and reports false.
func parseTaskID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Invalid task id",
		})
		return 0, false
	}
	return id, true
}

// taskError maps a service failure to the HTTP response. The service
// surfaces missing tasks in the error text, which is all that crosses
// the request-reply boundary.
func taskError(c *fiber.Ctx, err error, code, message string) error {
	if strings.Contains(err.Error(), "not found") {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   code,
		Message: message,
	})
}

func toTaskResponse(t taskservice.TaskResponse) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CreatedDate: t.CreatedDate,
		IsCompleted: t.IsCompleted,
	}
}

func toTaskResponses(ts []taskservice.TaskResponse) []TaskResponse {
	out := make([]TaskResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTaskResponse(t))
	}
	return out
}
