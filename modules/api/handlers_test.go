package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/TaZMaN-tech/TodoApp/modules/taskservice"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// mockTaskPort implements taskservice.TaskPort for testing.
type mockTaskPort struct {
	createFunc func(ctx context.Context, req taskservice.CreateTaskRequest) (taskservice.TaskResponse, error)
	getFunc    func(ctx context.Context, id int64) (taskservice.TaskResponse, error)
	listFunc   func(ctx context.Context, query string) (taskservice.ListTasksResponse, error)
	updateFunc func(ctx context.Context, req taskservice.UpdateTaskRequest) (taskservice.TaskResponse, error)
	toggleFunc func(ctx context.Context, req taskservice.ToggleTaskRequest) (taskservice.TaskResponse, error)
	deleteFunc func(ctx context.Context, id int64) (taskservice.DeleteTaskResponse, error)
}

func (m *mockTaskPort) Create(ctx context.Context, req taskservice.CreateTaskRequest) (taskservice.TaskResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return taskservice.TaskResponse{}, errors.New("not implemented")
}

func (m *mockTaskPort) Get(ctx context.Context, id int64) (taskservice.TaskResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return taskservice.TaskResponse{}, errors.New("not implemented")
}

func (m *mockTaskPort) List(ctx context.Context, query string) (taskservice.ListTasksResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, query)
	}
	return taskservice.ListTasksResponse{}, errors.New("not implemented")
}

func (m *mockTaskPort) Update(ctx context.Context, req taskservice.UpdateTaskRequest) (taskservice.TaskResponse, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, req)
	}
	return taskservice.TaskResponse{}, errors.New("not implemented")
}

func (m *mockTaskPort) Toggle(ctx context.Context, req taskservice.ToggleTaskRequest) (taskservice.TaskResponse, error) {
	if m.toggleFunc != nil {
		return m.toggleFunc(ctx, req)
	}
	return taskservice.TaskResponse{}, errors.New("not implemented")
}

func (m *mockTaskPort) Delete(ctx context.Context, id int64) (taskservice.DeleteTaskResponse, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return taskservice.DeleteTaskResponse{}, errors.New("not implemented")
}

func newTestApp(port taskservice.TaskPort) *fiber.App {
	m := &APIModule{taskAdapter: port, port: "3000"}
	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})
	m.app.Use(recover.New())
	m.setupRoutes()
	return m.app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("io.ReadAll() error = %v", err)
	}
	return resp, string(respBody)
}

func sampleTask() taskservice.TaskResponse {
	return taskservice.TaskResponse{
		ID:          1,
		Title:       "Buy milk",
		Description: "2 liters",
		CreatedDate: time.Date(2026, time.January, 23, 14, 30, 0, 0, time.UTC),
	}
}

func TestListTasks(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		expectedQuery  string
		expectedStatus int
		expectedBody   string
		listErr        error
	}{
		{
			name:           "plain list",
			path:           "/api/v1/tasks",
			expectedQuery:  "",
			expectedStatus: http.StatusOK,
			expectedBody:   `"total":1`,
		},
		{
			name:           "search query forwarded",
			path:           "/api/v1/tasks?query=milk",
			expectedQuery:  "milk",
			expectedStatus: http.StatusOK,
			expectedBody:   `"Buy milk"`,
		},
		{
			name:           "service failure",
			path:           "/api/v1/tasks",
			listErr:        errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"list_failed"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery string
			app := newTestApp(&mockTaskPort{
				listFunc: func(_ context.Context, query string) (taskservice.ListTasksResponse, error) {
					gotQuery = query
					if tt.listErr != nil {
						return taskservice.ListTasksResponse{}, tt.listErr
					}
					return taskservice.ListTasksResponse{
						Tasks: []taskservice.TaskResponse{sampleTask()},
						Total: 1,
					}, nil
				},
			})

			resp, body := doRequest(t, app, "GET", tt.path, "")
			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.expectedStatus)
			}
			if !strings.Contains(body, tt.expectedBody) {
				t.Errorf("body = %s, want to contain %s", body, tt.expectedBody)
			}
			if tt.listErr == nil && gotQuery != tt.expectedQuery {
				t.Errorf("query = %q, want %q", gotQuery, tt.expectedQuery)
			}
		})
	}
}

func TestCreateTask(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		createErr      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "valid",
			body:           `{"title":"Buy milk","description":"2 liters"}`,
			expectedStatus: http.StatusCreated,
			expectedBody:   `"Buy milk"`,
		},
		{
			name:           "missing title",
			body:           `{"description":"no title"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"Title is required"`,
		},
		{
			name:           "whitespace title",
			body:           `{"title":"   "}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"validation_error"`,
		},
		{
			name:           "oversized title",
			body:           `{"title":"` + strings.Repeat("x", 256) + `"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"Title exceeds maximum length"`,
		},
		{
			name:           "malformed body",
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid_request"`,
		},
		{
			name:           "service failure",
			body:           `{"title":"Buy milk"}`,
			createErr:      errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"create_failed"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&mockTaskPort{
				createFunc: func(_ context.Context, req taskservice.CreateTaskRequest) (taskservice.TaskResponse, error) {
					if tt.createErr != nil {
						return taskservice.TaskResponse{}, tt.createErr
					}
					return taskservice.TaskResponse{
						ID:          1,
						Title:       strings.TrimSpace(req.Title),
						Description: req.Description,
						CreatedDate: time.Now(),
					}, nil
				},
			})

			resp, body := doRequest(t, app, "POST", "/api/v1/tasks", tt.body)
			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.expectedStatus)
			}
			if !strings.Contains(body, tt.expectedBody) {
				t.Errorf("body = %s, want to contain %s", body, tt.expectedBody)
			}
		})
	}
}

func TestGetTask(t *testing.T) {
	app := newTestApp(&mockTaskPort{
		getFunc: func(_ context.Context, id int64) (taskservice.TaskResponse, error) {
			if id != 1 {
				return taskservice.TaskResponse{}, errors.New("task not found")
			}
			return sampleTask(), nil
		},
	})

	t.Run("existing", func(t *testing.T) {
		resp, body := doRequest(t, app, "GET", "/api/v1/tasks/1", "")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
		if !strings.Contains(body, `"Buy milk"`) {
			t.Errorf("body = %s", body)
		}
	})

	t.Run("missing", func(t *testing.T) {
		resp, body := doRequest(t, app, "GET", "/api/v1/tasks/404", "")
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
		if !strings.Contains(body, `"not_found"`) {
			t.Errorf("body = %s", body)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		resp, body := doRequest(t, app, "GET", "/api/v1/tasks/abc", "")
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
		if !strings.Contains(body, `"Invalid task id"`) {
			t.Errorf("body = %s", body)
		}
	})
}

func TestUpdateTask(t *testing.T) {
	app := newTestApp(&mockTaskPort{
		updateFunc: func(_ context.Context, req taskservice.UpdateTaskRequest) (taskservice.TaskResponse, error) {
			if req.ID != 1 {
				return taskservice.TaskResponse{}, errors.New("task not found")
			}
			out := sampleTask()
			if req.Title != nil {
				out.Title = *req.Title
			}
			return out, nil
		},
	})

	t.Run("valid", func(t *testing.T) {
		resp, body := doRequest(t, app, "PUT", "/api/v1/tasks/1", `{"title":"Buy oat milk"}`)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
		if !strings.Contains(body, `"Buy oat milk"`) {
			t.Errorf("body = %s", body)
		}
	})

	t.Run("empty title rejected", func(t *testing.T) {
		resp, body := doRequest(t, app, "PUT", "/api/v1/tasks/1", `{"title":"  "}`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
		if !strings.Contains(body, `"Title cannot be empty"`) {
			t.Errorf("body = %s", body)
		}
	})

	t.Run("missing task", func(t *testing.T) {
		resp, _ := doRequest(t, app, "PUT", "/api/v1/tasks/404", `{"title":"ghost"}`)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}

func TestSetCompletion(t *testing.T) {
	var gotReq taskservice.ToggleTaskRequest
	app := newTestApp(&mockTaskPort{
		toggleFunc: func(_ context.Context, req taskservice.ToggleTaskRequest) (taskservice.TaskResponse, error) {
			gotReq = req
			out := sampleTask()
			out.IsCompleted = req.IsCompleted
			return out, nil
		},
	})

	resp, body := doRequest(t, app, "PATCH", "/api/v1/tasks/1/completion", `{"is_completed":true}`)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if gotReq.ID != 1 || !gotReq.IsCompleted {
		t.Errorf("forwarded request = %+v", gotReq)
	}
	if !strings.Contains(body, `"is_completed":true`) {
		t.Errorf("body = %s", body)
	}
}

func TestDeleteTask(t *testing.T) {
	app := newTestApp(&mockTaskPort{
		deleteFunc: func(_ context.Context, id int64) (taskservice.DeleteTaskResponse, error) {
			return taskservice.DeleteTaskResponse{Deleted: true, ID: id}, nil
		},
	})

	resp, body := doRequest(t, app, "DELETE", "/api/v1/tasks/7", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, `"deleted":true`) {
		t.Errorf("body = %s", body)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(&mockTaskPort{})

	resp, body := doRequest(t, app, "GET", "/health", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, `"healthy"`) {
		t.Errorf("body = %s", body)
	}
}
