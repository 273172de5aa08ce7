// Package remote fetches the initial todo list from the remote
// endpoint. One bounded request, no retries; every failure kind is a
// distinct error so the presentation boundary can map it to its own
// message.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/TaZMaN-tech/TodoApp/domain/task"
)

const (
	defaultTodosURL = "https://dummyjson.com/todos"
	requestTimeout  = 30 * time.Second
)

// Client fetches todos from the remote endpoint.
type Client struct {
	httpClient *http.Client
	todosURL   string
}

// NewClient creates a client for the endpoint in TODOS_URL, falling
// back to the public default.
func NewClient() *Client {
	url := os.Getenv("TODOS_URL")
	if url == "" {
		url = defaultTodosURL
	}
	return NewClientWithURL(url)
}

// NewClientWithURL creates a client for a specific endpoint.
func NewClientWithURL(url string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		todosURL:   url,
	}
}

// FetchTodos issues one GET to the todos endpoint and maps the
// envelope to domain entities. The created date of every mapped task
// is the time of mapping; the remote source does not provide one.
func (c *Client) FetchTodos(ctx context.Context) ([]task.Entity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.todosURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}

	var envelope todosResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return mapTodos(envelope.Todos), nil
}

func mapTodos(dtos []todoDTO) []task.Entity {
	now := time.Now()
	es := make([]task.Entity, 0, len(dtos))
	for _, dto := range dtos {
		es = append(es, task.Entity{
			ID:          int64(dto.ID),
			Title:       dto.Todo,
			CreatedDate: now,
			IsCompleted: dto.Completed,
		})
	}
	return es
}
