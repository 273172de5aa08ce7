package tasklist

import (
	"errors"
	"fmt"

	"github.com/TaZMaN-tech/TodoApp/modules/remote"
	"github.com/TaZMaN-tech/TodoApp/modules/taskrepo"
)

// User-facing copy for the list screen. Kept in one place so every
// failure surfaces as a dismissible, human-readable message.
const (
	msgNoTasks      = "No tasks yet. Add your first task to get started."
	msgLoadFailed   = "Could not load your tasks. Please try again."
	msgSeedFailed   = "Could not download the starter tasks."
	msgDeleteFailed = "Could not delete the task. Please try again."
	msgUpdateFailed = "Could not update the task. Refreshing the list."
)

func emptySearchMessage(query string) string {
	return fmt.Sprintf("No results for %q.", query)
}

// errorMessage maps a failure to its user-facing copy. Each network
// failure kind gets distinct wording; storage failures collapse into
// the generic persistence message of the calling operation.
func errorMessage(err error, fallback string) string {
	var statusErr *remote.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("The server responded with an error (HTTP %d).", statusErr.Code)
	}
	var transportErr *remote.TransportError
	if errors.As(err, &transportErr) {
		return "Could not reach the server. Check your connection."
	}
	if errors.Is(err, remote.ErrEmptyBody) {
		return "The server returned no data."
	}
	var decodeErr *remote.DecodeError
	if errors.As(err, &decodeErr) {
		return "The server returned data in an unexpected format."
	}
	if errors.Is(err, taskrepo.ErrNotFound) {
		return "That task no longer exists."
	}
	return fallback
}
