package taskedit

import (
	"errors"

	"github.com/TaZMaN-tech/TodoApp/modules/taskrepo"
)

// User-facing copy for the edit screen.
const (
	msgTitleRequired = "A title is required."
	msgCreateFailed  = "Could not save the new task. Please try again."
	msgSaveFailed    = "Could not save your changes. Please try again."
)

func errorMessage(err error, fallback string) string {
	if errors.Is(err, taskrepo.ErrNotFound) {
		return "That task no longer exists."
	}
	return fallback
}
