package tasklist

import (
	"log"

	"github.com/TaZMaN-tech/TodoApp/domain/task"
)

// LogView renders the list screen to the application log. It stands
// in for a real UI surface when the app runs headless; the API module
// is the interactive adapter.
type LogView struct{}

// DisplayTasks implements View.
func (LogView) DisplayTasks(viewModels []task.ViewModel) {
	log.Printf("[tasklist] %d task(s):", len(viewModels))
	for _, vm := range viewModels {
		marker := " "
		if vm.IsCompleted {
			marker = "x"
		}
		log.Printf("[tasklist]   [%s] %s (%s)", marker, vm.Title, vm.CreatedDateString)
	}
}

// ShowLoading implements View.
func (LogView) ShowLoading() {
	log.Println("[tasklist] loading...")
}

// HideLoading implements View.
func (LogView) HideLoading() {}

// ShowError implements View.
func (LogView) ShowError(message string) {
	log.Printf("[tasklist] error: %s", message)
}

// ShowEmptyState implements View.
func (LogView) ShowEmptyState(message string) {
	log.Printf("[tasklist] empty: %s", message)
}

// LogRouter logs navigation requests instead of opening screens.
type LogRouter struct{}

// OpenCreateTask implements Router.
func (LogRouter) OpenCreateTask() {
	log.Println("[tasklist] navigate: create task")
}

// OpenEditTask implements Router.
func (LogRouter) OpenEditTask(e task.Entity) {
	log.Printf("[tasklist] navigate: edit task %d", e.ID)
}

// OpenTaskDetails implements Router.
func (LogRouter) OpenTaskDetails(e task.Entity) {
	log.Printf("[tasklist] navigate: task %d details", e.ID)
}
