package taskedit

import "log"

// LogView renders the edit form to the application log. It stands in
// for a real UI surface when the app runs headless.
type LogView struct{}

// DisplayForm implements View.
func (LogView) DisplayForm(form Form) {
	state := "read-only"
	if form.Editable {
		state = "editable"
	}
	if form.Title == "" && form.CreatedDateString == "" {
		log.Printf("[taskedit] blank form (%s)", state)
		return
	}
	log.Printf("[taskedit] form (%s): %q created %s completed=%t",
		state, form.Title, form.CreatedDateString, form.IsCompleted)
}

// ShowLoading implements View.
func (LogView) ShowLoading() {
	log.Println("[taskedit] saving...")
}

// HideLoading implements View.
func (LogView) HideLoading() {}

// ShowError implements View.
func (LogView) ShowError(message string) {
	log.Printf("[taskedit] error: %s", message)
}

// LogRouter logs the close instead of dismissing a screen.
type LogRouter struct{}

// CloseEditTask implements Router.
func (LogRouter) CloseEditTask() {
	log.Println("[taskedit] close")
}
