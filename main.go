package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/TaZMaN-tech/TodoApp/domain/task"
	"github.com/TaZMaN-tech/TodoApp/modules/api"
	"github.com/TaZMaN-tech/TodoApp/modules/taskedit"
	"github.com/TaZMaN-tech/TodoApp/modules/tasklist"
	"github.com/TaZMaN-tech/TodoApp/modules/taskservice"
	"github.com/TaZMaN-tech/TodoApp/modules/taskstore"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== TodoApp ===")
	log.Println("Task list with local persistence and first-launch remote seeding")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// The store module owns the SQLite connection; every other module
	// reaches the data through it.
	storeModule := taskstore.NewModule()
	editModule := taskedit.NewModule(storeModule)
	listModule := tasklist.NewModule(storeModule)

	// The list screen navigates into the edit module's screens.
	listModule.SetRouter(&screenRouter{edit: editModule})

	app.Register(storeModule)
	app.Register(taskservice.NewModule(storeModule))
	app.Register(editModule)
	app.Register(listModule)
	app.Register(api.NewModule())

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

// screenRouter opens the edit module's screens from the list screen.
// Headless runs render them through the log-backed views.
type screenRouter struct {
	edit *taskedit.Module
}

func (r *screenRouter) OpenCreateTask() {
	r.edit.OpenCreate(taskedit.LogView{}, taskedit.LogRouter{})
}

func (r *screenRouter) OpenEditTask(e task.Entity) {
	r.edit.OpenEdit(taskedit.LogView{}, taskedit.LogRouter{}, e)
}

func (r *screenRouter) OpenTaskDetails(e task.Entity) {
	r.edit.OpenDetails(taskedit.LogView{}, taskedit.LogRouter{}, e)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("HTTP API:")
	log.Println("  GET    /health                        - Health check")
	log.Println("  GET    /api/v1/tasks?query=...        - List or search tasks")
	log.Println("  POST   /api/v1/tasks                  - Create a task")
	log.Println("  GET    /api/v1/tasks/:id              - Get a task")
	log.Println("  PUT    /api/v1/tasks/:id              - Update title/description")
	log.Println("  PATCH  /api/v1/tasks/:id/completion   - Set completion state")
	log.Println("  DELETE /api/v1/tasks/:id              - Delete a task")
	log.Println("")
	log.Println("Available Services (via NATS request-reply):")
	log.Println("  task.create / task.get / task.list / task.update / task.toggle / task.delete")
	log.Println("")
	log.Println("The first start seeds the store from the remote todos feed;")
	log.Println("set TODOS_URL to point at a different feed, DB_PATH for the")
	log.Println("database location.")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
