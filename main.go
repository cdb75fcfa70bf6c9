package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/task-api/modules/api"
	"github.com/example/task-api/modules/store"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Task Management API ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework
	// Order: independent modules first, then dependent modules
	app.Register(store.NewModule()) // Independent module (provides storage services)
	app.Register(api.NewModule())   // Depends on store module

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

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints (default http://localhost:8080):")
	log.Println("")
	log.Println("  Public Endpoints:")
	log.Println("  GET    /health          - Health check")
	log.Println("")
	log.Println("  Protected Endpoints (require x-api-key header):")
	log.Println("  POST   /users           - Create a user")
	log.Println("  GET    /users           - List all users")
	log.Println("  GET    /users/:id       - Get user by ID")
	log.Println("  POST   /tasks           - Create a task")
	log.Println("  GET    /tasks           - List tasks (status, assignedUserId, page, limit)")
	log.Println("  GET    /tasks/:id       - Get task by ID")
	log.Println("  PUT    /tasks/:id       - Update task fields")
	log.Println("  DELETE /tasks/:id       - Delete a task")
	log.Println("")
	log.Println("Configuration: API_KEY, PORT, DB_PATH, DB_DEBUG")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
