package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/example/task-api/domain/task"
	"github.com/example/task-api/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StoreModule provides the persistence services for users and tasks.
type StoreModule struct {
	db      *gorm.DB
	service *Service
	dbPath  string
}

// Compile-time interface checks.
var _ mono.Module = (*StoreModule)(nil)
var _ mono.ServiceProviderModule = (*StoreModule)(nil)
var _ mono.HealthCheckableModule = (*StoreModule)(nil)

// NewModule creates a new StoreModule.
func NewModule() *StoreModule {
	// Use environment variable for DB path, default to local file
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "tasks.db"
	}
	return &StoreModule{
		dbPath: dbPath,
	}
}

// Name returns the module name.
func (m *StoreModule) Name() string {
	return "store"
}

// Start initializes the store module.
func (m *StoreModule) Start(_ context.Context) error {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") != "" {
		logLevel = logger.Info
	}

	// TranslateError turns driver unique-constraint failures into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	// Auto-migrate the schema
	if err := db.AutoMigrate(&user.User{}, &task.Task{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	m.service = NewService(NewUserRepository(db), NewTaskRepository(db))

	log.Printf("[store] Module started (database: %s)", m.dbPath)
	return nil
}

// Stop shuts down the module.
func (m *StoreModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[store] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *StoreModule) Health(_ context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.Ping(); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"database": m.dbPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *StoreModule) RegisterServices(container mono.ServiceContainer) error {
	services := []struct {
		name     string
		register func() error
	}{
		{"create-user", func() error {
			return helper.RegisterTypedRequestReplyService(container, "create-user", json.Unmarshal, json.Marshal, m.handleCreateUser)
		}},
		{"get-user", func() error {
			return helper.RegisterTypedRequestReplyService(container, "get-user", json.Unmarshal, json.Marshal, m.handleGetUser)
		}},
		{"list-users", func() error {
			return helper.RegisterTypedRequestReplyService(container, "list-users", json.Unmarshal, json.Marshal, m.handleListUsers)
		}},
		{"create-task", func() error {
			return helper.RegisterTypedRequestReplyService(container, "create-task", json.Unmarshal, json.Marshal, m.handleCreateTask)
		}},
		{"get-task", func() error {
			return helper.RegisterTypedRequestReplyService(container, "get-task", json.Unmarshal, json.Marshal, m.handleGetTask)
		}},
		{"list-tasks", func() error {
			return helper.RegisterTypedRequestReplyService(container, "list-tasks", json.Unmarshal, json.Marshal, m.handleListTasks)
		}},
		{"update-task", func() error {
			return helper.RegisterTypedRequestReplyService(container, "update-task", json.Unmarshal, json.Marshal, m.handleUpdateTask)
		}},
		{"delete-task", func() error {
			return helper.RegisterTypedRequestReplyService(container, "delete-task", json.Unmarshal, json.Marshal, m.handleDeleteTask)
		}},
	}

	for _, svc := range services {
		if err := svc.register(); err != nil {
			return fmt.Errorf("failed to register %s service: %w", svc.name, err)
		}
	}

	log.Printf("[store] Registered services: create-user, get-user, list-users, create-task, get-task, list-tasks, update-task, delete-task")
	return nil
}

// handleCreateUser handles user creation.
func (m *StoreModule) handleCreateUser(ctx context.Context, req CreateUserRequest, _ *mono.Msg) (CreateUserResponse, error) {
	u, err := m.service.CreateUser(ctx, req.Name, req.Email)
	if err != nil {
		return CreateUserResponse{}, err
	}
	return CreateUserResponse{User: toUserData(u)}, nil
}

// handleGetUser handles user lookup.
func (m *StoreModule) handleGetUser(ctx context.Context, req GetUserRequest, _ *mono.Msg) (GetUserResponse, error) {
	u, err := m.service.GetUser(ctx, req.ID)
	if err != nil {
		return GetUserResponse{}, err
	}
	return GetUserResponse{User: toUserData(u)}, nil
}

// handleListUsers handles listing all users.
func (m *StoreModule) handleListUsers(ctx context.Context, _ ListUsersRequest, _ *mono.Msg) (ListUsersResponse, error) {
	users, err := m.service.ListUsers(ctx)
	if err != nil {
		return ListUsersResponse{}, err
	}

	data := make([]UserData, 0, len(users))
	for _, u := range users {
		data = append(data, toUserData(u))
	}
	return ListUsersResponse{Users: data}, nil
}

// handleCreateTask handles task creation.
func (m *StoreModule) handleCreateTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (CreateTaskResponse, error) {
	t, err := m.service.CreateTask(ctx, TaskInput{
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        req.DueDate,
		Status:         req.Status,
		AssignedUserID: req.AssignedUserID,
	})
	if err != nil {
		return CreateTaskResponse{}, err
	}
	return CreateTaskResponse{Task: toTaskData(t)}, nil
}

// handleGetTask handles task lookup.
func (m *StoreModule) handleGetTask(ctx context.Context, req GetTaskRequest, _ *mono.Msg) (GetTaskResponse, error) {
	t, err := m.service.GetTask(ctx, req.ID)
	if err != nil {
		return GetTaskResponse{}, err
	}
	return GetTaskResponse{Task: toTaskData(t)}, nil
}

// handleListTasks handles listing tasks with filters and pagination.
func (m *StoreModule) handleListTasks(ctx context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	filter := TaskFilter{Status: req.Status, AssignedUserID: req.AssignedUserID}
	tasks, total, page, pages, err := m.service.ListTasks(ctx, filter, req.Page, req.Limit)
	if err != nil {
		return ListTasksResponse{}, err
	}

	data := make([]TaskData, 0, len(tasks))
	for _, t := range tasks {
		data = append(data, toTaskData(t))
	}
	return ListTasksResponse{
		Tasks: data,
		Total: total,
		Page:  page,
		Pages: pages,
	}, nil
}

// handleUpdateTask handles partial task updates.
func (m *StoreModule) handleUpdateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (UpdateTaskResponse, error) {
	t, err := m.service.UpdateTask(ctx, req.ID, TaskUpdate{
		Title:          req.Title,
		Description:    req.Description,
		SetDueDate:     req.SetDueDate,
		DueDate:        req.DueDate,
		Status:         req.Status,
		AssignedUserID: req.AssignedUserID,
	})
	if err != nil {
		return UpdateTaskResponse{}, err
	}
	return UpdateTaskResponse{Task: toTaskData(t)}, nil
}

// handleDeleteTask handles task deletion.
func (m *StoreModule) handleDeleteTask(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if err := m.service.DeleteTask(ctx, req.ID); err != nil {
		return DeleteTaskResponse{}, err
	}
	return DeleteTaskResponse{Deleted: true}, nil
}

func toUserData(u *user.User) UserData {
	return UserData{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func toTaskData(t *task.Task) TaskData {
	return TaskData{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		DueDate:        t.DueDate,
		Status:         t.Status,
		AssignedUserID: t.AssignedUserID,
	}
}
