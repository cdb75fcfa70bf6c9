package store

import (
	"context"
	"encoding/json"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// StorePort defines the interface other modules use to access storage.
type StorePort interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (CreateUserResponse, error)
	GetUser(ctx context.Context, id int) (GetUserResponse, error)
	ListUsers(ctx context.Context) (ListUsersResponse, error)
	CreateTask(ctx context.Context, req CreateTaskRequest) (CreateTaskResponse, error)
	GetTask(ctx context.Context, id int) (GetTaskResponse, error)
	ListTasks(ctx context.Context, req ListTasksRequest) (ListTasksResponse, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (UpdateTaskResponse, error)
	DeleteTask(ctx context.Context, id int) (DeleteTaskResponse, error)
}

// StoreAdapter implements StorePort using the service container.
type StoreAdapter struct {
	container mono.ServiceContainer
}

// NewStoreAdapter creates a new StoreAdapter.
func NewStoreAdapter(container mono.ServiceContainer) *StoreAdapter {
	return &StoreAdapter{
		container: container,
	}
}

var _ StorePort = (*StoreAdapter)(nil)

func (a *StoreAdapter) call(ctx context.Context, service string, req, resp any) error {
	return helper.CallRequestReplyService[any, any](
		ctx,
		a.container,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	)
}

// CreateUser creates a user.
func (a *StoreAdapter) CreateUser(ctx context.Context, req CreateUserRequest) (CreateUserResponse, error) {
	var resp CreateUserResponse
	err := a.call(ctx, "create-user", &req, &resp)
	return resp, err
}

// GetUser retrieves a user by ID.
func (a *StoreAdapter) GetUser(ctx context.Context, id int) (GetUserResponse, error) {
	req := GetUserRequest{ID: id}
	var resp GetUserResponse
	err := a.call(ctx, "get-user", &req, &resp)
	return resp, err
}

// ListUsers retrieves all users.
func (a *StoreAdapter) ListUsers(ctx context.Context) (ListUsersResponse, error) {
	req := ListUsersRequest{}
	var resp ListUsersResponse
	err := a.call(ctx, "list-users", &req, &resp)
	return resp, err
}

// CreateTask creates a task.
func (a *StoreAdapter) CreateTask(ctx context.Context, req CreateTaskRequest) (CreateTaskResponse, error) {
	var resp CreateTaskResponse
	err := a.call(ctx, "create-task", &req, &resp)
	return resp, err
}

// GetTask retrieves a task by ID.
func (a *StoreAdapter) GetTask(ctx context.Context, id int) (GetTaskResponse, error) {
	req := GetTaskRequest{ID: id}
	var resp GetTaskResponse
	err := a.call(ctx, "get-task", &req, &resp)
	return resp, err
}

// ListTasks retrieves a filtered, paginated task list.
func (a *StoreAdapter) ListTasks(ctx context.Context, req ListTasksRequest) (ListTasksResponse, error) {
	var resp ListTasksResponse
	err := a.call(ctx, "list-tasks", &req, &resp)
	return resp, err
}

// UpdateTask applies a partial update to a task.
func (a *StoreAdapter) UpdateTask(ctx context.Context, req UpdateTaskRequest) (UpdateTaskResponse, error) {
	var resp UpdateTaskResponse
	err := a.call(ctx, "update-task", &req, &resp)
	return resp, err
}

// DeleteTask removes a task by ID.
func (a *StoreAdapter) DeleteTask(ctx context.Context, id int) (DeleteTaskResponse, error) {
	req := DeleteTaskRequest{ID: id}
	var resp DeleteTaskResponse
	err := a.call(ctx, "delete-task", &req, &resp)
	return resp, err
}
