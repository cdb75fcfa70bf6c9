package store

import "time"

// UserData is the wire form of a user exchanged over the service bus.
type UserData struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TaskData is the wire form of a task exchanged over the service bus.
type TaskData struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	DueDate        *time.Time `json:"due_date"`
	Status         string     `json:"status"`
	AssignedUserID *int       `json:"assigned_user_id"`
}

// CreateUserRequest is the request for the create-user service.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateUserResponse is the response for the create-user service.
type CreateUserResponse struct {
	User UserData `json:"user"`
}

// GetUserRequest is the request for the get-user service.
type GetUserRequest struct {
	ID int `json:"id"`
}

// GetUserResponse is the response for the get-user service.
type GetUserResponse struct {
	User UserData `json:"user"`
}

// ListUsersRequest is the request for the list-users service.
type ListUsersRequest struct{}

// ListUsersResponse is the response for the list-users service.
type ListUsersResponse struct {
	Users []UserData `json:"users"`
}

// CreateTaskRequest is the request for the create-task service.
type CreateTaskRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	DueDate        *time.Time `json:"due_date"`
	Status         string     `json:"status"`
	AssignedUserID *int       `json:"assigned_user_id"`
}

// CreateTaskResponse is the response for the create-task service.
type CreateTaskResponse struct {
	Task TaskData `json:"task"`
}

// GetTaskRequest is the request for the get-task service.
type GetTaskRequest struct {
	ID int `json:"id"`
}

// GetTaskResponse is the response for the get-task service.
type GetTaskResponse struct {
	Task TaskData `json:"task"`
}

// ListTasksRequest is the request for the list-tasks service.
type ListTasksRequest struct {
	Status         string `json:"status"`
	AssignedUserID int    `json:"assigned_user_id"`
	Page           int    `json:"page"`
	Limit          int    `json:"limit"`
}

// ListTasksResponse is the response for the list-tasks service.
type ListTasksResponse struct {
	Tasks []TaskData `json:"tasks"`
	Total int64      `json:"total"`
	Page  int        `json:"page"`
	Pages int        `json:"pages"`
}

// UpdateTaskRequest is the request for the update-task service. SetDueDate
// marks whether DueDate should be applied, so a null due date can be told
// apart from one that was never sent.
type UpdateTaskRequest struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	SetDueDate     bool       `json:"set_due_date"`
	DueDate        *time.Time `json:"due_date"`
	Status         string     `json:"status"`
	AssignedUserID *int       `json:"assigned_user_id"`
}

// UpdateTaskResponse is the response for the update-task service.
type UpdateTaskResponse struct {
	Task TaskData `json:"task"`
}

// DeleteTaskRequest is the request for the delete-task service.
type DeleteTaskRequest struct {
	ID int `json:"id"`
}

// DeleteTaskResponse is the response for the delete-task service.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}
