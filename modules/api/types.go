package api

// CreateUserRequest represents a user creation request.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateUserResponse represents a successful user creation.
type CreateUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// CreateTaskRequest represents a task creation request. AssignedUserID is a
// pointer so an absent field can be told apart from an explicit value.
type CreateTaskRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	DueDate        string `json:"due_date"`
	Status         string `json:"status"`
	AssignedUserID *int   `json:"assignedUserId"`
}

// UpdateTaskRequest represents a partial task update request. Empty strings
// mean the field was not sent; a nil AssignedUserID leaves the assignee alone.
type UpdateTaskRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	DueDate        string `json:"due_date"`
	Status         string `json:"status"`
	AssignedUserID *int   `json:"assignedUserId"`
}

// TaskResponse represents a task in API responses. The due date is rendered
// as YYYY-MM-DD or null.
type TaskResponse struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	DueDate        *string `json:"due_date"`
	Status         string  `json:"status"`
	AssignedUserID *int    `json:"assigned_user_id"`
}

// CreateTaskResponse represents a successful task creation.
type CreateTaskResponse struct {
	Message string       `json:"message"`
	Task    TaskResponse `json:"task"`
}

// UpdateTaskResponse represents a successful task update.
type UpdateTaskResponse struct {
	Message string       `json:"message"`
	Task    TaskResponse `json:"task"`
}

// TaskListResponse represents one page of tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
}

// MessageResponse represents a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
