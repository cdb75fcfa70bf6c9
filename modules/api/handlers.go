package api

import (
	"log"
	"strings"
	"time"

	"github.com/example/task-api/modules/store"
	"github.com/gofiber/fiber/v2"
)

// dueDateLayout is the wire format for due dates.
const dueDateLayout = "2006-01-02"

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	store store.StorePort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(storePort store.StorePort) *Handlers {
	return &Handlers{
		store: storePort,
	}
}

// CreateUser handles POST /users.
func (h *Handlers) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}

	if req.Name == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Name and email are required",
		})
	}

	resp, err := h.store.CreateUser(c.UserContext(), store.CreateUserRequest{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return h.handleStoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(CreateUserResponse{
		Message: "User created successfully",
		User:    toUserResponse(resp.User),
	})
}

// GetUser handles GET /users/:id.
func (h *Handlers) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "User not found",
		})
	}

	resp, err := h.store.GetUser(c.UserContext(), id)
	if err != nil {
		return h.handleStoreError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toUserResponse(resp.User))
}

// ListUsers handles GET /users.
func (h *Handlers) ListUsers(c *fiber.Ctx) error {
	resp, err := h.store.ListUsers(c.UserContext())
	if err != nil {
		return h.handleStoreError(c, err)
	}

	users := make([]UserResponse, 0, len(resp.Users))
	for _, u := range resp.Users {
		users = append(users, toUserResponse(u))
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// CreateTask handles POST /tasks.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Title is required",
		})
	}

	dueDate, ok := parseDueDate(req.DueDate)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid due_date format. Use YYYY-MM-DD.",
		})
	}

	resp, err := h.store.CreateTask(c.UserContext(), store.CreateTaskRequest{
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        dueDate,
		Status:         req.Status,
		AssignedUserID: req.AssignedUserID,
	})
	if err != nil {
		return h.handleStoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(CreateTaskResponse{
		Message: "Task created successfully",
		Task:    toTaskResponse(resp.Task),
	})
}

// GetTask handles GET /tasks/:id.
func (h *Handlers) GetTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Task not found",
		})
	}

	resp, err := h.store.GetTask(c.UserContext(), id)
	if err != nil {
		return h.handleStoreError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(toTaskResponse(resp.Task))
}

// ListTasks handles GET /tasks with optional filters and pagination.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	req := store.ListTasksRequest{
		Status:         c.Query("status"),
		AssignedUserID: c.QueryInt("assignedUserId", 0),
		Page:           c.QueryInt("page", 1),
		Limit:          c.QueryInt("limit", 10),
	}

	resp, err := h.store.ListTasks(c.UserContext(), req)
	if err != nil {
		return h.handleStoreError(c, err)
	}

	tasks := make([]TaskResponse, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		tasks = append(tasks, toTaskResponse(t))
	}
	return c.Status(fiber.StatusOK).JSON(TaskListResponse{
		Tasks: tasks,
		Total: resp.Total,
		Page:  resp.Page,
		Pages: resp.Pages,
	})
}

// UpdateTask handles PUT /tasks/:id. The task is looked up before the body
// is read, so an unknown ID wins over a malformed payload.
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Task not found",
		})
	}

	if _, err := h.store.GetTask(c.UserContext(), id); err != nil {
		return h.handleStoreError(c, err)
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}

	dueDate, ok := parseDueDate(req.DueDate)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid due_date format. Use YYYY-MM-DD.",
		})
	}

	resp, err := h.store.UpdateTask(c.UserContext(), store.UpdateTaskRequest{
		ID:             id,
		Title:          req.Title,
		Description:    req.Description,
		SetDueDate:     dueDate != nil,
		DueDate:        dueDate,
		Status:         req.Status,
		AssignedUserID: req.AssignedUserID,
	})
	if err != nil {
		return h.handleStoreError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(UpdateTaskResponse{
		Message: "Task updated successfully",
		Task:    toTaskResponse(resp.Task),
	})
}

// DeleteTask handles DELETE /tasks/:id.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Task not found",
		})
	}

	if _, err := h.store.DeleteTask(c.UserContext(), id); err != nil {
		return h.handleStoreError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(MessageResponse{
		Message: "Task deleted successfully",
	})
}

// parseDueDate parses an optional YYYY-MM-DD value. An empty string means
// the field was not sent and yields a nil date.
func parseDueDate(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	parsed, err := time.Parse(dueDateLayout, s)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}

// handleStoreError maps service errors to HTTP responses. Errors cross the
// service bus as messages, so the mapping matches on text; the assigned-user
// case must be checked before the plain user one.
func (h *Handlers) handleStoreError(c *fiber.Ctx, err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "assigned user not found"):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Assigned user not found",
		})
	case strings.Contains(errStr, "task not found"):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Task not found",
		})
	case strings.Contains(errStr, "user not found"):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "User not found",
		})
	case strings.Contains(errStr, "email already exists"):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error: "Email already exists",
		})
	default:
		// Log the actual error but don't expose it to the client
		log.Printf("[api] Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Internal server error",
		})
	}
}

func toUserResponse(u store.UserData) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func toTaskResponse(t store.TaskData) TaskResponse {
	var due *string
	if t.DueDate != nil {
		s := t.DueDate.Format(dueDateLayout)
		due = &s
	}
	return TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		DueDate:        due,
		Status:         t.Status,
		AssignedUserID: t.AssignedUserID,
	}
}
