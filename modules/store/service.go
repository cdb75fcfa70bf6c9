package store

import (
	"context"
	"errors"
	"time"

	"github.com/example/task-api/domain/task"
	"github.com/example/task-api/domain/user"
)

var (
	// ErrAssignedUserNotFound is returned when a task references an unknown user.
	ErrAssignedUserNotFound = errors.New("assigned user not found")
)

// Service implements the storage operations for users and tasks.
type Service struct {
	users *UserRepository
	tasks *TaskRepository
}

// NewService creates a new storage service.
func NewService(users *UserRepository, tasks *TaskRepository) *Service {
	return &Service{users: users, tasks: tasks}
}

// CreateUser creates a user after checking that the email is not taken. The
// repository's unique index covers the window between check and insert.
func (s *Service) CreateUser(_ context.Context, name, email string) (*user.User, error) {
	exists, err := s.users.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	u := &user.User{Name: name, Email: email}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(_ context.Context, id int) (*user.User, error) {
	return s.users.FindByID(id)
}

// ListUsers retrieves all users.
func (s *Service) ListUsers(_ context.Context) ([]*user.User, error) {
	return s.users.FindAll()
}

// UpdateUser overwrites the name and/or email of an existing user. Empty
// strings leave the current value untouched.
func (s *Service) UpdateUser(_ context.Context, id int, name, email string) (*user.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		u.Name = name
	}
	if email != "" && email != u.Email {
		exists, err := s.users.EmailExists(email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailExists
		}
		u.Email = email
	}
	if err := s.users.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser removes a user by ID.
func (s *Service) DeleteUser(_ context.Context, id int) error {
	return s.users.Delete(id)
}

// TaskInput carries the fields accepted when creating a task. A nil or zero
// AssignedUserID means the task starts unassigned.
type TaskInput struct {
	Title          string
	Description    string
	DueDate        *time.Time
	Status         string
	AssignedUserID *int
}

// CreateTask creates a task. The status defaults to "pending" and the
// assignee, when given, must reference an existing user.
func (s *Service) CreateTask(_ context.Context, in TaskInput) (*task.Task, error) {
	t := &task.Task{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Status:      in.Status,
	}
	if t.Status == "" {
		t.Status = "pending"
	}
	if in.AssignedUserID != nil && *in.AssignedUserID != 0 {
		if _, err := s.users.FindByID(*in.AssignedUserID); err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return nil, ErrAssignedUserNotFound
			}
			return nil, err
		}
		t.AssignedUserID = in.AssignedUserID
	}
	if err := s.tasks.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTask retrieves a task by ID.
func (s *Service) GetTask(_ context.Context, id int) (*task.Task, error) {
	return s.tasks.FindByID(id)
}

// ListTasks returns one page of tasks plus paging metadata. Page and limit
// fall back to 1 and 10 when out of range.
func (s *Service) ListTasks(_ context.Context, filter TaskFilter, page, limit int) ([]*task.Task, int64, int, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	tasks, total, err := s.tasks.List(filter, page, limit)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return tasks, total, page, pages, nil
}

// TaskUpdate carries the fields accepted when updating a task. String fields
// overwrite only when non-empty; AssignedUserID overwrites whenever present,
// and SetDueDate distinguishes "change the due date" from "leave it alone".
type TaskUpdate struct {
	Title          string
	Description    string
	SetDueDate     bool
	DueDate        *time.Time
	Status         string
	AssignedUserID *int
}

// UpdateTask applies a partial update to an existing task.
func (s *Service) UpdateTask(_ context.Context, id int, in TaskUpdate) (*task.Task, error) {
	t, err := s.tasks.FindByID(id)
	if err != nil {
		return nil, err
	}
	if in.Title != "" {
		t.Title = in.Title
	}
	if in.Description != "" {
		t.Description = in.Description
	}
	if in.SetDueDate {
		t.DueDate = in.DueDate
	}
	if in.Status != "" {
		t.Status = in.Status
	}
	if in.AssignedUserID != nil {
		if _, err := s.users.FindByID(*in.AssignedUserID); err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return nil, ErrAssignedUserNotFound
			}
			return nil, err
		}
		t.AssignedUserID = in.AssignedUserID
	}
	if err := s.tasks.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTask removes a task by ID.
func (s *Service) DeleteTask(_ context.Context, id int) error {
	return s.tasks.Delete(id)
}
