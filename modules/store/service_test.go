package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	db := setupTestDB(t)
	return NewService(NewUserRepository(db), NewTaskRepository(db))
}

func intPtr(v int) *int { return &v }

func TestService_CreateUser(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if u.ID == 0 {
		t.Error("expected ID to be assigned")
	}

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "Other Alice", "alice@example.com")
		if !errors.Is(err, ErrEmailExists) {
			t.Errorf("expected ErrEmailExists, got %v", err)
		}
	})
}

func TestService_UpdateUser(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if _, err := svc.CreateUser(ctx, "Bob", "bob@example.com"); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		updated, err := svc.UpdateUser(ctx, u.ID, "Alice B", "")
		if err != nil {
			t.Fatalf("UpdateUser() error = %v", err)
		}
		if updated.Name != "Alice B" || updated.Email != "alice@example.com" {
			t.Errorf("unexpected user after update %+v", updated)
		}
	})

	t.Run("taken email", func(t *testing.T) {
		_, err := svc.UpdateUser(ctx, u.ID, "", "bob@example.com")
		if !errors.Is(err, ErrEmailExists) {
			t.Errorf("expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.UpdateUser(ctx, 9999, "Nobody", "")
		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestService_CreateTask(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	t.Run("defaults status to pending", func(t *testing.T) {
		tk, err := svc.CreateTask(ctx, TaskInput{Title: "Write report"})
		if err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}
		if tk.Status != "pending" {
			t.Errorf("expected status pending, got %q", tk.Status)
		}
		if tk.AssignedUserID != nil {
			t.Errorf("expected unassigned task, got assignee %v", *tk.AssignedUserID)
		}
	})

	t.Run("with assignee", func(t *testing.T) {
		tk, err := svc.CreateTask(ctx, TaskInput{Title: "Review PR", AssignedUserID: &u.ID})
		if err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}
		if tk.AssignedUserID == nil || *tk.AssignedUserID != u.ID {
			t.Errorf("expected assignee %d, got %v", u.ID, tk.AssignedUserID)
		}
	})

	t.Run("unknown assignee", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, TaskInput{Title: "Orphan", AssignedUserID: intPtr(9999)})
		if !errors.Is(err, ErrAssignedUserNotFound) {
			t.Errorf("expected ErrAssignedUserNotFound, got %v", err)
		}
	})

	t.Run("zero assignee means unassigned", func(t *testing.T) {
		tk, err := svc.CreateTask(ctx, TaskInput{Title: "Unassigned", AssignedUserID: intPtr(0)})
		if err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}
		if tk.AssignedUserID != nil {
			t.Errorf("expected unassigned task, got assignee %v", *tk.AssignedUserID)
		}
	})
}

func TestService_UpdateTask(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tk, err := svc.CreateTask(ctx, TaskInput{
		Title:       "Original",
		Description: "Original description",
		DueDate:     &due,
	})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	t.Run("status only keeps other fields", func(t *testing.T) {
		updated, err := svc.UpdateTask(ctx, tk.ID, TaskUpdate{Status: "done"})
		if err != nil {
			t.Fatalf("UpdateTask() error = %v", err)
		}
		if updated.Status != "done" {
			t.Errorf("expected status done, got %q", updated.Status)
		}
		if updated.Title != "Original" || updated.Description != "Original description" {
			t.Errorf("expected other fields preserved, got %+v", updated)
		}
		if updated.DueDate == nil || !updated.DueDate.Equal(due) {
			t.Errorf("expected due date preserved, got %v", updated.DueDate)
		}
	})

	t.Run("clear due date", func(t *testing.T) {
		updated, err := svc.UpdateTask(ctx, tk.ID, TaskUpdate{SetDueDate: true, DueDate: nil})
		if err != nil {
			t.Fatalf("UpdateTask() error = %v", err)
		}
		if updated.DueDate != nil {
			t.Errorf("expected cleared due date, got %v", updated.DueDate)
		}
	})

	t.Run("assign user", func(t *testing.T) {
		updated, err := svc.UpdateTask(ctx, tk.ID, TaskUpdate{AssignedUserID: &u.ID})
		if err != nil {
			t.Fatalf("UpdateTask() error = %v", err)
		}
		if updated.AssignedUserID == nil || *updated.AssignedUserID != u.ID {
			t.Errorf("expected assignee %d, got %v", u.ID, updated.AssignedUserID)
		}
	})

	t.Run("unknown assignee", func(t *testing.T) {
		_, err := svc.UpdateTask(ctx, tk.ID, TaskUpdate{AssignedUserID: intPtr(9999)})
		if !errors.Is(err, ErrAssignedUserNotFound) {
			t.Errorf("expected ErrAssignedUserNotFound, got %v", err)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := svc.UpdateTask(ctx, 9999, TaskUpdate{Status: "done"})
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestService_ListTasks(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		tasks, total, page, pages, err := svc.ListTasks(ctx, TaskFilter{}, 0, 0)
		if err != nil {
			t.Fatalf("ListTasks() error = %v", err)
		}
		if total != 0 || pages != 0 || page != 1 {
			t.Errorf("expected total 0, pages 0, page 1; got total %d, pages %d, page %d", total, pages, page)
		}
		if len(tasks) != 0 {
			t.Errorf("expected no tasks, got %d", len(tasks))
		}
	})

	for i := 0; i < 7; i++ {
		if _, err := svc.CreateTask(ctx, TaskInput{Title: "Task"}); err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}
	}

	t.Run("defaults", func(t *testing.T) {
		tasks, total, page, pages, err := svc.ListTasks(ctx, TaskFilter{}, 0, 0)
		if err != nil {
			t.Fatalf("ListTasks() error = %v", err)
		}
		if page != 1 || total != 7 || pages != 1 {
			t.Errorf("expected page 1, total 7, pages 1; got page %d, total %d, pages %d", page, total, pages)
		}
		if len(tasks) != 7 {
			t.Errorf("expected 7 tasks, got %d", len(tasks))
		}
	})

	t.Run("rounds pages up", func(t *testing.T) {
		tasks, total, page, pages, err := svc.ListTasks(ctx, TaskFilter{}, 2, 3)
		if err != nil {
			t.Fatalf("ListTasks() error = %v", err)
		}
		if page != 2 || total != 7 || pages != 3 {
			t.Errorf("expected page 2, total 7, pages 3; got page %d, total %d, pages %d", page, total, pages)
		}
		if len(tasks) != 3 {
			t.Errorf("expected 3 tasks on page 2, got %d", len(tasks))
		}
	})
}

func TestService_DeleteTask(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	tk, err := svc.CreateTask(ctx, TaskInput{Title: "To delete"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	if err := svc.DeleteTask(ctx, tk.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}

	if _, err := svc.GetTask(ctx, tk.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound after delete, got %v", err)
	}

	if err := svc.DeleteTask(ctx, tk.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on second delete, got %v", err)
	}
}
