package task

import (
	"time"

	"github.com/example/task-api/domain/user"
)

// Task represents a task entity in the system. The due date carries no time
// component; the assignee reference is optional and points at a user row.
type Task struct {
	ID             int        `gorm:"primaryKey"`
	Title          string     `gorm:"size:150;not null"`
	Description    string     `gorm:"type:text"`
	DueDate        *time.Time `gorm:"type:date"`
	Status         string     `gorm:"size:50;default:pending"`
	AssignedUserID *int       `gorm:"index"`

	AssignedUser *user.User `gorm:"foreignKey:AssignedUserID"`
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}
