package task

import (
	"time"

	"github.com/technova-labs/portal-go/internal/domain/project"
)

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusCompleted:
		return true
	}
	return false
}

// Task belongs to exactly one project.
type Task struct {
	ID             uint             `json:"id"`
	ProjectID      uint             `json:"project_id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	AssigneeID     *uint            `json:"assignee_id,omitempty"`
	Status         Status           `json:"status"`
	Priority       project.Priority `json:"priority"`
	EstimatedHours *float64         `json:"estimated_hours,omitempty"`
	ActualHours    float64          `json:"actual_hours"`
	DueDate        *time.Time       `json:"due_date,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
