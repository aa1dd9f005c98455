package timeentry

import "time"

// Entry records hours worked against a project, optionally tied to a task.
type Entry struct {
	ID          uint      `json:"id"`
	ProjectID   uint      `json:"project_id"`
	TaskID      *uint     `json:"task_id,omitempty"`
	UserID      uint      `json:"user_id"`
	Description string    `json:"description"`
	Hours       float64   `json:"hours"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}
