package task

import "time"

type CreateTaskInput struct {
	ProjectID      uint       `json:"project_id" binding:"required" example:"1"`
	Title          string     `json:"title" binding:"required" example:"Set up staging environment"`
	Description    string     `json:"description" binding:"required" example:"Provision staging on the client's cloud account"`
	AssigneeID     *uint      `json:"assignee_id,omitempty" example:"2"`
	Status         *string    `json:"status,omitempty" binding:"omitempty,oneof=todo in_progress review completed" example:"todo"`
	Priority       *string    `json:"priority,omitempty" binding:"omitempty,oneof=low medium high urgent" example:"high"`
	EstimatedHours *float64   `json:"estimated_hours,omitempty" example:"16"`
	DueDate        *time.Time `json:"due_date,omitempty"`
}
