package project

import "time"

type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on_hold"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusReview, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Priority is shared with tasks.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Project is a client engagement tracked in the portal. Exactly one client
// owns it; a manager is optional. Spent and ActualHours accumulate as work
// is logged, Progress stays within [0,100].
type Project struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	ClientID       uint       `json:"client_id"`
	ManagerID      *uint      `json:"manager_id,omitempty"`
	Status         Status     `json:"status"`
	Priority       Priority   `json:"priority"`
	Budget         float64    `json:"budget"`
	Spent          float64    `json:"spent"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	EstimatedHours *float64   `json:"estimated_hours,omitempty"`
	ActualHours    float64    `json:"actual_hours"`
	Progress       int        `json:"progress"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
