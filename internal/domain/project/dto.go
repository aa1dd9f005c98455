package project

import "time"

type CreateProjectInput struct {
	Name           string     `json:"name" binding:"required" example:"Website Relaunch"`
	Description    string     `json:"description" binding:"required" example:"Full redesign and CMS migration"`
	ClientID       uint       `json:"client_id" binding:"required" example:"1"`
	ManagerID      *uint      `json:"manager_id,omitempty" example:"2"`
	Status         *string    `json:"status,omitempty" binding:"omitempty,oneof=planning in_progress review completed on_hold" example:"planning"`
	Priority       *string    `json:"priority,omitempty" binding:"omitempty,oneof=low medium high urgent" example:"medium"`
	Budget         float64    `json:"budget" example:"25000"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	EstimatedHours *float64   `json:"estimated_hours,omitempty" example:"320"`
	Progress       *int       `json:"progress,omitempty" example:"0"`
}
