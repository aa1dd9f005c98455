package timeentry

type CreateEntryInput struct {
	ProjectID   uint    `json:"project_id" binding:"required" example:"1"`
	TaskID      *uint   `json:"task_id,omitempty" example:"3"`
	UserID      uint    `json:"user_id" binding:"required" example:"2"`
	Description string  `json:"description" binding:"required" example:"API integration work"`
	Hours       float64 `json:"hours" binding:"required,gt=0" example:"3.5"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02" example:"2026-08-28"`
}
