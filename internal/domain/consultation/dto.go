package consultation

type CreateBookingInput struct {
	Name          string  `json:"name" binding:"required" example:"Jane Doe"`
	Email         string  `json:"email" binding:"required,email" example:"jane@acme.com"`
	Phone         string  `json:"phone" binding:"required" example:"+1 555 010 0199"`
	Service       string  `json:"service" binding:"required" example:"Security Audit"`
	Description   *string `json:"description,omitempty" example:"Annual compliance review"`
	PreferredDate *string `json:"preferredDate,omitempty" example:"2026-09-15"`
	PreferredTime *string `json:"preferredTime,omitempty" example:"14:00"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled" example:"confirmed"`
}
