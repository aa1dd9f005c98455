package inquiry

import "time"

// Type distinguishes where the submission came from on the site.
type Type string

const (
	TypeContact      Type = "contact"
	TypeConsultation Type = "consultation"
	TypeQuote        Type = "quote"
)

// Inquiry is a contact-form or quote-request submission.
type Inquiry struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Type      Type      `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
