// Package billing holds entity shapes reserved for upcoming portal features.
// None of them are wired to routes or storage yet; they document the intended
// schema so the portal frontend and this API agree on field names early.
package billing

import "time"

type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

type Invoice struct {
	ID        uint          `json:"id"`
	ProjectID uint          `json:"project_id"`
	Number    string        `json:"number"`
	Amount    float64       `json:"amount"`
	Status    InvoiceStatus `json:"status"`
	IssuedAt  *time.Time    `json:"issued_at,omitempty"`
	DueAt     *time.Time    `json:"due_at,omitempty"`
	PaidAt    *time.Time    `json:"paid_at,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type ProjectMilestone struct {
	ID          uint       `json:"id"`
	ProjectID   uint       `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ProjectFile struct {
	ID         uint      `json:"id"`
	ProjectID  uint      `json:"project_id"`
	UploaderID uint      `json:"uploader_id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mime_type"`
	CreatedAt  time.Time `json:"created_at"`
}
