package comment

import "time"

// Comment is a note on a project. Internal comments are hidden from the
// client-facing portal view.
type Comment struct {
	ID         uint      `json:"id"`
	ProjectID  uint      `json:"project_id"`
	UserID     uint      `json:"user_id"`
	Content    string    `json:"content"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
}
