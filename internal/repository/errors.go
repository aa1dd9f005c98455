package repository

import "errors"

// ErrNotFound is returned by every Get/Update on an unknown id. Handlers map
// it to 404; it never escapes as a panic.
var ErrNotFound = errors.New("record not found")
