// Package service defines the backend-agnostic surface for task operations.
package service

// Task represents a single task item as the API serves it.
// ID is server-assigned and never changes after creation.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"is_completed"`
}

// TaskPatch is a partial update. Nil fields are left out of the request
// body entirely, so the server only sees what the user changed.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.IsCompleted == nil
}
