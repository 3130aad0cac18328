// Package service defines the backend-agnostic surface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All task API calls go through this interface.
// Commands never import the HTTP client directly.
type Service interface {
	// ListTasks returns every task in API order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a new task with the given title.
	// The server assigns the ID; the full created task is returned.
	CreateTask(ctx context.Context, title string) (Task, error)

	// UpdateTask applies a partial patch to a task.
	// Returns the complete updated task, never a partial representation.
	UpdateTask(ctx context.Context, id int64, patch TaskPatch) (Task, error)

	// ToggleTask flips a task's completion flag.
	// Returns the complete updated task.
	ToggleTask(ctx context.Context, id int64) (Task, error)

	// DeleteTask deletes a task. No value is returned on success.
	DeleteTask(ctx context.Context, id int64) error
}
