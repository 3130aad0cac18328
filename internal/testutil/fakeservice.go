// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sync"

	"rtask/internal/service"
)

// ErrNotFound is returned when a task does not exist.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of service.Service for testing.
// IDs are assigned sequentially starting at 1, mirroring the backend.
type FakeService struct {
	mu     sync.RWMutex
	tasks  []service.Task
	nextID int64

	// Error injection for testing
	ListTasksErr  error
	CreateTaskErr error
	UpdateTaskErr error
	ToggleTaskErr error
	DeleteTaskErr error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// AddTask seeds a task and returns its assigned ID.
func (f *FakeService) AddTask(title string, completed bool) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.tasks = append(f.tasks, service.Task{ID: id, Title: title, IsCompleted: completed})
	return id
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, title string) (service.Task, error) {
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	task := service.Task{ID: f.nextID, Title: title}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id int64, patch service.TaskPatch) (service.Task, error) {
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			if patch.Title != nil {
				f.tasks[i].Title = *patch.Title
			}
			if patch.IsCompleted != nil {
				f.tasks[i].IsCompleted = *patch.IsCompleted
			}
			return f.tasks[i], nil
		}
	}
	return service.Task{}, ErrNotFound
}

// ToggleTask implements service.Service.
func (f *FakeService) ToggleTask(ctx context.Context, id int64) (service.Task, error) {
	if f.ToggleTaskErr != nil {
		return service.Task{}, f.ToggleTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].IsCompleted = !f.tasks[i].IsCompleted
			return f.tasks[i], nil
		}
	}
	return service.Task{}, ErrNotFound
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int64) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
