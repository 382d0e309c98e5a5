package task

import (
	"time"

	"github.com/google/uuid"
)

// Task is the stored payload of a single task-list entry.
type Task struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func New(title string, status Status) Task {
	return Task{
		ID:        uuid.New(),
		Title:     title,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
}

// NextPending picks the oldest pending task in items, ties broken by the
// smaller title. The second return is false when no pending task exists.
func NextPending(items map[string]Task) (Task, bool) {

	var next Task
	found := false

	for _, t := range items {
		if t.Status != Pending {
			continue
		}

		if !found ||
			t.CreatedAt.Before(next.CreatedAt) ||
			(t.CreatedAt.Equal(next.CreatedAt) && t.Title < next.Title) {
			next = t
			found = true
		}
	}

	return next, found
}
