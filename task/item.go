package task

import (
	"fmt"

	"todo/store"
)

// Item is the tagged result of creating a task: exactly one of
// PendingItem or DoneItem, each wrapping the stored Task. Rendering
// either variant produces the task's title alone.
type Item interface {
	fmt.Stringer
	Status() Status
}

type PendingItem struct {
	Task Task
}

func (p PendingItem) String() string {
	return p.Task.Title
}

func (p PendingItem) Status() Status {
	return Pending
}

type DoneItem struct {
	Task Task
}

func (d DoneItem) String() string {
	return d.Task.Title
}

func (d DoneItem) Status() Status {
	return Done
}

// Create builds a task for title, persists it through st using the title
// as the key, and returns the variant matching status. Save failures
// propagate unchanged; on success the in-memory task is returned without
// re-reading the store.
func Create(st store.Store[Task], title string, status Status) (Item, error) {
	t := New(title, status)

	if err := st.SaveOne(title, t); err != nil {
		return nil, err
	}

	switch status {
	case Pending:
		return PendingItem{Task: t}, nil
	case Done:
		return DoneItem{Task: t}, nil
	}

	return nil, fmt.Errorf("unknown status %d", int(status))
}
