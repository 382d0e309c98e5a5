package store

import "errors"

var (
	// ErrNotFound is returned by GetOne when the key has no entry.
	ErrNotFound = errors.New("not found")

	// ErrFormat is returned when stored content does not decode into the
	// collection shape, or an in-memory value fails to encode.
	ErrFormat = errors.New("invalid store format")
)

// Store is a string-keyed collection of items of type T. Reads hand back
// copies, never aliases of internal state.
type Store[T any] interface {
	LoadAll() (map[string]T, error)
	SaveAll(items map[string]T) error
	GetOne(id string) (T, error)
	SaveOne(id string, item T) error
	DeleteOne(id string) error
}
