package store

import (
	"fmt"
	"maps"
)

// InMemoryStore is an ephemeral map-backed Store, mainly for tests.
type InMemoryStore[T any] struct {
	Db map[string]T
}

func NewInMemoryStore[T any]() *InMemoryStore[T] {
	return &InMemoryStore[T]{
		Db: make(map[string]T),
	}
}

// LoadAll implements Store.
func (i *InMemoryStore[T]) LoadAll() (map[string]T, error) {
	items := make(map[string]T, len(i.Db))
	maps.Copy(items, i.Db)

	return items, nil
}

// SaveAll implements Store.
func (i *InMemoryStore[T]) SaveAll(items map[string]T) error {
	db := make(map[string]T, len(items))
	maps.Copy(db, items)
	i.Db = db

	return nil
}

// GetOne implements Store.
func (i *InMemoryStore[T]) GetOne(id string) (v T, err error) {

	v, ok := i.Db[id]
	if !ok {
		return v, fmt.Errorf("key %s: %w", id, ErrNotFound)
	}

	return v, nil
}

// SaveOne implements Store.
func (i *InMemoryStore[T]) SaveOne(id string, item T) error {
	i.Db[id] = item
	return nil
}

// DeleteOne implements Store.
func (i *InMemoryStore[T]) DeleteOne(id string) error {
	delete(i.Db, id)
	return nil
}
