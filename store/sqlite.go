package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the collection in a single table of JSON-encoded
// values keyed by id.
type SQLiteStore[T any] struct {
	Db     *sql.DB
	DbFile string
}

func NewSQLiteStore[T any](file string) (*SQLiteStore[T], error) {
	db, err := sql.Open("sqlite", file)
	if err != nil {
		return nil, fmt.Errorf("open store db %s: %w", file, err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS items (id TEXT PRIMARY KEY, data TEXT NOT NULL)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create items table: %w", err)
	}

	return &SQLiteStore[T]{
		Db:     db,
		DbFile: file,
	}, nil
}

// LoadAll implements Store.
func (s *SQLiteStore[T]) LoadAll() (map[string]T, error) {
	rows, err := s.Db.Query(`SELECT id, data FROM items`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string]T)
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, err
		}

		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("%w: key %s: %v", ErrFormat, id, err)
		}

		items[id] = item
	}

	return items, rows.Err()
}

// SaveAll implements Store. The table's contents are replaced in one
// transaction.
func (s *SQLiteStore[T]) SaveAll(items map[string]T) error {
	tx, err := s.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM items`); err != nil {
		return err
	}

	for id, item := range items {
		buf, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("%w: key %s: %v", ErrFormat, id, err)
		}

		if _, err := tx.Exec(`INSERT INTO items (id, data) VALUES (?, ?)`, id, buf); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetOne implements Store.
func (s *SQLiteStore[T]) GetOne(id string) (v T, err error) {
	var data []byte

	err = s.Db.QueryRow(`SELECT data FROM items WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return v, fmt.Errorf("key %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return v, err
	}

	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w: key %s: %v", ErrFormat, id, err)
	}

	return v, nil
}

// SaveOne implements Store.
func (s *SQLiteStore[T]) SaveOne(id string, item T) error {
	buf, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("%w: key %s: %v", ErrFormat, id, err)
	}

	_, err = s.Db.Exec(
		`INSERT INTO items (id, data) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET data = excluded.data`,
		id, buf,
	)

	return err
}

// DeleteOne implements Store.
func (s *SQLiteStore[T]) DeleteOne(id string) error {
	_, err := s.Db.Exec(`DELETE FROM items WHERE id = ?`, id)
	return err
}

func (s *SQLiteStore[T]) Close() error {
	return s.Db.Close()
}
