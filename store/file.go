package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

const (
	// PathEnv selects the backing file path when FileStore.Path is empty.
	PathEnv = "JSON_STORE_PATH"

	// DefaultFile is used when neither Path nor PathEnv is set.
	DefaultFile = "tasks.json"
)

// FileStore keeps the whole collection in a single JSON file. Every
// operation resolves the path, opens the file (creating it if absent) and
// loads or rewrites the full collection. There is no locking and no atomic
// rename: with two racing writers the later full-file write wins.
type FileStore[T any] struct {
	Path   string
	logger *zap.Logger
}

func NewFileStore[T any](path string, logger *zap.Logger) *FileStore[T] {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FileStore[T]{
		Path:   path,
		logger: logger,
	}
}

func (f *FileStore[T]) resolvePath() string {
	if f.Path != "" {
		return f.Path
	}

	if path := os.Getenv(PathEnv); path != "" {
		return path
	}

	return DefaultFile
}

func (f *FileStore[T]) open() (*os.File, error) {
	path := f.resolvePath()

	fh, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("open store file %s: %w", path, err)
	}

	return fh, nil
}

// LoadAll reads the backing file to completion and decodes it. An empty
// file is not an empty collection: it fails with ErrFormat like any other
// content that is not a JSON object of T.
func (f *FileStore[T]) LoadAll() (map[string]T, error) {
	fh, err := f.open()
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	buf, err := io.ReadAll(fh)
	if err != nil {
		return nil, fmt.Errorf("read store file %s: %w", fh.Name(), err)
	}

	var items map[string]T
	if err := json.Unmarshal(buf, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	// json null decodes into a nil map without error
	if items == nil {
		return nil, fmt.Errorf("%w: %s holds no collection", ErrFormat, fh.Name())
	}

	return items, nil
}

// SaveAll rewrites the backing file with the whole collection,
// pretty-printed, replacing whatever was there before.
func (f *FileStore[T]) SaveAll(items map[string]T) error {
	if items == nil {
		items = map[string]T{}
	}

	buf, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}

	fh, err := f.open()
	if err != nil {
		return err
	}
	defer fh.Close()

	if err := fh.Truncate(0); err != nil {
		return fmt.Errorf("truncate store file %s: %w", fh.Name(), err)
	}

	if _, err := fh.WriteAt(buf, 0); err != nil {
		return fmt.Errorf("write store file %s: %w", fh.Name(), err)
	}

	return nil
}

func (f *FileStore[T]) GetOne(id string) (v T, err error) {
	items, err := f.LoadAll()
	if err != nil {
		return v, err
	}

	v, ok := items[id]
	if !ok {
		return v, fmt.Errorf("key %s: %w", id, ErrNotFound)
	}

	return v, nil
}

// SaveOne upserts item under id and rewrites the file. A collection that
// fails to load, including the absent-file and empty-file cases, is
// treated as empty here and in DeleteOne only; reads keep surfacing those
// failures.
func (f *FileStore[T]) SaveOne(id string, item T) error {
	items, err := f.LoadAll()
	if err != nil {
		f.logger.Debug("starting from empty collection", zap.String("key", id), zap.Error(err))
		items = make(map[string]T)
	}

	items[id] = item

	return f.SaveAll(items)
}

// DeleteOne removes id and rewrites the file. An absent id is a no-op.
func (f *FileStore[T]) DeleteOne(id string) error {
	items, err := f.LoadAll()
	if err != nil {
		f.logger.Debug("starting from empty collection", zap.String("key", id), zap.Error(err))
		items = make(map[string]T)
	}

	delete(items, id)

	return f.SaveAll(items)
}
