package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// BoltStore keeps the collection in a single bbolt bucket, one
// JSON-encoded value per key.
type BoltStore[T any] struct {
	Db       *bbolt.DB
	DbFile   string
	FileMode os.FileMode
	Bucket   string
	logger   *zap.Logger
}

func NewBoltStore[T any](file string, mode os.FileMode, bucket string, logger *zap.Logger) (*BoltStore[T], error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := bbolt.Open(file, mode, nil)
	if err != nil {
		return nil, fmt.Errorf("open store db %s: %w", file, err)
	}

	b := &BoltStore[T]{
		Db:       db,
		DbFile:   file,
		FileMode: mode,
		Bucket:   bucket,
		logger:   logger,
	}

	err = b.createBucket()
	if err != nil {
		if !errors.Is(err, bbolt.ErrBucketExists) {
			db.Close()
			return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
		}
		logger.Debug("bucket already exists, will use it instead of creating new one", zap.String("bucket", bucket))
	}

	return b, nil
}

func (b *BoltStore[T]) createBucket() error {
	return b.Db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucket([]byte(b.Bucket))
		return err
	})
}

// LoadAll implements Store.
func (b *BoltStore[T]) LoadAll() (map[string]T, error) {
	items := make(map[string]T)

	err := b.Db.View(func(tx *bbolt.Tx) error {
		bkt := tx.Bucket([]byte(b.Bucket))
		err := bkt.ForEach(func(k, v []byte) error {

			var item T
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("%w: key %s: %v", ErrFormat, k, err)
			}

			items[string(k)] = item
			return nil
		})

		return err
	})

	if err != nil {
		return nil, err
	}

	return items, nil
}

// SaveAll implements Store. The bucket's contents are replaced wholesale.
func (b *BoltStore[T]) SaveAll(items map[string]T) error {
	return b.Db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(b.Bucket)); err != nil {
			return err
		}

		bkt, err := tx.CreateBucket([]byte(b.Bucket))
		if err != nil {
			return err
		}

		for k, item := range items {
			buf, err := json.Marshal(item)
			if err != nil {
				return fmt.Errorf("%w: key %s: %v", ErrFormat, k, err)
			}

			if err := bkt.Put([]byte(k), buf); err != nil {
				return err
			}
		}

		return nil
	})
}

// GetOne implements Store.
func (b *BoltStore[T]) GetOne(id string) (v T, err error) {

	err = b.Db.View(func(tx *bbolt.Tx) error {

		bkt := tx.Bucket([]byte(b.Bucket))
		buf := bkt.Get([]byte(id))
		if buf == nil {
			return fmt.Errorf("key %s: %w", id, ErrNotFound)
		}

		if err := json.Unmarshal(buf, &v); err != nil {
			return fmt.Errorf("%w: key %s: %v", ErrFormat, id, err)
		}

		return nil
	})

	return
}

// SaveOne implements Store.
func (b *BoltStore[T]) SaveOne(id string, item T) error {

	buf, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("%w: key %s: %v", ErrFormat, id, err)
	}

	return b.Db.Update(func(tx *bbolt.Tx) error {
		bkt := tx.Bucket([]byte(b.Bucket))
		return bkt.Put([]byte(id), buf)
	})
}

// DeleteOne implements Store. Deleting an absent key is already a no-op
// in bbolt.
func (b *BoltStore[T]) DeleteOne(id string) error {
	return b.Db.Update(func(tx *bbolt.Tx) error {
		bkt := tx.Bucket([]byte(b.Bucket))
		return bkt.Delete([]byte(id))
	})
}

func (b *BoltStore[T]) Close() error {
	return b.Db.Close()
}
