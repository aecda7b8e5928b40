package repositories

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCollection keeps a whole collection as one JSON value under a
// single badger key, so every mutation is one transaction.
type BadgerCollection[T any] struct {
	db    *badger.DB
	key   []byte
	mutex sync.Mutex
}

// NewBadgerCollection creates a collection stored under key
func NewBadgerCollection[T any](db *badger.DB, key string) *BadgerCollection[T] {
	return &BadgerCollection[T]{db: db, key: []byte(key)}
}

func (c *BadgerCollection[T]) Load() ([]T, error) {
	var items []T
	err := c.db.View(func(txn *badger.Txn) error {
		var err error
		items, err = c.get(txn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (c *BadgerCollection[T]) Mutate(fn func(items []T) ([]T, error)) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.db.Update(func(txn *badger.Txn) error {
		items, err := c.get(txn)
		if err != nil {
			return err
		}
		items, err = fn(items)
		if err != nil {
			return err
		}
		data, err := marshalCollection(items)
		if err != nil {
			return err
		}
		return txn.Set(c.key, data)
	})
}

func (c *BadgerCollection[T]) get(txn *badger.Txn) ([]T, error) {
	item, err := txn.Get(c.key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.key, err)
	}

	var items []T
	err = item.Value(func(val []byte) error {
		decoded, err := unmarshalCollection[T](val)
		items = decoded
		return err
	})
	return items, err
}
