package repositories

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSONCollection stores a collection as one JSON array on disk. The file
// is re-read on every call; nothing is cached between requests.
type JSONCollection[T any] struct {
	path  string
	mutex sync.Mutex
}

// NewJSONCollection creates the collection, writing an empty array if the
// file does not exist yet.
func NewJSONCollection[T any](path string) (*JSONCollection[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	c := &JSONCollection[T]{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, emptyCollection, 0644); err != nil {
			return nil, fmt.Errorf("failed to initialize %s: %w", path, err)
		}
	}
	return c, nil
}

// Path returns the backing file.
func (c *JSONCollection[T]) Path() string {
	return c.path
}

func (c *JSONCollection[T]) Load() ([]T, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.read()
}

func (c *JSONCollection[T]) Mutate(fn func(items []T) ([]T, error)) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	items, err := c.read()
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return c.write(items)
}

func (c *JSONCollection[T]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		if err := os.WriteFile(c.path, emptyCollection, 0644); err != nil {
			return nil, fmt.Errorf("failed to initialize %s: %w", c.path, err)
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.path, err)
	}
	return unmarshalCollection[T](data)
}

// write replaces the file through a rename so readers never see half a document
func (c *JSONCollection[T]) write(items []T) error {
	data, err := marshalCollection(items)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", c.path, err)
	}
	return nil
}
