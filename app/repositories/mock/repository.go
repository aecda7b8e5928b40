package mock

import (
	"encoding/json"
	"sync"

	"galleria/app/models"
)

// Collection is an in-memory collection for service and controller tests.
// Items are copied through JSON so a failed Mutate leaves nothing behind,
// the same as the real stores.
type Collection[T any] struct {
	data  []byte
	mutex sync.Mutex

	// LoadErr and SaveErr, when set, are returned by the next calls
	LoadErr error
	SaveErr error

	Saves int
}

type PostRepository = Collection[*models.Post]

type ProductRepository = Collection[*models.Product]

func NewPostRepository() *PostRepository {
	return &PostRepository{data: []byte("[]")}
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{data: []byte("[]")}
}

func (m *Collection[T]) Load() ([]T, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.read()
}

func (m *Collection[T]) Mutate(fn func(items []T) ([]T, error)) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	items, err := m.read()
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	m.data = data
	m.Saves++
	return nil
}

// Len returns the number of stored items.
func (m *Collection[T]) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	items, _ := m.read()
	return len(items)
}

// Clear empties the collection and resets injected errors.
func (m *Collection[T]) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.data = []byte("[]")
	m.LoadErr = nil
	m.SaveErr = nil
	m.Saves = 0
}

func (m *Collection[T]) read() ([]T, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	items := []T{}
	if len(m.data) > 0 {
		if err := json.Unmarshal(m.data, &items); err != nil {
			return nil, err
		}
	}
	return items, nil
}
