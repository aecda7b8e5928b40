package repositories

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"galleria/app/models"

	"github.com/dgraph-io/badger/v4"
)

const (
	BackendJSON   = "json"
	BackendBadger = "badger"
)

var (
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Repository bundles the two collections of one storage backend.
type Repository struct {
	Posts    PostRepository
	Products ProductRepository

	db       *badger.DB
	dbPath   string
	isTestDB bool
}

// NewRepository opens the collections of the given backend under path.
// An empty path gives a throwaway store: a temporary directory for json,
// an in-memory database for badger.
func NewRepository(backend, path string) (*Repository, error) {
	switch backend {
	case BackendJSON, "":
		return newJSONRepository(path)
	case BackendBadger:
		return newBadgerRepository(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func newJSONRepository(path string) (*Repository, error) {
	isTest := false
	if path == "" {
		tempPath, err := os.MkdirTemp("", "galleria_test_data_")
		if err != nil {
			return nil, fmt.Errorf("error creating temp dir: %w", err)
		}
		path = tempPath
		isTest = true
	}

	posts, err := NewJSONCollection[*models.Post](filepath.Join(path, GalleryFile))
	if err != nil {
		return nil, err
	}
	products, err := NewJSONCollection[*models.Product](filepath.Join(path, ProductsFile))
	if err != nil {
		return nil, err
	}
	return &Repository{
		Posts:    posts,
		Products: products,
		dbPath:   path,
		isTestDB: isTest,
	}, nil
}

func newBadgerRepository(path string) (*Repository, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(true).
		WithNumVersionsToKeep(1)
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %q: %w", path, err)
	}
	return NewBadgerRepository(db), nil
}

// NewBadgerRepository wraps an already opened database. Close closes it.
func NewBadgerRepository(db *badger.DB) *Repository {
	return &Repository{
		Posts:    NewBadgerCollection[*models.Post](db, GalleryKey),
		Products: NewBadgerCollection[*models.Product](db, ProductsKey),
		db:       db,
		dbPath:   db.Opts().Dir,
	}
}

// Path is the data directory of the repository.
func (r *Repository) Path() string {
	return r.dbPath
}

func (r *Repository) Close() error {
	if r.db != nil {
		if err := r.db.Close(); err != nil {
			return err
		}
	}

	// Clean up test data
	if r.isTestDB {
		if err := os.RemoveAll(r.dbPath); err != nil {
			return fmt.Errorf("failed to cleanup test data: %w", err)
		}
	}
	return nil
}

// Clear resets both collections to empty arrays.
func (r *Repository) Clear() error {
	if err := r.Posts.Mutate(func([]*models.Post) ([]*models.Post, error) {
		return []*models.Post{}, nil
	}); err != nil {
		return err
	}
	return r.Products.Mutate(func([]*models.Product) ([]*models.Product, error) {
		return []*models.Product{}, nil
	})
}

// Snapshot is the backup format: both collections in one document.
type Snapshot struct {
	Gallery  []*models.Post    `json:"gallery"`
	Products []*models.Product `json:"products"`
}

// Snapshot reads both collections.
func (r *Repository) Snapshot() (*Snapshot, error) {
	posts, err := r.Posts.Load()
	if err != nil {
		return nil, err
	}
	products, err := r.Products.Load()
	if err != nil {
		return nil, err
	}
	return &Snapshot{Gallery: posts, Products: products}, nil
}

// Restore replaces both collections with the snapshot contents.
func (r *Repository) Restore(s *Snapshot) error {
	if err := r.Posts.Mutate(func([]*models.Post) ([]*models.Post, error) {
		return s.Gallery, nil
	}); err != nil {
		return err
	}
	return r.Products.Mutate(func([]*models.Product) ([]*models.Product, error) {
		return s.Products, nil
	})
}
