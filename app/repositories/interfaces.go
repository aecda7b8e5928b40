package repositories

import "galleria/app/models"

// PostRepository gives whole-collection access to the gallery document.
// Mutate runs a read-modify-write cycle; the returned slice replaces the
// stored collection unless fn fails.
type PostRepository interface {
	Load() ([]*models.Post, error)
	Mutate(fn func(posts []*models.Post) ([]*models.Post, error)) error
}

// ProductRepository gives whole-collection access to the product document.
type ProductRepository interface {
	Load() ([]*models.Product, error)
	Mutate(fn func(products []*models.Product) ([]*models.Product, error)) error
}
