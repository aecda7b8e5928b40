package services

import (
	"fmt"
	"log"

	"galleria/app/models"
	"galleria/app/repositories"
)

// ProductService handles the product catalog
type ProductService struct {
	productRepo repositories.ProductRepository
	ids         *IDSource
}

// NewProductService creates a new ProductService
func NewProductService(productRepo repositories.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		ids:         defaultIDs,
	}
}

// ListProducts returns the whole catalog, newest first
func (s *ProductService) ListProducts() ([]*models.Product, error) {
	products, err := s.productRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

// CreateProduct validates the request and stores the product at the front
func (s *ProductService) CreateProduct(req *models.ProductRequest) (*models.Product, error) {
	if err := models.Validate(req); err != nil {
		log.Printf("create product rejected, missing %v", models.MissingFields(err))
		return nil, validationError(MsgIncompleteData)
	}

	product := models.NewProduct(req)
	product.ID = s.ids.Next()
	product.BeforeCreate()

	err := s.productRepo.Mutate(func(products []*models.Product) ([]*models.Product, error) {
		return append([]*models.Product{product}, products...), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return product, nil
}

// UpdateProduct overwrites every mutable field of a product. There is no
// partial update: fields missing from req are cleared.
func (s *ProductService) UpdateProduct(id int64, req *models.ProductRequest) (*models.Product, error) {
	var updated *models.Product
	err := s.productRepo.Mutate(func(products []*models.Product) ([]*models.Product, error) {
		for _, product := range products {
			if product.ID == id {
				product.Apply(req)
				updated = product
				return products, nil
			}
		}
		return nil, notFoundError(MsgProductNotFound)
	})
	if err != nil {
		return nil, wrapStorage("failed to update product", err)
	}
	return updated, nil
}

// DeleteProduct removes a product
func (s *ProductService) DeleteProduct(id int64) error {
	err := s.productRepo.Mutate(func(products []*models.Product) ([]*models.Product, error) {
		for i, product := range products {
			if product.ID == id {
				return append(products[:i], products[i+1:]...), nil
			}
		}
		return nil, notFoundError(MsgProductNotFound)
	})
	return wrapStorage("failed to delete product", err)
}
