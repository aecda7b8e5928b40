package controllers

import (
	"net/http"

	"galleria/app/models"
	"galleria/app/services"
)

// ProductController handles HTTP requests for the product catalog
type ProductController struct {
	productService *services.ProductService
}

// NewProductController creates a new ProductController
func NewProductController(productService *services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// SetService sets the product service for testing
func (pc *ProductController) SetService(service *services.ProductService) {
	pc.productService = service
}

// Index lists the catalog
func (pc *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := pc.productService.ListProducts()
	if err != nil {
		handleServiceError(w, r, err, "Erro ao buscar produtos")
		return
	}
	sendJSON(w, r, http.StatusOK, products)
}

// Create handles creating a new product
func (pc *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ProductRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, msgInvalidJSON, err.Error())
		return
	}

	product, err := pc.productService.CreateProduct(&req)
	if err != nil {
		handleServiceError(w, r, err, "Erro ao criar produto")
		return
	}
	sendJSON(w, r, http.StatusCreated, product)
}

// Edit replaces a product
func (pc *ProductController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusNotFound, services.MsgProductNotFound, "")
		return
	}

	var req models.ProductRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, msgInvalidJSON, err.Error())
		return
	}

	product, err := pc.productService.UpdateProduct(id, &req)
	if err != nil {
		handleServiceError(w, r, err, "Erro ao atualizar produto")
		return
	}
	sendJSON(w, r, http.StatusOK, product)
}

// Delete handles deleting a product
func (pc *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusNotFound, services.MsgProductNotFound, "")
		return
	}

	if err := pc.productService.DeleteProduct(id); err != nil {
		handleServiceError(w, r, err, "Erro ao excluir produto")
		return
	}
	sendSuccess(w, r)
}
