package controllers

import (
	"net/http"

	"galleria/app/models"
	"galleria/app/services"
)

// GalleryController handles HTTP requests for gallery posts
type GalleryController struct {
	galleryService *services.GalleryService
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleryService *services.GalleryService) *GalleryController {
	return &GalleryController{galleryService: galleryService}
}

// SetService sets the gallery service for testing
func (gc *GalleryController) SetService(service *services.GalleryService) {
	gc.galleryService = service
}

// Index lists every post for the viewer given in ?userId=
func (gc *GalleryController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := gc.galleryService.ListPosts(r.URL.Query().Get("userId"))
	if err != nil {
		handleServiceError(w, r, err, "Erro ao buscar posts")
		return
	}
	sendJSON(w, r, http.StatusOK, posts)
}

// Create handles creating a new post
func (gc *GalleryController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, msgInvalidJSON, err.Error())
		return
	}

	post, err := gc.galleryService.CreatePost(&req)
	if err != nil {
		handleServiceError(w, r, err, "Erro ao criar post")
		return
	}
	sendJSON(w, r, http.StatusCreated, post)
}

// Like toggles the like of the user in the body
func (gc *GalleryController) Like(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusNotFound, services.MsgPostNotFound, "")
		return
	}

	var req models.LikeRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, msgInvalidJSON, err.Error())
		return
	}

	post, err := gc.galleryService.ToggleLike(id, req.UserID)
	if err != nil {
		handleServiceError(w, r, err, "Erro ao curtir post")
		return
	}
	sendJSON(w, r, http.StatusOK, post)
}

// Delete handles deleting a post and its comments
func (gc *GalleryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusNotFound, services.MsgPostNotFound, "")
		return
	}

	var req models.DeleteRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, msgInvalidJSON, err.Error())
		return
	}

	if err := gc.galleryService.DeletePost(id, req.UserID, req.IsAdmin); err != nil {
		handleServiceError(w, r, err, "Erro ao excluir post")
		return
	}
	sendSuccess(w, r)
}
