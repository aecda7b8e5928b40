package controllers

import (
	"net/http"

	"galleria/app/models"
	"galleria/app/services"
)

// CommentController handles HTTP requests for post comments
type CommentController struct {
	galleryService *services.GalleryService
}

// NewCommentController creates a new CommentController
func NewCommentController(galleryService *services.GalleryService) *CommentController {
	return &CommentController{galleryService: galleryService}
}

// SetService sets the gallery service for testing
func (cc *CommentController) SetService(service *services.GalleryService) {
	cc.galleryService = service
}

// Index lists the comments of a post
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusNotFound, services.MsgPostNotFound, "")
		return
	}

	comments, err := cc.galleryService.ListComments(postID)
	if err != nil {
		handleServiceError(w, r, err, "Erro ao buscar comentários")
		return
	}
	sendJSON(w, r, http.StatusOK, comments)
}

// Create adds a comment to a post
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusNotFound, services.MsgPostNotFound, "")
		return
	}

	var req models.CreateCommentRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, msgInvalidJSON, err.Error())
		return
	}

	comment, err := cc.galleryService.AddComment(postID, &req)
	if err != nil {
		handleServiceError(w, r, err, "Erro ao criar comentário")
		return
	}
	sendJSON(w, r, http.StatusCreated, comment)
}

// Delete removes a comment
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		sendError(w, http.StatusNotFound, services.MsgPostNotFound, "")
		return
	}
	commentID, err := pathID(r, "commentId")
	if err != nil {
		sendError(w, http.StatusNotFound, services.MsgCommentNotFound, "")
		return
	}

	var req models.DeleteRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, msgInvalidJSON, err.Error())
		return
	}

	if err := cc.galleryService.DeleteComment(postID, commentID, req.UserID, req.IsAdmin); err != nil {
		handleServiceError(w, r, err, "Erro ao excluir comentário")
		return
	}
	sendSuccess(w, r)
}
