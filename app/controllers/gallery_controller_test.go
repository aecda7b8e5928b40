package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"galleria/app/models"
	"galleria/app/repositories/mock"
	"galleria/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGalleryRouter(t *testing.T) (*mux.Router, *mock.PostRepository) {
	postRepo := mock.NewPostRepository()
	galleryService := services.NewGalleryService(postRepo)
	galleryController := NewGalleryController(galleryService)
	commentController := NewCommentController(galleryService)

	router := mux.NewRouter()

	// Register routes manually
	router.HandleFunc("/api/gallery", galleryController.Index).Methods("GET")
	router.HandleFunc("/api/gallery", galleryController.Create).Methods("POST")
	router.HandleFunc("/api/gallery/{id}/like", galleryController.Like).Methods("POST")
	router.HandleFunc("/api/gallery/{id}", galleryController.Delete).Methods("DELETE")
	router.HandleFunc("/api/gallery/{id}/comments", commentController.Index).Methods("GET")
	router.HandleFunc("/api/gallery/{id}/comments", commentController.Create).Methods("POST")
	router.HandleFunc("/api/gallery/{postId}/comments/{commentId}", commentController.Delete).Methods("DELETE")

	return router, postRepo
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	var payload map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload["error"]
}

func TestGalleryController(t *testing.T) {
	router, postRepo := setupGalleryRouter(t)

	var post models.PostView

	t.Run("create post", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/gallery",
			`{"title":"A","imageUrl":"u","authorName":"Bob","authorId":"u1"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
		assert.Equal(t, 0, post.Likes)
		assert.False(t, post.LikedByMe)
		assert.NotContains(t, w.Body.String(), `"likedBy"`)
	})

	t.Run("like toggles", func(t *testing.T) {
		path := "/api/gallery/" + strconv.FormatInt(post.ID, 10) + "/like"

		w := doRequest(router, http.MethodPost, path, `{"userId":"u1"}`)
		require.Equal(t, http.StatusOK, w.Code)
		var liked models.PostView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &liked))
		assert.Equal(t, 1, liked.Likes)
		assert.True(t, liked.LikedByMe)

		w = doRequest(router, http.MethodPost, path, `{"userId":"u1"}`)
		require.Equal(t, http.StatusOK, w.Code)
		var unliked models.PostView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &unliked))
		assert.Equal(t, 0, unliked.Likes)
		assert.False(t, unliked.LikedByMe)
	})

	t.Run("like errors", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/gallery/999999/like", `{"userId":"u1"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, services.MsgPostNotFound, decodeError(t, w))

		w = doRequest(router, http.MethodPost, "/api/gallery/"+strconv.FormatInt(post.ID, 10)+"/like", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doRequest(router, http.MethodPost, "/api/gallery/abc/like", `{"userId":"u1"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list posts for a viewer", func(t *testing.T) {
		_ = doRequest(router, http.MethodPost, "/api/gallery/"+strconv.FormatInt(post.ID, 10)+"/like", `{"userId":"u7"}`)

		w := doRequest(router, http.MethodGet, "/api/gallery?userId=u7", "")
		require.Equal(t, http.StatusOK, w.Code)
		var posts []models.PostView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
		require.Len(t, posts, 1)
		assert.True(t, posts[0].LikedByMe)
		assert.NotEmpty(t, w.Header().Get("ETag"))
	})

	t.Run("create post with missing fields", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/gallery", `{"title":"A","imageUrl":"u","authorName":"Bob"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, services.MsgIncompleteData, decodeError(t, w))
		assert.Equal(t, 1, postRepo.Len())
	})

	t.Run("create post with malformed body", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/gallery", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 1, postRepo.Len())
	})

	t.Run("delete by non-owner", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/api/gallery/"+strconv.FormatInt(post.ID, 10), `{"userId":"u2"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, 1, postRepo.Len())
	})

	t.Run("delete without body", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/api/gallery/"+strconv.FormatInt(post.ID, 10), "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete missing post", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/api/gallery/999999", `{"userId":"u1"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete by admin flag", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/api/gallery/"+strconv.FormatInt(post.ID, 10), `{"userId":"u2","isAdmin":true}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
		assert.Equal(t, 0, postRepo.Len())
	})

	t.Run("storage failure is a 500", func(t *testing.T) {
		postRepo.LoadErr = errors.New("unexpected end of JSON input")
		defer func() { postRepo.LoadErr = nil }()

		w := doRequest(router, http.MethodGet, "/api/gallery", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
		assert.Equal(t, "Erro ao buscar posts", payload["error"])
		assert.Contains(t, payload["message"], "unexpected end of JSON input")
	})
}

func TestCommentController(t *testing.T) {
	router, _ := setupGalleryRouter(t)

	w := doRequest(router, http.MethodPost, "/api/gallery",
		`{"title":"A","imageUrl":"u","authorName":"Bob","authorId":"owner"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var post models.PostView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	base := "/api/gallery/" + strconv.FormatInt(post.ID, 10) + "/comments"

	var comment models.Comment

	t.Run("create comment", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, base, `{"text":"Nice","authorName":"Ana","authorId":"c1","authorAvatar":"a.png"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))
		assert.Equal(t, post.ID, comment.PostID)
		assert.Equal(t, "a.png", comment.AuthorAvatar)
	})

	t.Run("list comments", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, base, "")
		require.Equal(t, http.StatusOK, w.Code)
		var comments []models.Comment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
		require.Len(t, comments, 1)
		assert.Equal(t, comment.ID, comments[0].ID)
	})

	t.Run("comment on nonexistent post", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/gallery/999999/comments", `{"text":"Hi","authorName":"Ana","authorId":"c1"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doRequest(router, http.MethodGet, "/api/gallery/999999/comments", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("comment with missing text", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, base, `{"authorName":"Ana","authorId":"c1"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete comment", func(t *testing.T) {
		path := base + "/" + strconv.FormatInt(comment.ID, 10)

		w := doRequest(router, http.MethodDelete, path, `{"userId":"stranger"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = doRequest(router, http.MethodDelete, path, `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doRequest(router, http.MethodDelete, base+"/1", `{"userId":"c1"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, services.MsgCommentNotFound, decodeError(t, w))

		w = doRequest(router, http.MethodDelete, path, `{"userId":"admin_master"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})
}
