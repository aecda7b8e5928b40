package models

// CreatePostRequest is the body of POST /api/gallery.
type CreatePostRequest struct {
	Title        string `json:"title" validate:"required"`
	ImageURL     string `json:"imageUrl" validate:"required"`
	AuthorName   string `json:"authorName" validate:"required"`
	AuthorID     string `json:"authorId" validate:"required"`
	AuthorAvatar string `json:"authorAvatar"`
}

// LikeRequest is the body of POST /api/gallery/{id}/like.
type LikeRequest struct {
	UserID string `json:"userId"`
}

// DeleteRequest is the body of the post and comment DELETE endpoints.
// IsAdmin is taken from the client as-is.
type DeleteRequest struct {
	UserID  string `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
}

// CreateCommentRequest is the body of POST /api/gallery/{id}/comments.
type CreateCommentRequest struct {
	Text         string `json:"text" validate:"required"`
	AuthorName   string `json:"authorName" validate:"required"`
	AuthorID     string `json:"authorId" validate:"required"`
	AuthorAvatar string `json:"authorAvatar"`
}

// ProductRequest is the body of POST and PUT /api/products.
type ProductRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	ImageURL      string   `json:"imageUrl" validate:"required"`
	Price         Price    `json:"price" validate:"present"`
	OriginalPrice Price    `json:"originalPrice"`
	Link          string   `json:"link" validate:"required"`
	Features      []string `json:"features"`
}
