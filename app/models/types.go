package models

// AdminID is the identifier allowed to delete any post or comment.
const AdminID = "admin_master"

// Post is a gallery entry as it is persisted.
type Post struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	ImageURL     string     `json:"imageUrl"`
	AuthorName   string     `json:"authorName"`
	AuthorID     string     `json:"authorId"`
	AuthorAvatar string     `json:"authorAvatar,omitempty"`
	Likes        int        `json:"likes"`
	LikedBy      []string   `json:"likedBy"`
	Comments     []*Comment `json:"comments"`
	CreatedAt    Timestamp  `json:"createdAt"`
}

// PostView is a post as seen by one viewer. It never carries LikedBy.
type PostView struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	ImageURL     string     `json:"imageUrl"`
	AuthorName   string     `json:"authorName"`
	AuthorID     string     `json:"authorId"`
	AuthorAvatar string     `json:"authorAvatar,omitempty"`
	Likes        int        `json:"likes"`
	LikedByMe    bool       `json:"likedByMe"`
	Comments     []*Comment `json:"comments"`
	CreatedAt    Timestamp  `json:"createdAt"`
}

// Comment belongs to exactly one post and is only reached through it.
type Comment struct {
	ID           int64     `json:"id"`
	PostID       int64     `json:"postId"`
	Text         string    `json:"text"`
	AuthorName   string    `json:"authorName"`
	AuthorID     string    `json:"authorId"`
	AuthorAvatar string    `json:"authorAvatar,omitempty"`
	CreatedAt    Timestamp `json:"createdAt"`
}

// Product is a catalog entry. Fields missing from an update request are
// dropped from the stored record; see MarshalJSON for features.
type Product struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title,omitempty"`
	Description   string    `json:"description,omitempty"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	Price         Price     `json:"price,omitempty"`
	OriginalPrice Price     `json:"originalPrice,omitempty"`
	Link          string    `json:"link,omitempty"`
	Features      []string  `json:"features"`
	CreatedAt     Timestamp `json:"createdAt"`
}
