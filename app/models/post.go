package models

import "errors"

// Validate checks if the post carries every required field
func (p *Post) Validate() error {
	if p.Title == "" || p.ImageURL == "" || p.AuthorName == "" || p.AuthorID == "" {
		return errors.New("title, imageUrl, authorName and authorId are required")
	}
	if p.CreatedAt.IsZero() {
		return errors.New("createdAt cannot be zero")
	}
	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = Now()
	}
	if p.LikedBy == nil {
		p.LikedBy = []string{}
	}
	if p.Comments == nil {
		p.Comments = []*Comment{}
	}
}

// IsLikedBy reports whether userID is in the like set.
func (p *Post) IsLikedBy(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleLike adds userID to the like set or removes it when already there,
// adjusting the counter accordingly. It returns the new liked state.
func (p *Post) ToggleLike(userID string) bool {
	for i, id := range p.LikedBy {
		if id == userID {
			p.LikedBy = append(p.LikedBy[:i], p.LikedBy[i+1:]...)
			p.Likes = max(p.Likes-1, 0)
			return false
		}
	}
	p.LikedBy = append(p.LikedBy, userID)
	p.Likes++
	return true
}

// View renders the post for viewerID.
func (p *Post) View(viewerID string) PostView {
	comments := p.Comments
	if comments == nil {
		comments = []*Comment{}
	}
	return PostView{
		ID:           p.ID,
		Title:        p.Title,
		ImageURL:     p.ImageURL,
		AuthorName:   p.AuthorName,
		AuthorID:     p.AuthorID,
		AuthorAvatar: p.AuthorAvatar,
		Likes:        p.Likes,
		LikedByMe:    viewerID != "" && p.IsLikedBy(viewerID),
		Comments:     comments,
		CreatedAt:    p.CreatedAt,
	}
}

// AddComment appends a comment to the post
func (p *Post) AddComment(comment *Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}

	comment.PostID = p.ID
	p.Comments = append(p.Comments, comment)
	return nil
}

// FindComment returns the comment with the given id, or nil.
func (p *Post) FindComment(commentID int64) *Comment {
	for _, comment := range p.Comments {
		if comment.ID == commentID {
			return comment
		}
	}
	return nil
}

// RemoveComment removes a comment from the post
func (p *Post) RemoveComment(commentID int64) error {
	for i, comment := range p.Comments {
		if comment.ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return errors.New("comment not found")
}

// CanDelete reports whether userID may delete something owned by ownerID.
func CanDelete(ownerID, userID string, isAdmin bool) bool {
	return userID == ownerID || userID == AdminID || isAdmin
}
