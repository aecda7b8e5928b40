package services

import (
	"fmt"
	"log"

	"galleria/app/models"
	"galleria/app/repositories"
)

// GalleryService handles posts, likes and comments
type GalleryService struct {
	postRepo repositories.PostRepository
	ids      *IDSource
}

// NewGalleryService creates a new GalleryService
func NewGalleryService(postRepo repositories.PostRepository) *GalleryService {
	return &GalleryService{
		postRepo: postRepo,
		ids:      defaultIDs,
	}
}

// ListPosts returns every post, newest first, as seen by viewerID
func (s *GalleryService) ListPosts(viewerID string) ([]models.PostView, error) {
	posts, err := s.postRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, post.View(viewerID))
	}
	return views, nil
}

// CreatePost validates the request and stores the post at the front
func (s *GalleryService) CreatePost(req *models.CreatePostRequest) (*models.PostView, error) {
	if err := models.Validate(req); err != nil {
		log.Printf("create post rejected, missing %v", models.MissingFields(err))
		return nil, validationError(MsgIncompleteData)
	}

	post := &models.Post{
		ID:           s.ids.Next(),
		Title:        req.Title,
		ImageURL:     req.ImageURL,
		AuthorName:   req.AuthorName,
		AuthorID:     req.AuthorID,
		AuthorAvatar: req.AuthorAvatar,
	}
	post.BeforeCreate()

	err := s.postRepo.Mutate(func(posts []*models.Post) ([]*models.Post, error) {
		return append([]*models.Post{post}, posts...), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save post: %w", err)
	}

	view := post.View("")
	return &view, nil
}

// ToggleLike likes the post for userID, or unlikes it when already liked
func (s *GalleryService) ToggleLike(postID int64, userID string) (*models.PostView, error) {
	var view models.PostView
	err := s.postRepo.Mutate(func(posts []*models.Post) ([]*models.Post, error) {
		post := findPost(posts, postID)
		if post == nil {
			return nil, notFoundError(MsgPostNotFound)
		}
		if userID == "" {
			return nil, validationError(MsgUserRequired)
		}

		post.ToggleLike(userID)
		view = post.View(userID)
		return posts, nil
	})
	if err != nil {
		return nil, wrapStorage("failed to toggle like", err)
	}
	return &view, nil
}

// DeletePost removes a post together with its comments
func (s *GalleryService) DeletePost(postID int64, userID string, isAdmin bool) error {
	if userID == "" {
		return validationError(MsgUserRequired)
	}

	err := s.postRepo.Mutate(func(posts []*models.Post) ([]*models.Post, error) {
		for i, post := range posts {
			if post.ID != postID {
				continue
			}
			if !models.CanDelete(post.AuthorID, userID, isAdmin) {
				return nil, forbiddenError()
			}
			return append(posts[:i], posts[i+1:]...), nil
		}
		return nil, notFoundError(MsgPostNotFound)
	})
	return wrapStorage("failed to delete post", err)
}

// ListComments returns the comments of a post in chronological order
func (s *GalleryService) ListComments(postID int64) ([]*models.Comment, error) {
	posts, err := s.postRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	post := findPost(posts, postID)
	if post == nil {
		return nil, notFoundError(MsgPostNotFound)
	}
	if post.Comments == nil {
		return []*models.Comment{}, nil
	}
	return post.Comments, nil
}

// AddComment appends a comment to a post
func (s *GalleryService) AddComment(postID int64, req *models.CreateCommentRequest) (*models.Comment, error) {
	if err := models.Validate(req); err != nil {
		log.Printf("create comment rejected, missing %v", models.MissingFields(err))
		return nil, validationError(MsgIncompleteData)
	}

	comment := &models.Comment{
		Text:         req.Text,
		AuthorName:   req.AuthorName,
		AuthorID:     req.AuthorID,
		AuthorAvatar: req.AuthorAvatar,
	}
	err := s.postRepo.Mutate(func(posts []*models.Post) ([]*models.Post, error) {
		post := findPost(posts, postID)
		if post == nil {
			return nil, notFoundError(MsgPostNotFound)
		}

		comment.ID = s.ids.Next()
		comment.BeforeCreate()
		if err := post.AddComment(comment); err != nil {
			return nil, err
		}
		return posts, nil
	})
	if err != nil {
		return nil, wrapStorage("failed to save comment", err)
	}
	return comment, nil
}

// DeleteComment removes one comment from a post
func (s *GalleryService) DeleteComment(postID, commentID int64, userID string, isAdmin bool) error {
	err := s.postRepo.Mutate(func(posts []*models.Post) ([]*models.Post, error) {
		post := findPost(posts, postID)
		if post == nil {
			return nil, notFoundError(MsgPostNotFound)
		}
		comment := post.FindComment(commentID)
		if comment == nil {
			return nil, notFoundError(MsgCommentNotFound)
		}
		if userID == "" {
			return nil, validationError(MsgUserRequired)
		}
		if !models.CanDelete(comment.AuthorID, userID, isAdmin) {
			return nil, forbiddenError()
		}
		if err := post.RemoveComment(commentID); err != nil {
			return nil, err
		}
		return posts, nil
	})
	return wrapStorage("failed to delete comment", err)
}

func findPost(posts []*models.Post, id int64) *models.Post {
	for _, post := range posts {
		if post.ID == id {
			return post
		}
	}
	return nil
}

// wrapStorage adds context to storage failures and passes domain errors through
func wrapStorage(op string, err error) error {
	if err == nil || Message(err) != "" {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
