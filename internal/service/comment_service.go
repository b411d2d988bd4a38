package service

import (
	"context"

	"yatube/internal/models"
	"yatube/internal/observability"
	"yatube/internal/repository"
	"yatube/internal/validation"
)

// CommentService provides comment creation and listing.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// AddCommentInput carries a comment submission. Post and author are stamped
// from the request context; any client-supplied values for them are ignored
// upstream.
type AddCommentInput struct {
	PostID   uint
	AuthorID uint
	Text     string
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment validates and persists a comment on the given post. Comments
// are immutable once created.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if !CanCreateContent(in.AuthorID) {
		return nil, models.NewUnauthorizedError("Authentication required to comment")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	text, err := validation.CleanText(in.Text)
	if err != nil {
		return nil, err
	}

	postID := in.PostID
	authorID := in.AuthorID
	comment := &models.Comment{
		PostID:   &postID,
		AuthorID: &authorID,
		Text:     text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	observability.CommentsCreated.Inc()

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns the post's comments, newest first.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}
