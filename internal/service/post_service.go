package service

import (
	"context"

	"yatube/internal/models"
	"yatube/internal/observability"
	"yatube/internal/repository"
	"yatube/internal/validation"
)

// PostService provides post creation and mutation with validation and
// ownership checks enforced at the store boundary.
type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
}

// CreatePostInput carries a validated-at-the-boundary post submission.
type CreatePostInput struct {
	AuthorID  uint
	Text      string
	GroupSlug string
	ImageRef  string
}

// UpdatePostInput carries a partial post edit. Nil fields are left
// unchanged; an empty GroupSlug detaches the post from its group.
type UpdatePostInput struct {
	UserID    uint
	PostID    uint
	Text      *string
	GroupSlug *string
	ImageRef  *string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
	}
}

// GetPost returns the post with its author and group loaded.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// CreatePost validates and persists a new post. CreatedAt is assigned by
// the store; the author comes from the authenticated identity, never from
// the payload.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if !CanCreateContent(in.AuthorID) {
		return nil, models.NewUnauthorizedError("Authentication required to create a post")
	}

	text, err := validation.CleanText(in.Text)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     text,
		AuthorID: in.AuthorID,
		ImageRef: in.ImageRef,
	}

	if in.GroupSlug != "" {
		group, err := s.groupRepo.GetBySlug(ctx, in.GroupSlug)
		if err != nil {
			return nil, err
		}
		post.GroupID = &group.ID
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	observability.PostsCreated.Inc()

	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdatePost applies a partial edit to the post. Only the author may
// mutate it; text and group are editable, CreatedAt never is.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if !CanEditPost(in.UserID, post) {
		return nil, models.NewUnauthorizedError("Only the author can edit a post")
	}

	if in.Text != nil {
		text, err := validation.CleanText(*in.Text)
		if err != nil {
			return nil, err
		}
		post.Text = text
	}

	if in.GroupSlug != nil {
		if *in.GroupSlug == "" {
			post.GroupID = nil
			post.Group = nil
		} else {
			group, err := s.groupRepo.GetBySlug(ctx, *in.GroupSlug)
			if err != nil {
				return nil, err
			}
			post.GroupID = &group.ID
		}
	}

	if in.ImageRef != nil {
		post.ImageRef = *in.ImageRef
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// DeletePost removes the post and its comments. Only the author may delete.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !CanEditPost(userID, post) {
		return models.NewUnauthorizedError("Only the author can delete a post")
	}

	return s.postRepo.Delete(ctx, postID)
}
