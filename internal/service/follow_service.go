package service

import (
	"context"

	"yatube/internal/cache"
	"yatube/internal/models"
	"yatube/internal/observability"
	"yatube/internal/repository"
)

// FollowService maintains the directed "user follows author" relation.
type FollowService struct {
	followRepo repository.FollowRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository) *FollowService {
	return &FollowService{followRepo: followRepo}
}

// Follow records that the user follows the author. Idempotent: an existing
// pair is a no-op, and following yourself is silently ignored.
func (s *FollowService) Follow(ctx context.Context, userID, authorID uint) error {
	if !CanCreateContent(userID) {
		return models.NewUnauthorizedError("Authentication required to follow")
	}
	if userID == authorID {
		return nil
	}

	if err := s.followRepo.Create(ctx, &models.Follow{UserID: userID, AuthorID: authorID}); err != nil {
		return err
	}

	observability.FollowChanges.WithLabelValues("follow").Inc()
	cache.InvalidateFollowerCount(ctx, authorID)
	return nil
}

// Unfollow removes the relation. Idempotent: an absent pair is not an error.
func (s *FollowService) Unfollow(ctx context.Context, userID, authorID uint) error {
	if !CanCreateContent(userID) {
		return models.NewUnauthorizedError("Authentication required to unfollow")
	}

	if err := s.followRepo.Delete(ctx, userID, authorID); err != nil {
		return err
	}

	observability.FollowChanges.WithLabelValues("unfollow").Inc()
	cache.InvalidateFollowerCount(ctx, authorID)
	return nil
}

// IsFollowing reports whether the user follows the author. Anonymous
// viewers follow nobody.
func (s *FollowService) IsFollowing(ctx context.Context, userID, authorID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.followRepo.Exists(ctx, userID, authorID)
}

// FollowerCount returns the number of followers the author has, served
// through a short-lived cache.
func (s *FollowService) FollowerCount(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := cache.CacheAside(ctx, cache.FollowerCountKey(authorID), &count, cache.FollowerCountTTL, func() error {
		fresh, err := s.followRepo.CountFollowers(ctx, authorID)
		if err != nil {
			return err
		}
		count = fresh
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
