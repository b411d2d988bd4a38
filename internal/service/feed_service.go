package service

import (
	"context"
	"time"

	"yatube/internal/cache"
	"yatube/internal/models"
	"yatube/internal/observability"
	"yatube/internal/repository"
)

// Page is one paginated slice of a feed plus its cursor metadata.
type Page struct {
	Posts       []models.Post `json:"posts"`
	Number      int           `json:"page_number"`
	TotalPages  int           `json:"total_pages"`
	HasNext     bool          `json:"has_next"`
	HasPrevious bool          `json:"has_previous"`
}

// FeedService assembles ordered, paginated post views for the four feed
// scopes. Page size and cache TTL are explicit configuration, not ambient
// state.
type FeedService struct {
	postRepo repository.PostRepository
	pageSize int
	cacheTTL time.Duration
}

// NewFeedService returns a new FeedService with the given page size and
// global-feed cache TTL. A zero TTL disables caching.
func NewFeedService(postRepo repository.PostRepository, pageSize int, cacheTTL time.Duration) *FeedService {
	return &FeedService{
		postRepo: postRepo,
		pageSize: pageSize,
		cacheTTL: cacheTTL,
	}
}

// PageSize returns the configured page size.
func (s *FeedService) PageSize() int {
	return s.pageSize
}

// Index returns one page of the global feed. Pages are served through a
// short-lived Redis cache; a miss or cache outage falls through to the
// database.
func (s *FeedService) Index(ctx context.Context, page int) (*Page, error) {
	if page < 1 {
		page = 1
	}

	if s.cacheTTL > 0 {
		var cached Page
		found, err := cache.GetJSON(ctx, cache.IndexPageKey(page), &cached)
		if err == nil && found {
			observability.FeedCacheLookups.WithLabelValues("hit").Inc()
			return &cached, nil
		}
		observability.FeedCacheLookups.WithLabelValues("miss").Inc()
	}

	result, err := s.paginate(ctx, page, s.postRepo.CountAll, s.postRepo.List)
	if err != nil {
		return nil, err
	}

	if s.cacheTTL > 0 {
		_ = cache.SetJSON(ctx, cache.IndexPageKey(page), result, s.cacheTTL)
	}
	return result, nil
}

// Group returns one page of posts belonging to the given group.
func (s *FeedService) Group(ctx context.Context, groupID uint, page int) (*Page, error) {
	return s.paginate(ctx, page,
		func(ctx context.Context) (int64, error) {
			return s.postRepo.CountByGroup(ctx, groupID)
		},
		func(ctx context.Context, limit, offset int) ([]models.Post, error) {
			return s.postRepo.ListByGroup(ctx, groupID, limit, offset)
		},
	)
}

// Profile returns one page of posts published by the given author.
func (s *FeedService) Profile(ctx context.Context, authorID uint, page int) (*Page, error) {
	return s.paginate(ctx, page,
		func(ctx context.Context) (int64, error) {
			return s.postRepo.CountByAuthor(ctx, authorID)
		},
		func(ctx context.Context, limit, offset int) ([]models.Post, error) {
			return s.postRepo.ListByAuthor(ctx, authorID, limit, offset)
		},
	)
}

// Following returns one page of posts by authors the user follows. A user
// following nobody gets an empty page, not an error.
func (s *FeedService) Following(ctx context.Context, userID uint, page int) (*Page, error) {
	return s.paginate(ctx, page,
		func(ctx context.Context) (int64, error) {
			return s.postRepo.CountFollowed(ctx, userID)
		},
		func(ctx context.Context, limit, offset int) ([]models.Post, error) {
			return s.postRepo.ListFollowed(ctx, userID, limit, offset)
		},
	)
}

// paginate resolves the requested page against the scope's total count and
// fetches the slice [(p-1)*N, p*N). Out-of-range pages clamp to the nearest
// valid page; an empty scope yields a single empty page.
func (s *FeedService) paginate(
	ctx context.Context,
	page int,
	count func(ctx context.Context) (int64, error),
	list func(ctx context.Context, limit, offset int) ([]models.Post, error),
) (*Page, error) {
	total, err := count(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(s.pageSize) - 1) / int64(s.pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	offset := (page - 1) * s.pageSize
	posts, err := list(ctx, s.pageSize, offset)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}

	return &Page{
		Posts:       posts,
		Number:      page,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}, nil
}
