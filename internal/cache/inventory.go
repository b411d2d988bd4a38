package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	indexPageKeyPrefix     = "feed:index:%d"
	followerCountKeyPrefix = "followers:%d"
)

const (
	// FollowerCountTTL bounds staleness of the cached follower counter.
	FollowerCountTTL = time.Minute
)

// IndexPageKey is the cache key for one page of the global feed.
func IndexPageKey(page int) string {
	return fmt.Sprintf(indexPageKeyPrefix, page)
}

// FollowerCountKey is the cache key for an author's follower count.
func FollowerCountKey(authorID uint) string {
	return fmt.Sprintf(followerCountKeyPrefix, authorID)
}

// InvalidateFollowerCount drops the cached follower count for the author.
func InvalidateFollowerCount(ctx context.Context, authorID uint) {
	Invalidate(ctx, FollowerCountKey(authorID))
}
