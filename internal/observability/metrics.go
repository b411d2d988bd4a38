package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yatube_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// FeedCacheLookups counts feed cache lookups by result (hit or miss).
	FeedCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yatube_feed_cache_lookups_total",
		Help: "Total number of feed cache lookups by result",
	}, []string{"result"})

	// PostsCreated counts successfully created posts.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yatube_posts_created_total",
		Help: "Total number of posts created",
	})

	// CommentsCreated counts successfully created comments.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yatube_comments_created_total",
		Help: "Total number of comments created",
	})

	// FollowChanges counts follow graph mutations by action (follow or unfollow).
	FollowChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yatube_follow_changes_total",
		Help: "Total number of follow and unfollow operations",
	}, []string{"action"})
)
