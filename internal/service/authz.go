// Package service contains the business logic for feeds, posts, comments,
// and the follow graph.
package service

import "yatube/internal/models"

// CanEditPost reports whether the identity owns the post. Pure decision
// function with no side effects; identity comparison only.
func CanEditPost(userID uint, post *models.Post) bool {
	return post != nil && userID != 0 && userID == post.AuthorID
}

// CanCreateContent reports whether the identity may create posts, comments,
// or follows. Zero means anonymous.
func CanCreateContent(userID uint) bool {
	return userID != 0
}
