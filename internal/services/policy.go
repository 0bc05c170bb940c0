package services

import (
	"inkwell/internal/models"
)

// CanEditPost reports whether actor may change the post. Only the author may.
func CanEditPost(post *models.Post, actor *models.User) bool {
	return actor != nil && post != nil && post.AuthorID == actor.ID
}

// CanDeletePost uses the same rule as editing: deletion is author-only.
func CanDeletePost(post *models.Post, actor *models.User) bool {
	return CanEditPost(post, actor)
}
