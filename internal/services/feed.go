package services

import (
	"inkwell/internal/db"
	"inkwell/internal/models"
	"inkwell/internal/utils"
)

// FollowedAuthorIDs returns the distinct set of author ids the user follows.
func FollowedAuthorIDs(userID uint) []uint {
	var ids []uint
	db.DB.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Distinct().
		Pluck("followed_id", &ids)
	return ids
}

// FeedPage assembles one page of the user's following feed: all posts whose
// author is in the followed set, as a single membership-filtered query.
// Ordered created_at DESC with id DESC as tie-break so pagination is
// deterministic across requests. An empty followed set is an empty feed.
func FeedPage(userID uint, page, perPage int) ([]models.Post, utils.Pagination) {
	ids := FollowedAuthorIDs(userID)
	if len(ids) == 0 {
		return nil, utils.Paginate(page, perPage, 0)
	}

	var total int64
	db.DB.Model(&models.Post{}).Where("author_id IN ?", ids).Count(&total)

	pg := utils.Paginate(page, perPage, total)

	var posts []models.Post
	db.DB.Preload("Author").Preload("Group").
		Where("author_id IN ?", ids).
		Order("created_at DESC, id DESC").
		Limit(pg.PerPage).
		Offset(pg.Offset()).
		Find(&posts)

	FillCommentCounts(posts)
	return posts, pg
}
