package services

import (
	"errors"

	"inkwell/internal/db"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this author")
	ErrNotFollowing     = errors.New("not following this author")
)

// FollowAuthor inserts a follow edge. The existence check and the insert run
// in one transaction; a duplicate-key error from a racing request maps to
// ErrAlreadyFollowing so the unique index never surfaces as a raw fault.
func FollowAuthor(followerID, followedID uint) error {
	if followerID == followedID {
		return ErrSelfFollow
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Follow
		err := tx.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
			First(&existing).Error
		if err == nil {
			return ErrAlreadyFollowing
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		follow := models.Follow{FollowerID: followerID, FollowedID: followedID}
		if err := tx.Create(&follow).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyFollowing
			}
			return err
		}
		return nil
	})
}

// UnfollowAuthor removes the edge. A missing edge is the explicit
// ErrNotFollowing case, not a masked lookup failure.
func UnfollowAuthor(followerID, followedID uint) error {
	res := db.DB.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFollowing
	}
	return nil
}

func IsFollowing(followerID, followedID uint) bool {
	var follow models.Follow
	err := db.DB.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		First(&follow).Error
	return err == nil
}

// FollowerCount is how many users follow the author.
func FollowerCount(authorID uint) int64 {
	var count int64
	db.DB.Model(&models.Follow{}).Where("followed_id = ?", authorID).Count(&count)
	return count
}

// FollowingCount is how many authors the user follows.
func FollowingCount(userID uint) int64 {
	var count int64
	db.DB.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count)
	return count
}
