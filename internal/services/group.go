package services

import (
	"errors"

	"inkwell/internal/db"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

var ErrSlugTaken = errors.New("group slug already in use")

// CreateGroup enforces slug uniqueness at write time: the check and the
// insert share a transaction, and a duplicate-key error from the index is
// translated rather than propagated.
func CreateGroup(title, slug, description string) (*models.Group, error) {
	group := models.Group{
		Title:       title,
		Slug:        slug,
		Description: description,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Group{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrSlugTaken
		}
		if err := tx.Create(&group).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlugTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// DeleteGroup clears the group reference on dependent posts and removes the
// group. Posts survive with group_id set to NULL.
func DeleteGroup(groupID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("group_id = ?", groupID).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Group{}, groupID).Error
	})
}
