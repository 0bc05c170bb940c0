package services

import (
	"testing"
	"time"

	"inkwell/internal/db"
	"inkwell/internal/models"

	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, name string) models.User {
	t.Helper()
	user := models.User{
		Username: name,
		Email:    name + "@example.com",
		Password: "irrelevant",
	}
	require.NoError(t, db.DB.Create(&user).Error)
	return user
}

func createPost(t *testing.T, author models.User, text string, createdAt time.Time) models.Post {
	t.Helper()
	post := models.Post{
		Text:      text,
		AuthorID:  author.ID,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.DB.Create(&post).Error)
	return post
}

func createComment(t *testing.T, post models.Post, author models.User, text string) models.Comment {
	t.Helper()
	comment := models.Comment{
		PostID:   post.ID,
		AuthorID: author.ID,
		Text:     text,
	}
	require.NoError(t, db.DB.Create(&comment).Error)
	return comment
}
