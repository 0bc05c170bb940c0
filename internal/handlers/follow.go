package handlers

import (
	"errors"
	"net/http"

	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/services"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct{}

func NewFollowHandler() *FollowHandler {
	return &FollowHandler{}
}

// Index - the actor's following feed. GET /follow
func (h *FollowHandler) Index(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	posts, pg := services.FeedPage(actor.ID, pageParam(c), PerPage)

	Render(c, http.StatusOK, "follow/index.html", gin.H{
		"Title":      "Following",
		"Posts":      posts,
		"Pagination": pg,
		"BasePath":   "/follow",
	})
}

// Follow - start following an author. POST /profile/:username/follow
func (h *FollowHandler) Follow(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	err := services.FollowAuthor(actor.ID, author.ID)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrSelfFollow), errors.Is(err, services.ErrAlreadyFollowing):
		// Silent denial: back to the profile, nothing changed.
	default:
		RenderError(c, http.StatusInternalServerError, "Could not follow user")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+author.Username)
}

// Unfollow - stop following an author. POST /profile/:username/unfollow
func (h *FollowHandler) Unfollow(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	err := services.UnfollowAuthor(actor.ID, author.ID)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrNotFollowing):
		// Not following in the first place: same silent redirect.
	default:
		RenderError(c, http.StatusInternalServerError, "Could not unfollow user")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+author.Username)
}
