package handlers

import (
	"net/http"

	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile - author page with their posts. GET /profile/:username
func (h *UserHandler) Profile(c *gin.Context) {
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	var total int64
	db.DB.Model(&models.Post{}).Where("author_id = ?", author.ID).Count(&total)
	pg := utils.Paginate(pageParam(c), PerPage, total)

	var posts []models.Post
	db.DB.Preload("Author").Preload("Group").
		Where("author_id = ?", author.ID).
		Order("created_at DESC, id DESC").
		Limit(pg.PerPage).
		Offset(pg.Offset()).
		Find(&posts)

	services.FillCommentCounts(posts)

	actor := middleware.CurrentUser(c)
	isSelf := actor != nil && actor.ID == author.ID
	following := actor != nil && !isSelf && services.IsFollowing(actor.ID, author.ID)

	Render(c, http.StatusOK, "user/profile.html", gin.H{
		"Title":          author.Username,
		"Author":         author,
		"Posts":          posts,
		"Pagination":     pg,
		"BasePath":       "/profile/" + author.Username,
		"PostCount":      total,
		"FollowerCount":  services.FollowerCount(author.ID),
		"FollowingCount": services.FollowingCount(author.ID),
		"IsSelf":         isSelf,
		"Following":      following,
	})
}

// DeleteAccount - remove the actor and all their content. POST /account/delete
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	if err := services.DeleteAccount(actor.ID); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not delete account")
		return
	}

	utils.GetCache().Delete("post:list:page:1")

	session := sessions.Default(c)
	session.Clear()
	session.Save()

	c.Redirect(http.StatusFound, "/")
}
