package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// pageParam reads ?page= and defaults to 1; out-of-range values are clamped
// later by utils.Paginate, never rejected.
func pageParam(c *gin.Context) int {
	page := utils.StringToInt(c.Query("page"))
	if page < 1 {
		page = 1
	}
	return page
}

// groupParam parses the optional group select on the post form. Empty or
// unknown ids mean "no group".
func groupParam(c *gin.Context) *uint {
	idStr := c.PostForm("group")
	if idStr == "" {
		return nil
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return nil
	}
	var group models.Group
	if err := db.DB.First(&group, id).Error; err != nil {
		return nil
	}
	return &group.ID
}

// List - all posts, newest first. GET /
func (h *PostHandler) List(c *gin.Context) {
	page := pageParam(c)

	cacheKey := fmt.Sprintf("post:list:page:%d", page)
	if cachedData := utils.GetCache().Get(cacheKey); cachedData != nil {
		if hData, ok := cachedData.(gin.H); ok {
			Render(c, http.StatusOK, "post/list.html", hData)
			return
		}
	}

	var total int64
	db.DB.Model(&models.Post{}).Count(&total)
	pg := utils.Paginate(page, PerPage, total)

	var posts []models.Post
	db.DB.Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC").
		Limit(pg.PerPage).
		Offset(pg.Offset()).
		Find(&posts)

	services.FillCommentCounts(posts)

	var groups []models.Group
	db.DB.Order("id ASC").Find(&groups)

	renderData := gin.H{
		"Title":      "Latest posts",
		"Posts":      posts,
		"Groups":     groups,
		"Pagination": pg,
		"BasePath":   "/",
	}

	utils.GetCache().Set(cacheKey, renderData, 1*time.Minute)

	Render(c, http.StatusOK, "post/list.html", renderData)
}

// ListByGroup - posts filed under one group. GET /group/:slug
func (h *PostHandler) ListByGroup(c *gin.Context) {
	slug := c.Param("slug")

	var group models.Group
	if err := db.DB.Where("slug = ?", slug).First(&group).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Group not found")
		return
	}

	var total int64
	db.DB.Model(&models.Post{}).Where("group_id = ?", group.ID).Count(&total)
	pg := utils.Paginate(pageParam(c), PerPage, total)

	var posts []models.Post
	db.DB.Preload("Author").Preload("Group").
		Where("group_id = ?", group.ID).
		Order("created_at DESC, id DESC").
		Limit(pg.PerPage).
		Offset(pg.Offset()).
		Find(&posts)

	services.FillCommentCounts(posts)

	Render(c, http.StatusOK, "post/list.html", gin.H{
		"Title":      group.Title,
		"Group":      group,
		"Posts":      posts,
		"Pagination": pg,
		"BasePath":   "/group/" + group.Slug,
	})
}

// Detail - single post with its comments. GET /posts/:id
func (h *PostHandler) Detail(c *gin.Context) {
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.Preload("Author").Preload("Group").First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	var comments []models.Comment
	db.DB.Preload("Author").
		Where("post_id = ?", post.ID).
		Order("created_at ASC").
		Find(&comments)

	type RenderedComment struct {
		models.Comment
		TextHTML template.HTML
	}
	renderedComments := make([]RenderedComment, len(comments))
	for i, com := range comments {
		renderedComments[i] = RenderedComment{
			Comment:  com,
			TextHTML: utils.RenderMarkdown(com.Text),
		}
	}

	var authorPostCount int64
	db.DB.Model(&models.Post{}).Where("author_id = ?", post.AuthorID).Count(&authorPostCount)

	actor := middleware.CurrentUser(c)
	canEdit := services.CanEditPost(&post, actor)

	Render(c, http.StatusOK, "post/detail.html", gin.H{
		"Title":           postTitle(post.Text),
		"Post":            post,
		"PostContent":     utils.RenderMarkdown(post.Text),
		"Comments":        renderedComments,
		"CommentCount":    len(comments),
		"AuthorPostCount": authorPostCount,
		"FollowerCount":   services.FollowerCount(post.AuthorID),
		"CanEdit":         canEdit,
	})
}

// postTitle shortens the post text for page titles.
func postTitle(text string) string {
	runes := []rune(text)
	if len(runes) > 30 {
		return string(runes[:30]) + "..."
	}
	return text
}

// ShowCreate - post form. GET /create
func (h *PostHandler) ShowCreate(c *gin.Context) {
	var groups []models.Group
	db.DB.Order("id ASC").Find(&groups)

	Render(c, http.StatusOK, "post/create.html", gin.H{
		"Title":  "New post",
		"Text":   "",
		"Groups": groups,
	})
}

// Create - submit a new post. POST /create
func (h *PostHandler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	text := c.PostForm("text")
	groupID := groupParam(c)

	if text == "" {
		var groups []models.Group
		db.DB.Order("id ASC").Find(&groups)
		Render(c, http.StatusBadRequest, "post/create.html", gin.H{
			"Title":  "New post",
			"Error":  "Text is required",
			"Text":   "",
			"Groups": groups,
		})
		return
	}

	image := ""
	if file, header, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()
		ref, err := services.SaveImage(file, header)
		if err != nil {
			var groups []models.Group
			db.DB.Order("id ASC").Find(&groups)
			Render(c, http.StatusBadRequest, "post/create.html", gin.H{
				"Title":  "New post",
				"Error":  "Could not save image: " + err.Error(),
				"Text":   text,
				"Groups": groups,
			})
			return
		}
		image = ref
	}

	post := models.Post{
		Text:     text,
		AuthorID: actor.ID,
		GroupID:  groupID,
		Image:    image,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		var groups []models.Group
		db.DB.Order("id ASC").Find(&groups)
		Render(c, http.StatusInternalServerError, "post/create.html", gin.H{
			"Title":  "New post",
			"Error":  "Could not save post",
			"Text":   text,
			"Groups": groups,
		})
		return
	}

	utils.GetCache().Delete("post:list:page:1")

	c.Redirect(http.StatusFound, "/profile/"+actor.Username)
}

// ShowEdit - edit form. GET /posts/:id/edit
func (h *PostHandler) ShowEdit(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	// Non-authors are bounced back to the post, not shown an error page.
	if !services.CanEditPost(&post, actor) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
		return
	}

	var groups []models.Group
	db.DB.Order("id ASC").Find(&groups)

	Render(c, http.StatusOK, "post/edit.html", gin.H{
		"Title":          "Edit post",
		"Post":           post,
		"CurrentGroupID": derefGroupID(post.GroupID),
		"Groups":         groups,
	})
}

// derefGroupID flattens the nullable group reference for the edit form; 0
// means "no group".
func derefGroupID(id *uint) uint {
	if id == nil {
		return 0
	}
	return *id
}

// Edit - submit changes. POST /posts/:id/edit
func (h *PostHandler) Edit(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if !services.CanEditPost(&post, actor) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
		return
	}

	text := c.PostForm("text")
	if text == "" {
		var groups []models.Group
		db.DB.Order("id ASC").Find(&groups)
		Render(c, http.StatusBadRequest, "post/edit.html", gin.H{
			"Title":          "Edit post",
			"Error":          "Text is required",
			"Post":           post,
			"CurrentGroupID": derefGroupID(post.GroupID),
			"Groups":         groups,
		})
		return
	}

	updates := map[string]interface{}{
		"text":     text,
		"group_id": groupParam(c),
	}

	if file, header, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()
		ref, err := services.SaveImage(file, header)
		if err != nil {
			var groups []models.Group
			db.DB.Order("id ASC").Find(&groups)
			Render(c, http.StatusBadRequest, "post/edit.html", gin.H{
				"Title":          "Edit post",
				"Error":          "Could not save image: " + err.Error(),
				"Post":           post,
				"CurrentGroupID": derefGroupID(post.GroupID),
				"Groups":         groups,
			})
			return
		}
		updates["image"] = ref
	}

	// Updates with an explicit column map so created_at stays untouched.
	if err := db.DB.Model(&post).Updates(updates).Error; err != nil {
		var groups []models.Group
		db.DB.Order("id ASC").Find(&groups)
		Render(c, http.StatusInternalServerError, "post/edit.html", gin.H{
			"Title":          "Edit post",
			"Error":          "Could not save post",
			"Post":           post,
			"CurrentGroupID": derefGroupID(post.GroupID),
			"Groups":         groups,
		})
		return
	}

	utils.GetCache().Delete("post:list:page:1")

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
}

// Delete - remove a post and its comments. POST /posts/:id/delete
func (h *PostHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	// Deletion is author-only, same rule as editing.
	if !services.CanDeletePost(&post, actor) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
		return
	}

	if err := services.DeletePost(post.ID); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not delete post")
		return
	}

	utils.GetCache().Delete("post:list:page:1")

	c.Redirect(http.StatusFound, "/profile/"+actor.Username)
}

// CreateComment - add a comment to a post. POST /posts/:id/comment
func (h *PostHandler) CreateComment(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	text := c.PostForm("text")
	if text == "" {
		// Missing text: back to the post without mutating anything.
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
		return
	}

	comment := models.Comment{
		PostID:   post.ID,
		AuthorID: actor.ID,
		Text:     text,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save comment")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
}
