package handlers

import (
	"inkwell/internal/middleware"

	"github.com/gin-gonic/gin"
)

// PerPage is the fixed page size for every listing.
const PerPage = 10

// Render helper to inject common variables like 'current user'. Works on a
// copy so values cached across requests are never mutated.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	data := gin.H{}
	for k, v := range obj {
		data[k] = v
	}

	if user, exists := c.Get(middleware.CheckUserKey); exists {
		data["CurrentUser"] = user
	}
	data["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, data)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Title": "Error", "Error": message})
}
