package router

import (
	"html/template"
	"path/filepath"

	"inkwell/internal/handlers"
	"inkwell/internal/middleware"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	userHandler := handlers.NewUserHandler()
	followHandler := handlers.NewFollowHandler()

	// Public Routes
	r.GET("/", postHandler.List)                      // all posts, newest first
	r.GET("/group/:slug", postHandler.ListByGroup)    // posts filed under a group
	r.GET("/profile/:username", userHandler.Profile)  // author page
	r.GET("/posts/:id", postHandler.Detail)           // single post + comments

	r.GET("/signup", authHandler.ShowRegister)
	r.POST("/signup", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/create", postHandler.ShowCreate)
		authorized.POST("/create", postHandler.Create)
		authorized.GET("/posts/:id/edit", postHandler.ShowEdit)
		authorized.POST("/posts/:id/edit", postHandler.Edit)
		authorized.POST("/posts/:id/delete", postHandler.Delete)
		authorized.POST("/posts/:id/comment", postHandler.CreateComment)

		authorized.GET("/follow", followHandler.Index)
		authorized.POST("/profile/:username/follow", followHandler.Follow)
		authorized.POST("/profile/:username/unfollow", followHandler.Unfollow)

		authorized.POST("/account/delete", userHandler.DeleteAccount)
	}
}

// LoadTemplates assembles the multitemplate renderer: every view is parsed
// together with the shared layouts so handlers can render by view name.
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+1)
		files = append(files, layouts...)
		files = append(files, templatesDir+"/views/"+view)
		return files
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
	}

	views := []string{
		"auth/login.html",
		"auth/signup.html",
		"post/list.html",
		"post/detail.html",
		"post/create.html",
		"post/edit.html",
		"user/profile.html",
		"follow/index.html",
		"error.html",
	}
	for _, view := range views {
		r.AddFromFilesFuncs(view, funcMap, assemble(view)...)
	}

	return r
}
