package handlers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/router"
	"inkwell/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestRouter builds the real route table over a throwaway database. The
// extra /_test/login route lets tests obtain a session cookie without going
// through the password flow.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	db.OpenTemp(t)
	utils.GetCache().Purge()

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("inkwell_session", store))
	r.HTMLRender = router.LoadTemplates("../../web/templates")
	r.Use(middleware.LoadUser())
	router.RegisterRoutes(r)

	r.GET("/_test/login/:id", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("user_id", uint(utils.StringToInt(c.Param("id"))))
		session.Save()
		c.Status(http.StatusOK)
	})

	return r
}

func login(t *testing.T, r *gin.Engine, user models.User) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/_test/login/%d", user.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func do(t *testing.T, r *gin.Engine, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newUser(t *testing.T, name string) models.User {
	t.Helper()
	user := models.User{Username: name, Email: name + "@example.com", Password: "irrelevant"}
	require.NoError(t, db.DB.Create(&user).Error)
	return user
}

func newPost(t *testing.T, author models.User, text string, createdAt time.Time) models.Post {
	t.Helper()
	post := models.Post{Text: text, AuthorID: author.ID, CreatedAt: createdAt}
	require.NoError(t, db.DB.Create(&post).Error)
	return post
}
