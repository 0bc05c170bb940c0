package handlers_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"inkwell/internal/db"
	"inkwell/internal/models"
	"inkwell/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowIndexShowsFollowedAuthorsPosts(t *testing.T) {
	r := newTestRouter(t)
	reader := newUser(t, "reader")
	writer := newUser(t, "writer")
	require.NoError(t, services.FollowAuthor(reader.ID, writer.ID))
	newPost(t, writer, "X marks the post", time.Now())

	cookies := login(t, r, reader)
	w := do(t, r, http.MethodGet, "/follow?page=1", nil, cookies)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "X marks the post")
}

func TestFollowIndexEmptyWithoutFollows(t *testing.T) {
	r := newTestRouter(t)
	reader := newUser(t, "reader")
	writer := newUser(t, "writer")
	newPost(t, writer, "invisible", time.Now())

	cookies := login(t, r, reader)
	w := do(t, r, http.MethodGet, "/follow", nil, cookies)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "invisible")
}

func TestFollowSelfCreatesNoRow(t *testing.T) {
	r := newTestRouter(t)
	user := newUser(t, "narcissist")

	cookies := login(t, r, user)
	w := do(t, r, http.MethodPost, "/profile/narcissist/follow", url.Values{}, cookies)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/narcissist", w.Header().Get("Location"))

	var count int64
	db.DB.Model(&models.Follow{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestFollowTwiceLeavesOneRow(t *testing.T) {
	r := newTestRouter(t)
	reader := newUser(t, "reader")
	newUser(t, "writer")

	cookies := login(t, r, reader)
	first := do(t, r, http.MethodPost, "/profile/writer/follow", url.Values{}, cookies)
	require.Equal(t, http.StatusFound, first.Code)

	second := do(t, r, http.MethodPost, "/profile/writer/follow", url.Values{}, cookies)
	require.Equal(t, http.StatusFound, second.Code)
	assert.Equal(t, "/profile/writer", second.Header().Get("Location"))

	var count int64
	db.DB.Model(&models.Follow{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUnfollowWhenNotFollowingRedirects(t *testing.T) {
	r := newTestRouter(t)
	reader := newUser(t, "reader")
	newUser(t, "writer")

	cookies := login(t, r, reader)
	w := do(t, r, http.MethodPost, "/profile/writer/unfollow", url.Values{}, cookies)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/writer", w.Header().Get("Location"))
}

func TestFollowUnknownUser(t *testing.T) {
	r := newTestRouter(t)
	reader := newUser(t, "reader")

	cookies := login(t, r, reader)
	w := do(t, r, http.MethodPost, "/profile/ghost/follow", url.Values{}, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileShowsFollowState(t *testing.T) {
	r := newTestRouter(t)
	reader := newUser(t, "reader")
	writer := newUser(t, "writer")
	require.NoError(t, services.FollowAuthor(reader.ID, writer.ID))

	cookies := login(t, r, reader)
	w := do(t, r, http.MethodGet, "/profile/writer", nil, cookies)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/profile/writer/unfollow")
	assert.Contains(t, w.Body.String(), "1 followers")
}

func TestProfileUnknownUser(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/profile/ghost", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
