package server

import (
	"net/http"
	"net/url"
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFollow_CreatesEdgeOnce(t *testing.T) {
	s, app, db := setupTestApp(t)
	fan := createHandlerTestUser(t, db, "fan")
	createHandlerTestUser(t, db, "author")

	for i := 0; i < 3; i++ {
		resp := postForm(t, app, "/author/follow/", url.Values{}, bearerToken(t, s, fan))
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/author/", resp.Header.Get("Location"))
	}

	var count int64
	db.Model(&models.Follow{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestProfileFollow_SelfFollowSilentlySkipped(t *testing.T) {
	s, app, db := setupTestApp(t)
	user := createHandlerTestUser(t, db, "loner")

	resp := postForm(t, app, "/loner/follow/", url.Values{}, bearerToken(t, s, user))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/loner/", resp.Header.Get("Location"))

	var count int64
	db.Model(&models.Follow{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestProfileFollow_UnknownAuthorIs404(t *testing.T) {
	s, app, db := setupTestApp(t)
	fan := createHandlerTestUser(t, db, "fan")

	resp := postForm(t, app, "/ghost/follow/", url.Values{}, bearerToken(t, s, fan))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProfileUnfollow_RemovesEdgeAndToleratesRepeats(t *testing.T) {
	s, app, db := setupTestApp(t)
	fan := createHandlerTestUser(t, db, "fan")
	author := createHandlerTestUser(t, db, "author")
	require.NoError(t, db.Create(&models.Follow{UserID: fan.ID, AuthorID: author.ID}).Error)

	resp := postForm(t, app, "/author/unfollow/", url.Values{}, bearerToken(t, s, fan))
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	var count int64
	db.Model(&models.Follow{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// A second unfollow is a no-op, not an error
	resp = postForm(t, app, "/author/unfollow/", url.Values{}, bearerToken(t, s, fan))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestAddComment_BindsAuthorAndPostServerSide(t *testing.T) {
	s, app, db := setupTestApp(t)
	author := createHandlerTestUser(t, db, "author")
	commenter := createHandlerTestUser(t, db, "commenter")
	post := &models.Post{Text: "discussed", AuthorID: author.ID}
	require.NoError(t, db.Create(post).Error)

	// Forged author_id and post_id fields in the payload are ignored
	resp := postForm(t, app, "/author/1/comment/",
		url.Values{"text": {"great"}, "author_id": {"999"}, "post_id": {"999"}},
		bearerToken(t, s, commenter))

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/author/1/", resp.Header.Get("Location"))

	var comment models.Comment
	require.NoError(t, db.First(&comment).Error)
	assert.Equal(t, commenter.ID, comment.AuthorID)
	assert.Equal(t, post.ID, comment.PostID)
}

func TestAddComment_EmptyTextRejected(t *testing.T) {
	s, app, db := setupTestApp(t)
	author := createHandlerTestUser(t, db, "author")
	require.NoError(t, db.Create(&models.Post{Text: "quiet", AuthorID: author.ID}).Error)

	resp := postForm(t, app, "/author/1/comment/",
		url.Values{"text": {""}}, bearerToken(t, s, author))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	db.Model(&models.Comment{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAddComment_MissingPostIs404(t *testing.T) {
	s, app, db := setupTestApp(t)
	user := createHandlerTestUser(t, db, "author")

	resp := postForm(t, app, "/author/42/comment/",
		url.Values{"text": {"into the void"}}, bearerToken(t, s, user))

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
