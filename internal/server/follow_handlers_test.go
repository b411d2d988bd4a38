package server

import (
	"fmt"
	"net/http"
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowHandlers(t *testing.T) {
	s := newTestServer(t)
	app := newTestApp(s)
	fan := createUserFixture(t, s, "fan")
	createUserFixture(t, s, "star")
	fanToken := tokenFor(t, s, fan.ID)

	t.Run("follow creates the relation", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/users/star/follow", fanToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var count int64
		s.db.Model(&models.Follow{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("repeated follow stays a single row", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/users/star/follow", fanToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var count int64
		s.db.Model(&models.Follow{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("self follow is silently ignored", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/users/fan/follow", fanToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var count int64
		s.db.Model(&models.Follow{}).Where("user_id = ? AND author_id = ?", fan.ID, fan.ID).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("unknown author 404s", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/users/nobody/follow", fanToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("anonymous follow rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/users/star/follow", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unfollow removes the relation and repeats safely", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, "/api/users/star/follow", fanToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp = doJSON(t, app, http.MethodDelete, "/api/users/star/follow", fanToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var count int64
		s.db.Model(&models.Follow{}).Count(&count)
		assert.Zero(t, count)
	})
}

func TestGetFollowingFeedHandler(t *testing.T) {
	s := newTestServer(t)
	app := newTestApp(s)
	reader := createUserFixture(t, s, "reader")
	followed := createUserFixture(t, s, "followed")
	ignored := createUserFixture(t, s, "ignored")
	readerToken := tokenFor(t, s, reader.ID)

	createPostFixture(t, s, followed.ID, "from followed")
	createPostFixture(t, s, ignored.ID, "from ignored")

	var page struct {
		Posts      []models.Post `json:"posts"`
		TotalPages int           `json:"total_pages"`
	}

	t.Run("following nobody yields one empty page", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/feed", readerToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &page)
		assert.Empty(t, page.Posts)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("feed contains only followed authors", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/users/followed/follow", readerToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doJSON(t, app, http.MethodGet, "/api/feed", readerToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &page)
		require.Len(t, page.Posts, 1)
		assert.Equal(t, "from followed", page.Posts[0].Text)
	})

	t.Run("unfollow empties the feed again", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, "/api/users/followed/follow", readerToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doJSON(t, app, http.MethodGet, "/api/feed", readerToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &page)
		assert.Empty(t, page.Posts)
	})
}

func TestGetProfileHandler(t *testing.T) {
	s := newTestServer(t)
	app := newTestApp(s)
	viewer := createUserFixture(t, s, "viewer")
	author := createUserFixture(t, s, "celebrity")
	createPostFixture(t, s, author.ID, "famous words")

	require.NoError(t, s.db.Create(&models.Follow{UserID: viewer.ID, AuthorID: author.ID}).Error)

	var body struct {
		User          models.User `json:"user"`
		PostCount     int64       `json:"post_count"`
		FollowerCount int64       `json:"follower_count"`
		Following     bool        `json:"following"`
	}

	t.Run("anonymous viewer", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/users/celebrity", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &body)
		assert.Equal(t, "celebrity", body.User.Username)
		assert.Equal(t, int64(1), body.PostCount)
		assert.Equal(t, int64(1), body.FollowerCount)
		assert.False(t, body.Following)
	})

	t.Run("follower sees the flag", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/users/celebrity", tokenFor(t, s, viewer.ID), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &body)
		assert.True(t, body.Following)
	})

	t.Run("unknown profile 404s", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/users/nobody", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetProfileFeedHandler(t *testing.T) {
	s := newTestServer(t)
	app := newTestApp(s)
	author := createUserFixture(t, s, "writer")
	other := createUserFixture(t, s, "noise")
	createPostFixture(t, s, author.ID, "mine")
	createPostFixture(t, s, other.ID, "not mine")

	var page struct {
		Posts []models.Post `json:"posts"`
	}
	resp := doJSON(t, app, http.MethodGet, "/api/users/writer/posts", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &page)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "mine", page.Posts[0].Text)
}

func TestDeleteMyAccountHandler(t *testing.T) {
	s := newTestServer(t)
	app := newTestApp(s)
	doomed := createUserFixture(t, s, "leaver")
	survivor := createUserFixture(t, s, "stayer")
	post := createPostFixture(t, s, doomed.ID, "to be erased")
	require.NoError(t, s.db.Create(&models.Comment{PostID: &post.ID, AuthorID: &survivor.ID, Text: "gone with the post"}).Error)
	require.NoError(t, s.db.Create(&models.Follow{UserID: survivor.ID, AuthorID: doomed.ID}).Error)

	resp := doJSON(t, app, http.MethodDelete, "/api/users/me", tokenFor(t, s, doomed.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users, posts, comments, follows int64
	s.db.Model(&models.User{}).Count(&users)
	s.db.Model(&models.Post{}).Count(&posts)
	s.db.Model(&models.Comment{}).Count(&comments)
	s.db.Model(&models.Follow{}).Count(&follows)
	assert.Equal(t, int64(1), users)
	assert.Zero(t, posts)
	assert.Zero(t, comments)
	assert.Zero(t, follows)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%s", "leaver"), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
