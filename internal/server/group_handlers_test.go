package server

import (
	"net/http"
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupHandlers(t *testing.T) {
	s := newTestServer(t)
	app := newTestApp(s)
	user := createUserFixture(t, s, "curator")
	token := tokenFor(t, s, user.ID)

	t.Run("create group", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/groups", token, map[string]string{
			"title":       "Go Enthusiasts",
			"slug":        "go-enthusiasts",
			"description": "all things Go",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var group models.Group
		decodeBody(t, resp, &group)
		assert.Equal(t, "go-enthusiasts", group.Slug)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/groups", token, map[string]string{
			"title": "Another", "slug": "go-enthusiasts",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("reserved slug rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/groups", token, map[string]string{
			"title": "Sneaky", "slug": "posts",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing title rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/groups", token, map[string]string{
			"slug": "untitled",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("list and get", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/groups", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var list struct {
			Groups []models.Group `json:"groups"`
		}
		decodeBody(t, resp, &list)
		require.Len(t, list.Groups, 1)

		resp = doJSON(t, app, http.MethodGet, "/api/groups/go-enthusiasts", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doJSON(t, app, http.MethodGet, "/api/groups/missing", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGroupFeedHandler(t *testing.T) {
	s := newTestServer(t)
	app := newTestApp(s)
	author := createUserFixture(t, s, "grouper")
	group := &models.Group{Title: "Cats", Slug: "cats"}
	require.NoError(t, s.db.Create(group).Error)

	require.NoError(t, s.db.Create(&models.Post{Text: "in group", AuthorID: author.ID, GroupID: &group.ID}).Error)
	createPostFixture(t, s, author.ID, "loose post")

	resp := doJSON(t, app, http.MethodGet, "/api/groups/cats/posts", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Group models.Group `json:"group"`
		Page  struct {
			Posts []models.Post `json:"posts"`
		} `json:"page"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "cats", body.Group.Slug)
	require.Len(t, body.Page.Posts, 1)
	assert.Equal(t, "in group", body.Page.Posts[0].Text)
}

func TestDeleteGroupHandler_DetachesPosts(t *testing.T) {
	s := newTestServer(t)
	app := newTestApp(s)
	user := createUserFixture(t, s, "janitor")
	group := &models.Group{Title: "Doomed", Slug: "doomed"}
	require.NoError(t, s.db.Create(group).Error)
	require.NoError(t, s.db.Create(&models.Post{Text: "outlives group", AuthorID: user.ID, GroupID: &group.ID}).Error)

	resp := doJSON(t, app, http.MethodDelete, "/api/groups/doomed", tokenFor(t, s, user.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var post models.Post
	require.NoError(t, s.db.First(&post).Error)
	assert.Nil(t, post.GroupID)
}
