package repository

import (
	"context"
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRepository_GetBySlug(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	createTestGroup(t, db, "cats")
	ctx := context.Background()

	group, err := repo.GetBySlug(ctx, "cats")
	require.NoError(t, err)
	assert.Equal(t, "cats", group.Slug)

	_, err = repo.GetBySlug(ctx, "missing")
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestGroupRepository_List_SortedByTitle(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	require.NoError(t, db.Create(&models.Group{Title: "Zebras", Slug: "zebras"}).Error)
	require.NoError(t, db.Create(&models.Group{Title: "Antelopes", Slug: "antelopes"}).Error)

	groups, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Antelopes", groups[0].Title)
	assert.Equal(t, "Zebras", groups[1].Title)
}

func TestGroupRepository_Delete_DetachesPosts(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	author := createTestUser(t, db, "grouped")
	group := createTestGroup(t, db, "doomed-group")
	ctx := context.Background()

	post := &models.Post{Text: "survives its group", AuthorID: author.ID, GroupID: &group.ID}
	require.NoError(t, db.Create(post).Error)

	require.NoError(t, repo.Delete(ctx, "doomed-group"))

	var got models.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	assert.Nil(t, got.GroupID, "post must survive with its group reference cleared")

	var groupCount int64
	db.Model(&models.Group{}).Count(&groupCount)
	assert.Zero(t, groupCount)
}

func TestGroupRepository_Delete_Missing(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	err := repo.Delete(context.Background(), "never-existed")
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}
