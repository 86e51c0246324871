package repository

import (
	"context"
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_CreateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	reader := createTestUser(t, db, "reader")
	author := createTestUser(t, db, "author")

	require.NoError(t, repo.Create(ctx, reader.ID, author.ID))
	require.NoError(t, repo.Create(ctx, reader.ID, author.ID))
	require.NoError(t, repo.Create(ctx, reader.ID, author.ID))

	var count int64
	db.Model(&models.Follow{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestFollowRepository_Exists(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	reader := createTestUser(t, db, "reader")
	author := createTestUser(t, db, "author")

	exists, err := repo.Exists(ctx, reader.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, reader.ID, author.ID))

	exists, err = repo.Exists(ctx, reader.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	// The edge is directional
	exists, err = repo.Exists(ctx, author.ID, reader.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFollowRepository_DeleteMissingEdgeIsNoop(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	reader := createTestUser(t, db, "reader")
	author := createTestUser(t, db, "author")

	assert.NoError(t, repo.Delete(ctx, reader.ID, author.ID))

	require.NoError(t, repo.Create(ctx, reader.ID, author.ID))
	require.NoError(t, repo.Delete(ctx, reader.ID, author.ID))

	exists, err := repo.Exists(ctx, reader.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFollowRepository_Counts(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	fan1 := createTestUser(t, db, "fan1")
	fan2 := createTestUser(t, db, "fan2")

	require.NoError(t, repo.Create(ctx, fan1.ID, author.ID))
	require.NoError(t, repo.Create(ctx, fan2.ID, author.ID))
	require.NoError(t, repo.Create(ctx, fan1.ID, fan2.ID))

	followers, err := repo.CountFollowers(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followers)

	following, err := repo.CountFollowing(ctx, fan1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), following)

	following, err = repo.CountFollowing(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), following)
}
