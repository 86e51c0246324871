package seed

import (
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
		&models.ProfilePhoto{},
	))
	return db
}

func TestSeed_PopulatesAllTables(t *testing.T) {
	db := newSeedTestDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 5, NumPosts: 20, ShouldClean: false}))

	var users, groups, posts int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Group{}).Count(&groups)
	db.Model(&models.Post{}).Count(&posts)

	assert.Equal(t, int64(5), users)
	assert.Equal(t, int64(len(defaultGroups)), groups)
	assert.Equal(t, int64(20), posts)
}

func TestSeed_CleanRemovesPreviousData(t *testing.T) {
	db := newSeedTestDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 3, NumPosts: 5, ShouldClean: false}))
	require.NoError(t, Seed(db, Options{NumUsers: 2, NumPosts: 4, ShouldClean: true}))

	var users, posts int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Post{}).Count(&posts)

	assert.Equal(t, int64(2), users)
	assert.Equal(t, int64(4), posts)
}

func TestFactory_CreateFollowSkipsSelf(t *testing.T) {
	db := newSeedTestDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser("loner")
	require.NoError(t, err)

	require.NoError(t, f.CreateFollow(user, user))

	var count int64
	db.Model(&models.Follow{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestFactory_CreateFollowIsIdempotent(t *testing.T) {
	db := newSeedTestDB(t)
	f := NewFactory(db)

	fan, err := f.CreateUser("fan")
	require.NoError(t, err)
	star, err := f.CreateUser("star")
	require.NoError(t, err)

	require.NoError(t, f.CreateFollow(fan, star))
	require.NoError(t, f.CreateFollow(fan, star))

	var count int64
	db.Model(&models.Follow{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
