// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"yatube/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db  *gorm.DB
	rnd *rand.Rand
	seq int
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a user with a hashed password. All seeded users share
// the same password to make manual testing easy.
func (f *Factory) CreateUser(username string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("SeedPass123!@#"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: string(hashed),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// RandomUsername derives a plausible handle. The sequence suffix keeps
// handles unique within one factory.
func (f *Factory) RandomUsername() string {
	base := strings.ToLower(gofakeit.Username())
	base = strings.Trim(strings.ReplaceAll(base, ".", "_"), "_-")
	if len(base) < 3 {
		base = "user"
	}
	if len(base) > 20 {
		base = base[:20]
	}
	f.seq++
	return fmt.Sprintf("%s%d", base, f.seq)
}

// CreateGroup persists a group with the given slug.
func (f *Factory) CreateGroup(title, slug string) (*models.Group, error) {
	group := &models.Group{
		Title:       title,
		Slug:        slug,
		Description: gofakeit.Sentence(12),
	}
	if err := f.db.Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// CreatePost persists a post with a publication date spread over the last
// maxDays days, so seeded feeds paginate realistically.
func (f *Factory) CreatePost(author *models.User, group *models.Group, maxDays int) (*models.Post, error) {
	if maxDays <= 0 {
		maxDays = 90
	}

	post := &models.Post{
		Text:     gofakeit.Paragraph(1, 3, 8, "\n"),
		AuthorID: author.ID,
	}
	if group != nil {
		post.GroupID = &group.ID
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}

	back := time.Duration(f.rnd.Intn(maxDays*24*60)) * time.Minute
	pubDate := time.Now().Add(-back)
	if err := f.db.Model(post).Update("pub_date", pubDate).Error; err != nil {
		return nil, err
	}
	post.PubDate = pubDate
	return post, nil
}

// CreateComment persists a comment on the post.
func (f *Factory) CreateComment(author *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		Text:     gofakeit.Sentence(10),
		AuthorID: author.ID,
		PostID:   post.ID,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateFollow persists a follow edge, skipping self-follows.
func (f *Factory) CreateFollow(user, author *models.User) error {
	if user.ID == author.ID {
		return nil
	}
	follow := &models.Follow{UserID: user.ID, AuthorID: author.ID}
	return f.db.Where("user_id = ? AND author_id = ?", user.ID, author.ID).
		FirstOrCreate(follow).Error
}
