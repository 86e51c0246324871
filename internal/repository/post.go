package repository

import (
	"context"
	"errors"

	"yatube/internal/models"

	"gorm.io/gorm"
)

// feedOrder is the canonical feed ordering. Newest first, with the id as a
// tiebreak so posts created in the same instant still page deterministically.
const feedOrder = "pub_date DESC, id DESC"

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetByAuthorAndID(ctx context.Context, authorID, postID uint) (*models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	ListByGroupID(ctx context.Context, groupID uint) ([]models.Post, error)
	ListByAuthorID(ctx context.Context, authorID uint) ([]models.Post, error)
	ListFollowed(ctx context.Context, viewerID uint) ([]models.Post, error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// GetByAuthorAndID looks a post up within one author's posts. A real post id
// under the wrong username is a miss, matching how post pages are addressed.
func (r *postRepository) GetByAuthorAndID(ctx context.Context, authorID, postID uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Where("author_id = ?", authorID).
		First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Order(feedOrder).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByGroupID(ctx context.Context, groupID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Where("group_id = ?", groupID).
		Order(feedOrder).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByAuthorID(ctx context.Context, authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Where("author_id = ?", authorID).
		Order(feedOrder).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// ListFollowed returns posts whose authors the viewer follows, via a
// subquery over the follow edges. A viewer following nobody gets an
// empty feed, not an error.
func (r *postRepository) ListFollowed(ctx context.Context, viewerID uint) ([]models.Post, error) {
	sub := r.db.Model(&models.Follow{}).
		Select("author_id").
		Where("user_id = ?", viewerID)

	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Where("author_id IN (?)", sub).
		Order(feedOrder).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes a post together with its comments in one transaction.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
