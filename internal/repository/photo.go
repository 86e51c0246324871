package repository

import (
	"context"
	"errors"

	"yatube/internal/models"

	"gorm.io/gorm"
)

// PhotoRepository defines the interface for profile photo operations
type PhotoRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.ProfilePhoto, error)
	MapByUserIDs(ctx context.Context, userIDs []uint) (map[uint]string, error)
	Replace(ctx context.Context, photo *models.ProfilePhoto) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

// photoRepository implements PhotoRepository
type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository creates a new profile photo repository
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

// GetByUserID returns the user's photo, or nil when none is set. Callers
// fall back to the default image on nil.
func (r *photoRepository) GetByUserID(ctx context.Context, userID uint) (*models.ProfilePhoto, error) {
	var photo models.ProfilePhoto
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		First(&photo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &photo, nil
}

// MapByUserIDs returns image paths keyed by user id for the given users.
// Users without a photo are simply absent from the map.
func (r *photoRepository) MapByUserIDs(ctx context.Context, userIDs []uint) (map[uint]string, error) {
	result := make(map[uint]string, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	var photos []models.ProfilePhoto
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("id ASC").
		Find(&photos).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, p := range photos {
		result[p.UserID] = p.Photo
	}
	return result, nil
}

// Replace installs the photo as the user's only one. Any previous photos go
// in the same transaction, so a user never holds more than one row and a
// failed insert keeps the old photo.
func (r *photoRepository) Replace(ctx context.Context, photo *models.ProfilePhoto) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", photo.UserID).Delete(&models.ProfilePhoto{}).Error; err != nil {
			return err
		}
		return tx.Create(photo).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *photoRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.ProfilePhoto{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
