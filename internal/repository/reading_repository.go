package repository

import (
	"context"

	"gorm.io/gorm"

	"taralog/internal/model"
)

// ReadingRepository defines persistence operations for readings.
type ReadingRepository interface {
	Create(ctx context.Context, reading *model.Reading) error
	Update(ctx context.Context, reading *model.Reading) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Reading, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Reading, error)
	List(ctx context.Context) ([]model.Reading, error)
}

type readingRepository struct {
	db *gorm.DB
}

// NewReadingRepository builds a GORM-backed repository.
func NewReadingRepository(db *gorm.DB) ReadingRepository {
	return &readingRepository{db: db}
}

func (r *readingRepository) Create(ctx context.Context, reading *model.Reading) error {
	return r.db.WithContext(ctx).Create(reading).Error
}

func (r *readingRepository) Update(ctx context.Context, reading *model.Reading) error {
	return r.db.WithContext(ctx).Save(reading).Error
}

func (r *readingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Reading{}, id).Error
}

func (r *readingRepository) FindByID(ctx context.Context, id uint) (*model.Reading, error) {
	var reading model.Reading
	if err := r.db.WithContext(ctx).First(&reading, id).Error; err != nil {
		return nil, err
	}
	return &reading, nil
}

func (r *readingRepository) ListByUser(ctx context.Context, userID uint) ([]model.Reading, error) {
	var readings []model.Reading
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}

func (r *readingRepository) List(ctx context.Context) ([]model.Reading, error) {
	var readings []model.Reading
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}
