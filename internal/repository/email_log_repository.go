package repository

import (
	"context"

	"gorm.io/gorm"

	"taralog/internal/model"
)

// EmailLogRepository defines persistence operations for email delivery logs.
type EmailLogRepository interface {
	Create(ctx context.Context, log *model.EmailLog) error
	List(ctx context.Context) ([]model.EmailLog, error)
}

type emailLogRepository struct {
	db *gorm.DB
}

// NewEmailLogRepository builds a GORM-backed repository.
func NewEmailLogRepository(db *gorm.DB) EmailLogRepository {
	return &emailLogRepository{db: db}
}

func (r *emailLogRepository) Create(ctx context.Context, log *model.EmailLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *emailLogRepository) List(ctx context.Context) ([]model.EmailLog, error) {
	var logs []model.EmailLog
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
