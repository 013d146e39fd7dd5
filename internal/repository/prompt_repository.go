package repository

import (
	"context"

	"gorm.io/gorm"

	"taralog/internal/model"
)

// PromptRepository defines persistence operations for prompt templates.
type PromptRepository interface {
	Create(ctx context.Context, prompt *model.Prompt) error
	Update(ctx context.Context, prompt *model.Prompt) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Prompt, error)
	FindByName(ctx context.Context, name string) (*model.Prompt, error)
	List(ctx context.Context) ([]model.Prompt, error)
}

type promptRepository struct {
	db *gorm.DB
}

// NewPromptRepository builds a GORM-backed repository.
func NewPromptRepository(db *gorm.DB) PromptRepository {
	return &promptRepository{db: db}
}

func (r *promptRepository) Create(ctx context.Context, prompt *model.Prompt) error {
	return r.db.WithContext(ctx).Create(prompt).Error
}

func (r *promptRepository) Update(ctx context.Context, prompt *model.Prompt) error {
	return r.db.WithContext(ctx).Save(prompt).Error
}

func (r *promptRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Prompt{}, id).Error
}

func (r *promptRepository) FindByID(ctx context.Context, id uint) (*model.Prompt, error) {
	var prompt model.Prompt
	if err := r.db.WithContext(ctx).First(&prompt, id).Error; err != nil {
		return nil, err
	}
	return &prompt, nil
}

func (r *promptRepository) FindByName(ctx context.Context, name string) (*model.Prompt, error) {
	var prompt model.Prompt
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&prompt).Error; err != nil {
		return nil, err
	}
	return &prompt, nil
}

func (r *promptRepository) List(ctx context.Context) ([]model.Prompt, error) {
	var prompts []model.Prompt
	if err := r.db.WithContext(ctx).Order("name").Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}
