package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "taralog/internal/errors"
	"taralog/internal/model"
	"taralog/internal/repository"
)

// PromptService exposes admin CRUD over system prompt templates.
type PromptService interface {
	Create(ctx context.Context, name, content string) (*model.Prompt, error)
	Get(ctx context.Context, id uint) (*model.Prompt, error)
	List(ctx context.Context) ([]model.Prompt, error)
	Update(ctx context.Context, id uint, name, content *string) (*model.Prompt, error)
	Delete(ctx context.Context, id uint) error
}

type promptService struct {
	repo repository.PromptRepository
}

// NewPromptService builds a PromptService.
func NewPromptService(repo repository.PromptRepository) PromptService {
	return &promptService{repo: repo}
}

func (s *promptService) Create(ctx context.Context, name, content string) (*model.Prompt, error) {
	if existing, err := s.repo.FindByName(ctx, name); err == nil && existing != nil {
		return nil, apperrors.ErrPromptExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check prompt name: %w", err)
	}

	prompt := &model.Prompt{Name: name, Content: content}
	if err := s.repo.Create(ctx, prompt); err != nil {
		return nil, fmt.Errorf("create prompt: %w", err)
	}
	return prompt, nil
}

func (s *promptService) Get(ctx context.Context, id uint) (*model.Prompt, error) {
	prompt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPromptNotFound
		}
		return nil, err
	}
	return prompt, nil
}

func (s *promptService) List(ctx context.Context) ([]model.Prompt, error) {
	return s.repo.List(ctx)
}

func (s *promptService) Update(ctx context.Context, id uint, name, content *string) (*model.Prompt, error) {
	prompt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil && *name != prompt.Name {
		if existing, err := s.repo.FindByName(ctx, *name); err == nil && existing != nil && existing.ID != id {
			return nil, apperrors.ErrPromptExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check prompt name: %w", err)
		}
		prompt.Name = *name
	}
	if content != nil {
		prompt.Content = *content
	}

	if err := s.repo.Update(ctx, prompt); err != nil {
		return nil, fmt.Errorf("update prompt: %w", err)
	}
	return prompt, nil
}

func (s *promptService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
