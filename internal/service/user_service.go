package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"taralog/internal/cache"
	apperrors "taralog/internal/errors"
	"taralog/internal/model"
	"taralog/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UpdateProfileInput carries the mutable profile fields. Nil pointers mean
// "leave unchanged".
type UpdateProfileInput struct {
	Username   *string
	Email      *string
	FirstName  *string
	LastName   *string
	Gender     *string
	BirthDate  *time.Time
	BirthPlace *string
	BirthTime  *string
}

// UserService exposes profile operations.
type UserService interface {
	GetProfile(ctx context.Context, id uint) (*model.User, error)
	UpdateProfile(ctx context.Context, id uint, in UpdateProfileInput) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) GetProfile(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// UpdateProfile applies a partial profile update, re-checking email and
// username uniqueness against other users.
func (s *userService) UpdateProfile(ctx context.Context, id uint, in UpdateProfileInput) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != user.Email {
			if other, err := s.repo.FindByEmail(ctx, email); err == nil && other != nil && other.ID != id {
				return nil, apperrors.ErrEmailTaken
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("check email: %w", err)
			}
			user.Email = email
		}
	}
	if in.Username != nil && *in.Username != user.Username {
		if other, err := s.repo.FindByUsername(ctx, *in.Username); err == nil && other != nil && other.ID != id {
			return nil, apperrors.ErrUsernameTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check username: %w", err)
		}
		user.Username = *in.Username
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Gender != nil {
		user.Gender = *in.Gender
	}
	if in.BirthDate != nil {
		user.BirthDate = in.BirthDate
	}
	if in.BirthPlace != nil {
		user.BirthPlace = *in.BirthPlace
	}
	if in.BirthTime != nil {
		user.BirthTime = *in.BirthTime
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}
