package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "taralog/internal/errors"
	"taralog/internal/model"
)

func TestUserService_GetProfile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(1)).
			Return(&model.User{ID: 1, Username: "anna", Email: "anna@example.com"}, nil)

		svc := NewUserService(repo, nil)
		user, err := svc.GetProfile(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "anna", user.Username)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(repo, nil)
		_, err := svc.GetProfile(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	stored := func() *model.User {
		return &model.User{ID: 1, Username: "anna", Email: "anna@example.com", FirstName: "Anna"}
	}

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(stored(), nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.FirstName == "Ann" && u.Username == "anna" && u.Email == "anna@example.com"
		})).Return(nil)

		firstName := "Ann"
		svc := NewUserService(repo, nil)
		user, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileInput{FirstName: &firstName})

		assert.NoError(t, err)
		assert.Equal(t, "Ann", user.FirstName)
		repo.AssertExpectations(t)
	})

	t.Run("email normalized and uniqueness checked", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(stored(), nil)
		repo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "new@example.com"
		})).Return(nil)

		email := " New@Example.com "
		svc := NewUserService(repo, nil)
		user, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileInput{Email: &email})

		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(stored(), nil)
		repo.On("FindByEmail", mock.Anything, "taken@example.com").
			Return(&model.User{ID: 2, Email: "taken@example.com"}, nil)

		email := "taken@example.com"
		svc := NewUserService(repo, nil)
		_, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileInput{Email: &email})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unchanged email skips the lookup", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(stored(), nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)

		email := "Anna@Example.com" // normalizes to the current address
		svc := NewUserService(repo, nil)
		_, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileInput{Email: &email})

		assert.NoError(t, err)
		repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("username taken", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(stored(), nil)
		repo.On("FindByUsername", mock.Anything, "taken").
			Return(&model.User{ID: 2, Username: "taken"}, nil)

		username := "taken"
		svc := NewUserService(repo, nil)
		_, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileInput{Username: &username})

		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
	})

	t.Run("birth data update", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(stored(), nil)
		birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.BirthDate != nil && u.BirthDate.Equal(birth) &&
				u.BirthPlace == "Moscow" && u.BirthTime == "08:30"
		})).Return(nil)

		place, birthTime := "Moscow", "08:30"
		svc := NewUserService(repo, nil)
		_, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileInput{
			BirthDate:  &birth,
			BirthPlace: &place,
			BirthTime:  &birthTime,
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
