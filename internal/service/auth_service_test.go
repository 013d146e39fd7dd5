package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taralog/internal/auth"
	apperrors "taralog/internal/errors"
	"taralog/internal/model"
)

const testJWTSecret = "test-secret-key"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
		userRepo.On("FindByUsername", mock.Anything, "newuser").Return(nil, gorm.ErrRecordNotFound)
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "new@example.com" &&
				u.Username == "newuser" &&
				u.Role == model.RoleUser &&
				u.PasswordHash != "" &&
				u.PasswordHash != "password123"
		})).Return(nil)

		svc := NewAuthService(userRepo, auth.NewJWTService(testJWTSecret), new(MockTokenStore), nil)
		user, err := svc.Register(context.Background(), RegisterInput{
			Username:  "newuser",
			Email:     "New@Example.com", // stored lowercase
			Password:  "password123",
			FirstName: "Anna",
		})

		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
		userRepo.AssertExpectations(t)
	})

	t.Run("email taken", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "taken@example.com").
			Return(&model.User{ID: 1, Email: "taken@example.com"}, nil)

		svc := NewAuthService(userRepo, auth.NewJWTService(testJWTSecret), new(MockTokenStore), nil)
		user, err := svc.Register(context.Background(), RegisterInput{
			Username: "other",
			Email:    "taken@example.com",
			Password: "password123",
		})

		assert.ErrorIs(t, err, apperrors.ErrUserExists)
		assert.Nil(t, user)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("username taken", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "free@example.com").Return(nil, gorm.ErrRecordNotFound)
		userRepo.On("FindByUsername", mock.Anything, "taken").
			Return(&model.User{ID: 2, Username: "taken"}, nil)

		svc := NewAuthService(userRepo, auth.NewJWTService(testJWTSecret), new(MockTokenStore), nil)
		_, err := svc.Register(context.Background(), RegisterInput{
			Username: "taken",
			Email:    "free@example.com",
			Password: "password123",
		})

		assert.ErrorIs(t, err, apperrors.ErrUserExists)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenStore := new(MockTokenStore)
		stored := &model.User{
			ID:           7,
			Email:        "anna@example.com",
			PasswordHash: hashPassword(t, "correct-horse"),
			Role:         model.RoleUser,
		}
		userRepo.On("FindByEmail", mock.Anything, "anna@example.com").Return(stored, nil)
		tokenStore.On("StoreRefreshToken", mock.Anything, mock.AnythingOfType("string"),
			uint(7), "anna@example.com", model.RoleUser, auth.RefreshTokenExpiry).Return(nil)

		svc := NewAuthService(userRepo, auth.NewJWTService(testJWTSecret), tokenStore, nil)
		access, refresh, user, err := svc.Login(context.Background(), "Anna@Example.com", "correct-horse")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, uint(7), user.ID)
		tokenStore.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "anna@example.com").Return(&model.User{
			ID:           7,
			Email:        "anna@example.com",
			PasswordHash: hashPassword(t, "correct-horse"),
		}, nil)

		svc := NewAuthService(userRepo, auth.NewJWTService(testJWTSecret), new(MockTokenStore), nil)
		_, _, _, err := svc.Login(context.Background(), "anna@example.com", "wrong")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		svc := NewAuthService(userRepo, auth.NewJWTService(testJWTSecret), new(MockTokenStore), nil)
		_, _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService(testJWTSecret)

	t.Run("success", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(7, "anna@example.com", model.RoleUser)
		assert.NoError(t, err)

		tokenStore := new(MockTokenStore)
		tokenStore.On("GetRefreshToken", mock.Anything, tokenID).
			Return(uint(7), "anna@example.com", model.RoleUser, nil)

		svc := NewAuthService(new(MockUserRepository), jwtService, tokenStore, nil)
		access, err := svc.RefreshToken(context.Background(), refreshToken)

		assert.NoError(t, err)
		claims, err := jwtService.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, uint(7), claims.UserID)
		assert.Equal(t, model.RoleUser, claims.Role)
	})

	t.Run("revoked token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(7, "anna@example.com", model.RoleUser)
		assert.NoError(t, err)

		tokenStore := new(MockTokenStore)
		tokenStore.On("GetRefreshToken", mock.Anything, tokenID).
			Return(uint(0), "", "", assert.AnError)

		svc := NewAuthService(new(MockUserRepository), jwtService, tokenStore, nil)
		_, err = svc.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("stored identity mismatch", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(7, "anna@example.com", model.RoleUser)
		assert.NoError(t, err)

		tokenStore := new(MockTokenStore)
		tokenStore.On("GetRefreshToken", mock.Anything, tokenID).
			Return(uint(8), "someone@else.com", model.RoleUser, nil)

		svc := NewAuthService(new(MockUserRepository), jwtService, tokenStore, nil)
		_, err = svc.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore), nil)
		_, err := svc.RefreshToken(context.Background(), "not-a-jwt")

		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("access token without JTI is rejected", func(t *testing.T) {
		access, err := jwtService.GenerateAccessToken(7, "anna@example.com", model.RoleUser)
		assert.NoError(t, err)

		svc := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore), nil)
		_, err = svc.RefreshToken(context.Background(), access)

		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService(testJWTSecret)
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(7, "anna@example.com", model.RoleUser)
	assert.NoError(t, err)

	tokenStore := new(MockTokenStore)
	tokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	svc := NewAuthService(new(MockUserRepository), jwtService, tokenStore, nil)
	assert.NoError(t, svc.Logout(context.Background(), refreshToken))
	tokenStore.AssertExpectations(t)
}

// Guard against expiry constants drifting apart.
func TestTokenExpiryOrdering(t *testing.T) {
	assert.Equal(t, 15*time.Minute, auth.AccessTokenExpiry)
	assert.Equal(t, 7*24*time.Hour, auth.RefreshTokenExpiry)
	assert.Less(t, auth.AccessTokenExpiry, auth.RefreshTokenExpiry)
}
