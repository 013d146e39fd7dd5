package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"taralog/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockReadingRepository is a mock implementation of repository.ReadingRepository.
type MockReadingRepository struct {
	mock.Mock
}

func (m *MockReadingRepository) Create(ctx context.Context, reading *model.Reading) error {
	args := m.Called(ctx, reading)
	return args.Error(0)
}

func (m *MockReadingRepository) Update(ctx context.Context, reading *model.Reading) error {
	args := m.Called(ctx, reading)
	return args.Error(0)
}

func (m *MockReadingRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReadingRepository) FindByID(ctx context.Context, id uint) (*model.Reading, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reading), args.Error(1)
}

func (m *MockReadingRepository) ListByUser(ctx context.Context, userID uint) ([]model.Reading, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reading), args.Error(1)
}

func (m *MockReadingRepository) List(ctx context.Context) ([]model.Reading, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reading), args.Error(1)
}

// MockPromptRepository is a mock implementation of repository.PromptRepository.
type MockPromptRepository struct {
	mock.Mock
}

func (m *MockPromptRepository) Create(ctx context.Context, prompt *model.Prompt) error {
	args := m.Called(ctx, prompt)
	return args.Error(0)
}

func (m *MockPromptRepository) Update(ctx context.Context, prompt *model.Prompt) error {
	args := m.Called(ctx, prompt)
	return args.Error(0)
}

func (m *MockPromptRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPromptRepository) FindByID(ctx context.Context, id uint) (*model.Prompt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Prompt), args.Error(1)
}

func (m *MockPromptRepository) FindByName(ctx context.Context, name string) (*model.Prompt, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Prompt), args.Error(1)
}

func (m *MockPromptRepository) List(ctx context.Context) ([]model.Prompt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Prompt), args.Error(1)
}

// MockEmailLogRepository is a mock implementation of repository.EmailLogRepository.
type MockEmailLogRepository struct {
	mock.Mock
}

func (m *MockEmailLogRepository) Create(ctx context.Context, log *model.EmailLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockEmailLogRepository) List(ctx context.Context) ([]model.EmailLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EmailLog), args.Error(1)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email, role string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, role, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.String(2), args.Error(3)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// MockCardSource is a mock implementation of tarot.CardSource.
type MockCardSource struct {
	mock.Mock
}

func (m *MockCardSource) DrawRandom(ctx context.Context, n int) ([]model.Card, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Card), args.Error(1)
}

// MockInterpreter is a mock implementation of ai.Interpreter.
type MockInterpreter struct {
	mock.Mock
}

func (m *MockInterpreter) Interpret(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	args := m.Called(ctx, systemPrompt, userMessage)
	return args.String(0), args.Error(1)
}
