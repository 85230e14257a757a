package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/yourusername/iq-api/internal/domain/entity"
	"github.com/yourusername/iq-api/internal/domain/repository"
)

// ============================================================================
// Моки репозиториев
// ============================================================================

// MockUserRepository реализует repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockQuestionRepository реализует repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *entity.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) List(ctx context.Context, filter repository.QuestionFilter) ([]entity.Question, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) ListByCreator(ctx context.Context, creatorID uint, filter repository.QuestionFilter) ([]entity.Question, error) {
	args := m.Called(ctx, creatorID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Update(ctx context.Context, question *entity.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockScoreRepository реализует repository.ScoreRepository
type MockScoreRepository struct {
	mock.Mock
}

func (m *MockScoreRepository) Create(ctx context.Context, score *entity.Score) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *MockScoreRepository) ListRecentByUser(ctx context.Context, userID uint, limit int) ([]entity.Score, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Score), args.Error(1)
}

func (m *MockScoreRepository) Leaderboard(ctx context.Context, filter repository.ScoreFilter, limit int) ([]entity.Score, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Score), args.Error(1)
}

// MockCustomQuizRepository реализует repository.CustomQuizRepository
type MockCustomQuizRepository struct {
	mock.Mock
}

func (m *MockCustomQuizRepository) Create(ctx context.Context, quiz *entity.CustomQuiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockCustomQuizRepository) GetByID(ctx context.Context, id uint) (*entity.CustomQuiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CustomQuiz), args.Error(1)
}

func (m *MockCustomQuizRepository) GetWithQuestions(ctx context.Context, id uint) (*entity.CustomQuiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CustomQuiz), args.Error(1)
}

func (m *MockCustomQuizRepository) ListByUser(ctx context.Context, userID uint) ([]entity.CustomQuiz, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CustomQuiz), args.Error(1)
}

func (m *MockCustomQuizRepository) Update(ctx context.Context, quiz *entity.CustomQuiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockCustomQuizRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomQuizRepository) AddQuestion(ctx context.Context, question *entity.CustomQuizQuestion) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockCustomQuizRepository) GetQuestion(ctx context.Context, quizID, questionID uint) (*entity.CustomQuizQuestion, error) {
	args := m.Called(ctx, quizID, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CustomQuizQuestion), args.Error(1)
}

func (m *MockCustomQuizRepository) UpdateQuestion(ctx context.Context, question *entity.CustomQuizQuestion) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockCustomQuizRepository) DeleteQuestion(ctx context.Context, quizID, questionID uint) error {
	args := m.Called(ctx, quizID, questionID)
	return args.Error(0)
}

// MockCacheRepository реализует repository.CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepository) Increment(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCacheRepository) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepository) GetJSON(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

// MockLeaderboardInvalidator реализует LeaderboardInvalidator
type MockLeaderboardInvalidator struct {
	mock.Mock
}

func (m *MockLeaderboardInvalidator) InvalidateLeaderboard(ctx context.Context) {
	m.Called(ctx)
}

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }
