package repository

import (
	"context"

	"github.com/yourusername/iq-api/internal/domain/entity"
)

// CustomQuizRepository определяет методы для работы с пользовательскими викторинами
type CustomQuizRepository interface {
	Create(ctx context.Context, quiz *entity.CustomQuiz) error
	// GetByID возвращает викторину без вопросов
	GetByID(ctx context.Context, id uint) (*entity.CustomQuiz, error)
	// GetWithQuestions возвращает викторину с вопросами по возрастанию created_at
	GetWithQuestions(ctx context.Context, id uint) (*entity.CustomQuiz, error)
	// ListByUser возвращает викторины пользователя без вопросов, новые первыми
	ListByUser(ctx context.Context, userID uint) ([]entity.CustomQuiz, error)
	// Update сохраняет title, description и theme
	Update(ctx context.Context, quiz *entity.CustomQuiz) error
	// Delete удаляет викторину вместе с ее вопросами
	Delete(ctx context.Context, id uint) error

	AddQuestion(ctx context.Context, question *entity.CustomQuizQuestion) error
	// GetQuestion возвращает ErrNotFound, если вопрос не принадлежит викторине
	GetQuestion(ctx context.Context, quizID, questionID uint) (*entity.CustomQuizQuestion, error)
	UpdateQuestion(ctx context.Context, question *entity.CustomQuizQuestion) error
	DeleteQuestion(ctx context.Context, quizID, questionID uint) error
}
