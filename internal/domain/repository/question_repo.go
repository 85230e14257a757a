package repository

import (
	"context"

	"github.com/yourusername/iq-api/internal/domain/entity"
)

// QuestionFilter - фильтры на равенство, nil означает "не фильтровать"
type QuestionFilter struct {
	CategoryID    *string
	SubcategoryID *string
}

// QuestionRepository определяет методы для работы с общим пулом вопросов
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	// GetByID возвращает вопрос вместе с автором
	GetByID(ctx context.Context, id uint) (*entity.Question, error)
	// List возвращает вопросы по возрастанию created_at
	List(ctx context.Context, filter QuestionFilter) ([]entity.Question, error)
	// ListByCreator возвращает вопросы автора, новые первыми
	ListByCreator(ctx context.Context, creatorID uint, filter QuestionFilter) ([]entity.Question, error)
	Update(ctx context.Context, question *entity.Question) error
	Delete(ctx context.Context, id uint) error
}
