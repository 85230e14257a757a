package repository

import (
	"context"

	"github.com/yourusername/iq-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	// Create сохраняет пользователя, занятое имя возвращается как ErrConflict
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// List возвращает всех пользователей по возрастанию id
	List(ctx context.Context) ([]entity.User, error)
	// Delete удаляет пользователя вместе с его викторинами и результатами,
	// а его вопросы из общего пула отвязывает (created_by = NULL)
	Delete(ctx context.Context, id uint) error
}
