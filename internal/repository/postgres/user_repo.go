package postgres

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/yourusername/iq-api/internal/domain/entity"
	apperrors "github.com/yourusername/iq-api/internal/pkg/errors"
)

// UserRepo реализует repository.UserRepository
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo создает новый репозиторий пользователей
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create создает нового пользователя.
// Гонка двух регистраций с одним именем ловится уникальным индексом.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("%w: Username already exists", apperrors.ErrConflict)
	}
	return err
}

// GetByID возвращает пользователя по ID
func (r *UserRepo) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &user, nil
}

// GetByUsername возвращает пользователя по точному совпадению имени
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &user, nil
}

// List возвращает всех пользователей
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

// Delete удаляет пользователя в одной транзакции:
// вопросы его викторин, викторины, результаты, затем сам пользователь.
// Вопросы из общего пула остаются без автора.
func (r *UserRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entity.User
		if err := tx.Select("id").First(&user, id).Error; err != nil {
			return mapNotFound(err)
		}

		var quizIDs []uint
		if err := tx.Model(&entity.CustomQuiz{}).Where("user_id = ?", id).Pluck("id", &quizIDs).Error; err != nil {
			return err
		}
		if len(quizIDs) > 0 {
			if err := tx.Where("quiz_id IN ?", quizIDs).Delete(&entity.CustomQuizQuestion{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", quizIDs).Delete(&entity.CustomQuiz{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&entity.Score{}).Error; err != nil {
			return err
		}

		detached := tx.Model(&entity.Question{}).Where("created_by = ?", id).Update("created_by", nil)
		if detached.Error != nil {
			return detached.Error
		}

		if err := tx.Delete(&entity.User{}, id).Error; err != nil {
			return err
		}

		log.Printf("[UserRepo] Пользователь ID=%d удален: викторин %d, отвязано вопросов %d",
			id, len(quizIDs), detached.RowsAffected)
		return nil
	})
}
