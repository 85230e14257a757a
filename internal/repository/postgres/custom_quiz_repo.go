package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/iq-api/internal/domain/entity"
	apperrors "github.com/yourusername/iq-api/internal/pkg/errors"
)

// CustomQuizRepo реализует repository.CustomQuizRepository
type CustomQuizRepo struct {
	db *gorm.DB
}

// NewCustomQuizRepo создает новый репозиторий пользовательских викторин
func NewCustomQuizRepo(db *gorm.DB) *CustomQuizRepo {
	return &CustomQuizRepo{db: db}
}

// Create создает викторину (без вопросов)
func (r *CustomQuizRepo) Create(ctx context.Context, quiz *entity.CustomQuiz) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(quiz).Error
}

// GetByID возвращает викторину по ID
func (r *CustomQuizRepo) GetByID(ctx context.Context, id uint) (*entity.CustomQuiz, error) {
	var quiz entity.CustomQuiz
	if err := r.db.WithContext(ctx).First(&quiz, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &quiz, nil
}

// GetWithQuestions возвращает викторину с вопросами в порядке добавления
func (r *CustomQuizRepo) GetWithQuestions(ctx context.Context, id uint) (*entity.CustomQuiz, error) {
	var quiz entity.CustomQuiz
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC").Order("id ASC")
		}).
		First(&quiz, id).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &quiz, nil
}

// ListByUser возвращает викторины пользователя, новые первыми
func (r *CustomQuizRepo) ListByUser(ctx context.Context, userID uint) ([]entity.CustomQuiz, error) {
	var quizzes []entity.CustomQuiz
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&quizzes).Error
	return quizzes, err
}

// Update сохраняет title, description и theme, включая NULL
func (r *CustomQuizRepo) Update(ctx context.Context, quiz *entity.CustomQuiz) error {
	return r.db.WithContext(ctx).
		Model(quiz).
		Select("Title", "Description", "Theme").
		Updates(quiz).Error
}

// Delete удаляет викторину и ее вопросы в одной транзакции
func (r *CustomQuizRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&entity.CustomQuizQuestion{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.CustomQuiz{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

// AddQuestion добавляет вопрос в викторину
func (r *CustomQuizRepo) AddQuestion(ctx context.Context, question *entity.CustomQuizQuestion) error {
	return r.db.WithContext(ctx).Create(question).Error
}

// GetQuestion возвращает вопрос, только если он принадлежит викторине
func (r *CustomQuizRepo) GetQuestion(ctx context.Context, quizID, questionID uint) (*entity.CustomQuizQuestion, error) {
	var question entity.CustomQuizQuestion
	err := r.db.WithContext(ctx).
		Where("id = ? AND quiz_id = ?", questionID, quizID).
		First(&question).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &question, nil
}

// UpdateQuestion сохраняет текст, варианты и индекс правильного ответа
func (r *CustomQuizRepo) UpdateQuestion(ctx context.Context, question *entity.CustomQuizQuestion) error {
	return r.db.WithContext(ctx).Save(question).Error
}

// DeleteQuestion удаляет вопрос викторины
func (r *CustomQuizRepo) DeleteQuestion(ctx context.Context, quizID, questionID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND quiz_id = ?", questionID, quizID).
		Delete(&entity.CustomQuizQuestion{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
