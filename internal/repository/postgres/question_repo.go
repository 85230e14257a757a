package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/iq-api/internal/domain/entity"
	"github.com/yourusername/iq-api/internal/domain/repository"
	apperrors "github.com/yourusername/iq-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(question).Error
}

// GetByID возвращает вопрос по ID вместе с автором
func (r *QuestionRepo) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	var question entity.Question
	if err := r.db.WithContext(ctx).Preload("Creator").First(&question, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &question, nil
}

// List возвращает вопросы общего пула, старые первыми
func (r *QuestionRepo) List(ctx context.Context, filter repository.QuestionFilter) ([]entity.Question, error) {
	var questions []entity.Question
	err := applyQuestionFilter(r.db.WithContext(ctx).Preload("Creator"), filter).
		Order("created_at ASC").Order("id ASC").
		Find(&questions).Error
	return questions, err
}

// ListByCreator возвращает вопросы автора, новые первыми
func (r *QuestionRepo) ListByCreator(ctx context.Context, creatorID uint, filter repository.QuestionFilter) ([]entity.Question, error) {
	var questions []entity.Question
	err := applyQuestionFilter(r.db.WithContext(ctx).Preload("Creator"), filter).
		Where("created_by = ?", creatorID).
		Order("created_at DESC").Order("id DESC").
		Find(&questions).Error
	return questions, err
}

// Update сохраняет все поля вопроса, связанный автор не трогается
func (r *QuestionRepo) Update(ctx context.Context, question *entity.Question) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(question).Error
}

// Delete удаляет вопрос
func (r *QuestionRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func applyQuestionFilter(db *gorm.DB, filter repository.QuestionFilter) *gorm.DB {
	if filter.CategoryID != nil {
		db = db.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.SubcategoryID != nil {
		db = db.Where("subcategory_id = ?", *filter.SubcategoryID)
	}
	return db
}
