package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/iq-api/internal/domain/entity"
	"github.com/yourusername/iq-api/internal/domain/repository"
)

// ScoreRepo реализует repository.ScoreRepository
type ScoreRepo struct {
	db *gorm.DB
}

// NewScoreRepo создает новый репозиторий результатов
func NewScoreRepo(db *gorm.DB) *ScoreRepo {
	return &ScoreRepo{db: db}
}

// Create добавляет результат
func (r *ScoreRepo) Create(ctx context.Context, score *entity.Score) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(score).Error
}

// ListRecentByUser возвращает последние limit результатов пользователя
func (r *ScoreRepo) ListRecentByUser(ctx context.Context, userID uint, limit int) ([]entity.Score, error) {
	var scores []entity.Score
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&scores).Error
	return scores, err
}

// Leaderboard возвращает лучшие результаты.
// При равном счете выше тот, кто набрал его раньше.
func (r *ScoreRepo) Leaderboard(ctx context.Context, filter repository.ScoreFilter, limit int) ([]entity.Score, error) {
	var scores []entity.Score
	err := applyScoreFilter(r.db.WithContext(ctx).Preload("User"), filter).
		Order("score DESC").Order("created_at ASC").Order("id ASC").
		Limit(limit).
		Find(&scores).Error
	return scores, err
}

func applyScoreFilter(db *gorm.DB, filter repository.ScoreFilter) *gorm.DB {
	if filter.CategoryID != nil {
		db = db.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.SubcategoryID != nil {
		db = db.Where("subcategory_id = ?", *filter.SubcategoryID)
	}
	return db
}
