package repository

import (
	"context"

	"github.com/yourusername/iq-api/internal/domain/entity"
)

// ScoreFilter - фильтры лидерборда на равенство
type ScoreFilter struct {
	CategoryID    *string
	SubcategoryID *string
}

// ScoreRepository определяет методы для работы с результатами.
// Результаты только добавляются, методов обновления нет.
type ScoreRepository interface {
	Create(ctx context.Context, score *entity.Score) error
	// ListRecentByUser возвращает последние результаты пользователя, новые первыми
	ListRecentByUser(ctx context.Context, userID uint, limit int) ([]entity.Score, error)
	// Leaderboard сортирует по score desc, created_at asc, id asc
	Leaderboard(ctx context.Context, filter ScoreFilter, limit int) ([]entity.Score, error)
}
