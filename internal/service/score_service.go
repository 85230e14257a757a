package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yourusername/iq-api/internal/domain/entity"
	"github.com/yourusername/iq-api/internal/domain/repository"
	apperrors "github.com/yourusername/iq-api/internal/pkg/errors"
)

const (
	// DefaultLeaderboardLimit используется, если limit не передан или не разобрался
	DefaultLeaderboardLimit = 10
	// MaxLeaderboardLimit - верхняя граница limit, до нее значение берется как есть
	MaxLeaderboardLimit = 1000

	leaderboardGenerationKey = "leaderboard:gen"
)

// ScoreInput - тело запроса на сохранение результата
type ScoreInput struct {
	CategoryID     *string
	SubcategoryID  *string
	Score          json.RawMessage
	TotalQuestions json.RawMessage
}

// ScoreService сохраняет результаты и строит лидерборд.
// Кеш необязателен: без него каждый запрос идет в БД.
type ScoreService struct {
	scoreRepo repository.ScoreRepository
	userRepo  repository.UserRepository
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
}

// NewScoreService создает сервис результатов. cacheRepo может быть nil.
func NewScoreService(
	scoreRepo repository.ScoreRepository,
	userRepo repository.UserRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
) *ScoreService {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &ScoreService{
		scoreRepo: scoreRepo,
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
	}
}

// Submit добавляет результат игры пользователя
func (s *ScoreService) Submit(ctx context.Context, userID uint, in ScoreInput) (*entity.Score, error) {
	if in.CategoryID == nil || isAbsent(in.Score) || isAbsent(in.TotalQuestions) {
		return nil, fmt.Errorf("%w: category_id, score and total_questions are required", apperrors.ErrValidation)
	}

	score, scoreErr := parseInteger(in.Score)
	total, totalErr := parseInteger(in.TotalQuestions)
	if scoreErr != nil || totalErr != nil {
		return nil, fmt.Errorf("%w: score and total_questions must be integers", apperrors.ErrValidation)
	}
	if err := checkLengths(
		lengthCheck{"category_id", in.CategoryID, entity.MaxCategoryLength},
		lengthCheck{"subcategory_id", in.SubcategoryID, entity.MaxCategoryLength},
	); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: User not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	record := &entity.Score{
		UserID:         userID,
		CategoryID:     *in.CategoryID,
		SubcategoryID:  in.SubcategoryID,
		Score:          score,
		TotalQuestions: total,
	}
	if err := s.scoreRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save score: %w", err)
	}
	record.User = user

	s.InvalidateLeaderboard(ctx)
	return record, nil
}

// ParseLeaderboardLimit разбирает limit. Не целое или отрицательное значение дает 10,
// 0 дает пустой лидерборд.
func ParseLeaderboardLimit(raw string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || limit < 0 {
		return DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		return MaxLeaderboardLimit
	}
	return limit
}

// Leaderboard возвращает лучшие результаты с фильтрами
func (s *ScoreService) Leaderboard(ctx context.Context, categoryID, subcategoryID, limitRaw string) ([]entity.Score, error) {
	limit := ParseLeaderboardLimit(limitRaw)
	if limit == 0 {
		return []entity.Score{}, nil
	}
	filter := repository.ScoreFilter{
		CategoryID:    filterValue(categoryID),
		SubcategoryID: filterValue(subcategoryID),
	}

	cacheKey := ""
	if s.cacheRepo != nil {
		cacheKey = s.pageKey(ctx, categoryID, subcategoryID, limit)
	}
	if cacheKey != "" {
		var cached []entity.Score
		err := s.cacheRepo.GetJSON(ctx, cacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[ScoreService] Ошибка чтения кеша лидерборда %s: %v", cacheKey, err)
		}
	}

	scores, err := s.scoreRepo.Leaderboard(ctx, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	if cacheKey != "" {
		if err := s.cacheRepo.SetJSON(ctx, cacheKey, scores, s.cacheTTL); err != nil {
			log.Printf("[ScoreService] Ошибка записи кеша лидерборда %s: %v", cacheKey, err)
		}
	}
	return scores, nil
}

// InvalidateLeaderboard увеличивает поколение кеша, старые страницы больше не читаются
func (s *ScoreService) InvalidateLeaderboard(ctx context.Context) {
	if s.cacheRepo == nil {
		return
	}
	if _, err := s.cacheRepo.Increment(ctx, leaderboardGenerationKey); err != nil {
		log.Printf("[ScoreService] Не удалось сбросить кеш лидерборда: %v", err)
	}
}

// pageKey строит ключ страницы лидерборда для текущего поколения.
// Пустая строка означает, что поколение прочитать не удалось и кеш пропускается.
func (s *ScoreService) pageKey(ctx context.Context, categoryID, subcategoryID string, limit int) string {
	generation := "0"
	if gen, err := s.cacheRepo.Get(ctx, leaderboardGenerationKey); err == nil {
		generation = gen
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("[ScoreService] Ошибка чтения поколения кеша: %v", err)
		return ""
	}
	// значения фильтров экранируются, разные фильтры не дают один ключ
	page := url.Values{}
	page.Set("category", categoryID)
	page.Set("subcategory", subcategoryID)
	page.Set("limit", strconv.Itoa(limit))
	return fmt.Sprintf("leaderboard:v%s:%s", generation, page.Encode())
}
