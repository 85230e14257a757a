package dto

import (
	"encoding/json"
	"time"

	"github.com/yourusername/iq-api/internal/domain/entity"
	"github.com/yourusername/iq-api/internal/service"
)

// ScoreRequest - тело сохранения результата
type ScoreRequest struct {
	CategoryID     *string         `json:"category_id"`
	SubcategoryID  *string         `json:"subcategory_id"`
	Score          json.RawMessage `json:"score"`
	TotalQuestions json.RawMessage `json:"total_questions"`
}

// ToInput переводит тело запроса во входные данные сервиса
func (r ScoreRequest) ToInput() service.ScoreInput {
	return service.ScoreInput{
		CategoryID:     r.CategoryID,
		SubcategoryID:  r.SubcategoryID,
		Score:          r.Score,
		TotalQuestions: r.TotalQuestions,
	}
}

// ScoreResponse - результат игры, user содержит имя игрока
type ScoreResponse struct {
	ID             uint      `json:"id"`
	User           *string   `json:"user"`
	CategoryID     string    `json:"category_id"`
	SubcategoryID  *string   `json:"subcategory_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewScoreResponse создает DTO результата
func NewScoreResponse(s *entity.Score) ScoreResponse {
	return ScoreResponse{
		ID:             s.ID,
		User:           s.Username(),
		CategoryID:     s.CategoryID,
		SubcategoryID:  s.SubcategoryID,
		Score:          s.Score,
		TotalQuestions: s.TotalQuestions,
		CreatedAt:      s.CreatedAt,
	}
}

// NewScoreListResponse создает список DTO результатов
func NewScoreListResponse(scores []entity.Score) []ScoreResponse {
	out := make([]ScoreResponse, 0, len(scores))
	for i := range scores {
		out = append(out, NewScoreResponse(&scores[i]))
	}
	return out
}
