package dto

import (
	"encoding/json"
	"time"

	"github.com/yourusername/iq-api/internal/domain/entity"
	"github.com/yourusername/iq-api/internal/service"
)

// QuestionRequest - тело создания и изменения вопроса общего пула.
// answerIndex и options разбираются в сервисе: клиенты шлют и числа, и строки.
type QuestionRequest struct {
	CategoryID    *string         `json:"category_id"`
	SubcategoryID *string         `json:"subcategory_id"`
	Question      *string         `json:"question"`
	Options       json.RawMessage `json:"options"`
	AnswerIndex   json.RawMessage `json:"answerIndex"`
	Difficulty    *string         `json:"difficulty"`
}

// ToInput переводит тело запроса во входные данные сервиса
func (r QuestionRequest) ToInput() service.QuestionInput {
	return service.QuestionInput{
		CategoryID:    r.CategoryID,
		SubcategoryID: r.SubcategoryID,
		Question:      r.Question,
		Options:       r.Options,
		AnswerIndex:   r.AnswerIndex,
		Difficulty:    r.Difficulty,
	}
}

// QuestionResponse - вопрос общего пула с правильным ответом
type QuestionResponse struct {
	ID            uint      `json:"id"`
	CategoryID    string    `json:"category_id"`
	SubcategoryID *string   `json:"subcategory_id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	AnswerIndex   int       `json:"answerIndex"`
	Difficulty    *string   `json:"difficulty"`
	CreatedBy     *string   `json:"createdBy"` // имя автора или null
	CreatedAt     time.Time `json:"created_at"`
}

// NewQuestionResponse создает DTO вопроса
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:            q.ID,
		CategoryID:    q.CategoryID,
		SubcategoryID: q.SubcategoryID,
		Question:      q.Text,
		Options:       q.Options(),
		AnswerIndex:   q.CorrectIndex,
		Difficulty:    q.Difficulty,
		CreatedBy:     q.CreatorName(),
		CreatedAt:     q.CreatedAt,
	}
}

// NewQuestionListResponse создает список DTO вопросов
func NewQuestionListResponse(questions []entity.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, NewQuestionResponse(&questions[i]))
	}
	return out
}
