package dto

import (
	"encoding/json"
	"time"

	"github.com/yourusername/iq-api/internal/domain/entity"
	"github.com/yourusername/iq-api/internal/service"
)

// QuizRequest - тело создания и изменения викторины
type QuizRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Theme       *string `json:"theme"`
}

// ToInput переводит тело запроса во входные данные сервиса
func (r QuizRequest) ToInput() service.QuizInput {
	return service.QuizInput{
		Title:       r.Title,
		Description: r.Description,
		Theme:       r.Theme,
	}
}

// QuizQuestionRequest - тело добавления и изменения вопроса викторины
type QuizQuestionRequest struct {
	Question    *string         `json:"question"`
	Options     json.RawMessage `json:"options"`
	AnswerIndex json.RawMessage `json:"answerIndex"`
}

// ToInput переводит тело запроса во входные данные сервиса
func (r QuizQuestionRequest) ToInput() service.QuizQuestionInput {
	return service.QuizQuestionInput{
		Question:    r.Question,
		Options:     r.Options,
		AnswerIndex: r.AnswerIndex,
	}
}

// QuizQuestionResponse - вопрос пользовательской викторины
type QuizQuestionResponse struct {
	ID          uint      `json:"id"`
	QuizID      uint      `json:"quiz_id"`
	Question    string    `json:"question"`
	Options     []string  `json:"options"`
	AnswerIndex int       `json:"answerIndex"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuizResponse - викторина без вопросов (списки, создание, изменение)
type QuizResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Theme       *string   `json:"theme"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuizDetailResponse - викторина вместе с вопросами.
// questions всегда присутствует, у пустой викторины это [].
type QuizDetailResponse struct {
	QuizResponse
	Questions []QuizQuestionResponse `json:"questions"`
}

// NewQuizQuestionResponse создает DTO вопроса викторины
func NewQuizQuestionResponse(q *entity.CustomQuizQuestion) QuizQuestionResponse {
	return QuizQuestionResponse{
		ID:          q.ID,
		QuizID:      q.QuizID,
		Question:    q.Text,
		Options:     q.Options(),
		AnswerIndex: q.CorrectIndex,
		CreatedAt:   q.CreatedAt,
	}
}

// NewQuizResponse создает DTO викторины без вопросов
func NewQuizResponse(quiz *entity.CustomQuiz) QuizResponse {
	return QuizResponse{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		Theme:       quiz.Theme,
		CreatedAt:   quiz.CreatedAt,
	}
}

// NewQuizDetailResponse создает DTO викторины с вопросами
func NewQuizDetailResponse(quiz *entity.CustomQuiz) QuizDetailResponse {
	questions := make([]QuizQuestionResponse, 0, len(quiz.Questions))
	for i := range quiz.Questions {
		questions = append(questions, NewQuizQuestionResponse(&quiz.Questions[i]))
	}
	return QuizDetailResponse{
		QuizResponse: NewQuizResponse(quiz),
		Questions:    questions,
	}
}

// NewQuizListResponse создает список DTO викторин
func NewQuizListResponse(quizzes []entity.CustomQuiz) []QuizResponse {
	out := make([]QuizResponse, 0, len(quizzes))
	for i := range quizzes {
		out = append(out, NewQuizResponse(&quizzes[i]))
	}
	return out
}
