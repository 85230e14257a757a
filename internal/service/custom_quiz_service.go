package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/yourusername/iq-api/internal/domain/entity"
	"github.com/yourusername/iq-api/internal/domain/repository"
	apperrors "github.com/yourusername/iq-api/internal/pkg/errors"
)

// QuizInput - тело запроса на создание или изменение викторины
type QuizInput struct {
	Title       *string
	Description *string
	Theme       *string
}

// QuizQuestionInput - тело запроса на добавление или изменение вопроса викторины
type QuizQuestionInput struct {
	Question    *string
	Options     json.RawMessage
	AnswerIndex json.RawMessage
}

// CustomQuizService управляет викторинами пользователя.
// Чужая викторина неотличима от несуществующей: в обоих случаях ErrNotFound.
type CustomQuizService struct {
	quizRepo repository.CustomQuizRepository
}

// NewCustomQuizService создает сервис пользовательских викторин
func NewCustomQuizService(quizRepo repository.CustomQuizRepository) *CustomQuizService {
	return &CustomQuizService{quizRepo: quizRepo}
}

var errQuizNotFound = fmt.Errorf("%w: Quiz not found", apperrors.ErrNotFound)

// ownedQuiz загружает викторину владельца, с вопросами или без
func (s *CustomQuizService) ownedQuiz(ctx context.Context, userID, quizID uint, withQuestions bool) (*entity.CustomQuiz, error) {
	var (
		quiz *entity.CustomQuiz
		err  error
	)
	if withQuestions {
		quiz, err = s.quizRepo.GetWithQuestions(ctx, quizID)
	} else {
		quiz, err = s.quizRepo.GetByID(ctx, quizID)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errQuizNotFound
		}
		return nil, fmt.Errorf("failed to load quiz: %w", err)
	}
	if !quiz.IsOwnedBy(userID) {
		return nil, errQuizNotFound
	}
	return quiz, nil
}

// ListMine возвращает викторины пользователя без вопросов
func (s *CustomQuizService) ListMine(ctx context.Context, userID uint) ([]entity.CustomQuiz, error) {
	quizzes, err := s.quizRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	return quizzes, nil
}

// Create создает пустую викторину
func (s *CustomQuizService) Create(ctx context.Context, userID uint, in QuizInput) (*entity.CustomQuiz, error) {
	title := ""
	if in.Title != nil {
		title = strings.TrimSpace(*in.Title)
	}
	if title == "" {
		return nil, fmt.Errorf("%w: Title is required", apperrors.ErrValidation)
	}
	description, theme := trimmedOrNil(in.Description), trimmedOrNil(in.Theme)
	if err := checkQuizLengths(&title, description, theme); err != nil {
		return nil, err
	}

	quiz := &entity.CustomQuiz{
		UserID:      userID,
		Title:       title,
		Description: description,
		Theme:       theme,
	}
	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}
	return quiz, nil
}

// GetOwned возвращает викторину владельца вместе с вопросами
func (s *CustomQuizService) GetOwned(ctx context.Context, userID, quizID uint) (*entity.CustomQuiz, error) {
	return s.ownedQuiz(ctx, userID, quizID, true)
}

// Play отдает викторину для игры на клиенте, ответы включены
func (s *CustomQuizService) Play(ctx context.Context, userID, quizID uint) (*entity.CustomQuiz, error) {
	return s.ownedQuiz(ctx, userID, quizID, true)
}

// Update частично изменяет викторину.
// Пустой title оставляет старое название, пустые description и theme очищаются.
func (s *CustomQuizService) Update(ctx context.Context, userID, quizID uint, in QuizInput) (*entity.CustomQuiz, error) {
	quiz, err := s.ownedQuiz(ctx, userID, quizID, false)
	if err != nil {
		return nil, err
	}

	title, description, theme := trimmedOrNil(in.Title), trimmedOrNil(in.Description), trimmedOrNil(in.Theme)
	if err := checkQuizLengths(title, description, theme); err != nil {
		return nil, err
	}

	if title != nil {
		quiz.Title = *title
	}
	if in.Description != nil {
		quiz.Description = description
	}
	if in.Theme != nil {
		quiz.Theme = theme
	}

	if err := s.quizRepo.Update(ctx, quiz); err != nil {
		return nil, fmt.Errorf("failed to update quiz: %w", err)
	}
	return quiz, nil
}

// Delete удаляет викторину со всеми вопросами
func (s *CustomQuizService) Delete(ctx context.Context, userID, quizID uint) error {
	if _, err := s.ownedQuiz(ctx, userID, quizID, false); err != nil {
		return err
	}
	if err := s.quizRepo.Delete(ctx, quizID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return errQuizNotFound
		}
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	return nil
}

// AddQuestion добавляет вопрос в викторину владельца
func (s *CustomQuizService) AddQuestion(ctx context.Context, userID, quizID uint, in QuizQuestionInput) (*entity.CustomQuizQuestion, error) {
	quiz, err := s.ownedQuiz(ctx, userID, quizID, false)
	if err != nil {
		return nil, err
	}

	text := ""
	if in.Question != nil {
		text = strings.TrimSpace(*in.Question)
	}
	options, optErr := parseOptions(in.Options)
	if text == "" || optErr != nil {
		return nil, fmt.Errorf("%w: question and exactly 4 options are required", apperrors.ErrValidation)
	}
	idx, ok := parseAnswerIndex(in.AnswerIndex)
	if !ok {
		return nil, fmt.Errorf("%w: answerIndex must be 0-3", apperrors.ErrValidation)
	}
	if err := checkQuizQuestionLengths(&text, options); err != nil {
		return nil, err
	}

	question := &entity.CustomQuizQuestion{QuizID: quiz.ID, Text: text}
	if err := question.SetOptions(options); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	question.CorrectIndex = idx

	if err := s.quizRepo.AddQuestion(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to add quiz question: %w", err)
	}
	return question, nil
}

// ownedQuestion проверяет викторину, затем принадлежность вопроса викторине
func (s *CustomQuizService) ownedQuestion(ctx context.Context, userID, quizID, questionID uint) (*entity.CustomQuizQuestion, error) {
	quiz, err := s.ownedQuiz(ctx, userID, quizID, false)
	if err != nil {
		return nil, err
	}
	question, err := s.quizRepo.GetQuestion(ctx, quiz.ID, questionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: Question not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load quiz question: %w", err)
	}
	return question, nil
}

// UpdateQuestion частично изменяет вопрос викторины
func (s *CustomQuizService) UpdateQuestion(ctx context.Context, userID, quizID, questionID uint, in QuizQuestionInput) (*entity.CustomQuizQuestion, error) {
	question, err := s.ownedQuestion(ctx, userID, quizID, questionID)
	if err != nil {
		return nil, err
	}

	var text *string
	if in.Question != nil {
		trimmed := strings.TrimSpace(*in.Question)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: question must not be empty", apperrors.ErrValidation)
		}
		text = &trimmed
	}

	var options []string
	if !isAbsent(in.Options) {
		if options, err = parseOptions(in.Options); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}

	idx := -1
	if !isAbsent(in.AnswerIndex) {
		parsed, ok := parseAnswerIndex(in.AnswerIndex)
		if !ok {
			return nil, fmt.Errorf("%w: answerIndex must be 0-3", apperrors.ErrValidation)
		}
		idx = parsed
	}
	if err := checkQuizQuestionLengths(text, options); err != nil {
		return nil, err
	}

	if text != nil {
		question.Text = *text
	}
	if options != nil {
		if err := question.SetOptions(options); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}
	if idx >= 0 {
		question.CorrectIndex = idx
	}

	if err := s.quizRepo.UpdateQuestion(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to update quiz question: %w", err)
	}
	return question, nil
}

// DeleteQuestion удаляет вопрос из викторины владельца
func (s *CustomQuizService) DeleteQuestion(ctx context.Context, userID, quizID, questionID uint) error {
	if _, err := s.ownedQuestion(ctx, userID, quizID, questionID); err != nil {
		return err
	}
	if err := s.quizRepo.DeleteQuestion(ctx, quizID, questionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: Question not found", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to delete quiz question: %w", err)
	}
	return nil
}

func checkQuizLengths(title, description, theme *string) error {
	return checkLengths(
		lengthCheck{"title", title, entity.MaxTitleLength},
		lengthCheck{"description", description, entity.MaxDescriptionLength},
		lengthCheck{"theme", theme, entity.MaxThemeLength},
	)
}

func checkQuizQuestionLengths(text *string, options []string) error {
	if err := checkLengths(lengthCheck{"question", text, entity.MaxQuestionLength}); err != nil {
		return err
	}
	return checkOptionLengths(options)
}
