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

// QuestionInput - тело запроса на создание или изменение вопроса общего пула.
// nil/пустой RawMessage означает, что поле не передано.
type QuestionInput struct {
	CategoryID    *string
	SubcategoryID *string
	Question      *string
	Options       json.RawMessage
	AnswerIndex   json.RawMessage
	Difficulty    *string
}

// QuestionService управляет общим пулом вопросов
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService создает сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// List возвращает вопросы с фильтрами по категории и подкатегории
func (s *QuestionService) List(ctx context.Context, categoryID, subcategoryID string) ([]entity.Question, error) {
	questions, err := s.questionRepo.List(ctx, repository.QuestionFilter{
		CategoryID:    filterValue(categoryID),
		SubcategoryID: filterValue(subcategoryID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// ListMine возвращает вопросы, созданные пользователем
func (s *QuestionService) ListMine(ctx context.Context, userID uint, categoryID, subcategoryID string) ([]entity.Question, error) {
	questions, err := s.questionRepo.ListByCreator(ctx, userID, repository.QuestionFilter{
		CategoryID:    filterValue(categoryID),
		SubcategoryID: filterValue(subcategoryID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list user questions: %w", err)
	}
	return questions, nil
}

// Create создает вопрос от имени пользователя
func (s *QuestionService) Create(ctx context.Context, userID uint, in QuestionInput) (*entity.Question, error) {
	text := ""
	if in.Question != nil {
		text = strings.TrimSpace(*in.Question)
	}
	options, optErr := parseOptions(in.Options)
	if in.CategoryID == nil || *in.CategoryID == "" || text == "" || optErr != nil {
		return nil, fmt.Errorf("%w: category_id, question and 4 options are required", apperrors.ErrValidation)
	}

	idx, ok := parseAnswerIndex(in.AnswerIndex)
	if !ok {
		return nil, fmt.Errorf("%w: answerIndex must be 0, 1, 2 or 3", apperrors.ErrValidation)
	}
	if err := checkQuestionLengths(in, &text, options); err != nil {
		return nil, err
	}

	creator := userID
	question := &entity.Question{
		CategoryID:    *in.CategoryID,
		SubcategoryID: in.SubcategoryID,
		Text:          text,
		Difficulty:    in.Difficulty,
		CreatedBy:     &creator,
	}
	if err := question.SetOptions(options); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	question.CorrectIndex = idx

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	// перечитываем, чтобы подтянуть имя автора
	return s.questionRepo.GetByID(ctx, question.ID)
}

// ownedQuestion загружает вопрос и проверяет авторство
func (s *QuestionService) ownedQuestion(ctx context.Context, userID, questionID uint, forbiddenMsg string) (*entity.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: Question not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load question: %w", err)
	}
	if !question.IsOwnedBy(userID) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, forbiddenMsg)
	}
	return question, nil
}

// Update частично изменяет вопрос. Если хоть одно поле невалидно, ничего не сохраняется.
func (s *QuestionService) Update(ctx context.Context, userID, questionID uint, in QuestionInput) (*entity.Question, error) {
	question, err := s.ownedQuestion(ctx, userID, questionID, "You can only edit your own questions")
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
	// категория при изменении не трогается, проверяем только изменяемые поля
	if err := checkQuestionLengths(QuestionInput{Difficulty: in.Difficulty}, text, options); err != nil {
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
	if in.Difficulty != nil {
		question.Difficulty = in.Difficulty
	}

	if err := s.questionRepo.Update(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}
	return question, nil
}

// Delete удаляет вопрос автора
func (s *QuestionService) Delete(ctx context.Context, userID, questionID uint) error {
	if _, err := s.ownedQuestion(ctx, userID, questionID, "You can only delete your own questions"); err != nil {
		return err
	}
	if err := s.questionRepo.Delete(ctx, questionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: Question not found", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}

// checkQuestionLengths сверяет поля вопроса с размерами колонок
func checkQuestionLengths(in QuestionInput, text *string, options []string) error {
	if err := checkLengths(
		lengthCheck{"category_id", in.CategoryID, entity.MaxCategoryLength},
		lengthCheck{"subcategory_id", in.SubcategoryID, entity.MaxCategoryLength},
		lengthCheck{"question", text, entity.MaxQuestionLength},
		lengthCheck{"difficulty", in.Difficulty, entity.MaxDifficultyLength},
	); err != nil {
		return err
	}
	return checkOptionLengths(options)
}
