package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/iq-api/internal/handler/dto"
	"github.com/yourusername/iq-api/internal/service"
)

// QuestionHandler обрабатывает запросы к общему пулу вопросов
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListQuestions отдает вопросы пула, фильтры category_id и subcategory_id необязательны
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.questionService.List(c.Request.Context(), c.Query("category_id"), c.Query("subcategory_id"))
	if err != nil {
		handleError(c, "QuestionHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": dto.NewQuestionListResponse(questions)})
}

// CreateQuestion добавляет вопрос от имени текущего пользователя
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.QuestionRequest
	if !bindJSON(c, &req) {
		return
	}

	question, err := h.questionService.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		handleError(c, "QuestionHandler", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Question created",
		"question": dto.NewQuestionResponse(question),
	})
}

// ListMyQuestions отдает вопросы текущего пользователя, новые первыми
func (h *QuestionHandler) ListMyQuestions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	questions, err := h.questionService.ListMine(c.Request.Context(), userID, c.Query("category_id"), c.Query("subcategory_id"))
	if err != nil {
		handleError(c, "QuestionHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": dto.NewQuestionListResponse(questions)})
}

// UpdateMyQuestion частично изменяет свой вопрос (PUT и PATCH)
func (h *QuestionHandler) UpdateMyQuestion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	questionID := c.MustGet("questionID").(uint)
	var req dto.QuestionRequest
	if !bindJSON(c, &req) {
		return
	}

	question, err := h.questionService.Update(c.Request.Context(), userID, questionID, req.ToInput())
	if err != nil {
		handleError(c, "QuestionHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Question updated",
		"question": dto.NewQuestionResponse(question),
	})
}

// DeleteMyQuestion удаляет свой вопрос
func (h *QuestionHandler) DeleteMyQuestion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	questionID := c.MustGet("questionID").(uint)

	if err := h.questionService.Delete(c.Request.Context(), userID, questionID); err != nil {
		handleError(c, "QuestionHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question deleted"})
}
