package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/iq-api/internal/domain/entity"
	"github.com/yourusername/iq-api/internal/handler/dto"
	"github.com/yourusername/iq-api/internal/handler/helper"
	"github.com/yourusername/iq-api/internal/service"
)

// QuizHandler обрабатывает запросы к пользовательским викторинам и их вопросам
type QuizHandler struct {
	quizService *service.CustomQuizService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(quizService *service.CustomQuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// ListMyQuizzes отдает викторины текущего пользователя без вопросов
func (h *QuizHandler) ListMyQuizzes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	quizzes, err := h.quizService.ListMine(c.Request.Context(), userID)
	if err != nil {
		handleError(c, "QuizHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quizzes": dto.NewQuizListResponse(quizzes)})
}

// CreateQuiz создает пустую викторину
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.QuizRequest
	if !bindJSON(c, &req) {
		return
	}

	quiz, err := h.quizService.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		handleError(c, "QuizHandler", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Quiz created",
		"quiz":    dto.NewQuizResponse(quiz),
	})
}

// GetMyQuiz отдает свою викторину с вопросами
func (h *QuizHandler) GetMyQuiz(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quizID := c.MustGet("quizID").(uint)

	quiz, err := h.quizService.GetOwned(c.Request.Context(), userID, quizID)
	if err != nil {
		handleError(c, "QuizHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quiz": dto.NewQuizDetailResponse(quiz)})
}

// UpdateMyQuiz частично изменяет свою викторину (PUT и PATCH)
func (h *QuizHandler) UpdateMyQuiz(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quizID := c.MustGet("quizID").(uint)
	var req dto.QuizRequest
	if !bindJSON(c, &req) {
		return
	}

	quiz, err := h.quizService.Update(c.Request.Context(), userID, quizID, req.ToInput())
	if err != nil {
		handleError(c, "QuizHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Quiz updated",
		"quiz":    dto.NewQuizResponse(quiz),
	})
}

// DeleteMyQuiz удаляет свою викторину вместе с вопросами
func (h *QuizHandler) DeleteMyQuiz(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quizID := c.MustGet("quizID").(uint)

	if err := h.quizService.Delete(c.Request.Context(), userID, quizID); err != nil {
		handleError(c, "QuizHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quiz deleted"})
}

// AddQuizQuestion добавляет вопрос в свою викторину
func (h *QuizHandler) AddQuizQuestion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quizID := c.MustGet("quizID").(uint)
	var req dto.QuizQuestionRequest
	if !bindJSON(c, &req) {
		return
	}

	question, err := h.quizService.AddQuestion(c.Request.Context(), userID, quizID, req.ToInput())
	if err != nil {
		handleError(c, "QuizHandler", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Quiz question added",
		"question": dto.NewQuizQuestionResponse(question),
	})
}

// UpdateQuizQuestion частично изменяет вопрос своей викторины (PUT и PATCH)
func (h *QuizHandler) UpdateQuizQuestion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quizID := c.MustGet("quizID").(uint)
	questionID := c.MustGet("questionID").(uint)
	var req dto.QuizQuestionRequest
	if !bindJSON(c, &req) {
		return
	}

	question, err := h.quizService.UpdateQuestion(c.Request.Context(), userID, quizID, questionID, req.ToInput())
	if err != nil {
		handleError(c, "QuizHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Quiz question updated",
		"question": dto.NewQuizQuestionResponse(question),
	})
}

// DeleteQuizQuestion удаляет вопрос из своей викторины
func (h *QuizHandler) DeleteQuizQuestion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quizID := c.MustGet("quizID").(uint)
	questionID := c.MustGet("questionID").(uint)

	if err := h.quizService.DeleteQuestion(c.Request.Context(), userID, quizID, questionID); err != nil {
		handleError(c, "QuizHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quiz question deleted"})
}

// PlayQuiz отдает викторину для игры. Ответы включены, проверка идет на клиенте.
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quizID := c.MustGet("quizID").(uint)

	quiz, err := h.quizService.Play(c.Request.Context(), userID, quizID)
	if err != nil {
		handleError(c, "QuizHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quiz": dto.NewQuizDetailResponse(quiz)})
}

// ExportQuiz выгружает вопросы викторины в CSV или Excel
// GET /api/my/quizzes/:id/export?format=csv|xlsx
func (h *QuizHandler) ExportQuiz(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quizID := c.MustGet("quizID").(uint)
	format := c.DefaultQuery("format", "csv")

	quiz, err := h.quizService.GetOwned(c.Request.Context(), userID, quizID)
	if err != nil {
		handleError(c, "QuizHandler", err)
		return
	}

	filename := fmt.Sprintf("quiz_%d_%s", quiz.ID, time.Now().UTC().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, quiz, filename)
	default:
		h.exportCSV(c, quiz, filename)
	}
}

// exportCSV пишет вопросы в CSV, encoding/csv сам экранирует запятые и кавычки
func (h *QuizHandler) exportCSV(c *gin.Context, quiz *entity.CustomQuiz, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(helper.ExportHeader)
	for _, row := range helper.QuizExportRows(quiz) {
		writer.Write(row)
	}
}

// exportXLSX пишет вопросы в Excel через StreamWriter
func (h *QuizHandler) exportXLSX(c *gin.Context, quiz *entity.CustomQuiz, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuizHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if err := sw.SetRow("A1", toRow(helper.ExportHeader)); err != nil {
		log.Printf("[QuizHandler] Ошибка записи заголовков: %v", err)
	}
	for i, row := range helper.QuizExportRows(quiz) {
		rowNum := i + 2 // 1 - заголовки
		if err := sw.SetRow(fmt.Sprintf("A%d", rowNum), toRow(row)); err != nil {
			log.Printf("[QuizHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuizHandler] Ошибка при Flush: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuizHandler] Ошибка записи Excel в response: %v", err)
	}
}

func toRow(cells []string) []interface{} {
	row := make([]interface{}, len(cells))
	for i, cell := range cells {
		row[i] = cell
	}
	return row
}
