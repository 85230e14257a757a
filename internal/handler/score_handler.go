package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/iq-api/internal/handler/dto"
	"github.com/yourusername/iq-api/internal/service"
)

// ScoreHandler обрабатывает сохранение результатов и лидерборд
type ScoreHandler struct {
	scoreService *service.ScoreService
}

// NewScoreHandler создает новый обработчик результатов
func NewScoreHandler(scoreService *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

// SubmitScore сохраняет результат игры текущего пользователя
func (h *ScoreHandler) SubmitScore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.ScoreRequest
	if !bindJSON(c, &req) {
		return
	}

	score, err := h.scoreService.Submit(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		handleError(c, "ScoreHandler", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Score saved",
		"score":   dto.NewScoreResponse(score),
	})
}

// GetLeaderboard отдает лучшие результаты.
// limit по умолчанию 10, нечисловое или неположительное значение тоже дает 10, максимум 100.
func (h *ScoreHandler) GetLeaderboard(c *gin.Context) {
	scores, err := h.scoreService.Leaderboard(
		c.Request.Context(),
		c.Query("category_id"),
		c.Query("subcategory_id"),
		c.Query("limit"),
	)
	if err != nil {
		handleError(c, "ScoreHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scores": dto.NewScoreListResponse(scores)})
}
