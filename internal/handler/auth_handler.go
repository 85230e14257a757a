package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/iq-api/internal/handler/dto"
	"github.com/yourusername/iq-api/internal/service"
)

// AuthHandler обрабатывает регистрацию, вход и работу с аккаунтом
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler создает новый обработчик аутентификации
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register обрабатывает запрос на регистрацию пользователя
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, "AuthHandler", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered",
		"token":   result.Token,
		"user":    dto.NewUserResponse(result.User),
	})
}

// Login обрабатывает запрос на вход
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, "AuthHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in",
		"token":   result.Token,
		"user":    dto.NewUserResponse(result.User),
	})
}

// GetMe возвращает текущего пользователя и его последние результаты
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, scores, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		handleError(c, "AuthHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   dto.NewUserResponse(user),
		"scores": dto.NewScoreListResponse(scores),
	})
}

// DeleteMe удаляет аккаунт текущего пользователя вместе с его данными
func (h *AuthHandler) DeleteMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.authService.DeleteAccount(c.Request.Context(), userID); err != nil {
		handleError(c, "AuthHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
