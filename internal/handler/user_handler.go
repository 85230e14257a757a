package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/iq-api/internal/handler/dto"
	"github.com/yourusername/iq-api/internal/service"
)

// UserHandler обрабатывает запросы, связанные с пользователями
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler создает новый обработчик пользователей
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers отдает всех пользователей (отладочный маршрут)
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		handleError(c, "UserHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.NewUserListResponse(users)})
}
