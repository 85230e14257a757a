package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/iq-api/internal/middleware"
	apperrors "github.com/yourusername/iq-api/internal/pkg/errors"
)

// handleError переводит ошибку сервиса в HTTP ответ {"message": ...}
func handleError(c *gin.Context, component string, err error) {
	status := http.StatusInternalServerError
	fallback := "Internal server error"

	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrConflict):
		status, fallback = http.StatusBadRequest, "Bad request"
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrExpiredToken):
		status, fallback = http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, apperrors.ErrForbidden):
		status, fallback = http.StatusForbidden, "Forbidden"
	case errors.Is(err, apperrors.ErrNotFound):
		status, fallback = http.StatusNotFound, "Not found"
	default:
		log.Printf("[%s] Internal server error: %v", component, err)
		c.JSON(status, gin.H{"message": fallback})
		return
	}

	c.JSON(status, gin.H{"message": apperrors.Message(err, fallback)})
}

// bindJSON читает тело запроса. Пустое тело считается {}, битый JSON дает 400.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return false
	}
	return true
}

// currentUserID достает ID пользователя, установленный RequireAuth
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return 0, false
	}
	return userID, true
}
