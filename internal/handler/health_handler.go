package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health отвечает, что сервис жив
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC(),
	})
}
