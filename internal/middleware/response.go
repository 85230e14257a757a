package middleware

import "github.com/gin-gonic/gin"

// abortWithMessage прерывает цепочку ответом {"message": ...}, extra дописывается в тело
func abortWithMessage(c *gin.Context, status int, message string, extra gin.H) {
	body := gin.H{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.AbortWithStatusJSON(status, body)
}
