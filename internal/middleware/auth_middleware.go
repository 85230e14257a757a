package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/iq-api/internal/pkg/errors"
)

// UserIDKey - ключ контекста Gin с ID аутентифицированного пользователя
const UserIDKey = "user_id"

// IdentityResolver проверяет токен и возвращает ID пользователя
type IdentityResolver interface {
	ResolveIdentity(token string) (uint, error)
}

// AuthMiddleware обеспечивает аутентификацию для защищенных маршрутов
type AuthMiddleware struct {
	resolver IdentityResolver
}

// NewAuthMiddleware создает middleware аутентификации
func NewAuthMiddleware(resolver IdentityResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// RequireAuth проверяет заголовок Authorization: Bearer {token}.
// Существование пользователя не проверяется, это делают сервисы.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithMessage(c, http.StatusUnauthorized, "Missing token", nil)
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortWithMessage(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}", nil)
			return
		}

		userID, err := m.resolver.ResolveIdentity(parts[1])
		if err != nil {
			abortWithMessage(c, http.StatusUnauthorized, apperrors.Message(err, "Invalid token"), nil)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
