package auth

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "github.com/yourusername/iq-api/internal/pkg/errors"
)

// DefaultIssuer - значение iss в выпускаемых токенах
const DefaultIssuer = "iq-api"

// JWTCustomClaims представляет данные, которые будут закодированы в JWT
type JWTCustomClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTService выпускает и проверяет HS256 токены доступа
type JWTService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
	now        func() time.Time
}

// NewJWTService создает сервис токенов. Пустой секрет недопустим.
func NewJWTService(secret string, expirationHrs int) (*JWTService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if expirationHrs <= 0 {
		expirationHrs = 24 * 7
	}
	return &JWTService{
		secret:     []byte(secret),
		expiration: time.Duration(expirationHrs) * time.Hour,
		issuer:     DefaultIssuer,
		now:        time.Now,
	}, nil
}

// Expiration возвращает срок жизни выпускаемых токенов
func (s *JWTService) Expiration() time.Duration {
	return s.expiration
}

// GenerateToken выпускает токен для пользователя
func (s *JWTService) GenerateToken(userID uint) (string, error) {
	issuedAt := s.now()
	claims := &JWTCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.expiration)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		log.Printf("[JWT] Ошибка генерации токена для пользователя ID=%d: %v", userID, err)
		return "", err
	}
	return signed, nil
}

// ParseToken проверяет подпись и срок действия токена.
// Существование пользователя здесь не проверяется.
func (s *JWTService) ParseToken(tokenString string) (*JWTCustomClaims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("%w: Missing token", apperrors.ErrUnauthorized)
	}

	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) {
			switch {
			case ve.Errors&jwt.ValidationErrorExpired != 0:
				return nil, fmt.Errorf("%w: Token has expired", apperrors.ErrExpiredToken)
			case ve.Errors&jwt.ValidationErrorMalformed != 0:
				return nil, fmt.Errorf("%w: Invalid token", apperrors.ErrUnauthorized)
			case ve.Errors&jwt.ValidationErrorSignatureInvalid != 0:
				log.Printf("[JWT] Неверная подпись токена")
				return nil, fmt.Errorf("%w: Invalid token", apperrors.ErrUnauthorized)
			}
		}
		return nil, fmt.Errorf("%w: Invalid token", apperrors.ErrUnauthorized)
	}
	if !token.Valid {
		return nil, fmt.Errorf("%w: Invalid token", apperrors.ErrUnauthorized)
	}

	// старые клиенты могли прислать токен только с sub
	if claims.UserID == 0 && claims.Subject != "" {
		id, convErr := strconv.ParseUint(claims.Subject, 10, 64)
		if convErr == nil {
			claims.UserID = uint(id)
		}
	}
	if claims.UserID == 0 {
		return nil, fmt.Errorf("%w: Invalid token", apperrors.ErrUnauthorized)
	}
	return claims, nil
}
