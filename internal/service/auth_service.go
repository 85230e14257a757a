package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/iq-api/internal/domain/entity"
	"github.com/yourusername/iq-api/internal/domain/repository"
	apperrors "github.com/yourusername/iq-api/internal/pkg/errors"
	"github.com/yourusername/iq-api/pkg/auth"
)

// RecentScoresLimit - сколько последних результатов показывается в /api/me
const RecentScoresLimit = 20

// LeaderboardInvalidator сбрасывает кеш лидерборда
type LeaderboardInvalidator interface {
	InvalidateLeaderboard(ctx context.Context)
}

// AuthResult - выпущенный токен и пользователь, для которого он выпущен
type AuthResult struct {
	Token string
	User  *entity.User
}

// AuthService отвечает за регистрацию, вход и работу с аккаунтом
type AuthService struct {
	userRepo    repository.UserRepository
	scoreRepo   repository.ScoreRepository
	jwtService  *auth.JWTService
	invalidator LeaderboardInvalidator
}

// NewAuthService создает сервис аутентификации.
// invalidator может быть nil, если кеш лидерборда не используется.
func NewAuthService(
	userRepo repository.UserRepository,
	scoreRepo repository.ScoreRepository,
	jwtService *auth.JWTService,
	invalidator LeaderboardInvalidator,
) (*AuthService, error) {
	if userRepo == nil || scoreRepo == nil {
		return nil, fmt.Errorf("user and score repositories are required for AuthService")
	}
	if jwtService == nil {
		return nil, fmt.Errorf("JWTService is required for AuthService")
	}
	return &AuthService{
		userRepo:    userRepo,
		scoreRepo:   scoreRepo,
		jwtService:  jwtService,
		invalidator: invalidator,
	}, nil
}

// Register регистрирует пользователя и сразу выпускает токен
func (s *AuthService) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: Username and password are required", apperrors.ErrValidation)
	}
	if !entity.FitsLength(username, entity.MaxUsernameLength) {
		return nil, fmt.Errorf("%w: Username must be at most %d characters", apperrors.ErrValidation, entity.MaxUsernameLength)
	}
	// bcrypt не принимает пароли длиннее 72 байт
	if len(password) > entity.MaxPasswordBytes {
		return nil, fmt.Errorf("%w: Password must be at most %d bytes", apperrors.ErrValidation, entity.MaxPasswordBytes)
	}

	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil, fmt.Errorf("%w: Username is already taken", apperrors.ErrConflict)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}

	user := &entity.User{Username: username}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// параллельная регистрация успела раньше
			return nil, fmt.Errorf("%w: Username is already taken", apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("[AuthService] Зарегистрирован пользователь ID=%d, username=%s", user.ID, user.Username)
	return s.issue(user)
}

// Login проверяет учетные данные и выпускает новый токен
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: Username and password are required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: Invalid username or password", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.CheckPassword(password) {
		log.Printf("[AuthService] Неверный пароль для пользователя ID=%d", user.ID)
		return nil, fmt.Errorf("%w: Invalid username or password", apperrors.ErrUnauthorized)
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *entity.User) (*AuthResult, error) {
	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// ResolveIdentity возвращает ID пользователя из токена.
// Удаленный пользователь с еще живым токеном здесь не отсекается.
func (s *AuthService) ResolveIdentity(token string) (uint, error) {
	claims, err := s.jwtService.ParseToken(token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// Me возвращает пользователя и его последние результаты
func (s *AuthService) Me(ctx context.Context, userID uint) (*entity.User, []entity.Score, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: User not found", apperrors.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to load user: %w", err)
	}

	scores, err := s.scoreRepo.ListRecentByUser(ctx, userID, RecentScoresLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load scores: %w", err)
	}
	return user, scores, nil
}

// DeleteAccount удаляет пользователя вместе с его данными
func (s *AuthService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: User not found", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	// результаты пользователя ушли из лидерборда
	if s.invalidator != nil {
		s.invalidator.InvalidateLeaderboard(ctx)
	}
	log.Printf("[AuthService] Аккаунт ID=%d удален", userID)
	return nil
}
