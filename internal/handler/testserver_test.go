package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/iq-api/internal/domain/entity"
	"github.com/yourusername/iq-api/internal/middleware"
	pgRepo "github.com/yourusername/iq-api/internal/repository/postgres"
	"github.com/yourusername/iq-api/internal/service"
	"github.com/yourusername/iq-api/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter собирает приложение целиком поверх in-memory SQLite, без Redis
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Question{},
		&entity.Score{},
		&entity.CustomQuiz{},
		&entity.CustomQuizQuestion{},
	))

	userRepo := pgRepo.NewUserRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	scoreRepo := pgRepo.NewScoreRepo(db)
	quizRepo := pgRepo.NewCustomQuizRepo(db)

	jwtService, err := auth.NewJWTService("handler-test-secret", 168)
	require.NoError(t, err)

	scoreService := service.NewScoreService(scoreRepo, userRepo, nil, 0)
	authService, err := service.NewAuthService(userRepo, scoreRepo, jwtService, scoreService)
	require.NoError(t, err)

	return NewRouter(RouterDeps{
		Auth:           NewAuthHandler(authService),
		Users:          NewUserHandler(service.NewUserService(userRepo)),
		Questions:      NewQuestionHandler(service.NewQuestionService(questionRepo)),
		Quizzes:        NewQuizHandler(service.NewCustomQuizService(quizRepo)),
		Scores:         NewScoreHandler(scoreService),
		AuthMiddleware: middleware.NewAuthMiddleware(authService),
		AllowedOrigins: []string{"*"},
	})
}

// doJSON выполняет запрос и разбирает JSON ответ, body может быть nil, строкой или структурой
func doJSON(t *testing.T, r http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if w.Body.Len() > 0 && json.Valid(w.Body.Bytes()) {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// register регистрирует пользователя и возвращает токен
func register(t *testing.T, r http.Handler, username string) string {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{"username": username, "password": "pw1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// idOf достает числовой id из вложенного объекта ответа
func idOf(t *testing.T, resp map[string]interface{}, key string) int {
	t.Helper()
	obj, ok := resp[key].(map[string]interface{})
	require.True(t, ok, "ответ без %q: %v", key, resp)
	return int(obj["id"].(float64))
}
