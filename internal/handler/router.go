package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/iq-api/internal/middleware"
)

// RouterDeps - все, что нужно для сборки маршрутов
type RouterDeps struct {
	Auth      *AuthHandler
	Users     *UserHandler
	Questions *QuestionHandler
	Quizzes   *QuizHandler
	Scores    *ScoreHandler

	AuthMiddleware *middleware.AuthMiddleware
	// AuthRateLimit ограничивает register/login, nil - без ограничения
	AuthRateLimit gin.HandlerFunc

	AllowedOrigins []string
	// StaticDir - каталог фронтенда, пусто - фронтенд не раздается
	StaticDir string
}

// NewRouter собирает gin.Engine со всеми маршрутами API
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(corsConfig(deps.AllowedOrigins)))

	requireAuth := deps.AuthMiddleware.RequireAuth()
	quizID := middleware.ExtractUintParam("id", "quizID")
	questionID := middleware.ExtractUintParam("id", "questionID")
	quizQuestionID := middleware.ExtractUintParam("qid", "questionID")

	api := router.Group("/api")
	{
		api.GET("/health", Health)
		api.GET("/debug/users", deps.Users.ListUsers)

		authGroup := api.Group("/auth")
		if deps.AuthRateLimit != nil {
			authGroup.Use(deps.AuthRateLimit)
		}
		{
			authGroup.POST("/register", deps.Auth.Register)
			authGroup.POST("/login", deps.Auth.Login)
		}

		api.GET("/me", requireAuth, deps.Auth.GetMe)
		api.DELETE("/me", requireAuth, deps.Auth.DeleteMe)

		api.POST("/scores", requireAuth, deps.Scores.SubmitScore)
		api.GET("/leaderboard", requireAuth, deps.Scores.GetLeaderboard)

		api.GET("/questions", deps.Questions.ListQuestions)
		api.POST("/questions", requireAuth, deps.Questions.CreateQuestion)

		my := api.Group("/my")
		my.Use(requireAuth)
		{
			my.GET("/questions", deps.Questions.ListMyQuestions)
			myQuestion := my.Group("/questions/:id")
			myQuestion.Use(questionID)
			{
				myQuestion.PUT("", deps.Questions.UpdateMyQuestion)
				myQuestion.PATCH("", deps.Questions.UpdateMyQuestion)
				myQuestion.DELETE("", deps.Questions.DeleteMyQuestion)
			}

			my.GET("/quizzes", deps.Quizzes.ListMyQuizzes)
			my.POST("/quizzes", deps.Quizzes.CreateQuiz)
			myQuiz := my.Group("/quizzes/:id")
			myQuiz.Use(quizID)
			{
				myQuiz.GET("", deps.Quizzes.GetMyQuiz)
				myQuiz.PUT("", deps.Quizzes.UpdateMyQuiz)
				myQuiz.PATCH("", deps.Quizzes.UpdateMyQuiz)
				myQuiz.DELETE("", deps.Quizzes.DeleteMyQuiz)
				myQuiz.GET("/export", deps.Quizzes.ExportQuiz)
				myQuiz.POST("/questions", deps.Quizzes.AddQuizQuestion)

				quizQuestion := myQuiz.Group("/questions/:qid")
				quizQuestion.Use(quizQuestionID)
				{
					quizQuestion.PUT("", deps.Quizzes.UpdateQuizQuestion)
					quizQuestion.PATCH("", deps.Quizzes.UpdateQuizQuestion)
					quizQuestion.DELETE("", deps.Quizzes.DeleteQuizQuestion)
				}
			}
		}

		api.GET("/custom-quizzes/:id/play", requireAuth, quizID, deps.Quizzes.PlayQuiz)
	}

	var frontend http.Handler
	if deps.StaticDir != "" {
		frontend = http.FileServer(http.Dir(deps.StaticDir))
	}
	router.NoRoute(func(c *gin.Context) {
		isRead := c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead
		if frontend != nil && isRead && !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			frontend.ServeHTTP(c.Writer, c.Request)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})

	return router
}

// corsConfig разрешает перечисленные origin, "*" или пустой список - любой
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}

	allowed := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
		if origin != "" {
			allowed = append(allowed, origin)
		}
	}
	if len(allowed) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = allowed
	return cfg
}
