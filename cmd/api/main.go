package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/yourusername/iq-api/internal/config"
	"github.com/yourusername/iq-api/internal/domain/repository"
	"github.com/yourusername/iq-api/internal/handler"
	"github.com/yourusername/iq-api/internal/middleware"
	pgRepo "github.com/yourusername/iq-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/iq-api/internal/repository/redis"
	"github.com/yourusername/iq-api/internal/service"
	"github.com/yourusername/iq-api/pkg/auth"
	"github.com/yourusername/iq-api/pkg/database"
)

func main() {
	// .env необязателен, переменные окружения могут прийти из системы
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Не удалось прочитать .env: %v", err)
	}

	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db, cfg.Database.MigrationsPath); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Redis необязателен: без него нет кеша лидерборда и ограничения частоты запросов
	var redisClient redis.UniversalClient
	if cfg.Redis.Enabled() {
		redisClient, err = database.NewUniversalRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		log.Println("Successfully connected to Redis")
	} else {
		log.Println("Redis не настроен, кеш лидерборда и rate limiting выключены")
	}

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	scoreRepo := pgRepo.NewScoreRepo(db)
	quizRepo := pgRepo.NewCustomQuizRepo(db)

	// Интерфейс остается nil, если Redis выключен
	var cacheRepo repository.CacheRepository
	if redisClient != nil {
		redisCache, err := redisRepo.NewCacheRepo(redisClient, cfg.Redis.KeyPrefix)
		if err != nil {
			log.Printf("Failed to initialize CacheRepo: %v", err)
			os.Exit(1)
		}
		cacheRepo = redisCache
	}

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервисы
	scoreService := service.NewScoreService(
		scoreRepo,
		userRepo,
		cacheRepo,
		time.Duration(cfg.Leaderboard.CacheTTLSec)*time.Second,
	)
	authService, err := service.NewAuthService(userRepo, scoreRepo, jwtService, scoreService)
	if err != nil {
		log.Printf("Failed to initialize AuthService: %v", err)
		os.Exit(1)
	}
	userService := service.NewUserService(userRepo)
	questionService := service.NewQuestionService(questionRepo)
	quizService := service.NewCustomQuizService(quizRepo)

	var authRateLimit gin.HandlerFunc
	if redisClient != nil && cfg.RateLimit.Enabled {
		rlCfg := middleware.AuthRateLimitConfig(cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowSec)*time.Second)
		rlCfg.KeyPrefix = cfg.Redis.KeyPrefix + rlCfg.KeyPrefix
		authRateLimit = middleware.NewRateLimiter(redisClient).Limit(rlCfg)
	}

	router := handler.NewRouter(handler.RouterDeps{
		Auth:           handler.NewAuthHandler(authService),
		Users:          handler.NewUserHandler(userService),
		Questions:      handler.NewQuestionHandler(questionService),
		Quizzes:        handler.NewQuizHandler(quizService),
		Scores:         handler.NewScoreHandler(scoreService),
		AuthMiddleware: middleware.NewAuthMiddleware(authService),
		AuthRateLimit:  authRateLimit,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		StaticDir:      cfg.Server.StaticDir,
	})

	// В release режиме не доверяем прокси-заголовкам при определении c.ClientIP()
	if gin.Mode() == gin.ReleaseMode {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}

	log.Println("Server exited properly")
}
