package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RateLimitConfig содержит настройки rate limiting
type RateLimitConfig struct {
	// MaxRequests - максимальное количество запросов за Window
	MaxRequests int
	// Window - временное окно для подсчета запросов
	Window time.Duration
	// KeyPrefix - префикс для ключей в Redis
	KeyPrefix string
}

// AuthRateLimitConfig - лимит для register/login (защита от перебора паролей)
func AuthRateLimitConfig(maxRequests int, window time.Duration) RateLimitConfig {
	if maxRequests <= 0 {
		maxRequests = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return RateLimitConfig{
		MaxRequests: maxRequests,
		Window:      window,
		KeyPrefix:   "rl:auth",
	}
}

// windowState - счетчик клиента в текущем окне
type windowState struct {
	count      int64
	retryAfter int
}

func (w windowState) remaining(max int) int {
	if left := max - int(w.count); left > 0 {
		return left
	}
	return 0
}

// RateLimiter - фиксированное окно на счетчиках Redis
type RateLimiter struct {
	redisClient redis.UniversalClient
}

// NewRateLimiter создает новый RateLimiter
func NewRateLimiter(redisClient redis.UniversalClient) *RateLimiter {
	return &RateLimiter{redisClient: redisClient}
}

// rateLimitKey: префикс, IP клиента и шаблон маршрута
func rateLimitKey(prefix, clientIP string, c *gin.Context) string {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	return fmt.Sprintf("%s:%s:%s", prefix, clientIP, route)
}

// hit увеличивает счетчик и читает TTL за один проход по сети.
// TTL ставится, только если у ключа его еще нет.
func (rl *RateLimiter) hit(ctx context.Context, key string, window time.Duration) (windowState, error) {
	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := rl.redisClient.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		ttl = pipe.TTL(ctx, key)
		return nil
	})
	if err != nil {
		return windowState{}, err
	}

	state := windowState{count: incr.Val(), retryAfter: int(ttl.Val().Seconds())}
	if ttl.Val() < 0 {
		if err := rl.redisClient.Expire(ctx, key, window).Err(); err != nil {
			log.Printf("[RateLimiter] Не удалось выставить TTL для %s: %v", key, err)
		}
		state.retryAfter = int(window.Seconds())
	}
	return state, nil
}

// Limit возвращает Gin middleware с заданной конфигурацией.
// При недоступном Redis запрос пропускается.
func (rl *RateLimiter) Limit(cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKey(cfg.KeyPrefix, c.ClientIP(), c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		state, err := rl.hit(ctx, key, cfg.Window)
		if err != nil {
			log.Printf("[RateLimiter] Ошибка Redis для %s, запрос пропущен: %v", key, err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(state.remaining(cfg.MaxRequests)))
		c.Header("X-RateLimit-Reset", strconv.Itoa(state.retryAfter))

		if state.count > int64(cfg.MaxRequests) {
			log.Printf("[RateLimiter] Превышен лимит %s: %d из %d", key, state.count, cfg.MaxRequests)
			c.Header("Retry-After", strconv.Itoa(state.retryAfter))
			abortWithMessage(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", gin.H{
				"retry_after": state.retryAfter,
			})
			return
		}

		c.Next()
	}
}
