package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	localCache "sentinance/cache"
	"sentinance/config"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// RateLimiter applies a token bucket per client IP. Preflight requests are
// never counted.
func RateLimiter(cfg *config.ConfigManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		current := cfg.GetConfig()
		if !current.RateLimiter || ctx.Request.Method == http.MethodOptions {
			ctx.Next()
			return
		}

		limiter := limiterFor(ctx.ClientIP(), rate.Limit(current.RateLimitRps), current.RateBurst)
		if reservation := limiter.Reserve(); !reservation.OK() || reservation.Delay() > 0 {
			retryAfter := 1
			if reservation.OK() {
				retryAfter = int(math.Ceil(reservation.Delay().Seconds()))
				reservation.Cancel()
			}
			ctx.Header("Retry-After", strconv.Itoa(retryAfter))
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"title":  "Too Many Requests",
				"status": http.StatusTooManyRequests,
				"detail": fmt.Sprintf("rate limit exceeded, retry in %d seconds", retryAfter),
			})
			return
		}

		ctx.Next()
	}
}

func limiterFor(ip string, limit rate.Limit, burst int) *rate.Limiter {
	if val, found := localCache.RateLimiterCache.Get(ip); found {
		return val.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(limit, burst)
	localCache.RateLimiterCache.Set(ip, limiter, cache.DefaultExpiration)
	return limiter
}

func RecoveryMiddleware(c *gin.Context) {
	defer func() {
		if err := recover(); err != nil {
			log.Error().
				Interface("panic", err).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("PANIC_RECOVERED")

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"title":  "Internal Server Error",
				"status": http.StatusInternalServerError,
				"detail": "unexpected_panic",
			})
		}
	}()
	c.Next()
}

func ZerologMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api/health" || path == "/openapi.json" || path == "/openapi.yaml" {
			c.Next()
			return
		}

		start := time.Now()
		query := c.Request.URL.RawQuery

		c.Next()

		event := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("HTTP Request")
	}
}
