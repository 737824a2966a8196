package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"selling-sisters-api/internal/api/dto"
	"selling-sisters-api/pkg/kv"
)

const rateLimitPrefix = "selling-sisters:rate-limit:"

// RateLimiter 基于 KV 计数器的固定窗口限流
// KV 故障时放行 (fail-open)：限流是防滥用手段，不能因为它挡住正常客户
type RateLimiter struct {
	store  kv.Store
	window time.Duration
	max    int64
	logger *zap.Logger
}

func NewRateLimiter(store kv.Store, window time.Duration, max int64, logger *zap.Logger) *RateLimiter {
	if window <= 0 {
		window = 60 * time.Second
	}
	if max <= 0 {
		max = 10
	}
	return &RateLimiter{store: store, window: window, max: max, logger: logger}
}

// Handler gin 中间件，按客户端 IP 限流
func (r *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := clientIP(c)
		key := rateLimitPrefix + ip

		count, err := r.store.Incr(c.Request.Context(), key)
		if err != nil {
			r.logger.Warn("rate_limit_store_failed", zap.Error(err))
			c.Next()
			return
		}
		// 窗口内第一次请求时设置过期，计数器随窗口一起消失
		if count == 1 {
			if err := r.store.Expire(c.Request.Context(), key, r.window); err != nil {
				r.logger.Warn("rate_limit_expire_failed", zap.Error(err))
			}
		}

		remaining := r.max - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.FormatInt(r.max, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > r.max {
			r.logger.Info("rate_limit_exceeded",
				zap.String("ip", ip),
				zap.Int64("count", count))
			c.AbortWithStatusJSON(429, dto.ErrorResp{
				Success: false,
				Error:   "Too many requests. Please try again in a minute.",
			})
			return
		}

		c.Next()
	}
}

// clientIP 代理后的真实客户端 IP:
// X-Forwarded-For 第一段 -> X-Real-IP -> "unknown"
func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if real := c.GetHeader("X-Real-IP"); real != "" {
		return real
	}
	return "unknown"
}
