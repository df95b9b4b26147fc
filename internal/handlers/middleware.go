package handlers

import (
	"net/http"

	"github.com/hartharney/EXpeditious-Logistics/internal/services"
	"github.com/hartharney/EXpeditious-Logistics/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TokenRequired gates a route on a signed token passed in the query string.
// Only the signature is checked; nothing is attached to the context.
func (h *Handler) TokenRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")

		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Unauthorized access. Token not provided.",
			})
			return
		}

		if err := utils.VerifyToken(token, h.cfg.TokenSecret); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Unauthorized access. Token verification failed.",
			})
			return
		}

		c.Next()
	}
}

func (h *Handler) RateLimitMiddleware(limiter *services.IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		l := limiter.GetLimiter(ip)
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
