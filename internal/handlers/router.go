package handlers

import (
	"github.com/hartharney/EXpeditious-Logistics/internal/services"

	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter, templatePath string, staticPath string) *gin.Engine {
	r := gin.Default()

	if templatePath != "" {
		r.LoadHTMLGlob(templatePath)
	}
	if staticPath != "" {
		r.Static("/public", staticPath)
	}

	// Middleware
	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	// Sessions live in the same database as the data tables
	store := gormsessions.NewStore(h.db, true, []byte(h.cfg.SessionSecret))
	r.Use(sessions.Sessions("session_cookie_name", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Page Routes
	r.GET("/", h.ShowIndex)
	r.GET("/packaging", h.ShowPackaging)
	r.GET("/tracking", h.ShowTracking)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.HandleLoginForm)
	r.GET("/sign-up", h.ShowSignUp)
	r.GET("/forgot-password", h.ShowForgotPassword)
	r.GET("/not-found", h.ShowNotFound)

	// Public tracking lookups
	r.GET("/track", h.TrackShipment)
	r.GET("/details", h.ShowDetails)

	// Token issuance
	r.POST("/auth/token", h.IssueToken)

	// Token-gated API Routes
	users := r.Group("/users")
	users.Use(h.TokenRequired())
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.GET("/:id", h.GetUser)
	}

	shipping := r.Group("/shipping")
	shipping.Use(h.TokenRequired())
	{
		shipping.POST("", h.CreateShipping)
		shipping.GET("/:id", h.GetShipping)
		shipping.GET("/:id/qr", h.ShipmentQR)
	}

	return r
}
