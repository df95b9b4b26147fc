package handlers

import (
	"log/slog"
	"os"

	"github.com/hartharney/EXpeditious-Logistics/internal/config"
	"github.com/hartharney/EXpeditious-Logistics/internal/models"
	"github.com/hartharney/EXpeditious-Logistics/internal/services"
	"github.com/hartharney/EXpeditious-Logistics/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	db.AutoMigrate(&models.User{}, &models.Shipping{}, &models.AuditLog{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		TokenSecret:   "iskaba",
		SessionSecret: "test-secret-12345678901234567890123456789012",
	}

	audit := services.NewAuditService(db, logger)
	users := services.NewUserService(db, audit)
	shipping := services.NewShippingService(db, audit)
	qr := services.NewQRService()

	h := NewHandler(cfg, logger, db, users, shipping, audit, qr)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil, "../../web/templates/*.html", "")
}

func validToken() string {
	token, _ := utils.GenerateToken(1, "iskaba")
	return token
}
