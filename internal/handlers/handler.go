package handlers

import (
	"log/slog"

	"github.com/hartharney/EXpeditious-Logistics/internal/config"
	"github.com/hartharney/EXpeditious-Logistics/internal/services"

	"gorm.io/gorm"
)

type Handler struct {
	cfg             config.Config
	logger          *slog.Logger
	db              *gorm.DB
	userService     *services.UserService
	shippingService *services.ShippingService
	auditService    *services.AuditService
	qrService       *services.QRService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	userService *services.UserService,
	shippingService *services.ShippingService,
	auditService *services.AuditService,
	qrService *services.QRService,
) *Handler {
	return &Handler{
		cfg:             cfg,
		logger:          logger,
		db:              db,
		userService:     userService,
		shippingService: shippingService,
		auditService:    auditService,
		qrService:       qrService,
	}
}
