package services

import (
	"errors"

	"github.com/hartharney/EXpeditious-Logistics/internal/models"

	"gorm.io/gorm"
)

var ErrDuplicateSender = errors.New("sender email already has a shipment")

type CreateShippingDTO struct {
	ShipmentNumber   string
	SenderEmail      string
	ItemType         string
	Country          string
	OriginCity       string
	ShippingTime     string
	ShippingDate     string
	SenderName       string
	SenderAddress    string
	ShippingQuantity int
	TotalWeight      int
	Status           string
	DeliveryCity     string
	DeliveryDate     string
	RecipientName    string
	RecipientAddress string
	IPAddress        string // For Audit Log
}

type ShippingService struct {
	db           *gorm.DB
	auditService *AuditService
}

func NewShippingService(db *gorm.DB, auditService *AuditService) *ShippingService {
	return &ShippingService{
		db:           db,
		auditService: auditService,
	}
}

func (s *ShippingService) Create(dto CreateShippingDTO) (*models.Shipping, error) {
	newShipping := models.Shipping{
		ShipmentNumber:   dto.ShipmentNumber,
		SenderEmail:      dto.SenderEmail,
		ItemType:         dto.ItemType,
		Country:          dto.Country,
		OriginCity:       dto.OriginCity,
		ShippingTime:     dto.ShippingTime,
		ShippingDate:     dto.ShippingDate,
		SenderName:       dto.SenderName,
		SenderAddress:    dto.SenderAddress,
		ShippingQuantity: dto.ShippingQuantity,
		TotalWeight:      dto.TotalWeight,
		Status:           dto.Status,
		DeliveryCity:     dto.DeliveryCity,
		DeliveryDate:     dto.DeliveryDate,
		RecipientName:    dto.RecipientName,
		RecipientAddress: dto.RecipientAddress,
	}

	if err := s.db.Create(&newShipping).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSender
		}
		return nil, err
	}

	s.auditService.LogAction(nil, "CREATE_SHIPPING", newShipping.ShipmentNumber, map[string]interface{}{
		"sender_email": dto.SenderEmail,
		"status":       dto.Status,
	}, dto.IPAddress)

	return &newShipping, nil
}

// GetByNumber returns the first shipment whose tracking number matches, or
// gorm.ErrRecordNotFound.
func (s *ShippingService) GetByNumber(shipmentNumber string) (*models.Shipping, error) {
	var shipping models.Shipping
	if err := s.db.Where("shipment_number = ?", shipmentNumber).First(&shipping).Error; err != nil {
		return nil, err
	}
	return &shipping, nil
}
