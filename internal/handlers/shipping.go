package handlers

import (
	"errors"
	"net/http"

	"github.com/hartharney/EXpeditious-Logistics/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateShippingRequest carries every field a shipment record needs. The
// quantity and weight fields are pointers so a present zero still passes the
// required check.
type CreateShippingRequest struct {
	ShipmentNumber   string `json:"shipment_number" binding:"required"`
	SenderEmail      string `json:"sender_email" binding:"required,email"`
	ItemType         string `json:"item_type" binding:"required"`
	Country          string `json:"country" binding:"required"`
	OriginCity       string `json:"origin_city" binding:"required"`
	ShippingTime     string `json:"shipping_time" binding:"required"`
	ShippingDate     string `json:"shipping_date" binding:"required"`
	SenderName       string `json:"sender_name" binding:"required"`
	SenderAddress    string `json:"sender_address" binding:"required"`
	ShippingQuantity *int   `json:"shipping_quantity" binding:"required"`
	TotalWeight      *int   `json:"total_weight" binding:"required"`
	Status           string `json:"status" binding:"required"`
	DeliveryCity     string `json:"delivery_city" binding:"required"`
	DeliveryDate     string `json:"delivery_date" binding:"required"`
	RecipientName    string `json:"recipient_name" binding:"required"`
	RecipientAddress string `json:"recipient_address" binding:"required"`
}

func (h *Handler) CreateShipping(c *gin.Context) {
	var req CreateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": firstBindingError(err)})
		return
	}

	newShipping, err := h.shippingService.Create(services.CreateShippingDTO{
		ShipmentNumber:   req.ShipmentNumber,
		SenderEmail:      req.SenderEmail,
		ItemType:         req.ItemType,
		Country:          req.Country,
		OriginCity:       req.OriginCity,
		ShippingTime:     req.ShippingTime,
		ShippingDate:     req.ShippingDate,
		SenderName:       req.SenderName,
		SenderAddress:    req.SenderAddress,
		ShippingQuantity: *req.ShippingQuantity,
		TotalWeight:      *req.TotalWeight,
		Status:           req.Status,
		DeliveryCity:     req.DeliveryCity,
		DeliveryDate:     req.DeliveryDate,
		RecipientName:    req.RecipientName,
		RecipientAddress: req.RecipientAddress,
		IPAddress:        c.ClientIP(),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error creating shipping", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, newShipping)
}

// GetShipping looks a shipment up by its tracking number. The :id segment is
// the shipment number, not the surrogate key.
func (h *Handler) GetShipping(c *gin.Context) {
	shipmentNumber := c.Param("id")

	shipping, err := h.shippingService.GetByNumber(shipmentNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shipping not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching shipping", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shipping)
}

// ShipmentQR renders the shipment's public details URL as a PNG QR code.
func (h *Handler) ShipmentQR(c *gin.Context) {
	shipmentNumber := c.Param("id")

	shipping, err := h.shippingService.GetByNumber(shipmentNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shipping not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching shipping", "error": err.Error()})
		return
	}

	detailsURL := "https://" + c.Request.Host + "/details?shipment_number=" + shipping.ShipmentNumber
	png, err := h.qrService.GenerateQRCode(detailsURL, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error generating QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
