package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (h *Handler) ShowIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (h *Handler) ShowPackaging(c *gin.Context) {
	c.HTML(http.StatusOK, "packaging.html", nil)
}

func (h *Handler) ShowTracking(c *gin.Context) {
	c.HTML(http.StatusOK, "tracking.html", nil)
}

func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func (h *Handler) ShowSignUp(c *gin.Context) {
	c.HTML(http.StatusOK, "sign-up.html", nil)
}

func (h *Handler) ShowForgotPassword(c *gin.Context) {
	c.HTML(http.StatusOK, "forgot-password.html", nil)
}

func (h *Handler) ShowNotFound(c *gin.Context) {
	c.HTML(http.StatusOK, "not-found.html", nil)
}

// TrackShipment resolves the tracking form. The form fields may arrive in
// the query string or an urlencoded body, even on GET.
func (h *Handler) TrackShipment(c *gin.Context) {
	orderTrack, trackingType := trackingParams(c)

	if orderTrack == "" || trackingType == "" {
		c.HTML(http.StatusNotFound, "not-found.html", nil)
		return
	}

	shipping, err := h.shippingService.GetByNumber(orderTrack)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shipping not found"})
			return
		}
		h.logger.Error("Error processing tracking request", "error", err)
		c.HTML(http.StatusInternalServerError, "404.html", nil)
		return
	}

	c.HTML(http.StatusOK, "details.html", gin.H{"Shipping": shipping})
}

// trackingParams reads order_track and trackingType from the query string,
// falling back to an urlencoded or JSON request body. The tracking form
// submits a GET, and net/http only parses bodies for POST-like methods.
func trackingParams(c *gin.Context) (string, string) {
	orderTrack := c.Query("order_track")
	trackingType := c.Query("trackingType")
	if (orderTrack != "" && trackingType != "") || c.Request.Body == nil {
		return orderTrack, trackingType
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		return orderTrack, trackingType
	}

	switch c.ContentType() {
	case "application/x-www-form-urlencoded":
		vals, err := url.ParseQuery(string(body))
		if err != nil {
			return orderTrack, trackingType
		}
		if orderTrack == "" {
			orderTrack = vals.Get("order_track")
		}
		if trackingType == "" {
			trackingType = vals.Get("trackingType")
		}
	case "application/json":
		var form struct {
			OrderTrack   string `json:"order_track"`
			TrackingType string `json:"trackingType"`
		}
		if err := json.Unmarshal(body, &form); err != nil {
			return orderTrack, trackingType
		}
		if orderTrack == "" {
			orderTrack = form.OrderTrack
		}
		if trackingType == "" {
			trackingType = form.TrackingType
		}
	}

	return orderTrack, trackingType
}

func (h *Handler) ShowDetails(c *gin.Context) {
	shipmentNumber := c.Query("shipment_number")

	shipping, err := h.shippingService.GetByNumber(shipmentNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Shipping details not found")
			return
		}
		h.logger.Error("Error fetching shipping details", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.HTML(http.StatusOK, "details.html", gin.H{"Shipping": shipping})
}
