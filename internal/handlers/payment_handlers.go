package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"campcare/internal/services"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreateOrder creates a gateway order for a sponsorship and returns the
// credentials the client needs to open the checkout widget
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	userID := getStringFromContext(c, "userUID")
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User not authenticated"})
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON payload"})
	}

	if req.Amount <= 0 || req.CampID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required fields: amount and camp_id"})
	}

	result, err := h.payments.CreateOrder(services.CreateOrderInput{
		UserID:      userID,
		UserEmail:   getStringFromContext(c, "userEmail"),
		Amount:      req.Amount,
		Currency:    req.Currency,
		CampID:      req.CampID,
		SponsorName: req.SponsorName,
	})
	if err != nil {
		log.Printf("Error creating order: %v", err)
		if errors.Is(err, services.ErrGateway) {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": "Payment provider unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create order"})
	}

	return c.JSON(http.StatusOK, result)
}

// VerifyPayment validates the checkout confirmation and finalizes the sponsorship
func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	userID := getStringFromContext(c, "userUID")
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User not authenticated"})
	}

	var req VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON payload"})
	}

	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing payment verification data"})
	}

	err := h.payments.VerifyPayment(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		log.Printf("Error verifying payment for order %s: %v", req.RazorpayOrderID, err)
		switch {
		case errors.Is(err, services.ErrInvalidSignature):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payment signature"})
		case errors.Is(err, services.ErrSessionNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Payment session not found"})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to verify payment"})
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Payment verified and sponsorship created successfully",
	})
}
