package handlers

import "github.com/labstack/echo/v4"

// CreateOrderRequest is the payload for starting a sponsorship checkout
type CreateOrderRequest struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	CampID      string  `json:"camp_id"`
	SponsorName string  `json:"sponsor_name"`
}

// VerifyPaymentRequest carries the checkout confirmation from the payment widget
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// SendNotificationRequest is the payload for a push-notification dispatch
type SendNotificationRequest struct {
	UserID       string            `json:"user_id"`
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	Data         map[string]string `json:"data,omitempty"`
	TargetTokens []string          `json:"target_tokens,omitempty"`
}

// RegisterDeviceRequest binds a push token to the authenticated user
type RegisterDeviceRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

// CreateCampRequest is the payload of the camp posting form
type CreateCampRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Location        string  `json:"location"`
	DoctorName      string  `json:"doctor_name"`
	ContactEmail    string  `json:"contact_email"`
	ContactPhone    string  `json:"contact_phone"`
	SponsorshipGoal float64 `json:"sponsorship_goal"`
}

// CreateBusinessRequestRequest is the payload of the partnership form
type CreateBusinessRequestRequest struct {
	BusinessName  string `json:"business_name"`
	CampType      string `json:"camp_type"`
	PreferredDate string `json:"preferred_date"`
	ContactEmail  string `json:"contact_email"`
	ContactPhone  string `json:"contact_phone"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
}

// CreateProposalRequest is the payload of the proposal submission form
type CreateProposalRequest struct {
	BusinessRequestID uint   `json:"business_request_id"`
	ProposerName      string `json:"proposer_name"`
	Details           string `json:"details"`
}

// UpdateStatusRequest is the payload of the admin moderation actions
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// getStringFromContext safely pulls a string value set by middleware
func getStringFromContext(c echo.Context, key string) string {
	if val := c.Get(key); val != nil {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return ""
}
