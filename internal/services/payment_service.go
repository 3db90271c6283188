package services

import (
	"fmt"
	"log"
	"math"
	"time"

	"gorm.io/gorm"

	"campcare/internal/models"
)

type PaymentService struct {
	db      *gorm.DB
	gateway PaymentGateway
}

func NewPaymentService(db *gorm.DB, gateway PaymentGateway) *PaymentService {
	return &PaymentService{db: db, gateway: gateway}
}

// CreateOrderInput carries the validated fields of an order-creation request
type CreateOrderInput struct {
	UserID      string
	UserEmail   string
	Amount      float64 // major currency units
	Currency    string
	CampID      string
	SponsorName string
}

// CreateOrderResult is what the client needs to render the checkout widget
type CreateOrderResult struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

// CreateOrder creates a gateway order for a sponsorship and records a pending
// payment session keyed by the returned order id.
func (s *PaymentService) CreateOrder(in CreateOrderInput) (*CreateOrderResult, error) {
	if in.Currency == "" {
		in.Currency = "INR"
	}
	if in.SponsorName == "" {
		in.SponsorName = "Anonymous"
	}

	// Gateway amounts are in minor units (1 INR = 100 paise). Rounded, since
	// float amounts like 10.55 have no exact binary representation.
	amountMinor := int64(math.Round(in.Amount * 100))
	receipt := fmt.Sprintf("camp_%s_%d", in.CampID, time.Now().UnixMilli())

	notes := map[string]interface{}{
		"camp_id":      in.CampID,
		"sponsor_name": in.SponsorName,
		"user_id":      in.UserID,
	}

	orderID, err := s.gateway.CreateOrder(amountMinor, in.Currency, receipt, notes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	session := models.PaymentSession{
		UserID:       in.UserID,
		CampID:       in.CampID,
		Amount:       in.Amount,
		Currency:     in.Currency,
		SponsorName:  in.SponsorName,
		SponsorEmail: in.UserEmail,
		OrderID:      orderID,
		Status:       models.PaymentStatusPending,
	}
	if err := s.db.Create(&session).Error; err != nil {
		// The gateway order is not cancelled; the provider stays the source of
		// truth for the order itself.
		log.Printf("Error storing payment session for order %s: %v", orderID, err)
		return nil, fmt.Errorf("%w: payment session", ErrPersistence)
	}

	return &CreateOrderResult{
		OrderID:  orderID,
		Amount:   amountMinor,
		Currency: in.Currency,
		Key:      s.gateway.KeyID(),
	}, nil
}

// VerifyPayment validates a checkout confirmation and finalizes the matching
// payment session. The signature check happens before any state is touched; a
// mismatch leaves the session pending for manual reconciliation.
func (s *PaymentService) VerifyPayment(orderID, paymentID, signature string) error {
	if !s.gateway.VerifySignature(orderID, paymentID, signature) {
		return ErrInvalidSignature
	}

	// TODO: cross-check that the authenticated caller owns this session before
	// completing it; currently any valid signature finalizes the order.
	var session models.PaymentSession
	if err := s.db.Where("order_id = ?", orderID).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrSessionNotFound
		}
		return fmt.Errorf("%w: payment session lookup: %v", ErrPersistence, err)
	}

	session.Status = models.PaymentStatusCompleted
	if err := s.db.Save(&session).Error; err != nil {
		return fmt.Errorf("%w: payment status update", ErrPersistence)
	}

	s.createSponsorship(&session, "Payment via Razorpay")
	return nil
}

// createSponsorship inserts the confirmed sponsorship row for a completed
// session. Best effort: the payment has already been verified, so a failed
// insert is logged rather than propagated.
func (s *PaymentService) createSponsorship(session *models.PaymentSession, message string) {
	sponsorship := models.Sponsorship{
		CampID:       session.CampID,
		SponsorName:  session.SponsorName,
		SponsorEmail: session.SponsorEmail,
		Amount:       session.Amount,
		Message:      message,
	}
	if err := s.db.Create(&sponsorship).Error; err != nil {
		log.Printf("Error creating sponsorship for order %s: %v", session.OrderID, err)
	}
}
