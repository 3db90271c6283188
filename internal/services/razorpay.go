package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	razorpay "github.com/razorpay/razorpay-go"
)

// PaymentGateway abstracts the payment provider so the payment service and
// reconciler can be exercised against a fake in tests.
type PaymentGateway interface {
	// CreateOrder creates a provider order sized in minor currency units and
	// returns the provider-assigned order id.
	CreateOrder(amountMinor int64, currency, receipt string, notes map[string]interface{}) (string, error)
	// FetchOrderStatus returns the provider-side order status ("created",
	// "attempted" or "paid").
	FetchOrderStatus(orderID string) (string, error)
	// VerifySignature checks a payment confirmation signature
	VerifySignature(orderID, paymentID, signature string) bool
	// KeyID is the public key the client needs to render the checkout widget
	KeyID() string
}

type RazorpayService struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

func NewRazorpayService() *RazorpayService {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")

	return &RazorpayService{
		client:    razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
	}
}

// CreateOrder creates a Razorpay order and returns its id
func (s *RazorpayService) CreateOrder(amountMinor int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	body, err := s.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay create order error: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay create order: response missing order id")
	}

	return orderID, nil
}

// FetchOrderStatus fetches the current status of an order from Razorpay
func (s *RazorpayService) FetchOrderStatus(orderID string) (string, error) {
	body, err := s.client.Order.Fetch(orderID, nil, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay fetch order error: %w", err)
	}

	status, ok := body["status"].(string)
	if !ok {
		return "", fmt.Errorf("razorpay fetch order: response missing status")
	}

	return status, nil
}

// VerifySignature checks the checkout confirmation against the shared secret
func (s *RazorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifyPaymentSignature(orderID, paymentID, signature, s.keySecret)
}

// KeyID returns the public key id for client-side checkout rendering
func (s *RazorpayService) KeyID() string {
	return s.keyID
}

// SignPayload computes the lowercase hex HMAC-SHA256 digest of
// "orderID|paymentID" with the given secret. This is the signature Razorpay
// attaches to a successful checkout.
func SignPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature reports whether signature matches the recomputed
// digest for the order/payment pair. Comparison is constant time.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	expected := SignPayload(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
