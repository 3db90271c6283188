package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campcare/internal/models"
	"campcare/internal/services"
)

type stubGateway struct {
	orderID string
}

func (g *stubGateway) CreateOrder(amountMinor int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	return g.orderID, nil
}

func (g *stubGateway) FetchOrderStatus(orderID string) (string, error) {
	return "created", nil
}

func (g *stubGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return services.VerifyPaymentSignature(orderID, paymentID, signature, "handler_test_secret")
}

func (g *stubGateway) KeyID() string {
	return "rzp_test_key"
}

func newTestHandler(t *testing.T) (*PaymentHandler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := services.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	svc := services.NewPaymentService(db, &stubGateway{orderID: "order_h1"})
	return NewPaymentHandler(svc), db
}

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestCreateOrderHandler(t *testing.T) {
	h, db := newTestHandler(t)
	e := echo.New()

	req, rec := jsonRequest(http.MethodPost, "/api/payments/create-order",
		`{"amount": 2500, "currency": "INR", "camp_id": "c1", "sponsor_name": "Sam"}`)
	c := e.NewContext(req, rec)
	c.Set("userUID", "user-1")
	c.Set("userEmail", "sam@example.com")

	if err := h.CreateOrder(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["order_id"] != "order_h1" {
		t.Errorf("expected order_id order_h1, got %v", resp["order_id"])
	}
	if resp["amount"] != float64(250000) {
		t.Errorf("expected minor-unit amount 250000, got %v", resp["amount"])
	}
	if resp["key"] != "rzp_test_key" {
		t.Errorf("expected public key in response, got %v", resp["key"])
	}

	var session models.PaymentSession
	if err := db.Where("order_id = ?", "order_h1").First(&session).Error; err != nil {
		t.Fatalf("payment session not persisted: %v", err)
	}
	if session.SponsorName != "Sam" {
		t.Errorf("expected sponsor name Sam, got %q", session.SponsorName)
	}
}

func TestCreateOrderHandlerValidation(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	tests := []struct {
		name string
		body string
		uid  string
		code int
	}{
		{
			name: "missing amount",
			body: `{"camp_id": "c1"}`,
			uid:  "user-1",
			code: http.StatusBadRequest,
		},
		{
			name: "missing camp_id",
			body: `{"amount": 100}`,
			uid:  "user-1",
			code: http.StatusBadRequest,
		},
		{
			name: "negative amount",
			body: `{"amount": -5, "camp_id": "c1"}`,
			uid:  "user-1",
			code: http.StatusBadRequest,
		},
		{
			name: "unauthenticated",
			body: `{"amount": 100, "camp_id": "c1"}`,
			uid:  "",
			code: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := jsonRequest(http.MethodPost, "/api/payments/create-order", tt.body)
			c := e.NewContext(req, rec)
			if tt.uid != "" {
				c.Set("userUID", tt.uid)
			}

			if err := h.CreateOrder(c); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != tt.code {
				t.Errorf("expected %d, got %d: %s", tt.code, rec.Code, rec.Body.String())
			}

			var resp map[string]interface{}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON response: %v", err)
			}
			if _, ok := resp["error"]; !ok {
				t.Errorf("expected error field in response: %s", rec.Body.String())
			}
		})
	}
}

func TestVerifyPaymentHandler(t *testing.T) {
	h, db := newTestHandler(t)
	e := echo.New()

	session := models.PaymentSession{
		UserID:  "user-1",
		CampID:  "c1",
		Amount:  2500,
		OrderID: "order_h2",
		Status:  models.PaymentStatusPending,
	}
	db.Create(&session)

	signature := services.SignPayload("order_h2", "pay_h2", "handler_test_secret")
	body := `{"razorpay_order_id": "order_h2", "razorpay_payment_id": "pay_h2", "razorpay_signature": "` + signature + `"}`

	req, rec := jsonRequest(http.MethodPost, "/api/payments/verify", body)
	c := e.NewContext(req, rec)
	c.Set("userUID", "user-1")

	if err := h.VerifyPayment(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["success"] != true {
		t.Errorf("expected success true, got %v", resp["success"])
	}

	var updated models.PaymentSession
	db.Where("order_id = ?", "order_h2").First(&updated)
	if updated.Status != models.PaymentStatusCompleted {
		t.Errorf("expected completed session, got %q", updated.Status)
	}
}

func TestVerifyPaymentHandlerBadSignature(t *testing.T) {
	h, db := newTestHandler(t)
	e := echo.New()

	session := models.PaymentSession{OrderID: "order_h3", CampID: "c1", Status: models.PaymentStatusPending}
	db.Create(&session)

	body := `{"razorpay_order_id": "order_h3", "razorpay_payment_id": "pay_h3", "razorpay_signature": "deadbeef"}`
	req, rec := jsonRequest(http.MethodPost, "/api/payments/verify", body)
	c := e.NewContext(req, rec)
	c.Set("userUID", "user-1")

	if err := h.VerifyPayment(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	var updated models.PaymentSession
	db.Where("order_id = ?", "order_h3").First(&updated)
	if updated.Status != models.PaymentStatusPending {
		t.Errorf("session must stay pending on bad signature, got %q", updated.Status)
	}
}

func TestVerifyPaymentHandlerMissingFields(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	req, rec := jsonRequest(http.MethodPost, "/api/payments/verify", `{"razorpay_order_id": "order_h4"}`)
	c := e.NewContext(req, rec)
	c.Set("userUID", "user-1")

	if err := h.VerifyPayment(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
