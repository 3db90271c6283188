package services

import (
	"strings"
	"testing"
)

func TestVerifyPaymentSignature(t *testing.T) {
	const secret = "test_secret_key"
	valid := SignPayload("order_abc123", "pay_xyz789", secret)

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		secret    string
		expected  bool
	}{
		{
			name:      "valid signature",
			orderID:   "order_abc123",
			paymentID: "pay_xyz789",
			signature: valid,
			secret:    secret,
			expected:  true,
		},
		{
			name:      "tampered signature",
			orderID:   "order_abc123",
			paymentID: "pay_xyz789",
			signature: flipLastChar(valid),
			secret:    secret,
			expected:  false,
		},
		{
			name:      "wrong secret",
			orderID:   "order_abc123",
			paymentID: "pay_xyz789",
			signature: valid,
			secret:    "another_secret",
			expected:  false,
		},
		{
			name:      "wrong payment id",
			orderID:   "order_abc123",
			paymentID: "pay_other",
			signature: valid,
			secret:    secret,
			expected:  false,
		},
		{
			name:      "uppercase hex rejected",
			orderID:   "order_abc123",
			paymentID: "pay_xyz789",
			signature: strings.ToUpper(valid),
			secret:    secret,
			expected:  false,
		},
		{
			name:      "empty signature",
			orderID:   "order_abc123",
			paymentID: "pay_xyz789",
			signature: "",
			secret:    secret,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := VerifyPaymentSignature(tt.orderID, tt.paymentID, tt.signature, tt.secret)
			if result != tt.expected {
				t.Errorf("VerifyPaymentSignature(%q, %q, %q) = %v; want %v", tt.orderID, tt.paymentID, tt.signature, result, tt.expected)
			}
		})
	}
}

func TestSignPayloadDeterministic(t *testing.T) {
	a := SignPayload("order_1", "pay_1", "s")
	b := SignPayload("order_1", "pay_1", "s")
	if a != b {
		t.Errorf("SignPayload not deterministic: %q != %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
	if a != strings.ToLower(a) {
		t.Errorf("expected lowercase hex, got %q", a)
	}
}

func flipLastChar(s string) string {
	last := s[len(s)-1]
	replacement := byte('0')
	if last == '0' {
		replacement = '1'
	}
	return s[:len(s)-1] + string(replacement)
}
