package services

import "errors"

// Error taxonomy for the payment flow. Handlers map these onto HTTP statuses.
var (
	// ErrInvalidSignature means the callback signature did not match the
	// recomputed digest. The session is left untouched for reconciliation.
	ErrInvalidSignature = errors.New("invalid payment signature")

	// ErrSessionNotFound means no payment session matches the supplied order id
	ErrSessionNotFound = errors.New("payment session not found")

	// ErrGateway wraps failures talking to the payment provider
	ErrGateway = errors.New("payment gateway error")

	// ErrPersistence wraps datastore write failures
	ErrPersistence = errors.New("failed to persist record")

	// ErrSenderNotConfigured means push delivery has no backing FCM client
	ErrSenderNotConfigured = errors.New("push sender not configured")
)
