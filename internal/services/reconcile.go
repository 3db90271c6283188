package services

import (
	"log"
	"time"

	"gorm.io/gorm"

	"campcare/internal/models"
)

// ReconcileService repairs payment sessions the callback never finalized. The
// gateway is the source of truth: paid orders are completed (and get their
// sponsorship row), orders still unpaid after FailAfter are marked failed.
type ReconcileService struct {
	db      *gorm.DB
	gateway PaymentGateway

	// GraceWindow is how long a pending session is left alone before the
	// gateway is asked about it.
	GraceWindow time.Duration
	// FailAfter is the age past which an unpaid order is written off.
	FailAfter time.Duration
}

func NewReconcileService(db *gorm.DB, gateway PaymentGateway) *ReconcileService {
	return &ReconcileService{
		db:          db,
		gateway:     gateway,
		GraceWindow: 30 * time.Minute,
		FailAfter:   24 * time.Hour,
	}
}

// Run performs one reconciliation pass and returns how many sessions changed state
func (s *ReconcileService) Run() (int, error) {
	cutoff := time.Now().Add(-s.GraceWindow)

	var sessions []models.PaymentSession
	err := s.db.Where("status = ? AND created_at <= ?", models.PaymentStatusPending, cutoff).Find(&sessions).Error
	if err != nil {
		return 0, err
	}

	changed := 0
	for i := range sessions {
		session := &sessions[i]

		status, err := s.gateway.FetchOrderStatus(session.OrderID)
		if err != nil {
			log.Printf("Reconcile: failed to fetch order %s: %v", session.OrderID, err)
			continue
		}

		switch status {
		case "paid":
			session.Status = models.PaymentStatusCompleted
			if err := s.db.Save(session).Error; err != nil {
				log.Printf("Reconcile: failed to complete session %s: %v", session.OrderID, err)
				continue
			}
			payments := &PaymentService{db: s.db, gateway: s.gateway}
			payments.createSponsorship(session, "Payment confirmed by reconciliation")
			log.Printf("Reconcile: completed stale session %s", session.OrderID)
			changed++
		default:
			if time.Since(session.CreatedAt) < s.FailAfter {
				continue
			}
			session.Status = models.PaymentStatusFailed
			if err := s.db.Save(session).Error; err != nil {
				log.Printf("Reconcile: failed to mark session %s failed: %v", session.OrderID, err)
				continue
			}
			log.Printf("Reconcile: marked session %s failed (order status %s)", session.OrderID, status)
			changed++
		}
	}

	return changed, nil
}
