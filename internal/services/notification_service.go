package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"firebase.google.com/go/v4/messaging"
	"gorm.io/gorm"

	"campcare/internal/models"
)

// PushSender delivers one notification to one device token
type PushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}

// FCMSender delivers notifications through Firebase Cloud Messaging
type FCMSender struct {
	client *messaging.Client
}

func NewFCMSender(client *messaging.Client) *FCMSender {
	return &FCMSender{client: client}
}

func (s *FCMSender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	_, err := s.client.Send(ctx, msg)
	return err
}

// SendResult is the per-token outcome of one dispatch
type SendResult struct {
	Token   string `json:"token"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// DispatchSummary aggregates a notification batch
type DispatchSummary struct {
	TotalTokens  int          `json:"total_tokens"`
	SuccessCount int          `json:"success_count"`
	FailCount    int          `json:"fail_count"`
	Results      []SendResult `json:"results"`
}

type NotificationService struct {
	db     *gorm.DB
	sender PushSender
}

func NewNotificationService(db *gorm.DB, sender PushSender) *NotificationService {
	return &NotificationService{db: db, sender: sender}
}

// Dispatch fans a notification out to the user's registered devices. Explicit
// targetTokens override the device-token lookup. Delivery failures are
// isolated per token and only tallied; one log row summarizes the batch.
func (s *NotificationService) Dispatch(ctx context.Context, userID, title, body string, data map[string]string, targetTokens []string) (*DispatchSummary, error) {
	tokens := targetTokens
	if len(tokens) == 0 {
		var deviceTokens []models.DeviceToken
		if err := s.db.Where("user_id = ?", userID).Find(&deviceTokens).Error; err != nil {
			return nil, err
		}
		for _, dt := range deviceTokens {
			tokens = append(tokens, dt.Token)
		}
	}

	if len(tokens) == 0 {
		log.Printf("No device tokens found for user %s", userID)
		return &DispatchSummary{TotalTokens: 0, Results: []SendResult{}}, nil
	}

	if s.sender == nil {
		return nil, ErrSenderNotConfigured
	}

	results := make([]SendResult, len(tokens))
	var wg sync.WaitGroup
	for i, token := range tokens {
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			if err := s.sender.Send(ctx, token, title, body, data); err != nil {
				log.Printf("Failed to send notification to token %s: %v", token, err)
				results[i] = SendResult{Token: token, Success: false, Error: err.Error()}
				return
			}
			results[i] = SendResult{Token: token, Success: true}
		}(i, token)
	}
	wg.Wait()

	summary := &DispatchSummary{TotalTokens: len(tokens), Results: results}
	for _, r := range results {
		if r.Success {
			summary.SuccessCount++
		} else {
			summary.FailCount++
		}
	}

	s.logBatch(userID, title, body, data, tokens, summary)
	return summary, nil
}

// logBatch persists the batch summary. Best effort.
func (s *NotificationService) logBatch(userID, title, body string, data map[string]string, tokens []string, summary *DispatchSummary) {
	dataBytes, _ := json.Marshal(data)
	tokenBytes, _ := json.Marshal(tokens)

	entry := models.PushNotificationLog{
		UserID:       userID,
		Title:        title,
		Body:         body,
		Data:         dataBytes,
		SentAt:       time.Now(),
		SuccessCount: summary.SuccessCount,
		FailCount:    summary.FailCount,
		DeviceTokens: tokenBytes,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Error logging notification batch for user %s: %v", userID, err)
	}
}
