package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"campcare/internal/models"
)

// fakeSender fails delivery for tokens in failTokens, succeeds otherwise
type fakeSender struct {
	failTokens map[string]bool
	sent       []string
}

func (f *fakeSender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	f.sent = append(f.sent, token)
	if f.failTokens[token] {
		return fmt.Errorf("unregistered token")
	}
	return nil
}

func TestDispatchNoTokens(t *testing.T) {
	db := testDB(t)
	sender := &fakeSender{}
	svc := NewNotificationService(db, sender)

	summary, err := svc.Dispatch(context.Background(), "user-1", "Title", "Body", nil, nil)
	if err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}
	if summary.TotalTokens != 0 {
		t.Errorf("expected total_tokens 0, got %d", summary.TotalTokens)
	}
	if len(sender.sent) != 0 {
		t.Errorf("nothing should be sent without tokens, sent %v", sender.sent)
	}

	// No batch log row for an empty dispatch
	var count int64
	db.Model(&models.PushNotificationLog{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no log rows, found %d", count)
	}
}

func TestDispatchIsolatesFailures(t *testing.T) {
	db := testDB(t)
	for i := 0; i < 3; i++ {
		db.Create(&models.DeviceToken{UserID: "user-1", Token: fmt.Sprintf("tok-%d", i), Platform: "android"})
	}

	sender := &fakeSender{failTokens: map[string]bool{"tok-1": true}}
	svc := NewNotificationService(db, sender)

	summary, err := svc.Dispatch(context.Background(), "user-1", "Camp approved", "Your camp is live", map[string]string{"camp_id": "c1"}, nil)
	if err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}

	if summary.TotalTokens != 3 {
		t.Errorf("expected 3 tokens, got %d", summary.TotalTokens)
	}
	if summary.SuccessCount != 2 || summary.FailCount != 1 {
		t.Errorf("expected 2 success / 1 fail, got %d / %d", summary.SuccessCount, summary.FailCount)
	}
	if len(summary.Results) != 3 {
		t.Fatalf("expected 3 per-token results, got %d", len(summary.Results))
	}
	for _, r := range summary.Results {
		if r.Token == "tok-1" && r.Success {
			t.Errorf("tok-1 should have failed")
		}
		if r.Token != "tok-1" && !r.Success {
			t.Errorf("token %s should have succeeded: %s", r.Token, r.Error)
		}
	}

	// One batch log row listing all attempted tokens
	var logs []models.PushNotificationLog
	db.Find(&logs)
	if len(logs) != 1 {
		t.Fatalf("expected one log row, got %d", len(logs))
	}
	entry := logs[0]
	if entry.SuccessCount != 2 || entry.FailCount != 1 {
		t.Errorf("log counts wrong: %d / %d", entry.SuccessCount, entry.FailCount)
	}
	var loggedTokens []string
	if err := json.Unmarshal(entry.DeviceTokens, &loggedTokens); err != nil {
		t.Fatalf("failed to decode logged tokens: %v", err)
	}
	if len(loggedTokens) != 3 {
		t.Errorf("expected all 3 tokens logged, got %v", loggedTokens)
	}
}

func TestDispatchExplicitTargetTokens(t *testing.T) {
	db := testDB(t)
	db.Create(&models.DeviceToken{UserID: "user-1", Token: "registered", Platform: "ios"})

	sender := &fakeSender{}
	svc := NewNotificationService(db, sender)

	summary, err := svc.Dispatch(context.Background(), "user-1", "T", "B", nil, []string{"override-1", "override-2"})
	if err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}
	if summary.TotalTokens != 2 {
		t.Errorf("expected explicit tokens to override lookup, got %d tokens", summary.TotalTokens)
	}
	for _, sent := range sender.sent {
		if sent == "registered" {
			t.Errorf("registered token should not be used when target tokens are explicit")
		}
	}
}
