package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campcare/internal/models"
	"campcare/internal/services"
)

type NotificationHandler struct {
	db            *gorm.DB
	notifications *services.NotificationService
}

func NewNotificationHandler(db *gorm.DB, notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{db: db, notifications: notifications}
}

// SendNotification fans a push notification out to a user's devices
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	var req SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON payload"})
	}

	if req.UserID == "" || req.Title == "" || req.Body == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required fields: user_id, title and body"})
	}

	summary, err := h.notifications.Dispatch(c.Request().Context(), req.UserID, req.Title, req.Body, req.Data, req.TargetTokens)
	if err != nil {
		log.Printf("Error dispatching notification for user %s: %v", req.UserID, err)
		if errors.Is(err, services.ErrSenderNotConfigured) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Push delivery is not configured"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch device tokens"})
	}

	if summary.TotalTokens == 0 {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message":      "No device tokens found for user",
			"total_tokens": 0,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "Push notification processing complete",
		"total_tokens":  summary.TotalTokens,
		"success_count": summary.SuccessCount,
		"fail_count":    summary.FailCount,
		"results":       summary.Results,
	})
}

// RegisterDevice upserts a push token for the authenticated user. The
// (user, token) pair is the conflict key so re-registration never duplicates.
func (h *NotificationHandler) RegisterDevice(c echo.Context) error {
	userID := getStringFromContext(c, "userUID")
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User not authenticated"})
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON payload"})
	}

	if req.Token == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required field: token"})
	}
	if req.Platform == "" {
		req.Platform = "unknown"
	}

	device := models.DeviceToken{
		UserID:   userID,
		Token:    req.Token,
		Platform: req.Platform,
	}
	err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"platform", "updated_at"}),
	}).Create(&device).Error
	if err != nil {
		log.Printf("Error registering device token for user %s: %v", userID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to register device"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Device registered"})
}
