package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"campcare/internal/models"
	"campcare/internal/services"
)

const campListCacheKey = "camps:all"

type CampHandler struct {
	db    *gorm.DB
	cache *services.RedisCache
}

func NewCampHandler(db *gorm.DB, cache *services.RedisCache) *CampHandler {
	return &CampHandler{db: db, cache: cache}
}

// ListCamps returns the public camp directory, newest first
func (h *CampHandler) ListCamps(c echo.Context) error {
	camps, err := services.GetOrSet(h.cache, c.Request().Context(), campListCacheKey, 5*time.Minute, func() ([]models.Camp, error) {
		var camps []models.Camp
		err := h.db.Order("created_at desc").Find(&camps).Error
		return camps, err
	})
	if err != nil {
		log.Printf("Error fetching camps: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch camps"})
	}

	return c.JSON(http.StatusOK, camps)
}

// GetCamp returns one camp with its sponsorships
func (h *CampHandler) GetCamp(c echo.Context) error {
	var camp models.Camp
	err := h.db.Preload("Sponsorships").First(&camp, "id = ?", c.Param("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Camp not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch camp"})
	}

	return c.JSON(http.StatusOK, camp)
}

// ListSponsorships returns the confirmed sponsorships for a camp
func (h *CampHandler) ListSponsorships(c echo.Context) error {
	var sponsorships []models.Sponsorship
	err := h.db.Where("camp_id = ?", c.Param("id")).Order("created_at desc").Find(&sponsorships).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch sponsorships"})
	}

	return c.JSON(http.StatusOK, sponsorships)
}

// CreateCamp posts a new camp listing; it stays pending until moderated
func (h *CampHandler) CreateCamp(c echo.Context) error {
	userID := getStringFromContext(c, "userUID")
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User not authenticated"})
	}

	var req CreateCampRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON payload"})
	}

	if req.Title == "" || req.Description == "" || req.Date == "" || req.Location == "" || req.DoctorName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required fields: title, description, date, location and doctor_name"})
	}
	if req.SponsorshipGoal <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "sponsorship_goal must be positive"})
	}

	camp := models.Camp{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		DoctorName:      req.DoctorName,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		SponsorshipGoal: req.SponsorshipGoal,
		Status:          models.CampStatusPending,
		CreatedBy:       userID,
	}
	if err := h.db.Create(&camp).Error; err != nil {
		log.Printf("Error creating camp: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create camp"})
	}

	h.invalidateList(c)
	return c.JSON(http.StatusCreated, camp)
}

// UpdateCampStatus is the admin moderation action on a camp listing
func (h *CampHandler) UpdateCampStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON payload"})
	}

	status := models.CampStatus(req.Status)
	switch status {
	case models.CampStatusPending, models.CampStatusApproved, models.CampStatusActive,
		models.CampStatusCompleted, models.CampStatusCancelled:
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid status"})
	}

	var camp models.Camp
	if err := h.db.First(&camp, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Camp not found"})
	}

	camp.Status = status
	if err := h.db.Save(&camp).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update camp"})
	}

	h.invalidateList(c)
	return c.JSON(http.StatusOK, camp)
}

func (h *CampHandler) invalidateList(c echo.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Delete(c.Request().Context(), campListCacheKey); err != nil {
		log.Printf("Error invalidating camp list cache: %v", err)
	}
}
