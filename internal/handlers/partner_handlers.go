package handlers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"campcare/internal/models"
)

// PartnerHandler serves the business partnership and proposal forms
type PartnerHandler struct {
	db *gorm.DB
}

func NewPartnerHandler(db *gorm.DB) *PartnerHandler {
	return &PartnerHandler{db: db}
}

// ListBusinessRequests returns partnership requests, newest first
func (h *PartnerHandler) ListBusinessRequests(c echo.Context) error {
	var requests []models.BusinessRequest
	err := h.db.Order("created_at desc").Find(&requests).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch business requests"})
	}

	return c.JSON(http.StatusOK, requests)
}

// CreateBusinessRequest stores a partnership request from the public form
func (h *PartnerHandler) CreateBusinessRequest(c echo.Context) error {
	var req CreateBusinessRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON payload"})
	}

	if req.BusinessName == "" || req.CampType == "" || req.ContactEmail == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required fields: business_name, camp_type and contact_email"})
	}

	request := models.BusinessRequest{
		BusinessName:  req.BusinessName,
		CampType:      req.CampType,
		PreferredDate: req.PreferredDate,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		Address:       req.Address,
		Notes:         req.Notes,
		Status:        models.BusinessRequestStatusPending,
	}
	if err := h.db.Create(&request).Error; err != nil {
		log.Printf("Error creating business request: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create business request"})
	}

	return c.JSON(http.StatusCreated, request)
}

// UpdateBusinessRequestStatus is the admin moderation action on a request
func (h *PartnerHandler) UpdateBusinessRequestStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON payload"})
	}

	status := models.BusinessRequestStatus(req.Status)
	switch status {
	case models.BusinessRequestStatusPending, models.BusinessRequestStatusUnderReview,
		models.BusinessRequestStatusApproved, models.BusinessRequestStatusRejected:
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid status"})
	}

	var request models.BusinessRequest
	if err := h.db.First(&request, c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Business request not found"})
	}

	request.Status = status
	if err := h.db.Save(&request).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update business request"})
	}

	return c.JSON(http.StatusOK, request)
}

// ListProposals returns submitted proposals, optionally filtered by request
func (h *PartnerHandler) ListProposals(c echo.Context) error {
	query := h.db.Order("created_at desc")
	if reqID := c.QueryParam("business_request_id"); reqID != "" {
		query = query.Where("business_request_id = ?", reqID)
	}

	var proposals []models.Proposal
	if err := query.Find(&proposals).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch proposals"})
	}

	return c.JSON(http.StatusOK, proposals)
}

// CreateProposal stores an organizer's proposal for a business request
func (h *PartnerHandler) CreateProposal(c echo.Context) error {
	var req CreateProposalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON payload"})
	}

	if req.BusinessRequestID == 0 || req.ProposerName == "" || req.Details == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required fields: business_request_id, proposer_name and details"})
	}

	var request models.BusinessRequest
	if err := h.db.First(&request, req.BusinessRequestID).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Business request not found"})
	}

	proposal := models.Proposal{
		BusinessRequestID: req.BusinessRequestID,
		ProposerName:      req.ProposerName,
		Details:           req.Details,
	}
	if err := h.db.Create(&proposal).Error; err != nil {
		log.Printf("Error creating proposal: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create proposal"})
	}

	return c.JSON(http.StatusCreated, proposal)
}
