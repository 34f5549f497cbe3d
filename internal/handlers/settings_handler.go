package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/services"
)

// SettingsHandler handles per-user settings requests.
type SettingsHandler struct {
	settingsService services.SettingsServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateSettingsRequest represents the settings update payload. Absent fields
// are left unchanged.
type UpdateSettingsRequest struct {
	Theme       *string `json:"theme" binding:"omitempty,theme"`
	Currency    *string `json:"currency" binding:"omitempty,iso4217"`
	EmailAlerts *bool   `json:"email_alerts"`
	Language    *string `json:"language" binding:"omitempty,min=2,max=10"`
}

// GetSettings returns the user's settings
// @Summary     Get settings
// @Tags        settings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Settings "Settings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Settings not found"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settings, err := h.settingsService.GetByUser(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings creates or updates the user's settings
// @Summary     Update settings
// @Description Creates the settings row with defaults on first write, then applies the provided fields
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSettingsRequest true "Settings fields to update"
// @Success     200 {object} models.Settings "Updated settings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.SettingsUpdate{
		Currency:    req.Currency,
		EmailAlerts: req.EmailAlerts,
		Language:    req.Language,
	}
	if req.Theme != nil {
		theme := models.Theme(*req.Theme)
		update.Theme = &theme
	}

	settings, err := h.settingsService.Upsert(userID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// DeleteSettings resets the user's settings
// @Summary     Reset settings
// @Description Deletes the settings row so the next write starts from defaults
// @Tags        settings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Reset confirmation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /settings [delete]
func (h *SettingsHandler) DeleteSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.settingsService.Delete(userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings reset to defaults"})
}
