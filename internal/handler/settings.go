package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memorybox/backend/internal/model"
	"github.com/memorybox/backend/internal/service"
)

type SettingsHandler struct {
	svc *service.SettingsService
	qr  *service.QRCodeService
}

func NewSettingsHandler(svc *service.SettingsService, qr *service.QRCodeService) *SettingsHandler {
	return &SettingsHandler{svc: svc, qr: qr}
}

// GetSettings godoc
// @Summary Public event settings
// @Tags settings
// @Produce json
// @Success 200 {object} model.Settings
// @Router /api/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary Update settings
// @Description Only fields present in the body are changed; "date": null clears the event date.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SettingsUpdate true "Partial settings"
// @Success 200 {object} model.SettingsUpdateResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req model.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "invalid settings")
		return
	}

	settings, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.SettingsUpdateResponse{Message: "settings updated", Settings: *settings})
}

// ToggleUpload godoc
// @Summary Toggle photo uploads
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ToggleUploadResponse
// @Router /api/settings/toggle-upload [patch]
func (h *SettingsHandler) ToggleUpload(c *gin.Context) {
	settings, err := h.svc.ToggleUpload(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	msg := "photo uploads closed"
	if settings.UploadEnabled {
		msg = "photo uploads opened"
	}
	c.JSON(http.StatusOK, model.ToggleUploadResponse{Message: msg, UploadEnabled: settings.UploadEnabled})
}

// GenerateQRCode godoc
// @Summary Generate a QR code for the upload page
// @Tags qrcode
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.QRCodeRequest true "Target URL"
// @Success 200 {object} model.QRCodeResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/qrcode/generate [post]
func (h *SettingsHandler) GenerateQRCode(c *gin.Context) {
	var req model.QRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		abortWithMessage(c, http.StatusBadRequest, "url is required")
		return
	}

	res, err := h.qr.Generate(c.Request.Context(), req.URL)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
