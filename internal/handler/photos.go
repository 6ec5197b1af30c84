package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memorybox/backend/internal/model"
	"github.com/memorybox/backend/internal/service"
)

type PhotoHandler struct {
	svc *service.PhotoService
}

func NewPhotoHandler(svc *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{svc: svc}
}

// ListPhotos godoc
// @Summary List photos
// @Tags photos
// @Produce json
// @Param sort query string false "newest (default) or oldest"
// @Param uploader query string false "Case-insensitive uploader name filter"
// @Success 200 {array} model.Photo
// @Failure 500 {object} model.ErrorResponse
// @Router /api/photos [get]
func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	photos, err := h.svc.List(c.Request.Context(), c.Query("sort"), c.Query("uploader"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

// UploadURL godoc
// @Summary Get a presigned upload URL
// @Description Guests PUT the image bytes to uploadUrl, then submit url/public_id to /api/photos/upload.
// @Tags photos
// @Accept json
// @Produce json
// @Param request body model.UploadURLRequest true "Original file name"
// @Success 200 {object} model.UploadURLResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /api/photos/upload-url [post]
func (h *PhotoHandler) UploadURL(c *gin.Context) {
	var req model.UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "invalid request")
		return
	}

	up, err := h.svc.UploadURL(c.Request.Context(), req.Filename)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.UploadURLResponse{
		UploadURL: up.UploadURL,
		PublicID:  up.Key,
		URL:       up.PublicURL,
		ExpiresAt: up.ExpiresAt,
	})
}

// Upload godoc
// @Summary Record uploaded photos
// @Tags photos
// @Accept json
// @Produce json
// @Param request body model.PhotoUploadRequest true "Uploader name and photos"
// @Success 201 {object} model.PhotoUploadResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/photos/upload [post]
func (h *PhotoHandler) Upload(c *gin.Context) {
	var req model.PhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "invalid request")
		return
	}

	saved, err := h.svc.Upload(c.Request.Context(), req.UploaderName, req.Photos)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.PhotoUploadResponse{
		Message: fmt.Sprintf("Thank you %s! %d photo(s) uploaded", saved[0].UploaderName, len(saved)),
		Photos:  saved,
	})
}

// DeletePhoto godoc
// @Summary Delete a photo
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Photo ID"
// @Success 200 {object} model.MessageResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/photos/{id} [delete]
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "photo deleted"})
}

// BulkDelete godoc
// @Summary Delete several photos
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PhotoBulkDeleteRequest true "Photo IDs"
// @Success 200 {object} model.BulkDeleteResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/photos/bulk-delete [post]
func (h *PhotoHandler) BulkDelete(c *gin.Context) {
	var req model.PhotoBulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "photo ids are required")
		return
	}

	n, err := h.svc.BulkDelete(c.Request.Context(), req.PhotoIDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.BulkDeleteResponse{
		Message:      fmt.Sprintf("%d photo(s) deleted", n),
		DeletedCount: n,
	})
}

// Stats godoc
// @Summary Photo statistics
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PhotoStats
// @Failure 401 {object} model.ErrorResponse
// @Router /api/photos/stats/overview [get]
func (h *PhotoHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
