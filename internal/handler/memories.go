package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memorybox/backend/internal/model"
	"github.com/memorybox/backend/internal/service"
)

type MemoryHandler struct {
	svc *service.MemoryService
}

func NewMemoryHandler(svc *service.MemoryService) *MemoryHandler {
	return &MemoryHandler{svc: svc}
}

// ListMemories godoc
// @Summary List memories
// @Tags memories
// @Produce json
// @Param sort query string false "newest (default) or oldest"
// @Success 200 {array} model.Memory
// @Router /api/memories [get]
func (h *MemoryHandler) ListMemories(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), c.Query("sort"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateMemory godoc
// @Summary Share a memory
// @Tags memories
// @Accept json
// @Produce json
// @Param request body model.MemoryCreateRequest true "Guest name and message"
// @Success 201 {object} model.MemoryCreateResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/memories [post]
func (h *MemoryHandler) CreateMemory(c *gin.Context) {
	var req model.MemoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "name and memory are required")
		return
	}

	memory, err := h.svc.Create(c.Request.Context(), req.GuestName, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.MemoryCreateResponse{Message: "Your memory has been shared!", Memory: *memory})
}

// DeleteMemory godoc
// @Summary Delete a memory
// @Tags memories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Memory ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/memories/{id} [delete]
func (h *MemoryHandler) DeleteMemory(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "memory deleted"})
}

// BulkDelete godoc
// @Summary Delete several memories
// @Tags memories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.MemoryBulkDeleteRequest true "Memory IDs"
// @Success 200 {object} model.BulkDeleteResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/memories/bulk-delete [post]
func (h *MemoryHandler) BulkDelete(c *gin.Context) {
	var req model.MemoryBulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "memory ids are required")
		return
	}

	n, err := h.svc.BulkDelete(c.Request.Context(), req.MemoryIDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.BulkDeleteResponse{
		Message:      fmt.Sprintf("%d memory(s) deleted", n),
		DeletedCount: n,
	})
}

// Stats godoc
// @Summary Memory statistics
// @Tags memories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MemoryStats
// @Router /api/memories/stats/overview [get]
func (h *MemoryHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
