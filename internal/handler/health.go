package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/memorybox/backend/internal/model"
)

// Health answers keep-alive pings from cron jobs.
func Health(started time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		c.JSON(http.StatusOK, model.HealthResponse{
			Status:    "ok",
			Message:   "Server is running",
			Uptime:    fmt.Sprintf("%d seconds", int64(now.Sub(started).Seconds())),
			Timestamp: now.UTC().Format(time.RFC3339),
		})
	}
}
