package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/memorybox/backend/internal/model"
	"github.com/memorybox/backend/internal/service"
)

func abortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, model.ErrorResponse{Message: message})
}

// writeError maps service errors onto status codes. Every auth failure is a
// 401; the message only differs for humans reading it.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		msg := strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")
		abortWithMessage(c, http.StatusBadRequest, msg)
	case errors.Is(err, service.ErrInvalidCredentials):
		abortWithMessage(c, http.StatusUnauthorized, "invalid username or password")
	case errors.Is(err, service.ErrMissingToken):
		abortWithMessage(c, http.StatusUnauthorized, "authorization token not found")
	case errors.Is(err, service.ErrInvalidToken):
		abortWithMessage(c, http.StatusUnauthorized, "invalid token")
	case errors.Is(err, service.ErrTokenMismatch):
		abortWithMessage(c, http.StatusUnauthorized, "refresh token has been superseded or revoked")
	case errors.Is(err, service.ErrUploadDisabled):
		abortWithMessage(c, http.StatusForbidden, "photo uploads are currently closed")
	case errors.Is(err, service.ErrNotFound):
		abortWithMessage(c, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrConflict):
		abortWithMessage(c, http.StatusConflict, "already exists")
	case errors.Is(err, service.ErrStorageUnavailable):
		abortWithMessage(c, http.StatusServiceUnavailable, "photo storage is not configured")
	default:
		_ = c.Error(err)
		abortWithMessage(c, http.StatusInternalServerError, "server error")
	}
}
