package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memorybox/backend/internal/model"
	"github.com/memorybox/backend/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary Admin login
// @Description Returns a 30 minute access token and a 7 day refresh token. A new login invalidates the previous refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Username and password"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		abortWithMessage(c, http.StatusBadRequest, "username and password are required")
		return
	}

	res, err := h.svc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		Admin:        res.Admin,
	})
}

// Refresh godoc
// @Summary Refresh access token
// @Description The refresh token is not rotated; it stays usable until the next login or logout.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RefreshRequest true "Refresh token"
// @Success 200 {object} model.RefreshResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	_ = c.ShouldBindJSON(&req)

	accessToken, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.RefreshResponse{AccessToken: accessToken})
}

// Logout godoc
// @Summary Logout
// @Description Clears the stored refresh token. The access token stays valid until it expires.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MessageResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	admin := GetAuthAdmin(c)
	if admin == nil {
		writeError(c, service.ErrMissingToken)
		return
	}

	if err := h.svc.Invalidate(c.Request.Context(), admin.ID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "logged out"})
}

// Verify godoc
// @Summary Verify access token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.VerifyResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	admin := GetAuthAdmin(c)
	if admin == nil {
		writeError(c, service.ErrMissingToken)
		return
	}

	pub, err := h.svc.GetAdmin(c.Request.Context(), admin.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			abortWithMessage(c, http.StatusUnauthorized, "admin not found")
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.VerifyResponse{Admin: *pub})
}

// ChangePassword godoc
// @Summary Change admin password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" {
		abortWithMessage(c, http.StatusBadRequest, "current and new password are required")
		return
	}

	admin := GetAuthAdmin(c)
	if err := h.svc.ChangePassword(c.Request.Context(), admin.ID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "password updated"})
}

// ChangeUsername godoc
// @Summary Change admin username
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ChangeUsernameRequest true "Password and new username"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /api/auth/username [put]
func (h *AuthHandler) ChangeUsername(c *gin.Context) {
	var req model.ChangeUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" || req.NewUsername == "" {
		abortWithMessage(c, http.StatusBadRequest, "password and new username are required")
		return
	}

	admin := GetAuthAdmin(c)
	if err := h.svc.ChangeUsername(c.Request.Context(), admin.ID, req.Password, req.NewUsername); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "username updated"})
}
