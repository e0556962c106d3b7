package handlers

import (
	"errors"
	"net/http"

	userRepo "freelanceai/database/repository/user"
	"freelanceai/models"
	"freelanceai/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration, login and session management.
type AuthHandler struct {
	Svc user.Service
}

func NewAuthHandler(svc user.Service) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// Register handles POST /api/users/register.
func (h *AuthHandler) Register(c *gin.Context) {
	logger := getLogger(c)

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration request", "message": err.Error()})
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), req)
	if errors.Is(err, userRepo.ErrDuplicateEmail) {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}
	if err != nil {
		logger.Error("registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Login handles POST /api/users/login.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := getLogger(c)

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid login request", "message": err.Error()})
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req)
	if errors.Is(err, user.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if err != nil {
		logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// Profile handles GET /api/users/me.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := c.GetString("userID")

	u, err := h.Svc.GetProfile(c.Request.Context(), userID)
	if errors.Is(err, userRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		getLogger(c).Error("profile lookup failed", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// Logout handles POST /api/users/logout: revokes the current token.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.Svc.Revoke(c.Request.Context(), userID); err != nil {
		getLogger(c).Error("logout failed", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to logout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
