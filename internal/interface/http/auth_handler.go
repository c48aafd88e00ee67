package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/application"
	"github.com/PRASANNAPATIL12/2.31weddingcard/pkg/response"
	"github.com/PRASANNAPATIL12/2.31weddingcard/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			response.Error[any](c, http.StatusConflict, "username already registered", nil)
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Error[any](c, storageStatus(err), "registration failed", nil)
		return
	}
	response.Success(c, http.StatusOK, res, "registered")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusUnauthorized, "incorrect username or password", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error[any](c, storageStatus(err), "login failed", nil)
		return
	}
	response.Success(c, http.StatusOK, res, "logged in")
}

// Profile returns the authenticated user's own account, password excluded.
func (h *AuthHandler) Profile(c *gin.Context) {
	sessionID := c.Query("session_id")
	u, err := h.Svc.CurrentUser(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, application.ErrInvalidSession) {
			response.Error[any](c, http.StatusUnauthorized, "invalid session", nil)
			return
		}
		h.Logger.WithError(err).Error("profile lookup failed")
		response.Error[any](c, storageStatus(err), "profile lookup failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"created_at": u.CreatedAt,
	}, "profile")
}
