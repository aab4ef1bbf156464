package handlers

import (
	"github.com/gin-gonic/gin"

	"portfolio-cms/helper"
	"portfolio-cms/middleware"
	"portfolio-cms/models"
	"portfolio-cms/services"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to register", err)
		return
	}

	h.Helper.SendCreated(c, "Register success", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to log in", err)
		return
	}

	h.Helper.SendSuccess(c, "Login success", response)
}

func (h *AuthHandler) Session(c *gin.Context) {
	session, err := h.authService.GetSession(c.Request.Context(), helper.BearerToken(c))
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to load session", err)
		return
	}

	roles, err := h.authService.Roles(c.Request.Context(), session.UserID)
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to load roles", err)
		return
	}

	h.Helper.SendSuccess(c, "", models.SessionResponse{Session: *session, Roles: roles})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), helper.BearerToken(c)); err != nil {
		h.Helper.SendServiceError(c, "Failed to log out", err)
		return
	}
	h.Helper.SendSuccess(c, "Logout success", h.Helper.EmptyJsonMap())
}

// Access reports the guard decision for an admin caller. Denied callers never
// reach it; RequireAdmin answers for them.
func (h *AuthHandler) Access(c *gin.Context) {
	decision, _ := c.Get(middleware.ContextDecision)
	h.Helper.SendSuccess(c, "", decision)
}
