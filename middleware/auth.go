package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-cms/helper"
	"portfolio-cms/models"
	"portfolio-cms/services"
)

const (
	ContextUserID   = "user_id"
	ContextDecision = "access_decision"
)

// RequireAdmin runs the access guard before any admin handler. Denied callers
// get 401 (no session) or 403 (no admin role) with the guard's redirect and
// notice, and the chain is aborted.
func RequireAdmin(guard services.AccessGuard, h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := guard.Check(c.Request.Context(), helper.BearerToken(c))
		c.Set(ContextDecision, decision)

		if !decision.Granted() {
			status := http.StatusForbidden
			message := decision.Notice
			if decision.Redirect == models.LoginRoute {
				status = http.StatusUnauthorized
				message = "Authentication required"
			}
			h.SendError(c, status, message, decision)
			c.Abort()
			return
		}

		c.Set(ContextUserID, *decision.UserID)
		c.Next()
	}
}

// UserID returns the admin user id set by RequireAdmin.
func UserID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
