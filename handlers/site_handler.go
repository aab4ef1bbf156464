package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-cms/helper"
	"portfolio-cms/services"
)

// HealthCheck reports whether the backing store is reachable.
type HealthCheck func(ctx context.Context) error

type SiteHandler struct {
	sitemapService services.SitemapService
	baseURL        string
	healthCheck    HealthCheck
	Helper         *helper.HTTPHelper
}

func NewSiteHandler(sitemapService services.SitemapService, baseURL string, healthCheck HealthCheck, h *helper.HTTPHelper) *SiteHandler {
	return &SiteHandler{sitemapService: sitemapService, baseURL: baseURL, healthCheck: healthCheck, Helper: h}
}

// Sitemap rebuilds the document on every request.
func (h *SiteHandler) Sitemap(c *gin.Context) {
	doc, err := h.sitemapService.Build(c.Request.Context(), h.baseURL, time.Now())
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to build sitemap", err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", doc)
}

func (h *SiteHandler) Health(c *gin.Context) {
	if h.healthCheck != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.healthCheck(ctx); err != nil {
			h.Helper.SendError(c, http.StatusServiceUnavailable, "database unavailable", gin.H{"status": "unhealthy"})
			return
		}
	}
	h.Helper.SendSuccess(c, "", gin.H{"status": "healthy"})
}

func (h *SiteHandler) NotFound(c *gin.Context) {
	h.Helper.SendNotFoundError(c, "not found")
}
