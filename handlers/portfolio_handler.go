package handlers

import (
	"github.com/gin-gonic/gin"

	"portfolio-cms/helper"
	"portfolio-cms/services"
)

type PortfolioHandler struct {
	portfolioService services.PortfolioService
	Helper           *helper.HTTPHelper
}

func NewPortfolioHandler(portfolioService services.PortfolioService, h *helper.HTTPHelper) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, Helper: h}
}

func (h *PortfolioHandler) Overview(c *gin.Context) {
	h.Helper.SendSuccess(c, "", h.portfolioService.Overview(c.Request.Context()))
}

func (h *PortfolioHandler) Skills(c *gin.Context) {
	groups, err := h.portfolioService.SkillGroups(c.Request.Context())
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to load skills", err)
		return
	}
	h.Helper.SendSuccess(c, "", groups)
}

func (h *PortfolioHandler) Projects(c *gin.Context) {
	projects, err := h.portfolioService.Projects(c.Request.Context())
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to load projects", err)
		return
	}
	h.Helper.SendSuccess(c, "", projects)
}

func (h *PortfolioHandler) Education(c *gin.Context) {
	entries, err := h.portfolioService.Education(c.Request.Context())
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to load education", err)
		return
	}
	h.Helper.SendSuccess(c, "", entries)
}

func (h *PortfolioHandler) Contacts(c *gin.Context) {
	links, err := h.portfolioService.Contacts(c.Request.Context())
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to load contacts", err)
		return
	}
	h.Helper.SendSuccess(c, "", links)
}
