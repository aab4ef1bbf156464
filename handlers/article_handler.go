package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-cms/helper"
	"portfolio-cms/middleware"
	"portfolio-cms/models"
	"portfolio-cms/services"
)

type ArticleHandler struct {
	articleService services.ArticleService
	docsService    services.DocsService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, docsService services.DocsService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, docsService: docsService, Helper: h}
}

func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.articleService.List(c.Request.Context())
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to load articles", err)
		return
	}
	h.Helper.SendSuccess(c, "", articles)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}
	article, err := h.articleService.Get(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to load article", err)
		return
	}
	h.Helper.SendSuccess(c, "", article)
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.ArticleRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), req, middleware.UserID(c))
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to create article", err)
		return
	}
	h.Helper.SendCreated(c, "Article created", article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}
	var req models.ArticleRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to update article", err)
		return
	}
	h.Helper.SendSuccess(c, "Article updated", article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}
	if err := h.articleService.Delete(c.Request.Context(), id); err != nil {
		h.Helper.SendServiceError(c, "Failed to delete article", err)
		return
	}
	h.Helper.SendSuccess(c, "Article deleted", h.Helper.EmptyJsonMap())
}

// EditorData always answers 200; sources that failed are listed in "failed".
func (h *ArticleHandler) EditorData(c *gin.Context) {
	h.Helper.SendSuccess(c, "", h.articleService.EditorData(c.Request.Context()))
}

func (h *ArticleHandler) GetPublicCategories(c *gin.Context) {
	categories, err := h.docsService.Categories(c.Request.Context())
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to load categories", err)
		return
	}
	h.Helper.SendSuccess(c, "", categories)
}

func (h *ArticleHandler) GetPublicArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query: "+err.Error())
		return
	}

	var categoryID *uuid.UUID
	if params.CategoryID != "" {
		id, err := uuid.Parse(params.CategoryID)
		if err != nil {
			h.Helper.SendBadRequest(c, "Invalid category")
			return
		}
		categoryID = &id
	}

	articles, err := h.docsService.List(c.Request.Context(), categoryID)
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to load articles", err)
		return
	}
	h.Helper.SendSuccess(c, "", articles)
}

func (h *ArticleHandler) GetPublicArticle(c *gin.Context) {
	article, err := h.docsService.Read(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to load article", err)
		return
	}
	h.Helper.SendSuccess(c, "", article)
}
