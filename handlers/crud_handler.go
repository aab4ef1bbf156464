package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-cms/helper"
)

// crudService is the shape shared by the admin-managed collections.
type crudService[Req any, Row any] interface {
	List(ctx context.Context) ([]Row, error)
	Get(ctx context.Context, id uuid.UUID) (*Row, error)
	Create(ctx context.Context, req Req) (*Row, error)
	Update(ctx context.Context, id uuid.UUID, req Req) (*Row, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CRUDHandler exposes a crudService as list/get/create/update/delete routes.
// entity names the collection in messages ("skill", "project").
type CRUDHandler[Req any, Row any] struct {
	service crudService[Req, Row]
	entity  string
	Helper  *helper.HTTPHelper
}

func NewCRUDHandler[Req any, Row any](service crudService[Req, Row], entity string, h *helper.HTTPHelper) *CRUDHandler[Req, Row] {
	return &CRUDHandler[Req, Row]{service: service, entity: entity, Helper: h}
}

// Register mounts the five routes on group.
func (h *CRUDHandler[Req, Row]) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *CRUDHandler[Req, Row]) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to load "+h.entity+" list", err)
		return
	}
	h.Helper.SendSuccess(c, "", rows)
}

func (h *CRUDHandler[Req, Row]) Get(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}
	row, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to load "+h.entity, err)
		return
	}
	h.Helper.SendSuccess(c, "", row)
}

func (h *CRUDHandler[Req, Row]) Create(c *gin.Context) {
	var req Req
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}
	row, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to create "+h.entity, err)
		return
	}
	h.Helper.SendCreated(c, h.entity+" created", row)
}

func (h *CRUDHandler[Req, Row]) Update(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}
	var req Req
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}
	row, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to update "+h.entity, err)
		return
	}
	h.Helper.SendSuccess(c, h.entity+" updated", row)
}

func (h *CRUDHandler[Req, Row]) Delete(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.Helper.SendServiceError(c, "Failed to delete "+h.entity, err)
		return
	}
	h.Helper.SendSuccess(c, h.entity+" deleted", h.Helper.EmptyJsonMap())
}
