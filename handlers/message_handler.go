package handlers

import (
	"github.com/gin-gonic/gin"

	"portfolio-cms/helper"
	"portfolio-cms/models"
	"portfolio-cms/services"
)

type MessageHandler struct {
	messageService services.MessageService
	Helper         *helper.HTTPHelper
}

func NewMessageHandler(messageService services.MessageService, h *helper.HTTPHelper) *MessageHandler {
	return &MessageHandler{messageService: messageService, Helper: h}
}

func (h *MessageHandler) Submit(c *gin.Context) {
	var req models.MessageRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}
	if _, err := h.messageService.Submit(c.Request.Context(), req); err != nil {
		h.Helper.SendServiceError(c, "Failed to send message", err)
		return
	}
	h.Helper.SendCreated(c, "Message sent", h.Helper.EmptyJsonMap())
}

func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messageService.List(c.Request.Context())
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to load messages", err)
		return
	}
	h.Helper.SendSuccess(c, "", messages)
}

func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := h.Helper.ParamUUID(c, "id")
	if !ok {
		return
	}
	if err := h.messageService.Delete(c.Request.Context(), id); err != nil {
		h.Helper.SendServiceError(c, "Failed to delete message", err)
		return
	}
	h.Helper.SendSuccess(c, "Message deleted", h.Helper.EmptyJsonMap())
}
