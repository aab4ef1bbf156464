package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-cms/helper"
	"portfolio-cms/services"
)

// multipartOverhead is the slack allowed on top of the file size for the
// multipart envelope.
const multipartOverhead = 64 << 10

type ProfileHandler struct {
	profileService services.ProfileService
	maxUpload      int64
	Helper         *helper.HTTPHelper
}

func NewProfileHandler(profileService services.ProfileService, maxUpload int64, h *helper.HTTPHelper) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, maxUpload: maxUpload, Helper: h}
}

func (h *ProfileHandler) Current(c *gin.Context) {
	picture, err := h.profileService.Current(c.Request.Context())
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to load profile picture", err)
		return
	}
	h.Helper.SendSuccess(c, "", picture)
}

// Upload takes the picture from the "file" multipart field.
func (h *ProfileHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+multipartOverhead)

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.Helper.SendError(c, http.StatusRequestEntityTooLarge, "File too large", nil)
			return
		}
		h.Helper.SendBadRequest(c, "Missing file: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUpload+1))
	if err != nil {
		h.Helper.SendBadRequest(c, "Failed to read file: "+err.Error())
		return
	}

	picture, err := h.profileService.Upload(c.Request.Context(), data)
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to upload profile picture", err)
		return
	}
	h.Helper.SendCreated(c, "Profile picture updated", picture)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	if err := h.profileService.Delete(c.Request.Context()); err != nil {
		h.Helper.SendServiceError(c, "Failed to delete profile picture", err)
		return
	}
	h.Helper.SendSuccess(c, "Profile picture removed", h.Helper.EmptyJsonMap())
}

// Serve streams a stored object for the public storage URL.
func (h *ProfileHandler) Serve(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("name"), "/")
	object, err := h.profileService.Object(c.Request.Context(), c.Param("bucket"), name)
	if err != nil {
		h.Helper.SendServiceError(c, "Failed to load object", err)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Header("Content-Length", strconv.FormatInt(int64(len(object.Data)), 10))
	c.Data(http.StatusOK, object.ContentType, object.Data)
}
