package api

import (
	"net/http"
	"strconv"

	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves preferences, the notice queue and media uploads.
type SettingsHandler struct {
	settingsService service.SettingsService
	mediaService    service.MediaService
}

func NewSettingsHandler(settingsService service.SettingsService, mediaService service.MediaService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, mediaService: mediaService}
}

type PreferencesRequest struct {
	Language *domain.Language `json:"language" binding:"omitempty,oneof=en ar"`
	Theme    *domain.Theme    `json:"theme" binding:"omitempty,oneof=light dark"`
}

type UploadRequest struct {
	Purpose     domain.UploadPurpose `json:"purpose" binding:"required,oneof=avatars market banners"`
	ContentType string               `json:"contentType" binding:"required"`
}

func (h *SettingsHandler) Preferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.settingsService.Preferences(c.Request.Context()))
}

func (h *SettingsHandler) UpdatePreferences(c *gin.Context) {
	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	prefs, err := h.settingsService.Update(c.Request.Context(), req.Language, req.Theme)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *SettingsHandler) Translations(c *gin.Context) {
	c.JSON(http.StatusOK, h.settingsService.Translations(c.Request.Context()))
}

func (h *SettingsHandler) TestNotification(c *gin.Context) {
	id := h.settingsService.TestNotification(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Notices lists the queue. Without a session only toasts are returned.
func (h *SettingsHandler) Notices(c *gin.Context) {
	notices := h.settingsService.Notices(c.Request.Context())
	if _, err := getUserIDFromContext(c); err != nil {
		notices.Notifications = []domain.Notification{}
	}
	c.JSON(http.StatusOK, notices)
}

// DismissToast and DismissNotification are idempotent: an expired id is not an error.
func (h *SettingsHandler) DismissToast(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid toast id")
		return
	}
	h.settingsService.DismissToast(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

func (h *SettingsHandler) DismissNotification(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid notification id")
		return
	}
	h.settingsService.DismissNotification(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

// CreateUpload godoc
// @Summary Get a presigned URL to upload an image
// @Tags Media
// @Security BearerAuth
// @Param request body UploadRequest true "What the image is for and its content type"
// @Success 201 {object} domain.UploadTicket
// @Failure 503 {object} gin.H "Uploads not configured"
// @Router /media/uploads [post]
func (h *SettingsHandler) CreateUpload(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	ticket, err := h.mediaService.CreateUploadTicket(c.Request.Context(), req.Purpose, req.ContentType)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

func (h *SettingsHandler) ViewURL(c *gin.Context) {
	url, err := h.mediaService.ViewURL(c.Request.Context(), c.Query("key"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *SettingsHandler) DeleteObject(c *gin.Context) {
	if err := h.mediaService.DeleteObject(c.Request.Context(), c.Query("key")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
