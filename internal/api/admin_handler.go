package api

import (
	"io"
	"net/http"

	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// maxTranslationBody bounds a bulk translation upload.
const maxTranslationBody = 1 << 20

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type MarketItemRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	Price       float64             `json:"price" binding:"required,gt=0"`
	Image       string              `json:"image" binding:"omitempty,url"`
	Category    domain.ItemCategory `json:"category" binding:"required,oneof=meal drink"`
}

func (r MarketItemRequest) toDomain(id string) domain.MarketItem {
	return domain.MarketItem{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Category:    r.Category,
	}
}

type BannerRequest struct {
	URL string `json:"url" binding:"required,url"`
}

func (h *AdminHandler) Users(c *gin.Context) {
	c.JSON(http.StatusOK, h.adminService.Users(c.Request.Context()))
}

func (h *AdminHandler) Coaches(c *gin.Context) {
	c.JSON(http.StatusOK, h.adminService.Coaches(c.Request.Context()))
}

func (h *AdminHandler) CreateItem(c *gin.Context) {
	var req MarketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	item, err := h.adminService.CreateItem(c.Request.Context(), req.toDomain(""))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *AdminHandler) UpdateItem(c *gin.Context) {
	var req MarketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	item, err := h.adminService.UpdateItem(c.Request.Context(), req.toDomain(c.Param("itemId")))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *AdminHandler) DeleteItem(c *gin.Context) {
	if err := h.adminService.DeleteItem(c.Request.Context(), c.Param("itemId")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) CreateBanner(c *gin.Context) {
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	banner, err := h.adminService.CreateBanner(c.Request.Context(), req.URL)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, banner)
}

func (h *AdminHandler) UpdateBanner(c *gin.Context) {
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	banner, err := h.adminService.UpdateBanner(c.Request.Context(), c.Param("bannerId"), req.URL)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, banner)
}

func (h *AdminHandler) DeleteBanner(c *gin.Context) {
	if err := h.adminService.DeleteBanner(c.Request.Context(), c.Param("bannerId")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) Translations(c *gin.Context) {
	table, err := h.adminService.Translations(c.Request.Context(), domain.Language(c.Param("lang")))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// ReplaceTranslations godoc
// @Summary Replace a language's string table
// @Description The raw body is a flat JSON or YAML object of strings. The
// @Description table is replaced only if the whole body parses.
// @Tags Admin
// @Security BearerAuth
// @Accept plain
// @Param lang path string true "en or ar"
// @Success 200 {object} map[string]string
// @Failure 400 {object} gin.H "Malformed content; nothing was changed"
// @Router /admin/translations/{lang} [put]
func (h *AdminHandler) ReplaceTranslations(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxTranslationBody))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Could not read request body")
		return
	}
	table, err := h.adminService.ReplaceTranslations(c.Request.Context(), domain.Language(c.Param("lang")), string(body))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}
