package api

import (
	"net/http"

	"ny11/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
)

type MarketHandler struct {
	marketService service.MarketService
}

func NewMarketHandler(marketService service.MarketService) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

type AddToCartRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

func (h *MarketHandler) Items(c *gin.Context) {
	c.JSON(http.StatusOK, h.marketService.Items(c.Request.Context()))
}

func (h *MarketHandler) Banners(c *gin.Context) {
	c.JSON(http.StatusOK, h.marketService.Banners(c.Request.Context()))
}

func (h *MarketHandler) Cart(c *gin.Context) {
	c.JSON(http.StatusOK, h.marketService.Cart(c.Request.Context()))
}

// AddToCart adds one unit; repeated adds increase the quantity.
func (h *MarketHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	cart, err := h.marketService.AddToCart(c.Request.Context(), req.ItemID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *MarketHandler) RemoveFromCart(c *gin.Context) {
	cart, err := h.marketService.RemoveFromCart(c.Request.Context(), c.Param("itemId"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *MarketHandler) Checkout(c *gin.Context) {
	bought, err := h.marketService.Checkout(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bought)
}
