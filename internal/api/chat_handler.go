package api

import (
	"net/http"

	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type OpenConversationRequest struct {
	CoachID string `json:"coachId" binding:"required"`
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type OfferQuoteRequest struct {
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Service string  `json:"service" binding:"required"`
}

type ResolveQuoteRequest struct {
	Status domain.QuoteStatus `json:"status" binding:"required,oneof=accepted declined"`
}

// Partners lists who the session user can chat with.
func (h *ChatHandler) Partners(c *gin.Context) {
	partners, err := h.chatService.Partners(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, partners)
}

func (h *ChatHandler) Conversations(c *gin.Context) {
	convs, err := h.chatService.Conversations(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, convs)
}

// Open godoc
// @Summary Open (or resume) a conversation with a coach
// @Tags Chat
// @Security BearerAuth
// @Param request body OpenConversationRequest true "Coach to talk to"
// @Success 200 {object} domain.Conversation
// @Failure 403 {object} gin.H "Guests must log in first"
// @Failure 404 {object} gin.H "Coach not found"
// @Router /chat/conversations [post]
func (h *ChatHandler) Open(c *gin.Context) {
	var req OpenConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	conv, err := h.chatService.Open(c.Request.Context(), req.CoachID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (h *ChatHandler) Conversation(c *gin.Context) {
	conv, err := h.chatService.Conversation(c.Request.Context(), c.Param("conversationId"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (h *ChatHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	msg, err := h.chatService.Send(c.Request.Context(), c.Param("conversationId"), req.Text)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *ChatHandler) OfferQuote(c *gin.Context) {
	var req OfferQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	msg, err := h.chatService.OfferQuote(c.Request.Context(), c.Param("conversationId"), req.Amount, req.Service)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ResolveQuote godoc
// @Summary Accept or decline a pending quote
// @Tags Chat
// @Security BearerAuth
// @Param request body ResolveQuoteRequest true "accepted or declined"
// @Success 200 {object} domain.Conversation
// @Failure 409 {object} gin.H "Quote already resolved"
// @Router /chat/conversations/{conversationId}/quotes/{messageId}/resolve [post]
func (h *ChatHandler) ResolveQuote(c *gin.Context) {
	var req ResolveQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	convID := c.Param("conversationId")
	if err := h.chatService.ResolveQuote(c.Request.Context(), convID, c.Param("messageId"), req.Status); err != nil {
		abortWithServiceError(c, err)
		return
	}
	conv, err := h.chatService.Conversation(c.Request.Context(), convID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}
