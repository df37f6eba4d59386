package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"feebank/internal/conversation"
)

func (h *Handler) createConversation(c *gin.Context) {
	conv := h.chats.Create()
	c.JSON(http.StatusCreated, gin.H{
		"id":       conv.ID(),
		"greeting": conversation.Greeting,
	})
}

func (h *Handler) lookupConversation(c *gin.Context) (*conversation.Controller, bool) {
	conv, err := h.chats.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, conversation.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return conv, true
}

func (h *Handler) getConversation(c *gin.Context) {
	conv, ok := h.lookupConversation(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":          conv.ID(),
		"greeting":    conversation.Greeting,
		"messages":    conv.Messages(),
		"pending":     conv.Pending(),
		"created_at":  conv.CreatedAt(),
		"last_active": conv.LastActive(),
	})
}

type messageRequest struct {
	Text string `json:"text"`
}

func (h *Handler) postMessage(c *gin.Context) {
	conv, ok := h.lookupConversation(c)
	if !ok {
		return
	}
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	exchange, err := conv.Submit(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, conversation.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, conversation.ErrReplyPending):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("submit message failed", zap.String("conversation_id", conv.ID()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "submit message failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_message": exchange.UserMessage,
		"reply":        exchange.Reply,
		"source":       exchange.Resolution.Source,
		"degraded":     exchange.Resolution.Degraded(),
	})
}

func (h *Handler) deleteConversation(c *gin.Context) {
	if err := h.chats.Delete(c.Param("id")); err != nil {
		if errors.Is(err, conversation.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
