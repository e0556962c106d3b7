package handlers

import (
	"net/http"

	"freelanceai/models"
	"freelanceai/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the conversational assistant.
type AssistantHandler struct {
	Svc assistant.Service
}

func NewAssistantHandler(svc assistant.Service) *AssistantHandler {
	return &AssistantHandler{Svc: svc}
}

// Chat handles POST /api/assistant/chat.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required", "message": err.Error()})
		return
	}
	req.UserID = c.GetString("userID")

	res, err := h.Svc.Chat(c.Request.Context(), req)
	if err != nil {
		getLogger(c).Error("assistant chat failed", zap.String("userId", req.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "assistant is unavailable, please try again"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// Reset handles DELETE /api/assistant/context.
func (h *AssistantHandler) Reset(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Svc.Reset(c.Request.Context(), userID); err != nil {
		getLogger(c).Error("assistant context reset failed", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conversation reset"})
}
