package handler

import (
	"net/http"
	"strings"

	"github.com/fekuna/inventory-assistant-service/internal/assistant"
	"github.com/fekuna/inventory-assistant-service/internal/assistant/dto"
	"github.com/fekuna/inventory-assistant-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AssistantHandler struct {
	uc     assistant.UseCase
	logger logger.ZapLogger
}

func NewAssistantHandler(uc assistant.UseCase, log logger.ZapLogger) *AssistantHandler {
	return &AssistantHandler{
		uc:     uc,
		logger: log,
	}
}

// Chat handles POST /chat. An empty or whitespace-only message is a caller
// error rejected here; past this boundary the engine always answers.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequestWithValidation(c, err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		Error(c, http.StatusBadRequest, "Message cannot be empty")
		return
	}

	result, err := h.uc.Analyze(c.Request.Context(), req.ToInput())
	if err != nil {
		h.logger.Error("analyze failed", zap.Error(err))
		Error(c, http.StatusInternalServerError, "AI processing error")
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{
		Answer:    result.Answer,
		Data:      result.Data,
		RequestID: uuid.New().String(),
	})
}
