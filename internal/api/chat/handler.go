package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/finwise-ai/finchat/internal/domain"
	"github.com/finwise-ai/finchat/internal/service"
)

// Handler handles the chat and feedback API requests
type Handler struct {
	chatService     *service.ChatService
	feedbackService *service.FeedbackService
	release         bool
	logger          *zap.Logger
}

// NewHandler creates a new chat handler. In release mode error details are
// withheld from responses.
func NewHandler(chatService *service.ChatService, feedbackService *service.FeedbackService, release bool, logger *zap.Logger) *Handler {
	return &Handler{
		chatService:     chatService,
		feedbackService: feedbackService,
		release:         release,
		logger:          logger,
	}
}

// RegisterRoutes registers chat routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chat", h.Chat)
	r.PUT("/feedback", h.Feedback)
}

// Chat handles one conversation turn
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.chatService.Chat(c.Request.Context(), req.Messages)
	if err != nil {
		h.logger.Error("chat turn failed", zap.Error(err))
		out := domain.ErrorResponse{Error: "financial data unavailable"}
		if !h.release {
			out.Details = err.Error()
		}
		c.JSON(http.StatusInternalServerError, out)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Feedback applies a like/dislike/report action to a logged exchange
func (h *Handler) Feedback(c *gin.Context) {
	var req domain.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: err.Error()})
		return
	}

	_, err := h.feedbackService.Apply(c.Request.Context(), &req)
	switch {
	case errors.Is(err, domain.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "Invalid action"})
		return
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, domain.ErrorResponse{Error: "message not found"})
		return
	case err != nil:
		h.logger.Error("feedback update failed",
			zap.String("message_id", req.MessageID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: "failed to record feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "feedback recorded",
		"messageId": req.MessageID,
	})
}
