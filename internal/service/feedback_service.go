package service

import (
	"context"

	"github.com/finwise-ai/finchat/internal/domain"
)

// ChatLogStore is the chat-log persistence the feedback service needs
type ChatLogStore interface {
	ApplyFeedback(ctx context.Context, messageID string, action domain.FeedbackAction, reportMessage string) (*domain.ChatLogRecord, error)
}

// FeedbackService applies user reactions to logged exchanges
type FeedbackService struct {
	store ChatLogStore
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(store ChatLogStore) *FeedbackService {
	return &FeedbackService{store: store}
}

// Apply validates and applies a feedback action. ErrInvalidAction for
// unknown actions; ErrNotFound when the message id was never logged (for
// example a direct-answer turn).
func (s *FeedbackService) Apply(ctx context.Context, req *domain.FeedbackRequest) (*domain.ChatLogRecord, error) {
	action := domain.FeedbackAction(req.Action)
	if !action.Valid() {
		return nil, domain.ErrInvalidAction
	}
	return s.store.ApplyFeedback(ctx, req.MessageID, action, req.ReportMessage)
}
