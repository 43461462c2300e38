package service

import (
	"context"

	"github.com/finwise-ai/finchat/internal/dispatch"
	"github.com/finwise-ai/finchat/internal/domain"
)

// ChatService drives the dispatch engine for inbound conversations
type ChatService struct {
	engine *dispatch.Engine
}

// NewChatService creates a new chat service
func NewChatService(engine *dispatch.Engine) *ChatService {
	return &ChatService{engine: engine}
}

// Chat runs one chat turn over the supplied conversation
func (s *ChatService) Chat(ctx context.Context, messages []domain.Message) (*domain.ChatResponse, error) {
	return s.engine.Handle(ctx, messages)
}
