package repository

import (
	"context"
	"sync"

	"github.com/finwise-ai/finchat/internal/domain"
)

// MemoryChatLog is an in-process chat log store used when no key-value
// store address is configured, and by tests. Same contract as the Redis
// store.
type MemoryChatLog struct {
	mu      sync.RWMutex
	records map[string]domain.ChatLogRecord
}

// NewMemoryChatLog creates an in-memory chat log store
func NewMemoryChatLog() *MemoryChatLog {
	return &MemoryChatLog{records: make(map[string]domain.ChatLogRecord)}
}

// Record stores a new chat log record
func (s *MemoryChatLog) Record(_ context.Context, record *domain.ChatLogRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.MessageID] = *record
	return nil
}

// Get retrieves a record by message id
func (s *MemoryChatLog) Get(_ context.Context, messageID string) (*domain.ChatLogRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[messageID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// ApplyFeedback updates the feedback fields of an existing record
func (s *MemoryChatLog) ApplyFeedback(_ context.Context, messageID string, action domain.FeedbackAction, reportMessage string) (*domain.ChatLogRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[messageID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := record.ApplyFeedback(action, reportMessage); err != nil {
		return nil, err
	}
	s.records[messageID] = record
	return &record, nil
}
