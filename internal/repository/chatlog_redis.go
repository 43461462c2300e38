package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/finwise-ai/finchat/internal/domain"
)

// RedisChatLog persists chat log records as JSON blobs in a key-value
// store, one key per message id. Feedback updates read, mutate and rewrite
// the single record under its key, so records never interfere with each
// other.
type RedisChatLog struct {
	rdb *redis.Client
}

// NewRedisChatLog creates a Redis-backed chat log store
func NewRedisChatLog(rdb *redis.Client) *RedisChatLog {
	return &RedisChatLog{rdb: rdb}
}

// Record stores a new chat log record
func (s *RedisChatLog) Record(ctx context.Context, record *domain.ChatLogRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal chat log record: %w", err)
	}
	if err := s.rdb.Set(ctx, chatLogKey(record.MessageID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save chat log record %s: %w", record.MessageID, err)
	}
	return nil
}

// Get retrieves a record by message id. Returns ErrNotFound when no record
// exists under the id.
func (s *RedisChatLog) Get(ctx context.Context, messageID string) (*domain.ChatLogRecord, error) {
	raw, err := s.rdb.Get(ctx, chatLogKey(messageID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chat log record %s: %w", messageID, err)
	}

	var record domain.ChatLogRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chat log record %s: %w", messageID, err)
	}
	return &record, nil
}

// ApplyFeedback updates the feedback fields of an existing record. Returns
// ErrNotFound, with no write, when the id has no prior record.
func (s *RedisChatLog) ApplyFeedback(ctx context.Context, messageID string, action domain.FeedbackAction, reportMessage string) (*domain.ChatLogRecord, error) {
	record, err := s.Get(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if err := record.ApplyFeedback(action, reportMessage); err != nil {
		return nil, err
	}
	if err := s.Record(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func chatLogKey(messageID string) string {
	return "chatlog:" + messageID
}
