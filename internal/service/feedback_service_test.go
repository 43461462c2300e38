package service

import (
	"context"
	"errors"
	"testing"

	"github.com/finwise-ai/finchat/internal/domain"
	"github.com/finwise-ai/finchat/internal/repository"
)

func TestApply_InvalidAction(t *testing.T) {
	s := NewFeedbackService(repository.NewMemoryChatLog())

	_, err := s.Apply(context.Background(), &domain.FeedbackRequest{
		MessageID: "m1",
		Action:    "upvote",
	})
	if !errors.Is(err, domain.ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}

func TestApply_UnknownMessage(t *testing.T) {
	s := NewFeedbackService(repository.NewMemoryChatLog())

	_, err := s.Apply(context.Background(), &domain.FeedbackRequest{
		MessageID: "never-logged",
		Action:    "like",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApply_Like(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryChatLog()
	if err := store.Record(ctx, &domain.ChatLogRecord{MessageID: "m1"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	s := NewFeedbackService(store)

	rec, err := s.Apply(ctx, &domain.FeedbackRequest{MessageID: "m1", Action: "like"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.Feedback.Like {
		t.Error("like was not applied")
	}
}
