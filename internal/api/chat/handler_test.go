package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/finwise-ai/finchat/internal/domain"
	"github.com/finwise-ai/finchat/internal/repository"
	"github.com/finwise-ai/finchat/internal/service"
)

func newTestRouter(store *repository.MemoryChatLog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(nil, service.NewFeedbackService(store), true, zap.NewNop())
	group := r.Group("/api")
	group.PUT("/feedback", h.Feedback)
	return r
}

func putFeedback(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/api/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFeedback_InvalidAction(t *testing.T) {
	r := newTestRouter(repository.NewMemoryChatLog())

	w := putFeedback(t, r, `{"messageId":"m1","action":"upvote"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp domain.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Invalid action" {
		t.Errorf("expected Invalid action message, got %q", resp.Error)
	}
}

func TestFeedback_UnknownMessage(t *testing.T) {
	r := newTestRouter(repository.NewMemoryChatLog())

	w := putFeedback(t, r, `{"messageId":"never-logged","action":"like"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestFeedback_MissingFields(t *testing.T) {
	r := newTestRouter(repository.NewMemoryChatLog())

	w := putFeedback(t, r, `{"action":"like"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing messageId, got %d", w.Code)
	}
}

func TestFeedback_Success(t *testing.T) {
	store := repository.NewMemoryChatLog()
	if err := store.Record(context.Background(), &domain.ChatLogRecord{MessageID: "m1"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	r := newTestRouter(store)

	w := putFeedback(t, r, `{"messageId":"m1","action":"report","reportMessage":"stale price"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["messageId"] != "m1" {
		t.Errorf("expected messageId confirmation, got %v", resp)
	}

	rec, err := store.Get(context.Background(), "m1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !rec.Feedback.Report || rec.Feedback.ReportMessage != "stale price" {
		t.Errorf("report was not applied: %+v", rec.Feedback)
	}
}
