package domain

import "time"

// FeedbackAction is a user reaction to a logged exchange
type FeedbackAction string

const (
	FeedbackLike    FeedbackAction = "like"
	FeedbackDislike FeedbackAction = "dislike"
	FeedbackReport  FeedbackAction = "report"
)

// Valid reports whether the action is one of the known values
func (a FeedbackAction) Valid() bool {
	switch a {
	case FeedbackLike, FeedbackDislike, FeedbackReport:
		return true
	}
	return false
}

// Feedback holds user reactions on a chat log record. Like and dislike are
// mutually exclusive; report is independent and may carry detail text.
type Feedback struct {
	Like          bool   `json:"like"`
	Dislike       bool   `json:"dislike"`
	Report        bool   `json:"report"`
	ReportMessage string `json:"reportMessage,omitempty"`
}

// ChatLogRecord is the persisted record of one tool-invoking exchange
type ChatLogRecord struct {
	MessageID         string    `json:"messageId"`
	Timestamp         time.Time `json:"timestamp"`
	UserQuery         string    `json:"userQuery"`
	AssistantResponse string    `json:"assistantResponse"`
	FunctionName      string    `json:"functionName,omitempty"`
	Feedback          Feedback  `json:"feedback"`
}

// ApplyFeedback mutates the record for the given action. Setting like clears
// dislike and vice versa. Returns ErrInvalidAction for unknown actions.
func (r *ChatLogRecord) ApplyFeedback(action FeedbackAction, reportMessage string) error {
	switch action {
	case FeedbackLike:
		r.Feedback.Like = true
		r.Feedback.Dislike = false
	case FeedbackDislike:
		r.Feedback.Dislike = true
		r.Feedback.Like = false
	case FeedbackReport:
		r.Feedback.Report = true
		r.Feedback.ReportMessage = reportMessage
	default:
		return ErrInvalidAction
	}
	return nil
}

// FeedbackRequest is the request to the feedback endpoint
type FeedbackRequest struct {
	MessageID     string `json:"messageId" binding:"required"`
	Action        string `json:"action" binding:"required"`
	ReportMessage string `json:"reportMessage,omitempty"`
}
