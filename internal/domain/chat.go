package domain

// Role values for chat messages
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single chat message
type Message struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ChatRequest is the request to the chat endpoint
type ChatRequest struct {
	Messages []Message `json:"messages" binding:"required,min=1"`
}

// ChatResponse is the response from a chat turn
type ChatResponse struct {
	Role         string       `json:"role"`
	Content      string       `json:"content"`
	RawData      any          `json:"rawData,omitempty"`
	FunctionName string       `json:"functionName,omitempty"`
	MessageID    string       `json:"messageId,omitempty"`
	ChartData    *ChartSeries `json:"chartData,omitempty"`
}

// ErrorResponse is the error envelope returned by the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// DecisionKind discriminates ModelDecision variants
type DecisionKind int

const (
	DecisionDirectAnswer DecisionKind = iota
	DecisionToolCall
)

// ModelDecision is the decoded outcome of a model turn: either a direct
// free-text answer or a request to invoke a named function. The variant is
// decided once, at the LLM boundary, never by probing fields downstream.
type ModelDecision struct {
	Kind      DecisionKind
	Answer    string
	ToolName  string
	Arguments string // raw JSON blob exactly as returned by the model
}
