package llm

import (
	"context"
	"fmt"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sashabaranov/go-openai"

	"github.com/finwise-ai/finchat/internal/config"
	"github.com/finwise-ai/finchat/internal/domain"
)

// Client wraps the chat-completion API. Decide submits a conversation plus
// the function catalog and decodes the reply into a ModelDecision at this
// boundary; Narrate asks the model to explain a serialized tool result.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	tokenBudget int
}

// NewClient creates an LLM client from configuration
func NewClient(cfg config.LLMConfig) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &Client{
		api:         openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		tokenBudget: cfg.TokenBudget,
	}
}

// Decide asks the model to pick at most one function or answer directly
func (c *Client) Decide(ctx context.Context, messages []domain.Message, functions []openai.FunctionDefinition, instruction string) (domain.ModelDecision, error) {
	history := c.trim(toOpenAI(messages))
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: append([]openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleSystem,
			Content: instruction,
		}}, history...),
		Functions:    functions,
		FunctionCall: "auto",
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return domain.ModelDecision{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return domain.ModelDecision{}, fmt.Errorf("chat completion: no choices returned")
	}

	msg := resp.Choices[0].Message
	if msg.FunctionCall != nil {
		return domain.ModelDecision{
			Kind:      domain.DecisionToolCall,
			ToolName:  msg.FunctionCall.Name,
			Arguments: msg.FunctionCall.Arguments,
		}, nil
	}
	return domain.ModelDecision{
		Kind:   domain.DecisionDirectAnswer,
		Answer: msg.Content,
	}, nil
}

// Narrate asks the model to explain a tool result. The serialized result is
// fed back as a function-role message under the function's own name.
func (c *Client) Narrate(ctx context.Context, messages []domain.Message, instruction, functionName, payload string) (string, error) {
	history := c.trim(toOpenAI(messages))
	reqMessages := append([]openai.ChatCompletionMessage{{
		Role:    openai.ChatMessageRoleSystem,
		Content: instruction,
	}}, history...)
	reqMessages = append(reqMessages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleFunction,
		Name:    functionName,
		Content: payload,
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages:    reqMessages,
	})
	if err != nil {
		return "", fmt.Errorf("narration completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("narration completion: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// trim drops the oldest messages until the conversation fits the token
// budget. The full history is otherwise visible to the model every turn.
func (c *Client) trim(messages []openai.ChatCompletionMessage) []openai.ChatCompletionMessage {
	if c.tokenBudget <= 0 {
		return messages
	}
	for len(messages) > 1 {
		if countTokens(messages, c.model) <= c.tokenBudget {
			break
		}
		messages = messages[1:]
	}
	return messages
}

func countTokens(messages []openai.ChatCompletionMessage, model string) int {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			// No encoder at all: fall back to a character heuristic.
			total := 0
			for _, m := range messages {
				total += len(m.Content) / 4
			}
			return total
		}
	}
	total := 0
	for _, m := range messages {
		total += len(enc.Encode(m.Content, nil, nil)) + 4
	}
	return total
}

func toOpenAI(messages []domain.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	return out
}
