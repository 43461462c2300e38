package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/finwise-ai/finchat/internal/chart"
	"github.com/finwise-ai/finchat/internal/domain"
	"github.com/finwise-ai/finchat/internal/market"
)

const trendingLimit = 10

// ModelClient is the LLM boundary the engine drives
type ModelClient interface {
	Decide(ctx context.Context, messages []domain.Message, functions []openai.FunctionDefinition, instruction string) (domain.ModelDecision, error)
	Narrate(ctx context.Context, messages []domain.Message, instruction, functionName, payload string) (string, error)
}

// MarketData is the slice of the market gateway the engine routes to
type MarketData interface {
	EquityQuotes(ctx context.Context, symbols []string, opts market.BatchOptions) []domain.QuoteResult
	CryptoQuotes(ctx context.Context, symbols []string, opts market.BatchOptions) []domain.QuoteResult
	TrendingEquities(ctx context.Context, limit int) ([]string, error)
	TrendingCryptos(ctx context.Context, limit int) ([]string, error)
	Search(ctx context.Context, query string) []domain.NewsItem
}

// CompanyLookup resolves company-info categories to document content
type CompanyLookup interface {
	Lookup(ctx context.Context, category string) (any, error)
}

// ChatLog records tool-invoking exchanges. Recording is best-effort and
// never on the critical path of the answer.
type ChatLog interface {
	Record(ctx context.Context, record *domain.ChatLogRecord) error
}

// Engine runs one chat turn: ask the model to pick a function or answer
// directly, execute the chosen function, have the model narrate the result,
// and log the exchange.
type Engine struct {
	model   ModelClient
	market  MarketData
	company CompanyLookup
	chatLog ChatLog
	catalog []openai.FunctionDefinition
	logger  *zap.Logger
}

// NewEngine creates a dispatch engine
func NewEngine(model ModelClient, marketData MarketData, company CompanyLookup, chatLog ChatLog, logger *zap.Logger) *Engine {
	return &Engine{
		model:   model,
		market:  marketData,
		company: company,
		chatLog: chatLog,
		catalog: Catalog(),
		logger:  logger,
	}
}

// Handle executes one chat turn. Direct answers return immediately with no
// raw data, no message id and no log write; tool turns return the
// narration, the tool result, and the id under which the exchange was
// logged.
func (e *Engine) Handle(ctx context.Context, messages []domain.Message) (*domain.ChatResponse, error) {
	decision, err := e.model.Decide(ctx, messages, e.catalog, decisionInstruction)
	if err != nil {
		return nil, fmt.Errorf("model decision: %w", err)
	}

	if decision.Kind == domain.DecisionDirectAnswer {
		return &domain.ChatResponse{
			Role:    domain.RoleAssistant,
			Content: decision.Answer,
		}, nil
	}

	result := e.execute(ctx, decision)

	payload, err := json.Marshal(result.data)
	if err != nil {
		return nil, fmt.Errorf("serialize tool result: %w", err)
	}

	instruction := marketInstruction
	if result.companyTurn {
		instruction = companyInstruction
	}
	narration, err := e.model.Narrate(ctx, messages, instruction, decision.ToolName, string(payload))
	if err != nil {
		return nil, fmt.Errorf("narration: %w", err)
	}

	messageID := uuid.New().String()
	e.record(ctx, messageID, lastUserQuery(messages), narration, decision.ToolName)

	resp := &domain.ChatResponse{
		Role:         domain.RoleAssistant,
		Content:      narration,
		RawData:      result.data,
		FunctionName: decision.ToolName,
		MessageID:    messageID,
	}
	if quotes, ok := result.data.([]domain.QuoteResult); ok {
		resp.ChartData = chart.Project(quotes)
	}
	return resp, nil
}

type toolResult struct {
	data        any
	companyTurn bool
}

// unsupported is the sentinel result fed to narration for unknown tools and
// unparsable arguments; the turn proceeds rather than aborting.
func unsupported() toolResult {
	return toolResult{data: map[string]string{"error": unsupportedSentinel}}
}

type quoteArgs struct {
	Symbols     []string `json:"symbols"`
	UnderPrice  float64  `json:"underPrice"`
	WithHistory bool     `json:"withHistory"`
}

type companyArgs struct {
	Category string `json:"category"`
}

type searchArgs struct {
	Query string `json:"query"`
}

func (e *Engine) execute(ctx context.Context, decision domain.ModelDecision) toolResult {
	switch decision.ToolName {
	case FnStockPrice:
		var args quoteArgs
		if err := parseArgs(decision.Arguments, &args); err != nil {
			e.logger.Warn("malformed function arguments",
				zap.String("function", decision.ToolName), zap.Error(err))
			return unsupported()
		}
		return toolResult{data: e.market.EquityQuotes(ctx, args.Symbols, market.BatchOptions{
			WithHistory: args.WithHistory,
			WithNews:    true,
			UnderPrice:  args.UnderPrice,
		})}

	case FnCryptoPrice:
		var args quoteArgs
		if err := parseArgs(decision.Arguments, &args); err != nil {
			e.logger.Warn("malformed function arguments",
				zap.String("function", decision.ToolName), zap.Error(err))
			return unsupported()
		}
		return toolResult{data: e.market.CryptoQuotes(ctx, args.Symbols, market.BatchOptions{
			WithHistory: args.WithHistory,
			UnderPrice:  args.UnderPrice,
		})}

	case FnMarketUpdate:
		return e.marketUpdate(ctx)

	case FnCryptoMarketUpdate:
		return e.cryptoMarketUpdate(ctx)

	case FnCompanyInfo:
		var args companyArgs
		if err := parseArgs(decision.Arguments, &args); err != nil {
			e.logger.Warn("malformed function arguments",
				zap.String("function", decision.ToolName), zap.Error(err))
			return unsupported()
		}
		info, err := e.company.Lookup(ctx, args.Category)
		if err != nil {
			return toolResult{data: map[string]string{"error": err.Error()}, companyTurn: true}
		}
		return toolResult{data: info, companyTurn: true}

	case FnSearchNews:
		var args searchArgs
		if err := parseArgs(decision.Arguments, &args); err != nil {
			e.logger.Warn("malformed function arguments",
				zap.String("function", decision.ToolName), zap.Error(err))
			return unsupported()
		}
		return toolResult{data: e.market.Search(ctx, args.Query)}

	default:
		e.logger.Warn("model selected unknown function",
			zap.String("function", decision.ToolName))
		return unsupported()
	}
}

// marketUpdate combines the trending-equities list with a news digest
func (e *Engine) marketUpdate(ctx context.Context) toolResult {
	symbols, err := e.market.TrendingEquities(ctx, trendingLimit)
	if err != nil {
		return toolResult{data: map[string]string{"error": err.Error()}}
	}
	return toolResult{data: domain.MarketUpdate{
		Trending: e.market.EquityQuotes(ctx, symbols, market.BatchOptions{}),
		News:     e.market.Search(ctx, "stock market today"),
	}}
}

func (e *Engine) cryptoMarketUpdate(ctx context.Context) toolResult {
	symbols, err := e.market.TrendingCryptos(ctx, trendingLimit)
	if err != nil {
		return toolResult{data: map[string]string{"error": err.Error()}}
	}
	return toolResult{data: domain.MarketUpdate{
		Trending: e.market.CryptoQuotes(ctx, symbols, market.BatchOptions{}),
		News:     e.market.Search(ctx, "cryptocurrency market today"),
	}}
}

func (e *Engine) record(ctx context.Context, messageID, userQuery, narration, functionName string) {
	err := e.chatLog.Record(ctx, &domain.ChatLogRecord{
		MessageID:         messageID,
		Timestamp:         time.Now().UTC(),
		UserQuery:         userQuery,
		AssistantResponse: narration,
		FunctionName:      functionName,
	})
	if err != nil {
		// Best-effort: a lost log entry must not fail the user's answer.
		e.logger.Error("chat log write failed",
			zap.String("message_id", messageID), zap.Error(err))
	}
}

func parseArgs(raw string, out any) error {
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedArguments, err)
	}
	return nil
}

func lastUserQuery(messages []domain.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == domain.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}
