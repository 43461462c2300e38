package market

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/finwise-ai/finchat/internal/domain"
)

// PlaceholderSymbol marks the single explanatory entry returned when a
// price filter eliminates every successful quote.
const PlaceholderSymbol = "none"

// BatchOptions control a batched quote lookup
type BatchOptions struct {
	WithHistory bool    // attach a daily closing series per symbol
	HistoryDays int     // range of the series, default 30
	WithNews    bool    // attach recent headlines per symbol
	UnderPrice  float64 // >0 keeps only successful quotes at or under this price
}

// Gateway is the uniform wrapper over the market-data upstreams. Batched
// operations isolate per-symbol failures: one bad symbol yields one
// error-tagged entry and never aborts the rest.
type Gateway struct {
	quotes          *QuoteClient
	nse             *NSEClient
	gecko           *CoinGeckoClient
	norm            Normalizer
	displayCurrency string
	concurrency     int
	logger          *zap.Logger
}

// NewGateway creates a market-data gateway. Crypto quotes arrive in USD and
// are rescaled into displayCurrency; pass "" or "USD" to skip conversion.
func NewGateway(quotes *QuoteClient, nse *NSEClient, gecko *CoinGeckoClient, norm Normalizer, displayCurrency string, concurrency int, logger *zap.Logger) *Gateway {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Gateway{
		quotes:          quotes,
		nse:             nse,
		gecko:           gecko,
		norm:            norm,
		displayCurrency: displayCurrency,
		concurrency:     concurrency,
		logger:          logger,
	}
}

// EquityQuotes fetches quotes for the given raw equity symbols. Output
// order always matches input order regardless of fetch completion order.
func (g *Gateway) EquityQuotes(ctx context.Context, symbols []string, opts BatchOptions) []domain.QuoteResult {
	results := g.batch(ctx, symbols, g.norm.NormalizeEquity, opts)
	if opts.UnderPrice > 0 {
		results = filterUnderPrice(results, opts.UnderPrice)
	}
	return results
}

// CryptoQuotes fetches quotes for the given raw crypto symbols. Prices come
// back from the upstream in USD and are rescaled into the display currency
// before any price filter applies.
func (g *Gateway) CryptoQuotes(ctx context.Context, symbols []string, opts BatchOptions) []domain.QuoteResult {
	results := g.batch(ctx, symbols, g.norm.NormalizeCrypto, opts)
	results = g.convertToDisplayCurrency(ctx, results)
	if opts.UnderPrice > 0 {
		results = filterUnderPrice(results, opts.UnderPrice)
	}
	return results
}

func (g *Gateway) batch(ctx context.Context, symbols []string, normalize func(string) string, opts BatchOptions) []domain.QuoteResult {
	results := make([]domain.QuoteResult, len(symbols))

	p := pool.New().WithMaxGoroutines(g.concurrency)
	for i, raw := range symbols {
		i, raw := i, raw
		p.Go(func() {
			results[i] = g.fetchOne(ctx, raw, normalize(raw), opts)
		})
	}
	p.Wait()

	return results
}

// convertToDisplayCurrency rescales the money fields of successful entries
// from USD into the display currency. A failed rate lookup yields the
// identity rate, so entries pass through unconverted.
func (g *Gateway) convertToDisplayCurrency(ctx context.Context, results []domain.QuoteResult) []domain.QuoteResult {
	if g.displayCurrency == "" || g.displayCurrency == "USD" {
		return results
	}
	rate := g.CurrencyRate(ctx, "USD", g.displayCurrency)
	if rate == 1.0 {
		return results
	}
	for i := range results {
		if results[i].Failed() {
			continue
		}
		results[i].Price *= rate
		results[i].Change *= rate
		results[i].MarketCap *= rate
		for j := range results[i].History {
			results[i].History[j].Close *= rate
		}
	}
	return results
}

func (g *Gateway) fetchOne(ctx context.Context, raw, canonical string, opts BatchOptions) domain.QuoteResult {
	quote, err := g.quotes.Quote(ctx, canonical)
	if err != nil {
		g.logger.Debug("quote fetch failed",
			zap.String("symbol", canonical), zap.Error(err))
		return domain.QuoteResult{Symbol: raw, CanonicalSymbol: canonical, Error: err.Error()}
	}

	result := domain.QuoteResult{
		Symbol:          raw,
		CanonicalSymbol: canonical,
		DisplayName:     quote.DisplayName,
		Price:           quote.Price,
		Change:          quote.Change,
		ChangePercent:   quote.ChangePercent,
		MarketCap:       quote.MarketCap,
	}

	if opts.WithHistory {
		days := opts.HistoryDays
		if days <= 0 {
			days = 30
		}
		to := time.Now()
		from := to.AddDate(0, 0, -days)
		// Empty history means "no chart", never a failed entry.
		history, err := g.quotes.History(ctx, canonical, from, to, "1d")
		if err != nil {
			g.logger.Debug("history fetch failed",
				zap.String("symbol", canonical), zap.Error(err))
		} else {
			result.History = history
		}
	}

	if opts.WithNews {
		query := quote.DisplayName
		if query == "" {
			query = canonical
		}
		result.News = g.Search(ctx, query)
	}

	return result
}

// filterUnderPrice keeps error entries untouched and drops successful
// quotes above the ceiling. When no successful quote survives, an
// explanatory placeholder entry is appended after the surviving error
// entries so callers never see an empty sequence.
func filterUnderPrice(results []domain.QuoteResult, under float64) []domain.QuoteResult {
	filtered := make([]domain.QuoteResult, 0, len(results))
	matched := 0
	for _, r := range results {
		if r.Failed() {
			filtered = append(filtered, r)
			continue
		}
		if r.Price <= under {
			filtered = append(filtered, r)
			matched++
		}
	}
	if matched == 0 {
		filtered = append(filtered, domain.QuoteResult{
			Symbol: PlaceholderSymbol,
			Error:  fmt.Sprintf("no symbols trading at or under %.2f", under),
		})
	}
	return filtered
}

// TrendingEquities returns the raw symbols of the exchange gainers feed
func (g *Gateway) TrendingEquities(ctx context.Context, limit int) ([]string, error) {
	return g.nse.TrendingEquities(ctx, limit)
}

// TrendingCryptos returns the raw symbols of the market-cap ranking feed
func (g *Gateway) TrendingCryptos(ctx context.Context, limit int) ([]string, error) {
	return g.gecko.TrendingCryptos(ctx, limit)
}

// CurrencyRate returns the conversion rate between two currencies. The
// lookup fails open: on any error the identity rate 1.0 is returned and the
// failure is logged, so conversion degrades to "no conversion applied".
func (g *Gateway) CurrencyRate(ctx context.Context, from, to string) float64 {
	rate, err := g.quotes.CurrencyRate(ctx, from, to)
	if err != nil {
		g.logger.Warn("currency rate lookup failed, using identity rate",
			zap.String("from", from), zap.String("to", to), zap.Error(err))
		return 1.0
	}
	return rate
}

// Search performs a free-text news lookup. Empty on failure, never errors.
func (g *Gateway) Search(ctx context.Context, query string) []domain.NewsItem {
	items, err := g.quotes.Search(ctx, query)
	if err != nil {
		g.logger.Debug("news search failed", zap.String("query", query), zap.Error(err))
		return nil
	}
	return items
}
