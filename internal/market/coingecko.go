package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/finwise-ai/finchat/internal/domain"
)

// CoinGeckoClient fetches the trending-cryptos list, ranked by market cap.
type CoinGeckoClient struct {
	baseURL string
	client  *http.Client
}

// NewCoinGeckoClient creates a trending-cryptos client
func NewCoinGeckoClient(baseURL string, timeout time.Duration) *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type coinMarket struct {
	Symbol string `json:"symbol"`
}

// TrendingCryptos returns up to limit raw symbols ordered by market cap.
// Fails with ErrSourceUnavailable when the feed is unreachable or empty.
func (c *CoinGeckoClient) TrendingCryptos(ctx context.Context, limit int) ([]string, error) {
	endpoint := fmt.Sprintf("%s/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=%d&page=1",
		c.baseURL, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: coin markets: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read coin markets: %v", domain.ErrSourceUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: coin markets status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	var coins []coinMarket
	if err := json.Unmarshal(body, &coins); err != nil {
		return nil, fmt.Errorf("%w: decode coin markets: %v", domain.ErrSourceUnavailable, err)
	}
	if len(coins) == 0 {
		return nil, fmt.Errorf("%w: coin markets returned no rows", domain.ErrSourceUnavailable)
	}

	symbols := make([]string, 0, len(coins))
	for _, coin := range coins {
		symbols = append(symbols, strings.ToUpper(coin.Symbol))
	}
	return symbols, nil
}
