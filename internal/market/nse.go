package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/finwise-ai/finchat/internal/domain"
)

// NSEClient fetches the trending-equities list from the exchange's web
// endpoints. The feed requires a two-step handshake: the landing page sets
// session cookies which the data endpoint then expects. This fragility is
// kept behind the gateway so the source can be swapped without touching the
// dispatch layer.
type NSEClient struct {
	baseURL string
	timeout time.Duration
}

// NewNSEClient creates a trending-equities client
func NewNSEClient(baseURL string, timeout time.Duration) *NSEClient {
	return &NSEClient{baseURL: baseURL, timeout: timeout}
}

type gainersResponse struct {
	AllSec struct {
		Data []struct {
			Symbol string `json:"symbol"`
		} `json:"data"`
	} `json:"allSec"`
}

// TrendingEquities returns up to limit raw symbols from the gainers feed.
// Fails with ErrSourceUnavailable when the handshake yields no session or
// the feed returns no rows; it never partially degrades.
func (c *NSEClient) TrendingEquities(ctx context.Context, limit int) ([]string, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	// Fresh client per call: the session cookies are short-lived and must
	// not leak between requests.
	client := &http.Client{Jar: jar, Timeout: c.timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("create landing request: %w", err)
	}
	setExchangeHeaders(req)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: landing page: %v", domain.ErrSourceUnavailable, err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if len(jar.Cookies(req.URL)) == 0 {
		return nil, fmt.Errorf("%w: no session cookies issued", domain.ErrSourceUnavailable)
	}

	dataReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/live-analysis-variations?index=gainers", nil)
	if err != nil {
		return nil, fmt.Errorf("create data request: %w", err)
	}
	setExchangeHeaders(dataReq)
	dataReq.Header.Set("Referer", c.baseURL+"/")

	dataResp, err := client.Do(dataReq)
	if err != nil {
		return nil, fmt.Errorf("%w: gainers feed: %v", domain.ErrSourceUnavailable, err)
	}
	defer dataResp.Body.Close()

	body, err := io.ReadAll(dataResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read gainers feed: %v", domain.ErrSourceUnavailable, err)
	}
	if dataResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gainers feed status %d", domain.ErrSourceUnavailable, dataResp.StatusCode)
	}

	var gainers gainersResponse
	if err := json.Unmarshal(body, &gainers); err != nil {
		return nil, fmt.Errorf("%w: decode gainers feed: %v", domain.ErrSourceUnavailable, err)
	}
	if len(gainers.AllSec.Data) == 0 {
		return nil, fmt.Errorf("%w: gainers feed returned no rows", domain.ErrSourceUnavailable)
	}

	symbols := make([]string, 0, limit)
	for _, row := range gainers.AllSec.Data {
		if len(symbols) == limit {
			break
		}
		symbols = append(symbols, row.Symbol)
	}
	return symbols, nil
}

func setExchangeHeaders(req *http.Request) {
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
}
