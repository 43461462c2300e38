package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/finwise-ai/finchat/internal/domain"
)

// QuoteClient talks to a Yahoo-Finance-compatible quote API: live quotes,
// historical charts, free-text news search and currency-pair quotes.
type QuoteClient struct {
	baseURL string
	client  *http.Client
}

// NewQuoteClient creates a quote client against the given base URL
func NewQuoteClient(baseURL string, timeout time.Duration) *QuoteClient {
	return &QuoteClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                     string  `json:"symbol"`
			LongName                   string  `json:"longName"`
			ShortName                  string  `json:"shortName"`
			Currency                   string  `json:"currency"`
			RegularMarketPrice         float64 `json:"regularMarketPrice"`
			RegularMarketChange        float64 `json:"regularMarketChange"`
			RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
			MarketCap                  float64 `json:"marketCap"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteResponse"`
}

// Quote fetches the live quote for one canonical symbol. Returns
// ErrDataUnavailable when the upstream has no record for it.
func (c *QuoteClient) Quote(ctx context.Context, symbol string) (domain.Quote, error) {
	endpoint := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", c.baseURL, url.QueryEscape(symbol))

	var resp quoteResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return domain.Quote{}, fmt.Errorf("%w: %s: %v", domain.ErrDataUnavailable, symbol, err)
	}
	if e := resp.QuoteResponse.Error; e != nil {
		return domain.Quote{}, fmt.Errorf("%w: %s: %s: %s", domain.ErrDataUnavailable, symbol, e.Code, e.Description)
	}
	if len(resp.QuoteResponse.Result) == 0 {
		return domain.Quote{}, fmt.Errorf("%w: no record for %s", domain.ErrDataUnavailable, symbol)
	}

	r := resp.QuoteResponse.Result[0]
	name := r.LongName
	if name == "" {
		name = r.ShortName
	}
	return domain.Quote{
		Price:         r.RegularMarketPrice,
		Change:        r.RegularMarketChange,
		ChangePercent: r.RegularMarketChangePercent,
		MarketCap:     r.MarketCap,
		DisplayName:   name,
		Currency:      r.Currency,
	}, nil
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

// History fetches daily closing prices for the given range. An empty series
// means the upstream has nothing for the range; it is not an error.
func (c *QuoteClient) History(ctx context.Context, symbol string, from, to time.Time, interval string) ([]domain.PricePoint, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%s&period2=%s&interval=%s",
		c.baseURL, url.PathEscape(symbol),
		strconv.FormatInt(from.Unix(), 10), strconv.FormatInt(to.Unix(), 10),
		url.QueryEscape(interval))

	var resp chartResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("%w: history for %s: %v", domain.ErrDataUnavailable, symbol, err)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, nil
	}

	result := resp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	closes := result.Indicators.Quote[0].Close

	points := make([]domain.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) {
			break
		}
		points = append(points, domain.PricePoint{
			Date:  time.Unix(ts, 0).UTC().Format("2006-01-02"),
			Close: closes[i],
		})
	}
	return points, nil
}

type searchResponse struct {
	News []struct {
		Title     string `json:"title"`
		Link      string `json:"link"`
		Publisher string `json:"publisher"`
	} `json:"news"`
}

// Search performs a free-text news lookup
func (c *QuoteClient) Search(ctx context.Context, query string) ([]domain.NewsItem, error) {
	endpoint := fmt.Sprintf("%s/v1/finance/search?q=%s", c.baseURL, url.QueryEscape(query))

	var resp searchResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	items := make([]domain.NewsItem, 0, len(resp.News))
	for _, n := range resp.News {
		items = append(items, domain.NewsItem{
			Headline:  n.Title,
			URL:       n.Link,
			Publisher: n.Publisher,
		})
	}
	return items, nil
}

// CurrencyRate looks up a conversion rate via a synthetic currency-pair
// quote, e.g. USDINR=X.
func (c *QuoteClient) CurrencyRate(ctx context.Context, from, to string) (float64, error) {
	pair := fmt.Sprintf("%s%s=X", from, to)
	q, err := c.Quote(ctx, pair)
	if err != nil {
		return 0, err
	}
	if q.Price == 0 {
		return 0, fmt.Errorf("%w: zero rate for %s", domain.ErrDataUnavailable, pair)
	}
	return q.Price, nil
}

func (c *QuoteClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("api call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api error %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

const browserUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
