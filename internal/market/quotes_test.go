package market

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/finwise-ai/finchat/internal/domain"
)

func TestQuote_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v7/finance/quote" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("symbols"); got != "TCS.NS" {
			t.Errorf("expected symbols TCS.NS, got %q", got)
		}
		fmt.Fprint(w, `{"quoteResponse":{"result":[{
			"symbol":"TCS.NS","longName":"Tata Consultancy Services Limited",
			"currency":"INR","regularMarketPrice":3500.5,
			"regularMarketChange":25.5,"regularMarketChangePercent":0.73,
			"marketCap":12800000000000}]}}`)
	}))
	defer server.Close()

	c := NewQuoteClient(server.URL, 5*time.Second)
	q, err := c.Quote(context.Background(), "TCS.NS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Price != 3500.5 {
		t.Errorf("expected price 3500.5, got %v", q.Price)
	}
	if q.DisplayName != "Tata Consultancy Services Limited" {
		t.Errorf("unexpected display name %q", q.DisplayName)
	}
	if q.ChangePercent != 0.73 {
		t.Errorf("expected change percent 0.73, got %v", q.ChangePercent)
	}
}

func TestQuote_NoRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteResponse":{"result":[]}}`)
	}))
	defer server.Close()

	c := NewQuoteClient(server.URL, 5*time.Second)
	_, err := c.Quote(context.Background(), "NOPE.NS")
	if !errors.Is(err, domain.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestQuote_UpstreamErrorSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteResponse":{"result":[],
			"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`)
	}))
	defer server.Close()

	c := NewQuoteClient(server.URL, 5*time.Second)
	_, err := c.Quote(context.Background(), "GONE.NS")
	if !errors.Is(err, domain.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "symbol may be delisted") {
		t.Errorf("expected the upstream description in the error, got %q", err)
	}
}

func TestHistory_EmptyIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[]}}`)
	}))
	defer server.Close()

	c := NewQuoteClient(server.URL, 5*time.Second)
	points, err := c.History(context.Background(), "TCS.NS", time.Now().AddDate(0, 0, -30), time.Now(), "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("expected empty series, got %d points", len(points))
	}
}

func TestHistory_ParsesSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[{
			"timestamp":[1700006400,1700092800],
			"indicators":{"quote":[{"close":[101.5,102.25]}]}}]}}`)
	}))
	defer server.Close()

	c := NewQuoteClient(server.URL, 5*time.Second)
	points, err := c.History(context.Background(), "TCS.NS", time.Now().AddDate(0, 0, -30), time.Now(), "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Close != 101.5 || points[1].Close != 102.25 {
		t.Errorf("unexpected closes: %+v", points)
	}
	if points[0].Date != "2023-11-15" {
		t.Errorf("expected date 2023-11-15, got %s", points[0].Date)
	}
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "tata" {
			t.Errorf("expected query tata, got %q", got)
		}
		fmt.Fprint(w, `{"news":[{"title":"TCS wins deal","link":"https://example.com/a","publisher":"Wire"}]}`)
	}))
	defer server.Close()

	c := NewQuoteClient(server.URL, 5*time.Second)
	items, err := c.Search(context.Background(), "tata")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Headline != "TCS wins deal" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestCurrencyRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("symbols"); got != "USDINR=X" {
			t.Errorf("expected symbols USDINR=X, got %q", got)
		}
		fmt.Fprint(w, `{"quoteResponse":{"result":[{"symbol":"USDINR=X","regularMarketPrice":83.2}]}}`)
	}))
	defer server.Close()

	c := NewQuoteClient(server.URL, 5*time.Second)
	rate, err := c.CurrencyRate(context.Background(), "USD", "INR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 83.2 {
		t.Errorf("expected rate 83.2, got %v", rate)
	}
}
