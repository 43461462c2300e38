package domain

// PricePoint is a single closing price observation
type PricePoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Close float64 `json:"close"`
}

// NewsItem is a single headline from the news upstream
type NewsItem struct {
	Headline  string `json:"headline"`
	URL       string `json:"url"`
	Publisher string `json:"publisher,omitempty"`
}

// Quote holds the live quote fields for one symbol
type Quote struct {
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	MarketCap     float64 `json:"marketCap,omitempty"`
	DisplayName   string  `json:"displayName,omitempty"`
	Currency      string  `json:"currency,omitempty"`
}

// QuoteResult is one entry of a batched quote lookup. A failing symbol
// carries Error and nothing else; the batch as a whole never fails because
// of a single symbol.
type QuoteResult struct {
	Symbol          string       `json:"symbol"`
	CanonicalSymbol string       `json:"canonicalSymbol,omitempty"`
	DisplayName     string       `json:"displayName,omitempty"`
	Price           float64      `json:"currentPrice,omitempty"`
	Change          float64      `json:"change,omitempty"`
	ChangePercent   float64      `json:"changePercent,omitempty"`
	MarketCap       float64      `json:"marketCap,omitempty"`
	History         []PricePoint `json:"historySeries,omitempty"`
	News            []NewsItem   `json:"newsItems,omitempty"`
	Error           string       `json:"error,omitempty"`
}

// Failed reports whether this entry carries an error marker
func (q QuoteResult) Failed() bool { return q.Error != "" }

// MarketUpdate bundles a trending list with a news digest
type MarketUpdate struct {
	Trending []QuoteResult `json:"trending"`
	News     []NewsItem    `json:"news"`
}

// ChartSeries is the chart-ready projection of a quote batch
type ChartSeries struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartDataset is a single line on the chart
type ChartDataset struct {
	Label  string    `json:"label"`
	Values []float64 `json:"data"`
	Color  string    `json:"borderColor"`
}
