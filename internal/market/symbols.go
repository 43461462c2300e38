package market

import "strings"

// Normalizer maps user-supplied tickers to the canonical forms the market
// upstream expects. Suffix choices are deployment policy, not protocol.
type Normalizer struct {
	ExchangeSuffix string // appended to bare equity tickers, e.g. ".NS"
	QuoteCurrency  string // appended to bare crypto tickers, e.g. "-USD"
}

// NewNormalizer creates a normalizer with the given default suffixes
func NewNormalizer(exchangeSuffix, quoteCurrency string) Normalizer {
	return Normalizer{ExchangeSuffix: exchangeSuffix, QuoteCurrency: quoteCurrency}
}

// NormalizeEquity qualifies a bare equity ticker with the default exchange
// suffix. Symbols that already carry an exchange marker, or that are not
// plain uppercase letters, pass through unchanged.
func (n Normalizer) NormalizeEquity(raw string) string {
	if strings.Contains(raw, ".") {
		return raw
	}
	if !isUpperLetters(raw) {
		return raw
	}
	return raw + n.ExchangeSuffix
}

// NormalizeCrypto qualifies a bare crypto ticker with the default quote
// currency. Symbols already containing a pair delimiter pass through.
func (n Normalizer) NormalizeCrypto(raw string) string {
	if strings.Contains(raw, "-") {
		return raw
	}
	return raw + n.QuoteCurrency
}

func isUpperLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
