package market

import "testing"

func TestNormalizeEquity(t *testing.T) {
	n := NewNormalizer(".NS", "-USD")

	tests := []struct {
		raw  string
		want string
	}{
		{"TCS", "TCS.NS"},
		{"INFY", "INFY.NS"},
		{"AAPL.O", "AAPL.O"}, // already qualified
		{"RELIANCE.NS", "RELIANCE.NS"},
		{"brk", "brk"},     // not uppercase, pass through
		{"BRK-B", "BRK-B"}, // not plain letters, pass through
		{"", ""},
	}

	for _, tt := range tests {
		if got := n.NormalizeEquity(tt.raw); got != tt.want {
			t.Errorf("NormalizeEquity(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeCrypto(t *testing.T) {
	n := NewNormalizer(".NS", "-USD")

	tests := []struct {
		raw  string
		want string
	}{
		{"BTC", "BTC-USD"},
		{"ETH", "ETH-USD"},
		{"BTC-USD", "BTC-USD"},
		{"BTC-EUR", "BTC-EUR"},
	}

	for _, tt := range tests {
		if got := n.NormalizeCrypto(tt.raw); got != tt.want {
			t.Errorf("NormalizeCrypto(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
