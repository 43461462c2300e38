package dispatch

import (
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/finwise-ai/finchat/internal/domain"
)

// Function names the model may select
const (
	FnStockPrice         = "getStockPrice"
	FnCryptoPrice        = "getCryptoPrice"
	FnMarketUpdate       = "marketUpdate"
	FnCryptoMarketUpdate = "cryptoMarketUpdate"
	FnCompanyInfo        = "companyInfo"
	FnSearchNews         = "searchNews"
)

// Catalog returns the fixed set of functions exposed to the model. The
// schemas are advisory: they steer the model's argument generation, while
// the engine re-validates what actually comes back.
func Catalog() []openai.FunctionDefinition {
	return []openai.FunctionDefinition{
		{
			Name:        FnStockPrice,
			Description: "Get live stock quotes for one or more equity ticker symbols, optionally with a 30-day price history and a price ceiling filter.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"symbols": {
						Type:        jsonschema.Array,
						Description: "Equity ticker symbols, e.g. [\"TCS\", \"INFY\"]",
						Items:       &jsonschema.Definition{Type: jsonschema.String},
					},
					"underPrice": {
						Type:        jsonschema.Number,
						Description: "Only include stocks priced at or under this value",
					},
					"withHistory": {
						Type:        jsonschema.Boolean,
						Description: "Include a 30-day closing price series per symbol",
					},
				},
				Required: []string{"symbols"},
			},
		},
		{
			Name:        FnCryptoPrice,
			Description: "Get live cryptocurrency quotes for one or more crypto symbols, optionally filtered by a price ceiling.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"symbols": {
						Type:        jsonschema.Array,
						Description: "Crypto symbols, e.g. [\"BTC\", \"ETH\"]",
						Items:       &jsonschema.Definition{Type: jsonschema.String},
					},
					"underPrice": {
						Type:        jsonschema.Number,
						Description: "Only include coins priced at or under this value",
					},
					"withHistory": {
						Type:        jsonschema.Boolean,
						Description: "Include a 30-day closing price series per symbol",
					},
				},
				Required: []string{"symbols"},
			},
		},
		{
			Name:        FnMarketUpdate,
			Description: "Get a stock market digest: today's trending equities plus recent market news headlines.",
			Parameters: jsonschema.Definition{
				Type:       jsonschema.Object,
				Properties: map[string]jsonschema.Definition{},
			},
		},
		{
			Name:        FnCryptoMarketUpdate,
			Description: "Get a cryptocurrency market digest: top coins by market cap plus recent crypto news headlines.",
			Parameters: jsonschema.Definition{
				Type:       jsonschema.Object,
				Properties: map[string]jsonschema.Definition{},
			},
		},
		{
			Name:        FnCompanyInfo,
			Description: "Look up information about this organization: its features, pricing or subscription plans, benefits, support, or frequently asked questions.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"category": {
						Type:        jsonschema.String,
						Description: "Which section of company information to retrieve",
						Enum: []string{
							domain.CompanySectionFeatures,
							domain.CompanySectionPricing,
							"subscription",
							domain.CompanySectionBenefits,
							domain.CompanySectionSupport,
							domain.CompanySectionFAQ,
							"all",
						},
					},
				},
				Required: []string{"category"},
			},
		},
		{
			Name:        FnSearchNews,
			Description: "Search recent financial news headlines for a free-text query.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"query": {
						Type:        jsonschema.String,
						Description: "What to search news for",
					},
				},
				Required: []string{"query"},
			},
		},
	}
}
