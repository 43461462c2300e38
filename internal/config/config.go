package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for finchat
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Admin   AdminConfig   `mapstructure:"admin"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Market  MarketConfig  `mapstructure:"market"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Company CompanyConfig `mapstructure:"company"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	Release bool   `mapstructure:"release"`
}

// AdminConfig holds admin authentication configuration
type AdminConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// LLMConfig holds LLM provider configuration
type LLMConfig struct {
	BaseURL     string  `mapstructure:"base_url"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Temperature float32 `mapstructure:"temperature"`
	TokenBudget int     `mapstructure:"token_budget"`
}

// MarketConfig holds market-data upstream configuration
type MarketConfig struct {
	QuoteBaseURL     string        `mapstructure:"quote_base_url"`
	NSEBaseURL       string        `mapstructure:"nse_base_url"`
	CoinGeckoBaseURL string        `mapstructure:"coingecko_base_url"`
	ExchangeSuffix   string        `mapstructure:"exchange_suffix"`
	QuoteCurrency    string        `mapstructure:"quote_currency"`
	DisplayCurrency  string        `mapstructure:"display_currency"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`
	BatchConcurrency int           `mapstructure:"batch_concurrency"`
}

// RedisConfig holds chat-log store configuration. An empty address selects
// the in-memory store.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CompanyConfig holds the company knowledge base configuration
type CompanyConfig struct {
	DBPath       string `mapstructure:"db_path"`
	Organization string `mapstructure:"organization"`
}

// Load loads configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("FINCHAT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.release", false)

	v.SetDefault("admin.api_key", "")

	v.SetDefault("llm.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("llm.token_budget", 3500)

	v.SetDefault("market.quote_base_url", "https://query1.finance.yahoo.com")
	v.SetDefault("market.nse_base_url", "https://www.nseindia.com")
	v.SetDefault("market.coingecko_base_url", "https://api.coingecko.com/api/v3")
	v.SetDefault("market.exchange_suffix", ".NS")
	v.SetDefault("market.quote_currency", "-USD")
	v.SetDefault("market.display_currency", "INR")
	v.SetDefault("market.request_timeout", 15*time.Second)
	v.SetDefault("market.batch_concurrency", 4)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("company.db_path", "./data/finchat.db")
	v.SetDefault("company.organization", "FinWise")
}

// Address returns the server address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
