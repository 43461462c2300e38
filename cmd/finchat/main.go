package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/finwise-ai/finchat/internal/api"
	"github.com/finwise-ai/finchat/internal/config"
	"github.com/finwise-ai/finchat/internal/dispatch"
	"github.com/finwise-ai/finchat/internal/llm"
	"github.com/finwise-ai/finchat/internal/market"
	"github.com/finwise-ai/finchat/internal/repository"
	"github.com/finwise-ai/finchat/internal/service"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Server.Release {
		gin.SetMode(gin.ReleaseMode)
	}

	// Company knowledge base
	db, err := repository.NewDB(cfg.Company.DBPath)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()
	companyRepo := repository.NewCompanyRepository(db)

	// Chat log store: key-value store when configured, in-memory otherwise
	var chatLog interface {
		dispatch.ChatLog
		service.ChatLogStore
	}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		chatLog = repository.NewRedisChatLog(rdb)
		logger.Info("Using Redis chat log store", zap.String("addr", cfg.Redis.Addr))
	} else {
		chatLog = repository.NewMemoryChatLog()
		logger.Warn("No Redis address configured, chat logs are in-memory only")
	}

	// Market data gateway
	normalizer := market.NewNormalizer(cfg.Market.ExchangeSuffix, cfg.Market.QuoteCurrency)
	gateway := market.NewGateway(
		market.NewQuoteClient(cfg.Market.QuoteBaseURL, cfg.Market.RequestTimeout),
		market.NewNSEClient(cfg.Market.NSEBaseURL, cfg.Market.RequestTimeout),
		market.NewCoinGeckoClient(cfg.Market.CoinGeckoBaseURL, cfg.Market.RequestTimeout),
		normalizer,
		cfg.Market.DisplayCurrency,
		cfg.Market.BatchConcurrency,
		logger,
	)

	// Services
	companyService := service.NewCompanyService(companyRepo, cfg.Company.Organization)
	engine := dispatch.NewEngine(llm.NewClient(cfg.LLM), gateway, companyService, chatLog, logger)
	chatService := service.NewChatService(engine)
	feedbackService := service.NewFeedbackService(chatLog)

	// Setup router
	router := api.SetupRouter(chatService, feedbackService, companyService, logger, api.RouterConfig{
		APIKey:       cfg.Admin.APIKey,
		AllowOrigins: []string{"*"},
		Release:      cfg.Server.Release,
	})

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // LLM and market calls are slow
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Starting FinChat server", zap.String("address", cfg.Address()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
