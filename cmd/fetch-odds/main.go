// Package main provides the entry point for the odds snapshot tool.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-edge/internal/config"
	"github.com/yourusername/prop-edge/internal/feeds"
	"github.com/yourusername/prop-edge/internal/logger"
	"github.com/yourusername/prop-edge/internal/metrics"
	"github.com/yourusername/prop-edge/internal/oddsapi"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to config file")
		output     = flag.String("output", "./output/props.csv", "Output path for the props feed")
		timeout    = flag.Duration("timeout", 5*time.Minute, "Overall fetch timeout")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg := loadConfig(*configPath)
	appLog := logger.NewLogger(cfg.App.LogLevel)
	metrics.InitRegistry()

	if cfg.OddsAPI.APIKey == "" {
		appLog.Fatal("odds_api.api_key is required; set ODDS_API_KEY or configure it")
	}

	client := oddsapi.NewClient(oddsapi.Config{
		BaseURL: cfg.OddsAPI.BaseURL,
		APIKey:  cfg.OddsAPI.APIKey,
		Sport:   cfg.OddsAPI.Sport,
		Regions: cfg.OddsAPI.Regions,
		Markets: cfg.OddsAPI.Markets,
		Books:   cfg.OddsAPI.Books,
		HTTPConfig: oddsapi.HTTPClientConfig{
			Timeout:           cfg.FetchTimeout(),
			MaxRetries:        cfg.OddsAPI.MaxRetries,
			RetryWaitMin:      100 * time.Millisecond,
			RetryWaitMax:      10 * time.Second,
			RateLimit:         cfg.OddsAPI.RateLimit,
			CircuitBreakerMax: 5,
		},
		CacheTTL: cfg.FetchCacheTTL(),
	}, appLog)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	props, err := client.FetchProps(ctx)
	if err != nil {
		appLog.WithError(err).Fatal("Fetch failed")
	}
	if err := feeds.WriteProps(*output, props); err != nil {
		appLog.WithError(err).Fatal("Failed to write props feed")
	}

	appLog.WithFields(logrus.Fields{
		"props": len(props),
		"path":  *output,
	}).Info("Props snapshot written")
}

func loadConfig(path string) *config.Config {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg = config.Default()
	}
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			logrus.Fatalf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			logrus.Fatalf("Failed to load secrets: %v", err)
		}
	}
	if err := config.Validate(cfg); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}
