// Package main provides the entry point for the edge daemon. It runs the
// pipeline on a schedule, exports each run's report and serves Prometheus
// metrics.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-edge/internal/config"
	"github.com/yourusername/prop-edge/internal/logger"
	"github.com/yourusername/prop-edge/internal/metrics"
	"github.com/yourusername/prop-edge/internal/oddsapi"
	"github.com/yourusername/prop-edge/internal/pipeline"
	"github.com/yourusername/prop-edge/internal/report"
	"github.com/yourusername/prop-edge/internal/scheduler"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLog := logger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
	}).Info("Edge daemon starting")

	metrics.InitRegistry()

	var fetcher oddsapi.Fetcher
	if cfg.OddsAPI.APIKey != "" {
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
		fetcher = client
		appLog.WithField("source", client.Name()).Info("Odds fetcher initialized")
	} else {
		appLog.WithField("props_path", cfg.Feeds.PropsPath).
			Info("No API key configured; reading props from feed file")
	}

	pipe := pipeline.New(cfg, fetcher, appLog)

	runOnce := func(ctx context.Context) error {
		result, err := pipe.Run(ctx)
		if err != nil {
			return err
		}
		appLog.WithField("run_id", result.RunID.String()).Info(report.Summary(result))

		edgesPath := report.TimestampedPath(cfg.Report.OutDir, "edges")
		if err := report.WriteEdgesCSV(result, edgesPath); err != nil {
			return err
		}
		if cfg.Report.WriteUnmatched && len(result.Unmatched) > 0 {
			unmatchedPath := report.TimestampedPath(cfg.Report.OutDir, "unmatched")
			if err := report.WriteUnmatchedCSV(result, unmatchedPath); err != nil {
				return err
			}
		}
		return nil
	}

	sched := scheduler.NewScheduler(runOnce, 10*time.Minute, appLog)
	if cfg.Schedule.Cron != "" {
		if err := sched.ScheduleCron(cfg.Schedule.Cron); err != nil {
			appLog.WithError(err).Fatal("Failed to schedule cron job")
		}
	}
	if cfg.Schedule.IntervalSeconds > 0 {
		if err := sched.ScheduleInterval(cfg.Schedule.IntervalSeconds); err != nil {
			appLog.WithError(err).Fatal("Failed to schedule interval job")
		}
	}

	var metricsServer *metrics.Server
	if cfg.Metrics.Enabled {
		metricsServer = metrics.NewServer(cfg.Metrics.Port, cfg.Metrics.Path, cfg.App.Name, appLog)
		go metricsServer.Start()
	}

	// First run happens immediately; the scheduler covers the rest.
	if err := runOnce(context.Background()); err != nil {
		appLog.WithError(err).Error("Initial run failed")
	}
	if err := sched.Start(); err != nil {
		appLog.WithError(err).Fatal("Failed to start scheduler")
	}
	appLog.WithField("next_run", sched.NextRun()).Info("Daemon running")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	appLog.WithField("signal", sig).Info("Shutdown signal received")

	if err := sched.Stop(); err != nil {
		appLog.WithError(err).Error("Error stopping scheduler")
	}
	if metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Stop(ctx); err != nil {
			appLog.WithError(err).Error("Error stopping metrics server")
		}
	}
	appLog.Info("Edge daemon shut down")
}
