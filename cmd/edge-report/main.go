// Package main provides the one-shot edge report CLI.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/prop-edge/internal/config"
	"github.com/yourusername/prop-edge/internal/logger"
	"github.com/yourusername/prop-edge/internal/metrics"
	"github.com/yourusername/prop-edge/internal/pipeline"
	"github.com/yourusername/prop-edge/internal/report"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile      string
	propsPath       string
	projectionsPath string
	overridesPath   string
	outDir          string
	noCSV           bool

	cfg    *config.Config
	appLog *logrus.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
	rootCmd.Flags().StringVar(&propsPath, "props", "", "Props feed path (overrides config)")
	rootCmd.Flags().StringVar(&projectionsPath, "projections", "", "Projections feed path (overrides config)")
	rootCmd.Flags().StringVar(&overridesPath, "overrides", "", "Override table path (overrides config)")
	rootCmd.Flags().StringVar(&outDir, "out-dir", "", "Report output directory (overrides config)")
	rootCmd.Flags().BoolVar(&noCSV, "no-csv", false, "Skip CSV export, console report only")
}

var rootCmd = &cobra.Command{
	Use:     "edge-report",
	Short:   "Compute edges between sportsbook props and projections",
	Long:    `Joins a sportsbook props feed to a projections feed, computes implied and model probabilities and prints a ranked edge report.`,
	Version: fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		appLog = logger.NewLogger(cfg.App.LogLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	if configFile != "" {
		cfg, err = config.Load(configFile)
	} else {
		cfg = config.Default()
	}
	if err != nil {
		return err
	}

	if propsPath != "" {
		cfg.Feeds.PropsPath = propsPath
	}
	if projectionsPath != "" {
		cfg.Feeds.ProjectionsPath = projectionsPath
	}
	if overridesPath != "" {
		cfg.Feeds.OverridesPath = overridesPath
	}
	if outDir != "" {
		cfg.Report.OutDir = outDir
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
	}
	return config.Validate(cfg)
}

func run(ctx context.Context) error {
	metrics.InitRegistry()

	result, err := pipeline.New(cfg, nil, appLog).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Print(report.GenerateConsoleReport(result))

	if !noCSV {
		edgesPath := report.TimestampedPath(cfg.Report.OutDir, "edges")
		if err := report.WriteEdgesCSV(result, edgesPath); err != nil {
			return fmt.Errorf("writing edges CSV: %w", err)
		}
		appLog.WithField("path", edgesPath).Info("Edges exported")

		if cfg.Report.WriteUnmatched && len(result.Unmatched) > 0 {
			unmatchedPath := report.TimestampedPath(cfg.Report.OutDir, "unmatched")
			if err := report.WriteUnmatchedCSV(result, unmatchedPath); err != nil {
				return fmt.Errorf("writing unmatched CSV: %w", err)
			}
			appLog.WithField("path", unmatchedPath).Info("Unmatched props exported")
		}
	}
	return nil
}
