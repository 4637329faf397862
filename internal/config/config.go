// Package config provides configuration management for the prop edge engine.
package config

import (
	"time"

	"github.com/yourusername/prop-edge/internal/edge"
	"github.com/yourusername/prop-edge/internal/feeds"
	"github.com/yourusername/prop-edge/internal/models"
	"github.com/yourusername/prop-edge/internal/probability"
)

// Config represents the complete application configuration. It is immutable
// for the duration of a run and threaded explicitly into each component.
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Feeds    FeedsConfig    `mapstructure:"feeds" validate:"required"`
	OddsAPI  OddsAPIConfig  `mapstructure:"odds_api" validate:"required"`
	Matching MatchingConfig `mapstructure:"matching" validate:"required"`
	Model    ModelConfig    `mapstructure:"model" validate:"required"`
	Staking  StakingConfig  `mapstructure:"staking" validate:"required"`
	Report   ReportConfig   `mapstructure:"report" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics" validate:"required"`
	Schedule ScheduleConfig `mapstructure:"schedule" validate:"required"`
}

// AppConfig represents application-level configuration.
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// FeedsConfig locates the tabular input feeds.
type FeedsConfig struct {
	PropsPath       string `mapstructure:"props_path"`
	ProjectionsPath string `mapstructure:"projections_path"`
	OverridesPath   string `mapstructure:"overrides_path"`
	OddsFormat      string `mapstructure:"odds_format" validate:"required,oddsformat"`
}

// OddsAPIConfig configures the external odds fetcher.
type OddsAPIConfig struct {
	BaseURL         string   `mapstructure:"base_url" validate:"required,url"`
	APIKey          string   `mapstructure:"api_key"`
	Sport           string   `mapstructure:"sport" validate:"required"`
	Regions         string   `mapstructure:"regions" validate:"required"`
	Markets         []string `mapstructure:"markets" validate:"required,min=1,markets"`
	Books           []string `mapstructure:"books"`
	TimeoutSeconds  int      `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	MaxRetries      int      `mapstructure:"max_retries" validate:"gte=0"`
	RateLimit       float64  `mapstructure:"rate_limit" validate:"required,gt=0"`
	CacheTTLSeconds int      `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
}

// MatchingConfig tunes the fuzzy join.
type MatchingConfig struct {
	MinScore float64 `mapstructure:"min_score" validate:"gte=0,lte=100"`
	Scorer   string  `mapstructure:"scorer" validate:"required,scorer"`
}

// ModelConfig tunes probability computation.
type ModelConfig struct {
	Probability   string  `mapstructure:"probability" validate:"required,probmodel"`
	LogisticSlope float64 `mapstructure:"logistic_slope" validate:"gt=0"`
	Devig         string  `mapstructure:"devig" validate:"devig"`
	OddsMin       int     `mapstructure:"odds_min"`
	OddsMax       int     `mapstructure:"odds_max"`
	MaxVig        float64 `mapstructure:"max_vig" validate:"gte=0"`
}

// StakingConfig tunes Kelly-based unit sizing.
type StakingConfig struct {
	BankrollUnits   float64 `mapstructure:"bankroll_units" validate:"required,gt=0"`
	KellyMultiplier float64 `mapstructure:"kelly_multiplier" validate:"required,gt=0,lte=1"`
	MinUnit         float64 `mapstructure:"min_unit" validate:"gte=0"`
	MaxUnit         float64 `mapstructure:"max_unit" validate:"gte=0"`
}

// ReportConfig configures report output.
type ReportConfig struct {
	OutDir         string `mapstructure:"out_dir" validate:"required"`
	WriteUnmatched bool   `mapstructure:"write_unmatched"`
}

// MetricsConfig represents metrics and monitoring configuration.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// ScheduleConfig drives the daemon's periodic runs.
type ScheduleConfig struct {
	IntervalSeconds int    `mapstructure:"interval_seconds" validate:"gte=0"`
	Cron            string `mapstructure:"cron"`
}

// IsDevelopment checks if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// OddsFormat returns the validated odds format for feed parsing.
func (c *Config) OddsFormat() models.OddsFormat {
	format, ok := models.ParseOddsFormat(c.Feeds.OddsFormat)
	if !ok {
		return models.FormatAmerican
	}
	return format
}

// Guardrails returns the configured odds ingest filter.
func (c *Config) Guardrails() feeds.Guardrails {
	return feeds.Guardrails{OddsMin: c.Model.OddsMin, OddsMax: c.Model.OddsMax}
}

// EdgeConfig assembles the immutable edge evaluation parameters.
func (c *Config) EdgeConfig() edge.Config {
	cfg := edge.DefaultConfig()
	if method, ok := probability.ParseDevigMethod(c.Model.Devig); ok {
		cfg.Devig = method
	}
	if model, ok := probability.ParseModel(c.Model.Probability); ok {
		cfg.Model.Model = model
	}
	cfg.Model.LogisticSlope = c.Model.LogisticSlope
	cfg.MaxVig = c.Model.MaxVig
	cfg.KellyMultiplier = c.Staking.KellyMultiplier
	cfg.BankrollUnits = c.Staking.BankrollUnits
	cfg.MinUnit = c.Staking.MinUnit
	cfg.MaxUnit = c.Staking.MaxUnit
	return cfg
}

// FetchTimeout returns the odds API request timeout.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.OddsAPI.TimeoutSeconds) * time.Second
}

// FetchCacheTTL returns the odds API response cache TTL.
func (c *Config) FetchCacheTTL() time.Duration {
	return time.Duration(c.OddsAPI.CacheTTLSeconds) * time.Second
}
