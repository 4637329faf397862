package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "PROP_EDGE"

// Load reads and parses the configuration from file and environment
// variables. Environment variable placeholders in the YAML file (${VAR_NAME})
// are expanded before parsing; keys absent from the file fall back to
// defaults.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration used when no config file is supplied.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	// Defaults are statically known; unmarshal cannot fail.
	_ = v.Unmarshal(cfg)
	if key := os.Getenv("ODDS_API_KEY"); key != "" {
		cfg.OddsAPI.APIKey = key
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "prop-edge")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("feeds.props_path", "data/props.csv")
	v.SetDefault("feeds.projections_path", "data/projections.csv")
	v.SetDefault("feeds.overrides_path", "data/manual_overrides.csv")
	v.SetDefault("feeds.odds_format", "american")

	v.SetDefault("odds_api.base_url", "https://api.the-odds-api.com/v4")
	v.SetDefault("odds_api.api_key", "")
	v.SetDefault("odds_api.sport", "americanfootball_nfl")
	v.SetDefault("odds_api.regions", "us")
	v.SetDefault("odds_api.markets", []string{
		"player_pass_yds",
		"player_pass_tds",
		"player_pass_interceptions",
		"player_rush_yds",
		"player_rush_tds",
		"player_receptions",
		"player_reception_yds",
		"player_reception_tds",
	})
	v.SetDefault("odds_api.books", []string{
		"DraftKings", "FanDuel", "BetMGM", "Caesars", "ESPN BET", "Fanatics", "Bally Bet",
	})
	v.SetDefault("odds_api.timeout_seconds", 15)
	v.SetDefault("odds_api.max_retries", 5)
	v.SetDefault("odds_api.rate_limit", 5.0)
	v.SetDefault("odds_api.cache_ttl_seconds", 60)

	v.SetDefault("matching.min_score", 85.0)
	v.SetDefault("matching.scorer", "token_sort")

	v.SetDefault("model.probability", "logistic")
	v.SetDefault("model.logistic_slope", 1.0)
	v.SetDefault("model.devig", "none")
	v.SetDefault("model.odds_min", -200)
	v.SetDefault("model.odds_max", 500)
	v.SetDefault("model.max_vig", 0.06)

	v.SetDefault("staking.bankroll_units", 100.0)
	v.SetDefault("staking.kelly_multiplier", 0.5)
	v.SetDefault("staking.min_unit", 0.2)
	v.SetDefault("staking.max_unit", 1.5)

	v.SetDefault("report.out_dir", "out")
	v.SetDefault("report.write_unmatched", true)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("schedule.interval_seconds", 0)
	v.SetDefault("schedule.cron", "")
}
