package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yourusername/prop-edge/internal/probability"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if cfg.Matching.MinScore != 85 {
		t.Fatalf("MinScore = %v, want 85", cfg.Matching.MinScore)
	}
	if cfg.Model.Probability != "logistic" || cfg.Model.LogisticSlope != 1.0 {
		t.Fatalf("unexpected model defaults: %+v", cfg.Model)
	}
	if cfg.Model.OddsMin != -200 || cfg.Model.OddsMax != 500 {
		t.Fatalf("unexpected odds guardrails: %+v", cfg.Model)
	}
	if cfg.Staking.KellyMultiplier != 0.5 || cfg.Staking.MaxUnit != 1.5 {
		t.Fatalf("unexpected staking defaults: %+v", cfg.Staking)
	}
	if len(cfg.OddsAPI.Markets) != 8 {
		t.Fatalf("expected 8 default markets, got %d", len(cfg.OddsAPI.Markets))
	}
}

func TestLoadExpandsEnvAndOverrides(t *testing.T) {
	t.Setenv("TEST_PROP_EDGE_KEY", "secret-key")

	yaml := `
app:
  environment: staging
odds_api:
  api_key: ${TEST_PROP_EDGE_KEY}
matching:
  min_score: 90
model:
  devig: multiplicative
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OddsAPI.APIKey != "secret-key" {
		t.Fatalf("APIKey = %q, want expansion from env", cfg.OddsAPI.APIKey)
	}
	if cfg.App.Environment != "staging" {
		t.Fatalf("Environment = %q", cfg.App.Environment)
	}
	if cfg.Matching.MinScore != 90 {
		t.Fatalf("MinScore = %v, want file override 90", cfg.Matching.MinScore)
	}
	// Keys absent from the file keep their defaults.
	if cfg.App.Name != "prop-edge" {
		t.Fatalf("Name = %q, want default", cfg.App.Name)
	}
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad environment", func(c *Config) { c.App.Environment = "qa" }},
		{"bad log level", func(c *Config) { c.App.LogLevel = "verbose" }},
		{"bad odds format", func(c *Config) { c.Feeds.OddsFormat = "fractional" }},
		{"bad scorer", func(c *Config) { c.Matching.Scorer = "soundex" }},
		{"bad devig", func(c *Config) { c.Model.Devig = "additive" }},
		{"unsupported market", func(c *Config) { c.OddsAPI.Markets = []string{"long_snaps"} }},
		{"min score out of range", func(c *Config) { c.Matching.MinScore = 101 }},
		{"inverted guardrails", func(c *Config) { c.Model.OddsMin = 600 }},
		{"inverted units", func(c *Config) { c.Staking.MinUnit = 2.0 }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(cfg)
		if err := Validate(cfg); err == nil {
			t.Errorf("%s: expected validation failure", tc.name)
		}
	}
}

func TestValidateProductionRequiresAPIKey(t *testing.T) {
	cfg := Default()
	cfg.App.Environment = "production"
	cfg.OddsAPI.APIKey = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("production without an API key must fail validation")
	}
	cfg.OddsAPI.APIKey = "key"
	if err := Validate(cfg); err != nil {
		t.Fatalf("production with an API key should validate: %v", err)
	}
}

func TestEdgeConfigMapping(t *testing.T) {
	cfg := Default()
	cfg.Model.Devig = "power"
	cfg.Model.Probability = "normal"
	cfg.Staking.KellyMultiplier = 0.25

	ec := cfg.EdgeConfig()
	if ec.Devig != probability.DevigPower {
		t.Fatalf("Devig = %v", ec.Devig)
	}
	if ec.Model.Model != probability.ModelNormal {
		t.Fatalf("Model = %v", ec.Model.Model)
	}
	if ec.KellyMultiplier != 0.25 {
		t.Fatalf("KellyMultiplier = %v", ec.KellyMultiplier)
	}
}
