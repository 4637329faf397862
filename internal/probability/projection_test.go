package probability

import (
	"errors"
	"math"
	"testing"

	"github.com/yourusername/prop-edge/internal/models"
)

func TestOverLogisticFavorsProjectionAboveLine(t *testing.T) {
	cfg := ModelConfig{Model: ModelLogistic, LogisticSlope: DefaultLogisticSlope}
	got, err := Over(65.5, 72.0, models.NewDispersion(9.0), models.MarketReceptionYds, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got <= 0.5 {
		t.Fatalf("mean above line must favor over, got %v", got)
	}
	want := 1.0 / (1.0 + math.Exp(-(72.0-65.5)/9.0))
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("Over = %v, want %v", got, want)
	}
}

func TestOverNormalModel(t *testing.T) {
	cfg := ModelConfig{Model: ModelNormal}
	got, err := Over(65.5, 65.5, models.NewDispersion(9.0), models.MarketReceptionYds, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("mean on the line should give 0.5, got %v", got)
	}
}

func TestOverMissingDispersion(t *testing.T) {
	cfg := ModelConfig{Model: ModelLogistic}
	_, err := Over(65.5, 72.0, models.Dispersion{}, models.MarketReceptionYds, cfg)
	if !errors.Is(err, models.ErrMissingDispersion) {
		t.Fatalf("absent stdev must fail, got %v", err)
	}

	_, err = Over(65.5, 72.0, models.NewDispersion(0), models.MarketReceptionYds, cfg)
	if !errors.Is(err, models.ErrMissingDispersion) {
		t.Fatalf("zero stdev must fail, got %v", err)
	}
}

func TestUnderComplementsOver(t *testing.T) {
	cfg := ModelConfig{Model: ModelLogistic, LogisticSlope: 1.5}
	over, err := Over(200.5, 215.0, models.NewDispersion(25.0), models.MarketPassYds, cfg)
	if err != nil {
		t.Fatal(err)
	}
	under, err := Under(200.5, 215.0, models.NewDispersion(25.0), models.MarketPassYds, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(over+under-1.0) > 1e-12 {
		t.Fatalf("over %v + under %v != 1", over, under)
	}
}

func TestZScore(t *testing.T) {
	z := ZScore(65.5, 72.0, models.NewDispersion(9.0))
	want := (72.0 - 65.5) / 9.0
	if math.Abs(z-want) > 1e-12 {
		t.Fatalf("ZScore = %v, want %v", z, want)
	}
	if ZScore(65.5, 72.0, models.Dispersion{}) != 0 {
		t.Fatal("missing stdev z-score should be 0")
	}
}

func TestParseModel(t *testing.T) {
	if model, ok := ParseModel(""); !ok || model != ModelLogistic {
		t.Fatalf("empty model should default to logistic, got %v %v", model, ok)
	}
	if _, ok := ParseModel("poisson"); ok {
		t.Fatal("unknown model should not parse")
	}
}
