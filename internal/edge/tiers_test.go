package edge

import (
	"testing"

	"github.com/yourusername/prop-edge/internal/models"
)

func TestTierForYardMarket(t *testing.T) {
	thresholds := DefaultTierThresholds()
	cases := []struct {
		ev, z float64
		want  models.Tier
	}{
		{0.06, 0.70, models.TierRecommend},
		{0.06, -0.70, models.TierRecommend},
		{0.04, 0.50, models.TierShortlist},
		{0.06, 0.30, models.TierPass},
		{0.01, 0.90, models.TierPass},
	}
	for _, tc := range cases {
		if got := TierFor(tc.ev, tc.z, models.MarketReceptionYds, thresholds); got != tc.want {
			t.Errorf("TierFor(%v, %v) = %v, want %v", tc.ev, tc.z, got, tc.want)
		}
	}
}

func TestTierForCountMarketStricterZ(t *testing.T) {
	thresholds := DefaultTierThresholds()
	// z=0.70 recommends on yards but only shortlists on receptions.
	if got := TierFor(0.06, 0.70, models.MarketReceptions, thresholds); got != models.TierShortlist {
		t.Fatalf("count market at z=0.70 should shortlist, got %v", got)
	}
	if got := TierFor(0.06, 0.85, models.MarketReceptions, thresholds); got != models.TierRecommend {
		t.Fatalf("count market at z=0.85 should recommend, got %v", got)
	}
}

func TestKellyFractionNeverNegative(t *testing.T) {
	if got := KellyFraction(0.30, 0.5); got != 0 {
		t.Fatalf("losing proposition should stake zero, got %v", got)
	}
}

func TestUnitSizeClamps(t *testing.T) {
	cfg := DefaultConfig()
	if got := UnitSize(0.5, cfg); got != cfg.MaxUnit {
		t.Fatalf("large kelly should clamp to max unit, got %v", got)
	}
	if got := UnitSize(0.0001, cfg); got != cfg.MinUnit {
		t.Fatalf("tiny positive kelly should clamp to min unit, got %v", got)
	}
	if got := UnitSize(0, cfg); got != 0 {
		t.Fatalf("zero kelly stakes nothing, got %v", got)
	}
}
