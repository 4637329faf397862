package edge

import (
	"math"

	"github.com/yourusername/prop-edge/internal/models"
)

// TierThresholds hold the EV and z-score cutoffs for recommendation tiers.
// Yardage markets use looser z cutoffs than count markets because their
// distributions are wider relative to the posted line.
type TierThresholds struct {
	RecommendEV  float64
	ShortlistEV  float64
	ZYards       float64
	ZYardsStrong float64
	ZCount       float64
	ZCountStrong float64
}

// DefaultTierThresholds mirrors the documented defaults.
func DefaultTierThresholds() TierThresholds {
	return TierThresholds{
		RecommendEV:  0.05,
		ShortlistEV:  0.03,
		ZYards:       0.40,
		ZYardsStrong: 0.65,
		ZCount:       0.55,
		ZCountStrong: 0.80,
	}
}

// TierFor buckets a result by EV and standardized projection distance.
func TierFor(ev, zScore float64, market models.Market, t TierThresholds) models.Tier {
	absZ := math.Abs(zScore)
	strong, moderate := t.ZCountStrong, t.ZCount
	if market.IsYardMarket() {
		strong, moderate = t.ZYardsStrong, t.ZYards
	}
	if ev >= t.RecommendEV && absZ >= strong {
		return models.TierRecommend
	}
	if ev >= t.ShortlistEV && absZ >= moderate {
		return models.TierShortlist
	}
	return models.TierPass
}
