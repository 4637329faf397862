// Package edge combines market-implied and model probabilities into ranked
// betting edges for matched props.
package edge

import (
	"github.com/yourusername/prop-edge/internal/models"
	"github.com/yourusername/prop-edge/internal/probability"
)

// Config carries the immutable per-run parameters for edge evaluation.
type Config struct {
	Devig           probability.DevigMethod
	Model           probability.ModelConfig
	MaxVig          float64 // 0 disables the hold filter
	KellyMultiplier float64
	BankrollUnits   float64
	MinUnit         float64
	MaxUnit         float64
	Tiers           TierThresholds
}

// DefaultConfig mirrors the documented defaults.
func DefaultConfig() Config {
	return Config{
		Devig:           probability.DevigNone,
		Model:           probability.ModelConfig{Model: probability.ModelLogistic, LogisticSlope: probability.DefaultLogisticSlope},
		MaxVig:          0.06,
		KellyMultiplier: 0.5,
		BankrollUnits:   100,
		MinUnit:         0.2,
		MaxUnit:         1.5,
		Tiers:           DefaultTierThresholds(),
	}
}

// Compute derives both side edges and the recommended side from the two
// probability representations. The recommendation is whichever side carries
// the larger strictly positive edge; SideNone when neither does, so a
// negative-expectation side is never recommended.
func Compute(impliedOver, impliedUnder, modelOver float64) (edgeOver, edgeUnder float64, side models.Side) {
	edgeOver = modelOver - impliedOver
	edgeUnder = (1.0 - modelOver) - impliedUnder
	switch {
	case edgeOver <= 0 && edgeUnder <= 0:
		side = models.SideNone
	case edgeOver >= edgeUnder:
		side = models.SideOver
	default:
		side = models.SideUnder
	}
	return edgeOver, edgeUnder, side
}

// Evaluate computes the full edge result for one matched pair. Per-row
// probability failures (bad odds, missing dispersion) are reported on the
// result as unavailable rather than returned as errors, so one bad market
// never blocks a run.
func Evaluate(pair models.MatchedPair, cfg Config) models.EdgeResult {
	result := models.EdgeResult{Pair: pair, Side: models.SideNone, Tier: models.TierPass}
	prop := pair.Prop

	hold, err := probability.MarketHold(prop.OverPrice, prop.UnderPrice)
	if err != nil {
		return unavailable(result, err)
	}
	result.Hold = hold
	if cfg.MaxVig > 0 && hold > cfg.MaxVig {
		result.Unavailable = true
		result.Reason = "market hold above maximum vig"
		return result
	}

	impliedOver, impliedUnder, err := probability.ImpliedPair(prop.OverPrice, prop.UnderPrice, cfg.Devig)
	if err != nil {
		return unavailable(result, err)
	}
	result.ImpliedOver = impliedOver
	result.ImpliedUnder = impliedUnder

	projection := pair.Projection
	modelOver, err := probability.Over(prop.Line, projection.Mean, projection.Stdev, prop.Market, cfg.Model)
	if err != nil {
		return unavailable(result, err)
	}
	result.ModelOver = modelOver

	result.EdgeOver, result.EdgeUnder, result.Side = Compute(impliedOver, impliedUnder, modelOver)
	z := probability.ZScore(prop.Line, projection.Mean, projection.Stdev)

	switch result.Side {
	case models.SideOver:
		result.Edge = result.EdgeOver
		result.ZScore = z
		result.EV, result.Kelly, result.UnitSize = stake(modelOver, prop.OverPrice, cfg)
	case models.SideUnder:
		result.Edge = result.EdgeUnder
		result.ZScore = -z
		result.EV, result.Kelly, result.UnitSize = stake(1.0-modelOver, prop.UnderPrice, cfg)
	default:
		result.Edge = 0
		result.ZScore = z
	}

	if result.Side != models.SideNone {
		result.Tier = TierFor(result.EV, result.ZScore, prop.Market, cfg.Tiers)
	}
	return result
}

func unavailable(result models.EdgeResult, err error) models.EdgeResult {
	result.Unavailable = true
	result.Reason = err.Error()
	result.Side = models.SideNone
	result.Tier = models.TierPass
	return result
}

func stake(prob float64, price models.Price, cfg Config) (ev, kelly, unit float64) {
	payout, err := probability.Payout(price)
	if err != nil {
		return 0, 0, 0
	}
	ev = EVPerDollar(prob, payout)
	kelly = KellyFraction(prob, payout) * cfg.KellyMultiplier
	unit = UnitSize(kelly, cfg)
	return ev, kelly, unit
}
