package probability

import (
	"math"
	"strings"

	"github.com/yourusername/prop-edge/internal/models"
)

// Model selects the transform from standardized projection distance to
// probability.
type Model string

const (
	ModelLogistic Model = "logistic"
	ModelNormal   Model = "normal"
)

// DefaultLogisticSlope is the slope applied to (mean-line)/stdev when none is
// configured.
const DefaultLogisticSlope = 1.0

// ParseModel validates a configured probability model string.
func ParseModel(raw string) (Model, bool) {
	switch Model(strings.ToLower(strings.TrimSpace(raw))) {
	case ModelLogistic, "":
		return ModelLogistic, true
	case ModelNormal:
		return ModelNormal, true
	}
	return "", false
}

// ModelConfig parameterizes projection probabilities for a run.
type ModelConfig struct {
	Model         Model
	LogisticSlope float64
}

// Over returns the probability that the projected stat exceeds the line.
// A missing or zero stdev fails with MissingDispersionError rather than
// collapsing to a degenerate 0 or 1; callers surface that as "edge
// unavailable" for the market.
func Over(line, mean float64, stdev models.Dispersion, market models.Market, cfg ModelConfig) (float64, error) {
	if !stdev.Usable() {
		return 0, &models.MissingDispersionError{Market: market}
	}
	z := (mean - line) / stdev.Value
	switch cfg.Model {
	case ModelNormal:
		return normalCDF(z), nil
	default:
		slope := cfg.LogisticSlope
		if slope <= 0 {
			slope = DefaultLogisticSlope
		}
		return 1.0 / (1.0 + math.Exp(-slope*z)), nil
	}
}

// Under returns the probability of falling short of the line.
func Under(line, mean float64, stdev models.Dispersion, market models.Market, cfg ModelConfig) (float64, error) {
	over, err := Over(line, mean, stdev, market, cfg)
	if err != nil {
		return 0, err
	}
	return 1.0 - over, nil
}

// ZScore returns the standardized distance of the projection mean from the
// line for the over side. Flip the sign for the under side.
func ZScore(line, mean float64, stdev models.Dispersion) float64 {
	if !stdev.Usable() {
		return 0
	}
	return (mean - line) / stdev.Value
}

// normalCDF evaluates the standard normal CDF via math.Erf.
func normalCDF(z float64) float64 {
	return 0.5 * (1.0 + math.Erf(z/math.Sqrt2))
}
