// Package probability converts bookmaker odds and projection distributions
// into comparable probabilities.
package probability

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/yourusername/prop-edge/internal/models"
)

// AmericanImplied converts American odds to implied probability.
// -150 implies 0.60; +150 implies 0.40. Zero odds are degenerate.
func AmericanImplied(odds int) (float64, error) {
	if odds == 0 {
		return 0, &models.InvalidOddsError{Reason: "American odds must be non-zero"}
	}
	value := float64(odds)
	if value > 0 {
		return 100.0 / (value + 100.0), nil
	}
	return -value / (-value + 100.0), nil
}

// DecimalImplied converts decimal odds to implied probability (1/d).
func DecimalImplied(d decimal.Decimal) (float64, error) {
	value, _ := d.Float64()
	if math.IsNaN(value) || value < 1 || value == 0 {
		return 0, &models.InvalidOddsError{Raw: d.String(), Reason: "decimal odds must be >= 1"}
	}
	return 1.0 / value, nil
}

// Implied converts a price to implied probability according to its format.
func Implied(price models.Price) (float64, error) {
	if price.Format == models.FormatDecimal {
		return DecimalImplied(price.Decimal)
	}
	return AmericanImplied(price.American)
}

// Payout returns the net profit per unit staked at the given price.
func Payout(price models.Price) (float64, error) {
	if price.Format == models.FormatDecimal {
		value, _ := price.Decimal.Float64()
		if math.IsNaN(value) || value <= 1 {
			return 0, &models.InvalidOddsError{Raw: price.Decimal.String(), Reason: "decimal odds must be > 1"}
		}
		return value - 1, nil
	}
	if price.American == 0 {
		return 0, &models.InvalidOddsError{Reason: "American odds must be non-zero"}
	}
	if price.American > 0 {
		return float64(price.American) / 100.0, nil
	}
	return 100.0 / math.Abs(float64(price.American)), nil
}

// ImpliedToAmerican converts a win probability back to American odds,
// rounded to the nearest integer.
func ImpliedToAmerican(prob float64) (int, error) {
	if prob <= 0 || prob >= 1 {
		return 0, &models.InvalidOddsError{Reason: "probability must be strictly between 0 and 1"}
	}
	if prob > 0.5 {
		return int(math.Round(-100.0 * prob / (1.0 - prob))), nil
	}
	if prob < 0.5 {
		return int(math.Round(100.0 * (1.0 - prob) / prob)), nil
	}
	return -100, nil
}
