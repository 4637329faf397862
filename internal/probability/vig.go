package probability

import (
	"math"
	"strings"

	"github.com/yourusername/prop-edge/internal/models"
)

// DevigMethod selects how the bookmaker margin is removed from a two-way
// market before comparing to model probabilities.
type DevigMethod string

const (
	DevigNone           DevigMethod = "none"
	DevigMultiplicative DevigMethod = "multiplicative"
	DevigPower          DevigMethod = "power"
)

// ParseDevigMethod validates a configured de-vig method string.
func ParseDevigMethod(raw string) (DevigMethod, bool) {
	switch DevigMethod(strings.ToLower(strings.TrimSpace(raw))) {
	case DevigNone, "":
		return DevigNone, true
	case DevigMultiplicative:
		return DevigMultiplicative, true
	case DevigPower:
		return DevigPower, true
	}
	return "", false
}

// MarketHold returns the bookmaker margin for an over/under pair: the sum of
// raw implied probabilities minus one, floored at zero.
func MarketHold(over, under models.Price) (float64, error) {
	overProb, err := Implied(over)
	if err != nil {
		return 0, err
	}
	underProb, err := Implied(under)
	if err != nil {
		return 0, err
	}
	return math.Max(overProb+underProb-1.0, 0.0), nil
}

// ImpliedPair converts an over/under price pair to implied probabilities,
// optionally de-vigged so the pair sums to one.
func ImpliedPair(over, under models.Price, method DevigMethod) (float64, float64, error) {
	overProb, err := Implied(over)
	if err != nil {
		return 0, 0, err
	}
	underProb, err := Implied(under)
	if err != nil {
		return 0, 0, err
	}
	switch method {
	case DevigMultiplicative:
		overProb, underProb = removeVig(overProb, underProb)
	case DevigPower:
		overProb, underProb = removeVigPower(overProb, underProb)
	}
	return overProb, underProb, nil
}

// removeVig normalizes the pair proportionally.
func removeVig(a, b float64) (float64, float64) {
	total := a + b
	if total <= 0 {
		return a, b
	}
	return a / total, b / total
}

// removeVigPower finds k such that a^k + b^k = 1 and deflates each side by
// that exponent. Deflates longshots more than favorites, which compensates
// for the favorite-longshot bias.
func removeVigPower(a, b float64) (float64, float64) {
	if a <= 0 || b <= 0 {
		return a, b
	}
	if math.Abs(a+b-1.0) < 1e-9 {
		return a, b
	}
	k := findPowerExponent(a, b)
	return math.Pow(a, k), math.Pow(b, k)
}

// findPowerExponent solves a^k + b^k = 1 by bisection. For 0 < p < 1 the sum
// is monotone decreasing in k, so the search brackets cleanly.
func findPowerExponent(a, b float64) float64 {
	const (
		tolerance = 1e-9
		maxIters  = 100
	)
	low, high := 0.01, 10.0
	for i := 0; i < maxIters; i++ {
		mid := (low + high) / 2
		sum := math.Pow(a, mid) + math.Pow(b, mid)
		if math.Abs(sum-1.0) < tolerance {
			return mid
		}
		if sum > 1 {
			low = mid
		} else {
			high = mid
		}
	}
	return (low + high) / 2
}
