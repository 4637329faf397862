package models

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// OddsFormat selects how raw odds values are interpreted.
type OddsFormat string

const (
	FormatAmerican OddsFormat = "american"
	FormatDecimal  OddsFormat = "decimal"
	FormatAuto     OddsFormat = "auto"
)

// ParseOddsFormat validates a configured odds format string.
func ParseOddsFormat(raw string) (OddsFormat, bool) {
	switch OddsFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatAmerican:
		return FormatAmerican, true
	case FormatDecimal:
		return FormatDecimal, true
	case FormatAuto:
		return FormatAuto, true
	}
	return "", false
}

// Price is a quoted odds price in either American or decimal format.
// Exactly one representation is populated, recorded by Format.
type Price struct {
	American int             `json:"american,omitempty"`
	Decimal  decimal.Decimal `json:"decimal,omitempty"`
	Format   OddsFormat      `json:"format"`
}

// AmericanPrice builds an American-odds price.
func AmericanPrice(odds int) Price {
	return Price{American: odds, Format: FormatAmerican}
}

// DecimalPrice builds a decimal-odds price.
func DecimalPrice(d decimal.Decimal) Price {
	return Price{Decimal: d, Format: FormatDecimal}
}

// ParsePrice parses a raw odds string under the given format. With FormatAuto
// an integral value with absolute magnitude >= 100 is read as American odds
// and anything else as decimal odds.
func ParsePrice(raw string, format OddsFormat) (Price, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Price{}, &InvalidOddsError{Raw: raw, Reason: "empty odds value"}
	}

	switch format {
	case FormatAmerican:
		value, err := strconv.ParseFloat(strings.TrimPrefix(text, "+"), 64)
		if err != nil || math.IsNaN(value) {
			return Price{}, &InvalidOddsError{Raw: raw, Reason: "not a numeric American price"}
		}
		if value != math.Trunc(value) {
			return Price{}, &InvalidOddsError{Raw: raw, Reason: "American price must be integral"}
		}
		return AmericanPrice(int(value)), nil
	case FormatDecimal:
		d, err := decimal.NewFromString(text)
		if err != nil {
			return Price{}, &InvalidOddsError{Raw: raw, Reason: "not a numeric decimal price"}
		}
		return DecimalPrice(d), nil
	case FormatAuto:
		value, err := strconv.ParseFloat(strings.TrimPrefix(text, "+"), 64)
		if err != nil || math.IsNaN(value) {
			return Price{}, &InvalidOddsError{Raw: raw, Reason: "not a numeric price"}
		}
		if value == math.Trunc(value) && math.Abs(value) >= 100 {
			return AmericanPrice(int(value)), nil
		}
		d, err := decimal.NewFromString(text)
		if err != nil {
			return Price{}, &InvalidOddsError{Raw: raw, Reason: "not a numeric price"}
		}
		return DecimalPrice(d), nil
	}
	return Price{}, &InvalidOddsError{Raw: raw, Reason: "unknown odds format " + string(format)}
}

// String renders the price in its native notation.
func (p Price) String() string {
	if p.Format == FormatDecimal {
		return p.Decimal.String()
	}
	if p.American > 0 {
		return "+" + strconv.Itoa(p.American)
	}
	return strconv.Itoa(p.American)
}
