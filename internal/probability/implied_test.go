package probability

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/yourusername/prop-edge/internal/models"
)

func TestAmericanImplied(t *testing.T) {
	cases := []struct {
		odds int
		want float64
	}{
		{-150, 0.60},
		{+150, 0.40},
		{-110, 110.0 / 210.0},
		{+100, 0.50},
		{-100, 0.50},
		{+500, 100.0 / 600.0},
	}
	for _, tc := range cases {
		got, err := AmericanImplied(tc.odds)
		if err != nil {
			t.Fatalf("AmericanImplied(%d) error: %v", tc.odds, err)
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("AmericanImplied(%d) = %v, want %v", tc.odds, got, tc.want)
		}
	}
}

func TestAmericanImpliedZero(t *testing.T) {
	_, err := AmericanImplied(0)
	if !errors.Is(err, models.ErrInvalidOdds) {
		t.Fatalf("expected ErrInvalidOdds, got %v", err)
	}
}

func TestDecimalImplied(t *testing.T) {
	got, err := DecimalImplied(decimal.NewFromFloat(2.5))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-0.4) > 1e-12 {
		t.Fatalf("DecimalImplied(2.5) = %v, want 0.4", got)
	}
}

func TestDecimalImpliedBelowOne(t *testing.T) {
	_, err := DecimalImplied(decimal.NewFromFloat(0.9))
	if !errors.Is(err, models.ErrInvalidOdds) {
		t.Fatalf("expected ErrInvalidOdds, got %v", err)
	}
}

func TestPayout(t *testing.T) {
	cases := []struct {
		price models.Price
		want  float64
	}{
		{models.AmericanPrice(+150), 1.5},
		{models.AmericanPrice(-150), 100.0 / 150.0},
		{models.DecimalPrice(decimal.NewFromFloat(2.5)), 1.5},
	}
	for _, tc := range cases {
		got, err := Payout(tc.price)
		if err != nil {
			t.Fatalf("Payout(%v) error: %v", tc.price, err)
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Payout(%v) = %v, want %v", tc.price, got, tc.want)
		}
	}
}

func TestImpliedToAmericanRoundTrip(t *testing.T) {
	for _, odds := range []int{-150, 150, -110, 320, -250} {
		prob, err := AmericanImplied(odds)
		if err != nil {
			t.Fatal(err)
		}
		back, err := ImpliedToAmerican(prob)
		if err != nil {
			t.Fatal(err)
		}
		if back != odds {
			t.Errorf("round trip %d -> %v -> %d", odds, prob, back)
		}
	}
}
