package probability

import (
	"math"
	"testing"

	"github.com/yourusername/prop-edge/internal/models"
)

func TestMarketHold(t *testing.T) {
	hold, err := MarketHold(models.AmericanPrice(-110), models.AmericanPrice(-110))
	if err != nil {
		t.Fatal(err)
	}
	want := 2*(110.0/210.0) - 1
	if math.Abs(hold-want) > 1e-12 {
		t.Fatalf("MarketHold = %v, want %v", hold, want)
	}
}

func TestMarketHoldFloorsAtZero(t *testing.T) {
	// +120 both sides sums under one; the hold never goes negative.
	hold, err := MarketHold(models.AmericanPrice(120), models.AmericanPrice(120))
	if err != nil {
		t.Fatal(err)
	}
	if hold != 0 {
		t.Fatalf("MarketHold = %v, want 0", hold)
	}
}

func TestImpliedPairNoneKeepsVig(t *testing.T) {
	over, under, err := ImpliedPair(models.AmericanPrice(-110), models.AmericanPrice(-110), DevigNone)
	if err != nil {
		t.Fatal(err)
	}
	if over+under <= 1 {
		t.Fatalf("raw pair should sum above one, got %v", over+under)
	}
}

func TestImpliedPairMultiplicative(t *testing.T) {
	over, under, err := ImpliedPair(models.AmericanPrice(-150), models.AmericanPrice(130), DevigMultiplicative)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(over+under-1.0) > 1e-12 {
		t.Fatalf("de-vigged pair should sum to one, got %v", over+under)
	}
	if over <= under {
		t.Fatal("favorite should keep the larger probability")
	}
}

func TestImpliedPairPower(t *testing.T) {
	over, under, err := ImpliedPair(models.AmericanPrice(-200), models.AmericanPrice(170), DevigPower)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(over+under-1.0) > 1e-6 {
		t.Fatalf("power de-vig should sum to one, got %v", over+under)
	}

	// Power deflates the longshot more than proportional scaling does.
	_, underMult, err := ImpliedPair(models.AmericanPrice(-200), models.AmericanPrice(170), DevigMultiplicative)
	if err != nil {
		t.Fatal(err)
	}
	if under >= underMult {
		t.Fatalf("power longshot %v should sit below multiplicative %v", under, underMult)
	}
}

func TestParseDevigMethod(t *testing.T) {
	if method, ok := ParseDevigMethod(""); !ok || method != DevigNone {
		t.Fatalf("empty method should parse as none, got %v %v", method, ok)
	}
	if _, ok := ParseDevigMethod("additive"); ok {
		t.Fatal("unknown method should not parse")
	}
}
