package matcher

import "testing"

func TestTokenSortScorerIgnoresTokenOrder(t *testing.T) {
	scorer := NewTokenSortScorer()
	if got := scorer.Score("smith jon", "jon smith"); got != 100 {
		t.Fatalf("reordered tokens should score 100, got %.1f", got)
	}
}

func TestTokenSortScorerIdentical(t *testing.T) {
	scorer := NewTokenSortScorer()
	if got := scorer.Score("jon smith", "jon smith"); got != 100 {
		t.Fatalf("identical strings should score 100, got %.1f", got)
	}
}

func TestTokenSortScorerPenalizesDistance(t *testing.T) {
	scorer := NewTokenSortScorer()
	near := scorer.Score("jonathan smith", "jonathon smith")
	far := scorer.Score("jonathan smith", "marcus jones")
	if near <= far {
		t.Fatalf("near pair (%.1f) should outscore far pair (%.1f)", near, far)
	}
	if near < 85 {
		t.Fatalf("one-letter variant should clear the default threshold, got %.1f", near)
	}
}

func TestJaroWinklerScorerRange(t *testing.T) {
	scorer := NewJaroWinklerScorer()
	got := scorer.Score("jon smith", "jonathan smith")
	if got <= 0 || got >= 100 {
		t.Fatalf("expected score strictly inside (0, 100), got %.1f", got)
	}
}
