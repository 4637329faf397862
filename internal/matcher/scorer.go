package matcher

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Scorer computes a name similarity score on a 0-100 scale. Implementations
// must be deterministic; the matcher treats the scorer as a pluggable
// strategy and owns all join logic itself.
type Scorer interface {
	Score(a, b string) float64
}

// TokenSortScorer scores names by sorting their tokens before comparing, so
// "smith jon" and "jon smith" score 100. The underlying comparison is a
// normalized Levenshtein ratio.
type TokenSortScorer struct {
	metric *metrics.Levenshtein
}

// NewTokenSortScorer returns the default scorer.
func NewTokenSortScorer() *TokenSortScorer {
	m := metrics.NewLevenshtein()
	m.CaseSensitive = false
	return &TokenSortScorer{metric: m}
}

// Score implements Scorer.
func (s *TokenSortScorer) Score(a, b string) float64 {
	return strutil.Similarity(sortTokens(a), sortTokens(b), s.metric) * 100
}

// JaroWinklerScorer favors agreement on name prefixes, which suits short
// player names with divergent spellings.
type JaroWinklerScorer struct {
	metric *metrics.JaroWinkler
}

// NewJaroWinklerScorer returns a Jaro-Winkler based scorer.
func NewJaroWinklerScorer() *JaroWinklerScorer {
	m := metrics.NewJaroWinkler()
	m.CaseSensitive = false
	return &JaroWinklerScorer{metric: m}
}

// Score implements Scorer.
func (s *JaroWinklerScorer) Score(a, b string) float64 {
	return strutil.Similarity(a, b, s.metric) * 100
}

func sortTokens(value string) string {
	tokens := strings.Fields(value)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
