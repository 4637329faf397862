// Package matcher joins sportsbook props to projections on fuzzy identity
// keys with deterministic tie-breaking and manual-override support.
package matcher

import (
	"github.com/yourusername/prop-edge/internal/models"
	"github.com/yourusername/prop-edge/internal/normalize"
	"github.com/yourusername/prop-edge/internal/overrides"
)

// Unmatched reasons surfaced as diagnostics, never as errors.
const (
	ReasonOverrideTargetMissing = "override target projection not found"
	ReasonNoCandidates          = "no projections for market with matching team and position"
	ReasonBelowThreshold        = "best fuzzy score below minimum"
	ReasonIncompleteIdentity    = "prop identity missing team or position"
)

// UnmatchedProp records a prop that found no projection, with the best score
// seen so far for troubleshooting threshold choices.
type UnmatchedProp struct {
	Prop      models.SportsbookProp
	Reason    string
	BestScore float64
}

// Result holds the join outcome for one run.
type Result struct {
	Pairs     []models.MatchedPair
	Unmatched []UnmatchedProp
}

type candidate struct {
	projection models.Projection
	identity   models.Identity
	consumed   bool
}

// Match joins props to projections. Props are processed in input order.
// Overrides are authoritative: a prop with an override entry either matches
// its override target exactly (same market) or stays unmatched; it never
// falls back to fuzzy scoring. Fuzzy candidates must share the prop's market
// and agree exactly on normalized team and position; a mismatch makes the
// candidate ineligible regardless of name similarity. Each projection is
// consumed by at most one prop; ties at the maximum score resolve to the
// first projection in input order.
func Match(
	props []models.SportsbookProp,
	projections []models.Projection,
	table *overrides.Table,
	scorer Scorer,
	minScore float64,
) Result {
	candidates := make([]candidate, len(projections))
	for i, projection := range projections {
		candidates[i] = candidate{
			projection: projection,
			identity:   normalize.Identity(projection.Identity),
		}
	}

	var result Result
	for _, prop := range props {
		identity := normalize.Identity(prop.Identity)

		if target, ok := table.Lookup(identity); ok {
			pair, found := consumeExact(candidates, target, prop)
			if !found {
				result.Unmatched = append(result.Unmatched, UnmatchedProp{
					Prop:   prop,
					Reason: ReasonOverrideTargetMissing,
				})
				continue
			}
			result.Pairs = append(result.Pairs, pair)
			continue
		}

		if identity.Team == "" || identity.Position == "" {
			result.Unmatched = append(result.Unmatched, UnmatchedProp{
				Prop:   prop,
				Reason: ReasonIncompleteIdentity,
			})
			continue
		}

		bestIdx := -1
		bestScore := 0.0
		sawCandidate := false
		for i := range candidates {
			c := &candidates[i]
			if c.consumed || c.projection.Market != prop.Market {
				continue
			}
			if c.identity.Team != identity.Team || c.identity.Position != identity.Position {
				continue
			}
			sawCandidate = true
			score := scorer.Score(identity.Name, c.identity.Name)
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		if !sawCandidate {
			result.Unmatched = append(result.Unmatched, UnmatchedProp{
				Prop:   prop,
				Reason: ReasonNoCandidates,
			})
			continue
		}
		if bestIdx < 0 || bestScore < minScore {
			result.Unmatched = append(result.Unmatched, UnmatchedProp{
				Prop:      prop,
				Reason:    ReasonBelowThreshold,
				BestScore: bestScore,
			})
			continue
		}

		candidates[bestIdx].consumed = true
		result.Pairs = append(result.Pairs, models.MatchedPair{
			Prop:       prop,
			Projection: candidates[bestIdx].projection,
			Score:      bestScore,
			Method:     models.MethodFuzzy,
		})
	}
	return result
}

// consumeExact finds the first unconsumed projection whose normalized
// identity equals the override target and whose market matches the prop.
func consumeExact(candidates []candidate, target models.Identity, prop models.SportsbookProp) (models.MatchedPair, bool) {
	for i := range candidates {
		c := &candidates[i]
		if c.consumed || c.projection.Market != prop.Market {
			continue
		}
		if c.identity != target {
			continue
		}
		c.consumed = true
		return models.MatchedPair{
			Prop:       prop,
			Projection: c.projection,
			Score:      100,
			Method:     models.MethodOverride,
		}, true
	}
	return models.MatchedPair{}, false
}
