// Package models defines the core data types shared across the prop edge pipeline.
package models

// Identity is the join key for a player across feeds: name, team code and
// position code. The normalized form is produced by the normalize package and
// is a pure function of the raw input.
type Identity struct {
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position"`
}

// SportsbookProp represents a single player prop listing from a sportsbook.
// Immutable once loaded.
type SportsbookProp struct {
	Identity   `json:"identity"`
	Market     Market  `json:"market"`
	Line       float64 `json:"line"`
	OverPrice  Price   `json:"odds_over"`
	UnderPrice Price   `json:"odds_under"`
	Book       string  `json:"book"`
}

// Projection represents a statistical projection for a player market.
// Stdev is optional; absence propagates through Dispersion.Valid.
type Projection struct {
	Identity `json:"identity"`
	Market   Market     `json:"market"`
	Mean     float64    `json:"mean"`
	Stdev    Dispersion `json:"stdev"`
}

// Dispersion is a tagged optional standard deviation. A zero or absent stdev
// is never treated as a usable value; callers must check Valid.
type Dispersion struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// NewDispersion returns a present dispersion value.
func NewDispersion(value float64) Dispersion {
	return Dispersion{Value: value, Valid: true}
}

// Usable reports whether the dispersion can parameterize a distribution.
func (d Dispersion) Usable() bool {
	return d.Valid && d.Value > 0
}

// MatchMethod records how a prop was joined to a projection.
type MatchMethod string

const (
	MethodOverride MatchMethod = "override"
	MethodFuzzy    MatchMethod = "fuzzy"
)

// MatchedPair links a prop to its single matched projection. Created only by
// the matcher; one prop maps to zero or one pair.
type MatchedPair struct {
	Prop       SportsbookProp `json:"prop"`
	Projection Projection     `json:"projection"`
	Score      float64        `json:"match_score"`
	Method     MatchMethod    `json:"match_method"`
}

// Side is the recommended side of a prop market.
type Side string

const (
	SideOver  Side = "over"
	SideUnder Side = "under"
	SideNone  Side = "none"
)

// Tier buckets a result by recommendation strength.
type Tier string

const (
	TierRecommend Tier = "RECOMMEND"
	TierShortlist Tier = "SHORTLIST"
	TierPass      Tier = "PASS"
)

// EdgeResult is the derived, read-only outcome for one matched pair. It is
// recomputed on every run. When Unavailable is set the probability fields are
// meaningless and Reason explains why no edge could be computed.
type EdgeResult struct {
	Pair         MatchedPair `json:"pair"`
	ImpliedOver  float64     `json:"implied_prob_over"`
	ImpliedUnder float64     `json:"implied_prob_under"`
	ModelOver    float64     `json:"model_prob_over"`
	EdgeOver     float64     `json:"edge_over"`
	EdgeUnder    float64     `json:"edge_under"`
	Edge         float64     `json:"edge"`
	Side         Side        `json:"recommended_side"`
	Hold         float64     `json:"market_hold"`
	EV           float64     `json:"ev_per_dollar"`
	ZScore       float64     `json:"z_score"`
	Kelly        float64     `json:"kelly_fraction"`
	UnitSize     float64     `json:"unit_size"`
	Tier         Tier        `json:"tier"`
	Unavailable  bool        `json:"unavailable"`
	Reason       string      `json:"reason,omitempty"`
}
