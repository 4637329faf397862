// Package pipeline orchestrates one end-to-end run: load feeds, join props to
// projections, evaluate edges and hand off a ranked result set.
package pipeline

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-edge/internal/config"
	"github.com/yourusername/prop-edge/internal/edge"
	"github.com/yourusername/prop-edge/internal/feeds"
	"github.com/yourusername/prop-edge/internal/logger"
	"github.com/yourusername/prop-edge/internal/matcher"
	"github.com/yourusername/prop-edge/internal/metrics"
	"github.com/yourusername/prop-edge/internal/models"
	"github.com/yourusername/prop-edge/internal/normalize"
	"github.com/yourusername/prop-edge/internal/oddsapi"
	"github.com/yourusername/prop-edge/internal/overrides"
)

// Result is the outcome of one pipeline run. Edges are sorted by recommended
// edge descending with unavailable rows last; ties keep input order.
type Result struct {
	RunID       uuid.UUID
	Edges       []models.EdgeResult
	Unmatched   []matcher.UnmatchedProp
	PropCount   int
	PairCount   int
	Duration    time.Duration
	CompletedAt time.Time
}

// Pipeline wires the matching and edge stages behind a single Run call.
type Pipeline struct {
	cfg     *config.Config
	scorer  matcher.Scorer
	edgeCfg edge.Config
	fetcher oddsapi.Fetcher
	logger  *logrus.Logger
}

// New builds a pipeline from validated configuration. fetcher may be nil when
// props come from a local feed only.
func New(cfg *config.Config, fetcher oddsapi.Fetcher, logger *logrus.Logger) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		scorer:  scorerFor(cfg.Matching.Scorer),
		edgeCfg: cfg.EdgeConfig(),
		fetcher: fetcher,
		logger:  logger,
	}
}

func scorerFor(name string) matcher.Scorer {
	if name == "jaro_winkler" {
		return matcher.NewJaroWinklerScorer()
	}
	return matcher.NewTokenSortScorer()
}

// Run executes the full pipeline. Feed and fetch errors abort the run;
// per-prop failures surface as unmatched or unavailable rows instead.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	started := time.Now()
	runID := uuid.New()
	log := logger.WithRun(p.logger, runID)

	props, err := p.loadProps(ctx, log)
	if err != nil {
		metrics.RecordRun("failure", time.Since(started).Seconds())
		return nil, err
	}
	metrics.PropsLoadedTotal.Add(float64(len(props)))

	projections, err := feeds.LoadProjections(p.cfg.Feeds.ProjectionsPath)
	if err != nil {
		metrics.RecordRun("failure", time.Since(started).Seconds())
		return nil, err
	}
	metrics.ProjectionsLoadedTotal.Add(float64(len(projections)))

	rows, err := feeds.LoadOverrides(p.cfg.Feeds.OverridesPath)
	if err != nil {
		metrics.RecordRun("failure", time.Since(started).Seconds())
		return nil, err
	}
	table := overrides.Load(rows)

	if p.fetcher != nil {
		props = backfillIdentity(props, projections)
	}

	log.WithFields(logrus.Fields{
		"props":       len(props),
		"projections": len(projections),
		"overrides":   table.Len(),
	}).Info("Feeds loaded")

	matched := matcher.Match(props, projections, table, p.scorer, p.cfg.Matching.MinScore)
	for _, pair := range matched.Pairs {
		metrics.RecordMatch(string(pair.Method), pair.Score)
	}
	metrics.PropsUnmatchedTotal.Add(float64(len(matched.Unmatched)))

	edges := make([]models.EdgeResult, 0, len(matched.Pairs))
	unavailableCount := 0
	for _, pair := range matched.Pairs {
		result := edge.Evaluate(pair, p.edgeCfg)
		if result.Unavailable {
			unavailableCount++
			metrics.EdgesUnavailableTotal.Inc()
			log.WithFields(logrus.Fields{
				"player": pair.Prop.Name,
				"market": string(pair.Prop.Market),
				"reason": result.Reason,
			}).Debug("Edge unavailable")
		} else {
			metrics.EdgesComputedTotal.Inc()
		}
		edges = append(edges, result)
	}
	sortEdges(edges)

	duration := time.Since(started)
	metrics.RecordRun("success", duration.Seconds())
	log.WithFields(logrus.Fields{
		"pairs":       len(matched.Pairs),
		"unmatched":   len(matched.Unmatched),
		"unavailable": unavailableCount,
		"duration":    duration.String(),
	}).Info("Pipeline run complete")

	return &Result{
		RunID:       runID,
		Edges:       edges,
		Unmatched:   matched.Unmatched,
		PropCount:   len(props),
		PairCount:   len(matched.Pairs),
		Duration:    duration,
		CompletedAt: time.Now().UTC(),
	}, nil
}

func (p *Pipeline) loadProps(ctx context.Context, log *logrus.Entry) ([]models.SportsbookProp, error) {
	if p.fetcher != nil {
		log.WithField("source", p.fetcher.Name()).Info("Fetching props")
		props, err := p.fetcher.FetchProps(ctx)
		if err != nil {
			return nil, err
		}
		return applyGuardrails(props, p.cfg.Guardrails()), nil
	}
	return feeds.LoadProps(p.cfg.Feeds.PropsPath, p.cfg.OddsFormat(), p.cfg.Guardrails())
}

// applyGuardrails filters fetched rows the same way the feed reader filters
// file rows.
func applyGuardrails(props []models.SportsbookProp, guard feeds.Guardrails) []models.SportsbookProp {
	kept := props[:0]
	for _, prop := range props {
		if guard.Allows(prop.OverPrice) && guard.Allows(prop.UnderPrice) {
			kept = append(kept, prop)
		}
	}
	return kept
}

// backfillIdentity fills team and position on fetched props from projections
// whose normalized player name is unique in the projection set. The API feed
// names the player but not always the team, and never the position.
func backfillIdentity(props []models.SportsbookProp, projections []models.Projection) []models.SportsbookProp {
	type ident struct {
		team, position string
		unique         bool
	}
	byName := make(map[string]*ident, len(projections))
	for _, projection := range projections {
		name := normalize.Name(projection.Name)
		if existing, seen := byName[name]; seen {
			if existing.team != projection.Team || existing.position != projection.Position {
				existing.unique = false
			}
			continue
		}
		byName[name] = &ident{team: projection.Team, position: projection.Position, unique: true}
	}

	for i := range props {
		entry, seen := byName[normalize.Name(props[i].Name)]
		if !seen || !entry.unique {
			continue
		}
		if props[i].Team == "" {
			props[i].Team = entry.team
		}
		if props[i].Position == "" {
			props[i].Position = entry.position
		}
	}
	return props
}

// sortEdges ranks actionable rows by recommended edge descending, pushes
// unavailable rows to the bottom and keeps input order on ties.
func sortEdges(edges []models.EdgeResult) {
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].Unavailable != edges[j].Unavailable {
			return !edges[i].Unavailable
		}
		if edges[i].Unavailable {
			return false
		}
		return edges[i].Edge > edges[j].Edge
	})
}
