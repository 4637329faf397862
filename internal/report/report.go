// Package report renders a pipeline run for terminals and spreadsheets.
package report

import (
	"fmt"
	"strings"

	"github.com/yourusername/prop-edge/internal/models"
	"github.com/yourusername/prop-edge/internal/pipeline"
)

// GenerateConsoleReport formats a run summary and the ranked edge table for
// terminal output. Rows arrive pre-sorted from the pipeline.
func GenerateConsoleReport(result *pipeline.Result) string {
	var builder strings.Builder
	builder.WriteString("Prop Edge Report\n")
	builder.WriteString("================\n")
	builder.WriteString(fmt.Sprintf("Run ID: %s\n", result.RunID))
	builder.WriteString(fmt.Sprintf("Props: %d  Matched: %d  Unmatched: %d\n",
		result.PropCount, result.PairCount, len(result.Unmatched)))
	builder.WriteString(fmt.Sprintf("Completed: %s (%s)\n\n",
		result.CompletedAt.Format("2006-01-02 15:04:05 MST"), result.Duration.Round(1e6)))

	builder.WriteString(fmt.Sprintf("%-24s %-5s %-14s %7s %-6s %8s %8s %7s %6s %-10s\n",
		"PLAYER", "TEAM", "MARKET", "LINE", "SIDE", "EDGE", "EV", "KELLY", "UNITS", "TIER"))
	for _, row := range result.Edges {
		if row.Unavailable {
			builder.WriteString(fmt.Sprintf("%-24s %-5s %-14s %7.1f %-6s %s\n",
				row.Pair.Prop.Name, row.Pair.Prop.Team, row.Pair.Prop.Market,
				row.Pair.Prop.Line, "-", "unavailable: "+row.Reason))
			continue
		}
		builder.WriteString(fmt.Sprintf("%-24s %-5s %-14s %7.1f %-6s %+7.2f%% %+7.2f%% %7.3f %6.2f %-10s\n",
			row.Pair.Prop.Name, row.Pair.Prop.Team, row.Pair.Prop.Market,
			row.Pair.Prop.Line, string(row.Side),
			row.Edge*100, row.EV*100, row.Kelly, row.UnitSize, string(row.Tier)))
	}

	if len(result.Unmatched) > 0 {
		builder.WriteString("\nUnmatched props\n")
		builder.WriteString("---------------\n")
		for _, miss := range result.Unmatched {
			builder.WriteString(fmt.Sprintf("%-24s %-5s %-14s %s",
				miss.Prop.Name, miss.Prop.Team, miss.Prop.Market, miss.Reason))
			if miss.BestScore > 0 {
				builder.WriteString(fmt.Sprintf(" (best score %.1f)", miss.BestScore))
			}
			builder.WriteString("\n")
		}
	}
	return builder.String()
}

// Summary is a compact one-line run summary for daemon logs.
func Summary(result *pipeline.Result) string {
	recommended := 0
	for _, row := range result.Edges {
		if !row.Unavailable && row.Tier == models.TierRecommend {
			recommended++
		}
	}
	return fmt.Sprintf("matched %d/%d props, %d recommended",
		result.PairCount, result.PropCount, recommended)
}
