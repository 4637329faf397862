package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/yourusername/prop-edge/internal/models"
	"github.com/yourusername/prop-edge/internal/pipeline"
)

// TimestampedPath builds an output filename under dir with a UTC minute
// timestamp, e.g. edges_20260828_1430.csv.
func TimestampedPath(dir, stem string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.csv", stem, time.Now().UTC().Format("20060102_1504")))
}

var edgeColumns = []string{
	"player", "team", "position", "market", "line", "book",
	"odds_over", "odds_under", "match_method", "match_score",
	"implied_over", "implied_under", "model_over", "hold",
	"edge_over", "edge_under", "side", "edge", "ev", "z_score",
	"kelly", "unit_size", "tier", "unavailable", "reason",
}

// WriteEdgesCSV exports the ranked edge rows for spreadsheets. Rows keep the
// pipeline's ordering.
func WriteEdgesCSV(result *pipeline.Result, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(edgeColumns); err != nil {
		return err
	}
	for _, row := range result.Edges {
		if err := writer.Write(edgeRecord(row)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func edgeRecord(row models.EdgeResult) []string {
	prop := row.Pair.Prop
	record := []string{
		prop.Name,
		prop.Team,
		prop.Position,
		string(prop.Market),
		formatFloat(prop.Line, 1),
		prop.Book,
		prop.OverPrice.String(),
		prop.UnderPrice.String(),
		string(row.Pair.Method),
		formatFloat(row.Pair.Score, 1),
	}
	if row.Unavailable {
		record = append(record,
			"", "", "", "", "", "", "", "", "", "", "", "",
			string(models.TierPass), "true", row.Reason)
		return record
	}
	record = append(record,
		formatFloat(row.ImpliedOver, 6),
		formatFloat(row.ImpliedUnder, 6),
		formatFloat(row.ModelOver, 6),
		formatFloat(row.Hold, 6),
		formatFloat(row.EdgeOver, 6),
		formatFloat(row.EdgeUnder, 6),
		string(row.Side),
		formatFloat(row.Edge, 6),
		formatFloat(row.EV, 6),
		formatFloat(row.ZScore, 4),
		formatFloat(row.Kelly, 6),
		formatFloat(row.UnitSize, 2),
		string(row.Tier),
		"false",
		"",
	)
	return record
}

var unmatchedColumns = []string{
	"player", "team", "position", "market", "line", "book", "reason", "best_score",
}

// WriteUnmatchedCSV exports props that found no projection, for tuning the
// match threshold and the override table.
func WriteUnmatchedCSV(result *pipeline.Result, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(unmatchedColumns); err != nil {
		return err
	}
	for _, miss := range result.Unmatched {
		record := []string{
			miss.Prop.Name,
			miss.Prop.Team,
			miss.Prop.Position,
			string(miss.Prop.Market),
			formatFloat(miss.Prop.Line, 1),
			miss.Prop.Book,
			miss.Reason,
			formatFloat(miss.BestScore, 1),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(value float64, precision int) string {
	return strconv.FormatFloat(value, 'f', precision, 64)
}
