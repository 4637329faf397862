package feeds

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/yourusername/prop-edge/internal/models"
)

const projectionsSource = "projections feed"

var requiredProjectionColumns = []string{
	"player", "team", "position", "market", "mean", "stdev",
}

// ReadProjections parses the projections feed. An empty stdev cell loads as
// an absent dispersion, never as zero; a negative stdev is malformed and
// aborts the load.
func ReadProjections(r io.Reader) ([]models.Projection, error) {
	reader := csv.NewReader(r)
	columns, err := readHeader(reader, projectionsSource, requiredProjectionColumns)
	if err != nil {
		return nil, err
	}
	records, err := readAll(reader, projectionsSource)
	if err != nil {
		return nil, err
	}

	projections := make([]models.Projection, 0, len(records))
	for i, record := range records {
		line := i + 2

		market, ok := models.NormalizeMarket(columns.field(record, "market"))
		if !ok {
			continue
		}
		mean, err := columns.float(record, "mean", projectionsSource, line)
		if err != nil {
			return nil, err
		}

		stdev := models.Dispersion{}
		if raw := columns.field(record, "stdev"); raw != "" {
			value, err := columns.float(record, "stdev", projectionsSource, line)
			if err != nil {
				return nil, err
			}
			if value < 0 {
				return nil, &models.LoadError{
					Source: projectionsSource,
					Err:    fmt.Errorf("row %d: stdev must be non-negative, got %v", line, value),
				}
			}
			stdev = models.NewDispersion(value)
		}

		projections = append(projections, models.Projection{
			Identity: models.Identity{
				Name:     columns.field(record, "player"),
				Team:     columns.field(record, "team"),
				Position: columns.field(record, "position"),
			},
			Market: market,
			Mean:   mean,
			Stdev:  stdev,
		})
	}
	return projections, nil
}

// LoadProjections reads the projections feed from a file.
func LoadProjections(path string) ([]models.Projection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &models.LoadError{Source: projectionsSource, Err: err}
	}
	defer f.Close()
	return ReadProjections(f)
}
