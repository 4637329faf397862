package feeds

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/yourusername/prop-edge/internal/models"
	"github.com/yourusername/prop-edge/internal/overrides"
)

const overridesSource = "overrides feed"

var requiredOverrideColumns = []string{
	"player_left", "team_left", "pos_left", "player_right", "team_right", "pos_right",
}

// ReadOverrides parses the manual override feed.
func ReadOverrides(r io.Reader) ([]overrides.Row, error) {
	reader := csv.NewReader(r)
	columns, err := readHeader(reader, overridesSource, requiredOverrideColumns)
	if err != nil {
		return nil, err
	}
	records, err := readAll(reader, overridesSource)
	if err != nil {
		return nil, err
	}

	rows := make([]overrides.Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, overrides.Row{
			Left: models.Identity{
				Name:     columns.field(record, "player_left"),
				Team:     columns.field(record, "team_left"),
				Position: columns.field(record, "pos_left"),
			},
			Right: models.Identity{
				Name:     columns.field(record, "player_right"),
				Team:     columns.field(record, "team_right"),
				Position: columns.field(record, "pos_right"),
			},
		})
	}
	return rows, nil
}

// LoadOverrides reads the override feed from a file. A missing file is not an
// error; it loads as an empty table.
func LoadOverrides(path string) ([]overrides.Row, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &models.LoadError{Source: overridesSource, Err: err}
	}
	defer f.Close()
	return ReadOverrides(f)
}
