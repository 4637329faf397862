package feeds

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/yourusername/prop-edge/internal/models"
)

// WriteProps persists fetched props in the props feed format, so a fetched
// snapshot can be replayed through the pipeline later.
func WriteProps(path string, props []models.SportsbookProp) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(requiredPropColumns); err != nil {
		return err
	}
	for _, prop := range props {
		record := []string{
			prop.Name,
			prop.Team,
			prop.Position,
			string(prop.Market),
			strconv.FormatFloat(prop.Line, 'f', 1, 64),
			prop.OverPrice.String(),
			prop.UnderPrice.String(),
			prop.Book,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
