package feeds

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/yourusername/prop-edge/internal/models"
)

const propsSource = "props feed"

// requiredPropColumns is the fixed column set for the props feed.
var requiredPropColumns = []string{
	"player", "team", "position", "market", "line", "odds_over", "odds_under", "book",
}

// Guardrails filter quoted American prices at load time. Zero values disable
// the filter.
type Guardrails struct {
	OddsMin int
	OddsMax int
}

func (g Guardrails) enabled() bool { return g.OddsMin != 0 || g.OddsMax != 0 }

// Allows reports whether a price passes the guardrails. Non-American prices
// always pass; the filter is defined on quoted American odds.
func (g Guardrails) Allows(price models.Price) bool {
	if !g.enabled() || price.Format != models.FormatAmerican {
		return true
	}
	return price.American >= g.OddsMin && price.American <= g.OddsMax
}

// ReadProps parses the props feed. Rows for unsupported markets and rows
// priced outside the guardrails are skipped; structural problems abort with a
// LoadError.
func ReadProps(r io.Reader, format models.OddsFormat, guard Guardrails) ([]models.SportsbookProp, error) {
	reader := csv.NewReader(r)
	columns, err := readHeader(reader, propsSource, requiredPropColumns)
	if err != nil {
		return nil, err
	}
	records, err := readAll(reader, propsSource)
	if err != nil {
		return nil, err
	}

	props := make([]models.SportsbookProp, 0, len(records))
	for i, record := range records {
		line := i + 2 // header is line 1

		market, ok := models.NormalizeMarket(columns.field(record, "market"))
		if !ok {
			continue
		}
		lineValue, err := columns.float(record, "line", propsSource, line)
		if err != nil {
			return nil, err
		}
		over, err := models.ParsePrice(columns.field(record, "odds_over"), format)
		if err != nil {
			return nil, &models.LoadError{Source: propsSource, Err: err}
		}
		under, err := models.ParsePrice(columns.field(record, "odds_under"), format)
		if err != nil {
			return nil, &models.LoadError{Source: propsSource, Err: err}
		}
		if !guard.Allows(over) || !guard.Allows(under) {
			continue
		}

		props = append(props, models.SportsbookProp{
			Identity: models.Identity{
				Name:     columns.field(record, "player"),
				Team:     columns.field(record, "team"),
				Position: columns.field(record, "position"),
			},
			Market:     market,
			Line:       lineValue,
			OverPrice:  over,
			UnderPrice: under,
			Book:       columns.field(record, "book"),
		})
	}
	return props, nil
}

// LoadProps reads the props feed from a file.
func LoadProps(path string, format models.OddsFormat, guard Guardrails) ([]models.SportsbookProp, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &models.LoadError{Source: propsSource, Err: err}
	}
	defer f.Close()
	return ReadProps(f, format, guard)
}
