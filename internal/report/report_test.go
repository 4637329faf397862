package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/yourusername/prop-edge/internal/matcher"
	"github.com/yourusername/prop-edge/internal/models"
	"github.com/yourusername/prop-edge/internal/pipeline"
)

func sampleResult() *pipeline.Result {
	pair := models.MatchedPair{
		Prop: models.SportsbookProp{
			Identity:   models.Identity{Name: "Jon Smith", Team: "KC", Position: "WR"},
			Market:     models.MarketReceptionYds,
			Line:       65.5,
			OverPrice:  models.AmericanPrice(-150),
			UnderPrice: models.AmericanPrice(130),
			Book:       "mgm",
		},
		Projection: models.Projection{
			Identity: models.Identity{Name: "Jonathan Smith", Team: "KC", Position: "WR"},
			Market:   models.MarketReceptionYds,
			Mean:     72,
			Stdev:    models.NewDispersion(9),
		},
		Score:  92.9,
		Method: models.MethodFuzzy,
	}
	return &pipeline.Result{
		RunID: uuid.New(),
		Edges: []models.EdgeResult{
			{
				Pair:        pair,
				ImpliedOver: 0.60, ImpliedUnder: 0.4348,
				ModelOver: 0.6731, Hold: 0.0348,
				EdgeOver: 0.0731, EdgeUnder: -0.1079,
				Edge: 0.0731, Side: models.SideOver, ZScore: 0.72,
				EV: 0.0769, Kelly: 0.06, UnitSize: 1.5,
				Tier: models.TierRecommend,
			},
			{
				Pair:        pair,
				Unavailable: true,
				Reason:      "no usable stdev for market reception_yds",
				Side:        models.SideNone,
				Tier:        models.TierPass,
			},
		},
		Unmatched: []matcher.UnmatchedProp{{
			Prop:      pair.Prop,
			Reason:    matcher.ReasonBelowThreshold,
			BestScore: 71.2,
		}},
		PropCount: 3,
		PairCount: 2,
	}
}

func TestGenerateConsoleReport(t *testing.T) {
	out := GenerateConsoleReport(sampleResult())
	for _, want := range []string{
		"Prop Edge Report",
		"Jon Smith",
		"reception_yds",
		"over",
		"RECOMMEND",
		"unavailable: no usable stdev",
		"Unmatched props",
		"best score 71.2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("console report missing %q\n%s", want, out)
		}
	}
}

func TestWriteEdgesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.csv")
	if err := WriteEdgesCSV(sampleResult(), path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if len(records[0]) != len(edgeColumns) {
		t.Fatalf("header width %d, want %d", len(records[0]), len(edgeColumns))
	}
	for i, record := range records[1:] {
		if len(record) != len(edgeColumns) {
			t.Fatalf("row %d width %d, want %d", i, len(record), len(edgeColumns))
		}
	}
	if records[1][0] != "Jon Smith" || records[1][16] != "over" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
	if records[2][23] != "true" {
		t.Fatalf("unavailable flag not set: %v", records[2])
	}
}

func TestWriteUnmatchedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unmatched.csv")
	if err := WriteUnmatchedCSV(sampleResult(), path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), matcher.ReasonBelowThreshold) {
		t.Fatalf("unmatched CSV missing reason:\n%s", data)
	}
}

func TestTimestampedPath(t *testing.T) {
	path := TimestampedPath("out", "edges")
	if !strings.HasPrefix(path, filepath.Join("out", "edges_")) || !strings.HasSuffix(path, ".csv") {
		t.Fatalf("unexpected path %q", path)
	}
}
