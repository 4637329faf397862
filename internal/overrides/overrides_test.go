package overrides

import (
	"testing"

	"github.com/yourusername/prop-edge/internal/models"
)

func TestLoadNormalizesBothSides(t *testing.T) {
	table := Load([]Row{
		{
			Left:  models.Identity{Name: "Jon Smith", Team: "Kansas City Chiefs", Position: "wr"},
			Right: models.Identity{Name: "Jonathan Smith Jr.", Team: "KC", Position: "WR"},
		},
	})

	target, ok := table.Lookup(models.Identity{Name: "jon smith", Team: "kc", Position: "WR"})
	if !ok {
		t.Fatal("expected override entry after normalization")
	}
	want := models.Identity{Name: "jonathan smith", Team: "kc", Position: "WR"}
	if target != want {
		t.Fatalf("Lookup() = %+v, want %+v", target, want)
	}
}

func TestLoadLastEntryWins(t *testing.T) {
	left := models.Identity{Name: "Jon Smith", Team: "KC", Position: "WR"}
	table := Load([]Row{
		{Left: left, Right: models.Identity{Name: "First Target", Team: "KC", Position: "WR"}},
		{Left: left, Right: models.Identity{Name: "Second Target", Team: "KC", Position: "WR"}},
	})

	if table.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", table.Len())
	}
	target, ok := table.Lookup(models.Identity{Name: "jon smith", Team: "kc", Position: "WR"})
	if !ok {
		t.Fatal("expected override entry")
	}
	if target.Name != "second target" {
		t.Fatalf("target.Name = %q, want %q", target.Name, "second target")
	}
}

func TestLookupOnNilTable(t *testing.T) {
	var table *Table
	if _, ok := table.Lookup(models.Identity{Name: "anyone"}); ok {
		t.Fatal("nil table should never match")
	}
	if table.Len() != 0 {
		t.Fatal("nil table should be empty")
	}
}
