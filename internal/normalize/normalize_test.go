package normalize

import (
	"testing"

	"github.com/yourusername/prop-edge/internal/models"
)

func TestNameFoldsCaseAndPunctuation(t *testing.T) {
	cases := map[string]string{
		"A.J. Brown":      "a j brown",
		"Ja'Marr Chase":   "ja marr chase",
		"  Tyreek  Hill ": "tyreek hill",
		"D'Andre Swift":   "d andre swift",
	}
	for input, want := range cases {
		if got := Name(input); got != want {
			t.Errorf("Name(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNameFoldsDiacritics(t *testing.T) {
	if got := Name("José Ramírez"); got != "jose ramirez" {
		t.Fatalf("Name(José Ramírez) = %q", got)
	}
}

func TestNameDropsGenerationalSuffixes(t *testing.T) {
	cases := map[string]string{
		"Odell Beckham Jr.":    "odell beckham",
		"Marvin Harrison Jr":   "marvin harrison",
		"Patrick Surtain II":   "patrick surtain",
		"Robert Griffin III":   "robert griffin",
		"Dorance Armstrong IV": "dorance armstrong",
		"Travis Etienne Sr.":   "travis etienne",
	}
	for input, want := range cases {
		if got := Name(input); got != want {
			t.Errorf("Name(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNameIdempotent(t *testing.T) {
	inputs := []string{"A.J. Brown", "José Ramírez", "Odell Beckham Jr.", "jon smith"}
	for _, input := range inputs {
		once := Name(input)
		if twice := Name(once); twice != once {
			t.Errorf("Name not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestTeamAliases(t *testing.T) {
	cases := map[string]string{
		"Kansas City Chiefs": "kc",
		"KC":                 "kc",
		"JAC":                "jax",
		"WSH":                "was",
		"Green Bay Packers":  "gb",
	}
	for input, want := range cases {
		if got := Team(input); got != want {
			t.Errorf("Team(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTeamUnknownPassthrough(t *testing.T) {
	if got := Team("XFL Team"); got != "xflteam" {
		t.Fatalf("Team(XFL Team) = %q", got)
	}
}

func TestPositionAliases(t *testing.T) {
	cases := map[string]string{
		"HB":    "RB",
		"TB":    "RB",
		"WR/KR": "WR",
		"PK":    "K",
		"wr":    "WR",
	}
	for input, want := range cases {
		if got := Position(input); got != want {
			t.Errorf("Position(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestIdentityNormalizesAllFields(t *testing.T) {
	got := Identity(models.Identity{
		Name:     "Ja'Marr Chase",
		Team:     "Cincinnati Bengals",
		Position: "WR/KR",
	})
	want := models.Identity{Name: "ja marr chase", Team: "cin", Position: "WR"}
	if got != want {
		t.Fatalf("Identity() = %+v, want %+v", got, want)
	}
}
