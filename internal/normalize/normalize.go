// Package normalize canonicalizes player identities for matching. All
// functions are pure and idempotent: normalizing an already-normalized value
// returns it unchanged.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/yourusername/prop-edge/internal/models"
)

// Generational suffixes dropped from the end of a normalized name.
var nameSuffixes = map[string]bool{
	"jr":  true,
	"sr":  true,
	"ii":  true,
	"iii": true,
	"iv":  true,
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name lowercases a player name, strips diacritics and punctuation, collapses
// whitespace, and drops trailing generational suffixes.
func Name(raw string) string {
	text := foldASCII(raw)
	var b strings.Builder
	for _, r := range text {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	tokens := strings.Fields(b.String())
	for len(tokens) > 0 && nameSuffixes[tokens[len(tokens)-1]] {
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, " ")
}

// Team maps a team label (city name or code) to its canonical lowercase code.
func Team(raw string) string {
	text := foldASCII(raw)
	var b strings.Builder
	for _, r := range text {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == ' ' {
			b.WriteRune(r)
		}
	}
	key := strings.Join(strings.Fields(b.String()), " ")
	if code, ok := teamAliases[key]; ok {
		return code
	}
	return strings.ReplaceAll(key, " ", "")
}

// Position maps a raw position label to its canonical uppercase code. Labels
// listing multiple positions (e.g. "RB/WR") resolve to the first known one.
func Position(raw string) string {
	text := strings.ToUpper(strings.TrimSpace(foldToASCIIUpper(raw)))
	if text == "" {
		return ""
	}
	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '/' || r == ',' || r == '&' || r == '\\' || unicode.IsSpace(r)
	}) {
		if part == "" {
			continue
		}
		if canonical, ok := positionAliases[part]; ok {
			return canonical
		}
		return part
	}
	return ""
}

// Identity normalizes all three identity fields.
func Identity(id models.Identity) models.Identity {
	return models.Identity{
		Name:     Name(id.Name),
		Team:     Team(id.Team),
		Position: Position(id.Position),
	}
}

func foldASCII(raw string) string {
	folded, _, err := transform.String(stripMarks, strings.TrimSpace(raw))
	if err != nil {
		folded = raw
	}
	return strings.ToLower(folded)
}

func foldToASCIIUpper(raw string) string {
	folded, _, err := transform.String(stripMarks, raw)
	if err != nil {
		return raw
	}
	return folded
}
