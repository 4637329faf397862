// Package overrides holds manual identity rewrites consulted before fuzzy
// matching. The table is built once per run and immutable afterwards.
package overrides

import (
	"github.com/yourusername/prop-edge/internal/models"
	"github.com/yourusername/prop-edge/internal/normalize"
)

// Row is one manual mapping from a sportsbook identity to a projection
// identity, as read from the overrides feed.
type Row struct {
	Left  models.Identity
	Right models.Identity
}

// Table maps normalized left identities to normalized right identities.
type Table struct {
	entries map[models.Identity]models.Identity
}

// Load normalizes both sides of each row and builds the lookup table.
// Duplicate left keys are resolved last-loaded-wins.
func Load(rows []Row) *Table {
	entries := make(map[models.Identity]models.Identity, len(rows))
	for _, row := range rows {
		entries[normalize.Identity(row.Left)] = normalize.Identity(row.Right)
	}
	return &Table{entries: entries}
}

// Lookup returns the overridden identity for an already-normalized left
// identity. The boolean reports whether an override exists.
func (t *Table) Lookup(left models.Identity) (models.Identity, bool) {
	if t == nil {
		return models.Identity{}, false
	}
	right, ok := t.entries[left]
	return right, ok
}

// Len returns the number of override entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
