// Package prefs defines the paper list preferences kept per browser profile.
package prefs

import (
	"strconv"

	"github.com/bluelatex/blue-web/internal/domain/paper"
)

// Storage keys. The same key is used for reads and writes.
const (
	KeyReverse   = "userPaperReverse"
	KeyPredicate = "userPaperPredicate"
	KeyStyle     = "userPaperStyle"
)

// Keys lists every preference key.
var Keys = []string{KeyReverse, KeyPredicate, KeyStyle}

// Preferences are the persisted list display choices.
type Preferences struct {
	SortField      string
	SortDescending bool
	Style          paper.Style
}

// Default returns the preferences used when nothing was stored.
func Default() Preferences {
	return Preferences{SortField: paper.SortTitle, SortDescending: false, Style: paper.StyleList}
}

// FromValues builds preferences from stored key/values, falling back to
// defaults for missing or malformed entries.
func FromValues(values map[string]string) Preferences {
	p := Default()
	if v, ok := values[KeyReverse]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			p.SortDescending = b
		}
	}
	if v, ok := values[KeyPredicate]; ok && paper.ValidSortField(v) {
		p.SortField = v
	}
	if v, ok := values[KeyStyle]; ok {
		p.Style = paper.ParseStyle(v)
	}
	return p
}

// Values returns the storage form of p.
func (p Preferences) Values() map[string]string {
	return map[string]string{
		KeyReverse:   strconv.FormatBool(p.SortDescending),
		KeyPredicate: p.SortField,
		KeyStyle:     string(p.Style),
	}
}

// Sort returns the list ordering described by p.
func (p Preferences) Sort() paper.Sort {
	return paper.Sort{Field: p.SortField, Descending: p.SortDescending}
}
