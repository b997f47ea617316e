package paper

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"time"
)

// Sortable fields.
const (
	SortTitle = "title"
	SortDate  = "date"
	SortRole  = "role"
	SortID    = "id"
)

// Sort is the ordering applied to the visible list.
type Sort struct {
	Field      string
	Descending bool
}

// ValidSortField reports whether f names a sortable field.
func ValidSortField(f string) bool {
	switch f {
	case SortTitle, SortDate, SortRole, SortID:
		return true
	default:
		return false
	}
}

func (s Sort) compare(a, b Paper) int {
	var c int
	switch s.Field {
	case SortDate:
		c = a.Date.Compare(b.Date)
	case SortRole:
		c = cmp.Compare(a.Role, b.Role)
	case SortID:
		c = cmp.Compare(a.ID, b.ID)
	default:
		c = cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	}
	if s.Descending {
		return -c
	}
	return c
}

// List is the paper list view-model for one browser session.
//
// Loads are tagged with a generation from Begin; Commit drops results from a
// generation that a newer Begin has superseded. List is safe for concurrent use.
type List struct {
	mu     sync.RWMutex
	papers []Paper
	filter Filter
	sort   Sort
	gen    uint64
	loaded bool
}

// NewList returns an empty list with the given sort and no filters.
func NewList(s Sort) *List {
	return &List{sort: s, filter: Filter{Date: DateAll, Role: RoleAll}}
}

// Begin starts a load and returns its generation.
func (l *List) Begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	return l.gen
}

// Commit replaces the held collection if gen is still the latest load.
// It reports whether the papers were applied.
func (l *List) Commit(gen uint64, papers []Paper) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return false
	}
	l.papers = slices.Clone(papers)
	l.loaded = true
	return true
}

// Replace unconditionally replaces the held collection.
func (l *List) Replace(papers []Paper) {
	l.Commit(l.Begin(), papers)
}

// Loaded reports whether any load has committed.
func (l *List) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// SetDateFilter sets the date bucket. The collection is untouched.
func (l *List) SetDateFilter(b DateBucket) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filter.Date = b
}

// SetRoleFilter sets the role filter. The collection is untouched.
func (l *List) SetRoleFilter(r RoleFilter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filter.Role = r
}

// ResetFilters restores the "all" filters used when the view is entered.
func (l *List) ResetFilters() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filter = Filter{Date: DateAll, Role: RoleAll}
}

// Filter returns the current filter state.
func (l *List) Filter() Filter {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.filter
}

// SetSort changes the ordering of the visible list.
func (l *List) SetSort(s Sort) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sort = s
}

// Sort returns the current ordering.
func (l *List) Sort() Sort {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sort
}

// Remove deletes the paper with the given id from the held collection.
// Removing an unknown id is a no-op.
func (l *List) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := slices.IndexFunc(l.papers, func(p Paper) bool { return p.ID == id })
	if i < 0 {
		return false
	}
	l.papers = slices.Delete(l.papers, i, i+1)
	return true
}

// Len returns the size of the held collection.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.papers)
}

// All returns a copy of the held collection in backend order.
func (l *List) All() []Paper {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.papers)
}

// Visible returns the filtered, sorted subset for the given instant.
func (l *List) Visible(now time.Time) []Paper {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Paper, 0, len(l.papers))
	for _, p := range l.papers {
		if l.filter.Matches(p, now) {
			out = append(out, p)
		}
	}
	s := l.sort
	slices.SortStableFunc(out, s.compare)
	return out
}
