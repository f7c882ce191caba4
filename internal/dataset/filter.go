package dataset

import (
	"sort"
	"strings"
)

// SortOrder selects the chronological direction of the timeline.
type SortOrder int

const (
	// Newest lists the most recent release first.
	Newest SortOrder = iota
	// Oldest lists the earliest release first.
	Oldest
)

// Toggle flips the order.
func (o SortOrder) Toggle() SortOrder {
	if o == Newest {
		return Oldest
	}
	return Newest
}

// Filter narrows the model list. The zero value of each field means "All".
type Filter struct {
	Search     string
	Company    Company
	Year       string
	Capability Capability
}

// Active reports whether any criterion is set. A blank search matches
// everything, so it does not count.
func (f Filter) Active() bool {
	f.Search = strings.TrimSpace(f.Search)
	return f != (Filter{})
}

// Match reports whether m satisfies every criterion of f.
func (f Filter) Match(m Model) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(m.Name), q) &&
			!strings.Contains(strings.ToLower(string(m.Company)), q) {
			return false
		}
	}
	if f.Company != "" && m.Company != f.Company {
		return false
	}
	if f.Year != "" && !strings.HasPrefix(m.ReleaseDate, f.Year) {
		return false
	}
	if f.Capability != "" && !m.HasCapability(f.Capability) {
		return false
	}
	return true
}

// Apply returns the models matching f, ordered by release date. Models
// released on the same day are ordered by ID so the result is deterministic.
func Apply(models []Model, f Filter, order SortOrder) []Model {
	out := make([]Model, 0, len(models))
	for _, m := range models {
		if f.Match(m) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Released.Equal(b.Released) {
			if order == Oldest {
				return a.Released.Before(b.Released)
			}
			return a.Released.After(b.Released)
		}
		return a.ID < b.ID
	})
	return out
}

// Years returns the distinct release years of models, newest first.
func Years(models []Model) []string {
	set := make(map[string]struct{})
	for _, m := range models {
		set[m.Year()] = struct{}{}
	}
	years := make([]string, 0, len(set))
	for y := range set {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}

// Capabilities returns the distinct capabilities of models, sorted by name.
func Capabilities(models []Model) []Capability {
	set := make(map[Capability]struct{})
	for _, m := range models {
		for _, c := range m.Capabilities {
			set[c] = struct{}{}
		}
	}
	caps := make([]Capability, 0, len(set))
	for c := range set {
		caps = append(caps, c)
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}

// Cycle returns the option after current in options, where the empty value
// stands for "All" and precedes the first option.
func Cycle[T comparable](options []T, current T) T {
	var all T
	if current == all {
		if len(options) == 0 {
			return all
		}
		return options[0]
	}
	for i, o := range options {
		if o == current {
			if i+1 < len(options) {
				return options[i+1]
			}
			return all
		}
	}
	return all
}
