// Package scope decides whether a list query may run for the current
// super-selection, and which equality-membership filters it applies.
package scope

import (
	"sort"
	"strings"

	"swimtrack-be/pkg/selection"
)

// DefaultQueryLimit is the most ids one membership filter may carry.
const DefaultQueryLimit = 30

type Mode int

const (
	// SingleWinner uses the first non-empty dimension in priority order.
	SingleWinner Mode = iota
	// Independent ANDs together every non-empty dimension.
	Independent
)

func (m Mode) String() string {
	if m == Independent {
		return "independent"
	}
	return "single_winner"
}

// Dimension maps a selection kind onto the column it constrains.
type Dimension struct {
	Kind  selection.Kind
	Field string
}

// Candidate is a dimension paired with its current super-selected ids.
type Candidate struct {
	Dimension
	IDs []string
}

type Filter struct {
	Kind  selection.Kind `json:"kind"`
	Field string         `json:"field"`
	IDs   []string       `json:"ids"`
}

type Decision struct {
	Enabled bool     `json:"enabled"`
	Filters []Filter `json:"filters"`
}

// Unfiltered reports an enabled decision with no constraints (fetch all).
func (d Decision) Unfiltered() bool {
	return d.Enabled && len(d.Filters) == 0
}

// Key identifies the decision by its full filter tuple, for memoizing
// fetches against it.
func (d Decision) Key() string {
	if !d.Enabled {
		return "disabled"
	}
	if len(d.Filters) == 0 {
		return "all"
	}
	parts := make([]string, len(d.Filters))
	for i, f := range d.Filters {
		parts[i] = f.Field + "=" + strings.Join(f.IDs, ",")
	}
	return strings.Join(parts, "&")
}

var disabled = Decision{Enabled: false, Filters: []Filter{}}

// Evaluate is total and pure: equal inputs always produce equal decisions.
// A chosen dimension holding more than limit ids disables the query outright;
// ids are never truncated. When no candidate has ids, allowUnscoped decides
// between an unfiltered fetch and no fetch at all.
func Evaluate(mode Mode, candidates []Candidate, allowUnscoped bool, limit int) Decision {
	if limit <= 0 {
		limit = DefaultQueryLimit
	}

	filters := make([]Filter, 0, len(candidates))
	for _, c := range candidates {
		ids := normalize(c.IDs)
		if len(ids) == 0 {
			continue
		}
		if len(ids) > limit {
			return disabled
		}
		filters = append(filters, Filter{Kind: c.Kind, Field: c.Field, IDs: ids})
		if mode == SingleWinner {
			break
		}
	}

	if len(filters) == 0 {
		if allowUnscoped {
			return Decision{Enabled: true, Filters: []Filter{}}
		}
		return disabled
	}
	return Decision{Enabled: true, Filters: filters}
}

func normalize(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
