// Package authority holds the priority table that decides which provider is
// preferred for each output field. The table is data: re-prioritizing a
// field or adding a provider is an edit to the table, not to the resolver.
package authority

import (
	"cmp"
	"path/filepath"
	"slices"

	"github.com/agentstation/carmap/pkg/sources"
)

// Authority determines which source is authoritative for each field
type Authority interface {
	// Find returns the highest-priority authority for a field, or nil
	Find(fieldPath string) *Field

	// Rank orders the available sources for a field: sources with a
	// matching authority first, by priority, then the rest in the order given
	Rank(fieldPath string, available []sources.ID) []sources.ID

	// List returns every authority in table order
	List() []Field
}

// Field defines source priority for a specific field
type Field struct {
	Path     string     `json:"path" yaml:"path"`         // e.g., "make", "valuation.*"
	Source   sources.ID `json:"source" yaml:"source"`     // Which source is authoritative
	Priority int        `json:"priority" yaml:"priority"` // Priority (higher = more authoritative)
}

// authorities is an immutable authority table
type authorities struct {
	fields []Field
}

// New creates an Authority with the default table
func New() Authority {
	return &authorities{fields: Defaults()}
}

// NewFromFields creates an Authority from a custom table after validating it
func NewFromFields(fields []Field) (Authority, error) {
	if err := Validate(fields); err != nil {
		return nil, err
	}
	return &authorities{fields: slices.Clone(fields)}, nil
}

// Find returns the authority configuration for a specific field
func (a *authorities) Find(fieldPath string) *Field {
	return ByField(fieldPath, a.fields)
}

// List returns all authorities
func (a *authorities) List() []Field {
	return slices.Clone(a.fields)
}

// Rank returns available reordered by authority for fieldPath.
func (a *authorities) Rank(fieldPath string, available []sources.ID) []sources.ID {
	matches := Matching(fieldPath, a.fields)

	ranked := make([]sources.ID, 0, len(available))
	for _, m := range matches {
		if slices.Contains(available, m.Source) && !slices.Contains(ranked, m.Source) {
			ranked = append(ranked, m.Source)
		}
	}
	for _, id := range available {
		if !slices.Contains(ranked, id) {
			ranked = append(ranked, id)
		}
	}
	return ranked
}

// ByField returns the highest priority authority for a given field path
func ByField(fieldPath string, authorities []Field) *Field {
	var bestMatch *Field
	var bestPriority int
	var bestMatchLength int

	for i, auth := range authorities {
		if MatchesPattern(fieldPath, auth.Path) {
			// Prioritize by: 1) priority, 2) pattern specificity (length), 3) order
			patternLength := len(auth.Path)
			if bestMatch == nil || auth.Priority > bestPriority ||
				(auth.Priority == bestPriority && patternLength > bestMatchLength) {
				bestMatch = &authorities[i]
				bestPriority = auth.Priority
				bestMatchLength = patternLength
			}
		}
	}

	return bestMatch
}

// Matching returns every authority whose pattern matches fieldPath, best
// first: by priority, then pattern length, then table order.
func Matching(fieldPath string, authorities []Field) []Field {
	var matches []Field
	for _, auth := range authorities {
		if MatchesPattern(fieldPath, auth.Path) {
			matches = append(matches, auth)
		}
	}
	slices.SortStableFunc(matches, func(a, b Field) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(len(b.Path), len(a.Path))
	})
	return matches
}

// MatchesPattern checks if a field path matches a pattern (supports * wildcards)
func MatchesPattern(fieldPath, pattern string) bool {
	// Handle exact matches
	if fieldPath == pattern {
		return true
	}

	// Handle simple wildcard at the end
	if len(pattern) > 0 && pattern[len(pattern)-1] == '*' {
		prefix := pattern[:len(pattern)-1]
		return len(fieldPath) >= len(prefix) && fieldPath[:len(prefix)] == prefix
	}

	// Handle filepath.Match patterns
	matched, err := filepath.Match(pattern, fieldPath)
	if err != nil {
		return false
	}
	return matched
}

// BySource returns the rules that prefer source, in table order. The
// result is never nil.
func BySource(authorities []Field, source sources.ID) []Field {
	filtered := []Field{}
	for _, f := range authorities {
		if f.Source == source {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// Defaults returns the default field authorities.
func Defaults() []Field {
	return []Field{
		// Identity - the structured data provider carries manufacturer
		// classification and registration records
		{Path: "make", Source: sources.Primary, Priority: 100},
		{Path: "model", Source: sources.Primary, Priority: 100},
		{Path: "variant", Source: sources.Primary, Priority: 100},
		{Path: "year", Source: sources.Primary, Priority: 100},
		{Path: "color", Source: sources.Primary, Priority: 100},

		// Technical data - primary is the richer provider
		{Path: "specifications.*", Source: sources.Primary, Priority: 90},
		{Path: "runningCosts.*", Source: sources.Primary, Priority: 90},
		{Path: "performance.*", Source: sources.Primary, Priority: 90},

		// Pricing only exists on the valuation provider
		{Path: "valuation.*", Source: sources.Secondary, Priority: 100},
	}
}
