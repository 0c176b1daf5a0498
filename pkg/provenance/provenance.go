// Package provenance provides field-level tracking of where each merged
// value came from and which candidates were passed over.
package provenance

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/agentstation/carmap/pkg/sources"
	"github.com/agentstation/carmap/pkg/vehicle"
)

// Reasons recorded against a provenance entry.
const (
	ReasonPreferred   = "preferred"   // preferred source supplied the value
	ReasonFallback    = "fallback"    // preferred source was empty
	ReasonFreeText    = "free-text"   // parsed from a valuation description
	ReasonSynthesized = "synthesized" // derived from other resolved fields
	ReasonOutranked   = "outranked"   // a higher ranked source won
	ReasonImplausible = "implausible" // rejected by plausibility validation
	ReasonPlaceholder = "placeholder" // placeholder text such as "null"
	ReasonUnresolved  = "unresolved"  // no source supplied the field
)

// Provenance records one candidate value for a field.
type Provenance struct {
	Field    string     `json:"field" yaml:"field"`                 // Field path
	Source   sources.ID `json:"source,omitempty" yaml:"source"`     // Source that offered the value
	Value    any        `json:"value" yaml:"value"`                 // The candidate value
	Reason   string     `json:"reason" yaml:"reason"`               // Why it was selected or passed over
	Priority int        `json:"priority,omitempty" yaml:"priority"` // Authority priority, 0 if none matched
	Selected bool       `json:"selected" yaml:"selected"`           // Whether the value is in the record
}

// Map holds provenance for every field of one merge, keyed by field path.
// The selected entry comes first.
type Map map[string][]Provenance

// Tracker manages provenance tracking during one reconciliation. A tracker
// is never shared between merges.
type Tracker interface {
	// Track records provenance for a field
	Track(field string, p Provenance)

	// FindByField retrieves provenance for a specific field
	FindByField(field string) []Provenance

	// Map returns the complete provenance map
	Map() Map
}

// tracker is the default implementation.
type tracker struct {
	provenance Map
	enabled    bool
}

// NewTracker creates a new provenance tracker. A disabled tracker records
// nothing.
func NewTracker(enabled bool) Tracker {
	return &tracker{
		provenance: make(Map),
		enabled:    enabled,
	}
}

// Track records provenance for a field.
func (p *tracker) Track(field string, entry Provenance) {
	if !p.enabled {
		return
	}
	entry.Field = field

	entries := p.provenance[field]
	if entry.Selected {
		// Keep the selected entry first; a later selection replaces an
		// earlier one, which becomes a passed-over candidate.
		for i := range entries {
			if entries[i].Selected {
				entries[i].Selected = false
				entries[i].Reason = ReasonOutranked
			}
		}
		entries = append([]Provenance{entry}, entries...)
	} else {
		entries = append(entries, entry)
	}
	p.provenance[field] = entries
}

// FindByField retrieves provenance for a specific field.
func (p *tracker) FindByField(field string) []Provenance {
	if !p.enabled {
		return nil
	}
	return slices.Clone(p.provenance[field])
}

// Map returns the complete provenance map.
func (p *tracker) Map() Map {
	if !p.enabled {
		return nil
	}

	// Return a copy to prevent external modification
	result := make(Map, len(p.provenance))
	for k, v := range p.provenance {
		result[k] = slices.Clone(v)
	}
	return result
}

// Selected returns the entry whose value is in the record.
func (m Map) Selected(field string) (Provenance, bool) {
	for _, p := range m[field] {
		if p.Selected {
			return p, true
		}
	}
	return Provenance{}, false
}

// Missing returns the fields, in the order given, that have no selected
// entry.
func (m Map) Missing(fields []string) []string {
	var missing []string
	for _, f := range fields {
		if _, ok := m.Selected(f); !ok {
			missing = append(missing, f)
		}
	}
	return missing
}

// Tree builds the source tree of a record: the record's shape with each
// leaf replaced by its source ID string, or nil for a null field.
func Tree(r *vehicle.Record) vehicle.SourceTree {
	root := vehicle.SourceTree{}
	vehicle.Walk(r, func(path string, leaf vehicle.Leaf) {
		parts := strings.Split(path, ".")
		node := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(vehicle.SourceTree)
			if !ok {
				child = vehicle.SourceTree{}
				node[part] = child
			}
			node = child
		}

		var src any
		if !leaf.IsNull() {
			src = leaf.SourceID().String()
		}
		node[parts[len(parts)-1]] = src
	})
	return root
}

// Report generates a human-readable provenance report.
type Report struct {
	Fields map[string]Field
}

// Field contains provenance for a single field.
type Field struct {
	Current    Provenance     // Selected value and its source
	Candidates []Provenance   // Values that were passed over
	Conflicts  []ConflictInfo // Disagreements between sources
}

// ConflictInfo describes a conflict that was resolved.
type ConflictInfo struct {
	Sources        []sources.ID // Sources that had conflicting values
	Values         []any        // The conflicting values
	Resolution     string       // How the conflict was resolved
	SelectedSource sources.ID   // Which source was selected
}

// GenerateReport creates a provenance report from a Map.
func GenerateReport(provenance Map) *Report {
	report := &Report{
		Fields: make(map[string]Field, len(provenance)),
	}

	for field, infos := range provenance {
		var f Field
		for _, info := range infos {
			if info.Selected || (info.Reason == ReasonUnresolved && f.Current.Field == "") {
				f.Current = info
				continue
			}
			f.Candidates = append(f.Candidates, info)
		}
		if f.Current.Field == "" {
			f.Current = Provenance{Field: field, Reason: ReasonUnresolved}
		}
		f.Conflicts = detectConflicts(f.Current, f.Candidates)
		report.Fields[field] = f
	}

	return report
}

// detectConflicts reports a conflict when a passed-over source offered a
// different value than the selected one.
func detectConflicts(current Provenance, candidates []Provenance) []ConflictInfo {
	if current.Value == nil {
		return nil
	}

	conflict := ConflictInfo{
		Sources:        []sources.ID{current.Source},
		Values:         []any{current.Value},
		Resolution:     current.Reason,
		SelectedSource: current.Source,
	}
	for _, c := range candidates {
		if c.Value == nil || fmt.Sprint(c.Value) == fmt.Sprint(current.Value) {
			continue
		}
		conflict.Sources = append(conflict.Sources, c.Source)
		conflict.Values = append(conflict.Values, c.Value)
	}

	if len(conflict.Sources) < 2 {
		return nil
	}
	return []ConflictInfo{conflict}
}

// String generates a string representation of the provenance report.
func (r *Report) String() string {
	var sb strings.Builder

	sb.WriteString("Provenance Report\n")
	sb.WriteString("=================\n\n")

	// Sort fields for consistent output
	fieldKeys := make([]string, 0, len(r.Fields))
	for field := range r.Fields {
		fieldKeys = append(fieldKeys, field)
	}
	sort.Strings(fieldKeys)

	for _, field := range fieldKeys {
		fieldProv := r.Fields[field]
		sb.WriteString(fmt.Sprintf("%s:\n", field))
		if fieldProv.Current.Value == nil {
			sb.WriteString("  Current: null\n")
		} else {
			sb.WriteString(fmt.Sprintf("  Current: %v (from %s, %s)\n",
				fieldProv.Current.Value, fieldProv.Current.Source, fieldProv.Current.Reason))
		}

		for _, conflict := range fieldProv.Conflicts {
			sb.WriteString("  Conflict:\n")
			sb.WriteString(fmt.Sprintf("    Sources: %v\n", conflict.Sources))
			sb.WriteString(fmt.Sprintf("    Selected: %s\n", conflict.SelectedSource))
			sb.WriteString(fmt.Sprintf("    Reason: %s\n", conflict.Resolution))
		}

		if len(fieldProv.Candidates) > 0 {
			sb.WriteString("  Passed over:\n")
			for _, c := range fieldProv.Candidates {
				sb.WriteString(fmt.Sprintf("    - %v from %s (%s)\n", c.Value, c.Source, c.Reason))
			}
		}
	}

	return sb.String()
}
