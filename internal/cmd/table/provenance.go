package table

import (
	"maps"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/agentstation/carmap/pkg/provenance"
	"github.com/agentstation/carmap/pkg/reconciler"
)

// ProvenanceToTableData converts per-field provenance into one table.
// The selected candidate of each field is marked with an arrow and listed
// first; passed-over candidates follow it. Only fields matching one of the
// patterns are included; no patterns means every field.
func ProvenanceToTableData(m provenance.Map, patterns []string) Data {
	var rows [][]string

	for _, field := range slices.Sorted(maps.Keys(m)) {
		if !MatchField(field, patterns) {
			continue
		}
		for i, entry := range m[field] {
			fieldName := ""
			if i == 0 {
				fieldName = field
			}
			current := ""
			if entry.Selected {
				current = "→"
			}
			source := Null
			if entry.Source != "" {
				source = entry.Source.String()
			}
			priority := Null
			if entry.Priority > 0 {
				priority = strconv.Itoa(entry.Priority)
			}
			rows = append(rows, []string{
				fieldName,
				current,
				FormatValue(entry.Value),
				source,
				priority,
				entry.Reason,
			})
		}
	}

	return Data{
		Headers: []string{"Field", "Curr", "Value", "Source", "Priority", "Reason"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft,   // Field
			AlignCenter, // Curr
			AlignLeft,   // Value
			AlignLeft,   // Source
			AlignRight,  // Priority
			AlignLeft,   // Reason
		},
	}
}

// RejectionsToTableData lists candidate values the merge refused.
func RejectionsToTableData(rejections []reconciler.Rejection) Data {
	rows := make([][]string, 0, len(rejections))
	for _, r := range rejections {
		rows = append(rows, []string{r.Field, r.Source.String(), FormatValue(r.Value), r.Reason})
	}
	return Data{
		Headers: []string{"Field", "Source", "Value", "Reason"},
		Rows:    rows,
	}
}

// MatchField checks if a field matches any of the provided patterns.
// Supports globs ("valuation.*" matches "valuation.retail") and plain
// prefixes of nested groups ("runningCosts.*" matches
// "runningCosts.fuelEconomy.urban"). Matching is case-insensitive.
func MatchField(field string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}

	fieldLower := strings.ToLower(field)
	for _, pattern := range patterns {
		patternLower := strings.ToLower(strings.TrimSpace(pattern))

		if matched, err := filepath.Match(patternLower, fieldLower); err == nil && matched {
			return true
		}
		if prefix, ok := strings.CutSuffix(patternLower, ".*"); ok {
			if strings.HasPrefix(fieldLower, prefix+".") || fieldLower == prefix {
				return true
			}
		}
	}
	return false
}
