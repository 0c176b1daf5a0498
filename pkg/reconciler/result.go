package reconciler

import (
	"fmt"
	"strings"

	"github.com/agentstation/carmap/pkg/provenance"
	"github.com/agentstation/carmap/pkg/sources"
	"github.com/agentstation/carmap/pkg/vehicle"
)

// Result represents the outcome of a reconciliation.
type Result struct {
	// Record is the merged vehicle record; never nil
	Record *vehicle.Record

	// Provenance holds every candidate considered per field; nil when
	// tracking is disabled
	Provenance provenance.Map

	// Rejections lists candidate values that were refused
	Rejections []Rejection

	// Sources that passed the validity gate, in fallback order
	Sources []sources.ID
}

// Rejection is a candidate value refused during resolution.
type Rejection struct {
	Field  string     `json:"field" yaml:"field"`
	Source sources.ID `json:"source" yaml:"source"`
	Value  any        `json:"value" yaml:"value"`
	Reason string     `json:"reason" yaml:"reason"`
}

// String returns a one-line description of the rejection.
func (r Rejection) String() string {
	return fmt.Sprintf("%s: %v from %s (%s)", r.Field, r.Value, r.Source, r.Reason)
}

// Resolved returns the number of record fields that have a value.
func (r *Result) Resolved() int {
	n := 0
	vehicle.Walk(r.Record, func(_ string, leaf vehicle.Leaf) {
		if !leaf.IsNull() {
			n++
		}
	})
	return n
}

// IsEmpty returns true if no source contributed and nothing was derived.
func (r *Result) IsEmpty() bool {
	return r.Resolved() == 0
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	if len(r.Sources) == 0 {
		return "No usable source data."
	}

	names := make([]string, len(r.Sources))
	for i, id := range r.Sources {
		names[i] = id.String()
	}
	summary := fmt.Sprintf("Merged %d of %d fields from %s.",
		r.Resolved(), len(vehicle.Schema()), strings.Join(names, ", "))
	if len(r.Rejections) > 0 {
		summary += fmt.Sprintf(" %d value(s) rejected.", len(r.Rejections))
	}
	return summary
}
