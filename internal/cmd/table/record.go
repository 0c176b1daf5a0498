package table

import (
	"github.com/agentstation/carmap/pkg/vehicle"
)

// RecordToTableData lists every output field of a merged record with its
// value and source, in record order.
func RecordToTableData(r *vehicle.Record) Data {
	var rows [][]string
	vehicle.Walk(r, func(path string, leaf vehicle.Leaf) {
		source := Null
		if !leaf.IsNull() {
			source = leaf.SourceID().String()
		}
		rows = append(rows, []string{path, FormatValue(leaf.Any()), source})
	})

	return Data{
		Headers:         []string{"Field", "Value", "Source"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft},
	}
}

// AttributesToTableData lists what a normalizer extracted from one payload.
// Fields the payload did not carry are omitted unless all is set.
func AttributesToTableData(a *vehicle.Attributes, all bool) Data {
	var rows [][]string
	for _, b := range vehicle.Schema() {
		v := b.Value(a)
		if v == nil && !all {
			continue
		}
		rows = append(rows, []string{b.Path(), FormatValue(v)})
	}

	return Data{
		Headers: []string{"Field", "Value"},
		Rows:    rows,
	}
}

// DataSourcesToTableData summarizes which providers contributed.
func DataSourcesToTableData(d vehicle.DataSources) Data {
	timestamp := Null
	if !d.Timestamp.IsZero() {
		timestamp = d.Timestamp.Format("2006-01-02 15:04:05 UTC")
	}
	return Data{
		Headers: []string{"Primary", "Secondary", "Merged At"},
		Rows: [][]string{{
			FormatValue(d.Primary),
			FormatValue(d.Secondary),
			timestamp,
		}},
	}
}
