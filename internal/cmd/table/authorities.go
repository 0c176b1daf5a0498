package table

import (
	"strconv"

	"github.com/agentstation/carmap/pkg/authority"
)

// AuthoritiesToTableData lists a priority table in the order given.
func AuthoritiesToTableData(fields []authority.Field) Data {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{f.Path, f.Source.String(), f.Source.Name(), strconv.Itoa(f.Priority)})
	}
	return Data{
		Headers:         []string{"Path", "Source", "Provider", "Priority"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight},
	}
}
