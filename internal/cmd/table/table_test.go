package table

import (
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/carmap/pkg/authority"
	"github.com/agentstation/carmap/pkg/enhancer"
	"github.com/agentstation/carmap/pkg/provenance"
	"github.com/agentstation/carmap/pkg/reconciler"
	"github.com/agentstation/carmap/pkg/sources"
	"github.com/agentstation/carmap/pkg/vehicle"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, Null},
		{"nil string pointer", (*string)(nil), Null},
		{"string pointer", vehicle.Ptr("Audi"), "Audi"},
		{"blank string", "  ", "<empty>"},
		{"int pointer", vehicle.Ptr(5), "5"},
		{"whole float", 2019.0, "2019"},
		{"fraction", 1.4, "1.4"},
		{"float pointer", vehicle.Ptr(54.3), "54.3"},
		{"bool", true, "true"},
		{"map", map[string]any{"combined": 54.3}, "combined: 54.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}

func TestRecordToTableData(t *testing.T) {
	r := &vehicle.Record{}
	r.Make = vehicle.NewFieldValue(vehicle.Ptr("BMW"), sources.Primary)
	r.Year = vehicle.NewFieldValue(vehicle.Ptr(2019), sources.Secondary)

	data := RecordToTableData(r)
	assert.Equal(t, []string{"Field", "Value", "Source"}, data.Headers)
	require.Len(t, data.Rows, len(vehicle.Paths()))
	assert.Equal(t, []string{"make", "BMW", "primary"}, data.Rows[0])

	byField := make(map[string][]string, len(data.Rows))
	for _, row := range data.Rows {
		byField[row[0]] = row
	}
	assert.Equal(t, []string{"year", "2019", "secondary"}, byField["year"])
	assert.Equal(t, []string{"model", Null, Null}, byField["model"])
}

func TestAttributesToTableData(t *testing.T) {
	a := &vehicle.Attributes{Make: vehicle.Ptr("Ford"), EngineSize: vehicle.Ptr(1.6)}

	sparse := AttributesToTableData(a, false)
	assert.Equal(t, [][]string{
		{"make", "Ford"},
		{"specifications.engineSize", "1.6"},
	}, sparse.Rows)

	full := AttributesToTableData(a, true)
	assert.Len(t, full.Rows, len(vehicle.Schema()))
}

func TestDataSourcesToTableData(t *testing.T) {
	ts := utc.New(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	data := DataSourcesToTableData(vehicle.DataSources{Primary: true, Timestamp: ts})
	assert.Equal(t, [][]string{{"true", "false", "2024-05-01 12:00:00 UTC"}}, data.Rows)

	empty := DataSourcesToTableData(vehicle.DataSources{})
	assert.Equal(t, [][]string{{"false", "false", Null}}, empty.Rows)
}

func TestProvenanceToTableData(t *testing.T) {
	m := provenance.Map{
		"make": {
			{Field: "make", Source: sources.Primary, Value: "Audi", Reason: provenance.ReasonPreferred, Priority: 100, Selected: true},
			{Field: "make", Source: sources.Secondary, Value: "AUDI", Reason: provenance.ReasonOutranked},
		},
		"valuation.retail": {
			{Field: "valuation.retail", Reason: provenance.ReasonUnresolved},
		},
	}

	data := ProvenanceToTableData(m, nil)
	require.Len(t, data.Rows, 3)
	assert.Equal(t, []string{"make", "→", "Audi", "primary", "100", "preferred"}, data.Rows[0])
	assert.Equal(t, []string{"", "", "AUDI", "secondary", Null, "outranked"}, data.Rows[1])
	assert.Equal(t, []string{"valuation.retail", "", Null, Null, Null, provenance.ReasonUnresolved}, data.Rows[2])

	filtered := ProvenanceToTableData(m, []string{"valuation.*"})
	require.Len(t, filtered.Rows, 1)
	assert.Equal(t, "valuation.retail", filtered.Rows[0][0])
}

func TestRejectionsToTableData(t *testing.T) {
	data := RejectionsToTableData([]reconciler.Rejection{
		{Field: "model", Source: sources.Primary, Value: "12345", Reason: provenance.ReasonImplausible},
	})
	assert.Equal(t, [][]string{{"model", "primary", "12345", provenance.ReasonImplausible}}, data.Rows)
}

func TestMatchField(t *testing.T) {
	tests := []struct {
		field    string
		patterns []string
		want     bool
	}{
		{"make", nil, true},
		{"make", []string{"make"}, true},
		{"valuation.retail", []string{"Valuation.*"}, true},
		{"runningCosts.fuelEconomy.urban", []string{"runningCosts.*"}, true},
		{"runningCosts", []string{"runningCosts.*"}, true},
		{"specifications.doors", []string{"valuation.*", "make"}, false},
		{"specifications.doors", []string{"spec*"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchField(tt.field, tt.patterns))
		})
	}
}

func TestAuthoritiesToTableData(t *testing.T) {
	data := AuthoritiesToTableData([]authority.Field{
		{Path: "valuation.*", Source: sources.Secondary, Priority: 100},
	})
	assert.Equal(t, [][]string{{"valuation.*", "secondary", "Valuation", "100"}}, data.Rows)
}

func TestDescriptionToTableData(t *testing.T) {
	data := DescriptionToTableData(enhancer.ParseDescription("BMW M6 Gran Coupe [Petrol / Auto]"))
	assert.Equal(t, [][]string{
		{"Make", "BMW"},
		{"Model", "M6 Gran Coupe"},
		{"Fuel Type", "Petrol"},
	}, data.Rows)
}
