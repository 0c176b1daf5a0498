package normalize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/carmap/pkg/sources"
	"github.com/agentstation/carmap/pkg/vehicle"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestPrimaryNormalize(t *testing.T) {
	attrs := NewPrimary().Normalize(loadFixture(t, "primary.json"))

	assert.Equal(t, "BMW", *attrs.Make)
	assert.Equal(t, "3 Series", *attrs.Model)
	assert.Equal(t, "M Sport", *attrs.Variant)
	assert.Equal(t, "320d", *attrs.VariantCode)
	assert.Equal(t, 2016, *attrs.Year)
	assert.Equal(t, "Black", *attrs.Color)

	assert.Equal(t, FuelDiesel, *attrs.FuelType)
	assert.Equal(t, TransmissionAutomatic, *attrs.Transmission)
	assert.InDelta(t, 1.995, *attrs.EngineSize, 1e-9)
	assert.Equal(t, "Saloon", *attrs.BodyType)
	assert.Equal(t, 4, *attrs.Doors)
	assert.Equal(t, 5, *attrs.Seats)
	assert.Equal(t, 2, *attrs.PreviousOwners)
	assert.Equal(t, "8 Speed", *attrs.Gearbox)
	assert.Equal(t, "Euro 6", *attrs.EmissionClass)

	assert.Equal(t, 55.4, *attrs.FuelEconomy.Urban)
	assert.Equal(t, 76.3, *attrs.FuelEconomy.ExtraUrban)
	assert.Equal(t, 67.3, *attrs.FuelEconomy.Combined)
	assert.Equal(t, 111.0, *attrs.CO2Emissions)
	assert.Equal(t, "30E", *attrs.InsuranceGroup)
	assert.Equal(t, 30.0, *attrs.AnnualTax)

	assert.Equal(t, 187.0, *attrs.Performance.Power)
	assert.Equal(t, 400.0, *attrs.Performance.Torque)
	assert.Equal(t, 7.3, *attrs.Performance.Acceleration)
	assert.Equal(t, 146.0, *attrs.Performance.TopSpeed)

	assert.Nil(t, attrs.Valuation.Retail)
	assert.Nil(t, attrs.Valuation.Description)
	assert.True(t, attrs.IsValid())
}

func TestValuationNormalize(t *testing.T) {
	attrs := NewValuation().Normalize(loadFixture(t, "valuation.json"))

	assert.Equal(t, "BMW 3 Series 320d M Sport 4dr [Diesel / Automatic]", *attrs.Valuation.Description)
	assert.Equal(t, 45000.0, *attrs.Valuation.Mileage)
	assert.Equal(t, 14250.0, *attrs.Valuation.Retail)
	assert.Equal(t, 11050.0, *attrs.Valuation.Trade)
	assert.Equal(t, 12900.0, *attrs.Valuation.Private)
	assert.Equal(t, 2016, *attrs.Year)

	assert.Nil(t, attrs.Make)
	assert.Nil(t, attrs.FuelType)
	assert.True(t, attrs.HasValuation())
}

func TestNormalizeNeverFails(t *testing.T) {
	payloads := []string{
		"",
		"null",
		"[]",
		`"string"`,
		"42",
		"{not json",
		"{}",
		`{"Results": null}`,
		`{"VehicleIdentification": "oops"}`,
		`{"VehicleIdentification": {"DvlaMake": {"nested": true}}}`,
		`{"Performance": {"FuelEconomy": []}}`,
		`{"ValuationList": {"DealerForecourt": {}}}`,
	}
	for _, n := range Defaults() {
		for _, payload := range payloads {
			attrs := n.Normalize([]byte(payload))
			require.NotNil(t, attrs, "%s: %q", n.Source(), payload)
			assert.False(t, attrs.IsValid(), "%s: %q", n.Source(), payload)
		}
		assert.NotNil(t, n.Normalize(nil))
	}
}

func TestPrimaryFallbackPaths(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		check   func(t *testing.T, a *vehicle.Attributes)
	}{
		{
			name:    "malformed smmt make falls back to dvla",
			payload: `{"ClassificationDetails": {"Smmt": {"Make": {}}}, "VehicleIdentification": {"DvlaMake": "FORD"}}`,
			check: func(t *testing.T, a *vehicle.Attributes) {
				assert.Equal(t, "FORD", *a.Make)
			},
		},
		{
			name:    "blank model falls back to range",
			payload: `{"ClassificationDetails": {"Smmt": {"Model": "  ", "Range": "Focus"}}}`,
			check: func(t *testing.T, a *vehicle.Attributes) {
				assert.Equal(t, "Focus", *a.Model)
			},
		},
		{
			name:    "litres pass through",
			payload: `{"PowerSource": {"IceDetails": {"EngineCapacityLitres": "1.6"}}}`,
			check: func(t *testing.T, a *vehicle.Attributes) {
				assert.Equal(t, 1.6, *a.EngineSize)
			},
		},
		{
			name:    "cc by field identity even when small",
			payload: `{"VehicleIdentification": {"EngineCapacityCc": 999}}`,
			check: func(t *testing.T, a *vehicle.Attributes) {
				assert.InDelta(t, 0.999, *a.EngineSize, 1e-9)
			},
		},
		{
			name:    "year from first registration",
			payload: `{"VehicleIdentification": {"YearOfManufacture": 0, "DateFirstRegistered": "2012-05-01"}}`,
			check: func(t *testing.T, a *vehicle.Attributes) {
				assert.Equal(t, 2012, *a.Year)
			},
		},
		{
			name:    "variant code equal to trim is dropped",
			payload: `{"ClassificationDetails": {"Smmt": {"Trim": "SE", "ModelVariant": "se"}}}`,
			check: func(t *testing.T, a *vehicle.Attributes) {
				assert.Equal(t, "SE", *a.Variant)
				assert.Nil(t, a.VariantCode)
			},
		},
		{
			name:    "explicit gearbox text wins over gear count",
			payload: `{"TransmissionDetails": {"Gearbox": "6-speed", "NumberOfGears": 6}}`,
			check: func(t *testing.T, a *vehicle.Attributes) {
				assert.Equal(t, "6-speed", *a.Gearbox)
			},
		},
		{
			name:    "unreadable fuel type is absent",
			payload: `{"PowerSource": {"FuelType": true}}`,
			check: func(t *testing.T, a *vehicle.Attributes) {
				assert.Nil(t, a.FuelType)
			},
		},
		{
			name:    "numeric model is kept verbatim",
			payload: `{"ClassificationDetails": {"Smmt": {"Make": "FIAT", "Model": 500}}}`,
			check: func(t *testing.T, a *vehicle.Attributes) {
				assert.Equal(t, "500", *a.Model)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, NewPrimary().Normalize([]byte(tt.payload)))
		})
	}
}

func TestCanonicalPayloadPassesThrough(t *testing.T) {
	attrs := NewPrimary().Normalize([]byte(`{"make": "BMW", "model": "3 Series", "fuelType": "petrol"}`))
	assert.Equal(t, "BMW", *attrs.Make)
	assert.Equal(t, "3 Series", *attrs.Model)
	assert.Equal(t, FuelPetrol, *attrs.FuelType)

	attrs = NewValuation().Normalize([]byte(`{"fuelEconomy": {"combined": 45.8}, "model": "X5"}`))
	assert.Equal(t, 45.8, *attrs.FuelEconomy.Combined)
	assert.Equal(t, "X5", *attrs.Model)
}

func TestProviderSectionsBeatCanonicalKeys(t *testing.T) {
	attrs := NewPrimary().Normalize([]byte(`{"make": "Audi", "VehicleIdentification": {"DvlaMake": "BMW"}}`))
	assert.Equal(t, "BMW", *attrs.Make)
}

func TestPathsThen(t *testing.T) {
	p := Paths{Make: []string{"a"}}.Then(Paths{Make: []string{"b"}, Model: []string{"c"}})
	assert.Equal(t, []string{"a", "b"}, p.Make)
	assert.Equal(t, []string{"c"}, p.Model)
	assert.Empty(t, p.Variant)
}

func TestCustomProvider(t *testing.T) {
	dealer := New(sources.ID("dealer"), Paths{Make: []string{"vehicle.manufacturer"}})
	attrs := dealer.Normalize([]byte(`{"vehicle": {"manufacturer": "Skoda"}}`))
	assert.Equal(t, sources.ID("dealer"), dealer.Source())
	assert.Equal(t, "Skoda", *attrs.Make)
}
