package enhancer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string    { return &s }
func f64Ptr(f float64) *float64 { return &f }
func intPtr(i int) *int         { return &i }

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, IsPlaceholder(nil))
	assert.True(t, IsPlaceholder(strPtr("")))
	assert.True(t, IsPlaceholder(strPtr("  ")))
	assert.True(t, IsPlaceholder(strPtr("null")))
	assert.True(t, IsPlaceholder(strPtr(" Undefined ")))
	assert.False(t, IsPlaceholder(strPtr("M Sport")))
	assert.False(t, IsPlaceholder(strPtr("nullable")))
}

func TestSynthesizeVariant(t *testing.T) {
	tests := []struct {
		name string
		in   VariantInputs
		want *string
	}{
		{
			name: "all inputs",
			in: VariantInputs{
				EngineSize:  f64Ptr(1.995),
				VariantCode: strPtr("320d"),
				FuelType:    strPtr("Diesel"),
				Doors:       intPtr(4),
			},
			want: strPtr("2.0 320d Diesel 4dr"),
		},
		{
			name: "engine and fuel only",
			in:   VariantInputs{EngineSize: f64Ptr(1.6), FuelType: strPtr("Petrol")},
			want: strPtr("1.6 Petrol"),
		},
		{
			name: "doors only",
			in:   VariantInputs{Doors: intPtr(5)},
			want: strPtr("5dr"),
		},
		{
			name: "placeholder code and unknown fuel are skipped",
			in:   VariantInputs{EngineSize: f64Ptr(3), VariantCode: strPtr("undefined"), FuelType: strPtr("Unknown")},
			want: strPtr("3.0"),
		},
		{
			name: "zero values are skipped",
			in:   VariantInputs{EngineSize: f64Ptr(0), Doors: intPtr(0)},
			want: nil,
		},
		{
			name: "nothing available",
			in:   VariantInputs{},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SynthesizeVariant(tt.in))
		})
	}
}

func TestParseDescription(t *testing.T) {
	d := ParseDescription("BMW M6 Gran Coupe [Petrol / Automatic]")
	require.NotNil(t, d.Make)
	require.NotNil(t, d.Model)
	require.NotNil(t, d.FuelType)
	assert.Equal(t, "BMW", *d.Make)
	assert.Equal(t, "M6 Gran Coupe", *d.Model)
	assert.Equal(t, "Petrol", *d.FuelType)
}

func TestParseDescriptionBoundsModel(t *testing.T) {
	d := ParseDescription("Volkswagen Golf 2.0 TDI GT Edition Launch Special Offer [Diesel / Manual]")
	assert.Equal(t, "Volkswagen", *d.Make)
	assert.Equal(t, "Golf 2.0 TDI GT Edition", *d.Model)
	assert.Equal(t, "Diesel", *d.FuelType)
}

func TestParseDescriptionPartial(t *testing.T) {
	tests := []struct {
		name      string
		desc      string
		wantMake  *string
		wantModel *string
		wantFuel  *string
	}{
		{"empty", "", nil, nil, nil},
		{"whitespace", "   ", nil, nil, nil},
		{"make only", "Tesla", strPtr("Tesla"), nil, nil},
		{"no bracket", "Ford Focus Zetec", strPtr("Ford"), strPtr("Focus Zetec"), nil},
		{"bracket only", "[Electric / Automatic]", nil, nil, strPtr("Electric")},
		{"no slash", "Mini Cooper [Petrol]", strPtr("Mini"), strPtr("Cooper"), strPtr("Petrol")},
		{"blank fuel", "Kia Ceed [ / Manual]", strPtr("Kia"), strPtr("Ceed"), nil},
		{"bracket mid text", "Audi [Diesel / Manual] A4 Avant", strPtr("Audi"), strPtr("A4 Avant"), strPtr("Diesel")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseDescription(tt.desc)
			assert.Equal(t, tt.wantMake, d.Make)
			assert.Equal(t, tt.wantModel, d.Model)
			assert.Equal(t, tt.wantFuel, d.FuelType)
		})
	}
	assert.True(t, ParseDescription("").IsZero())
}
