package plausibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelFieldRejectsEngineSizes(t *testing.T) {
	for _, s := range []string{
		"3.0L",
		"3.0",
		"3L",
		"2.0 Diesel",
		"1.6L Petrol",
		"1.6 l petrol",
		"2.5 Litre",
		"2.0 Plug-in Hybrid",
		"1.5 Hybrid",
		"1.6L Petrol Hybrid",
		"2.0 diesel hybrid",
		"2.0 Petrol Plug-in Hybrid",
		"3.",
		"2.L",
		"4 Diesel",
		" 1.4  ",
	} {
		assert.Nil(t, ModelField(&s), "ModelField(%q)", s)
		assert.True(t, LooksLikeEngineSize(s), "LooksLikeEngineSize(%q)", s)
	}
}

func TestModelFieldKeepsModelNames(t *testing.T) {
	for _, s := range []string{
		"X5",
		"3 Series",
		"500",
		"208",
		"A4 Avant",
		"Golf 2.0 TDI",
		"CX-5",
		"Diesel",
		"M3",
		"C-Class",
	} {
		got := ModelField(&s)
		if assert.NotNil(t, got, "ModelField(%q)", s) {
			assert.Equal(t, s, *got)
		}
	}
}

func TestModelFieldNil(t *testing.T) {
	assert.Nil(t, ModelField(nil))
}

func TestModelFieldIsIdempotent(t *testing.T) {
	for _, s := range []string{"X5", "2.0 Diesel", "500"} {
		once := ModelField(&s)
		twice := ModelField(once)
		assert.Equal(t, once, twice)
	}
}

func TestModelFieldBareIntegers(t *testing.T) {
	tests := []struct {
		model    string
		rejected bool
	}{
		{"3", false},
		{" 2 ", false},
		{"3.", true},
		{"3.0", true},
		{"3 L", true},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.rejected, LooksLikeEngineSize(tt.model))
		})
	}
}
