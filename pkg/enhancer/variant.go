package enhancer

import (
	"fmt"
	"strings"

	"github.com/agentstation/carmap/pkg/constants"
)

// VariantInputs are the resolved fields a variant descriptor is built from.
type VariantInputs struct {
	EngineSize  *float64 // litres
	VariantCode *string  // raw manufacturer variant code, distinct from the trim
	FuelType    *string
	Doors       *int
}

// SynthesizeVariant builds a variant descriptor such as "2.0 320d Diesel 4dr"
// from whichever inputs are available, in that order. It returns nil when
// none are.
func SynthesizeVariant(in VariantInputs) *string {
	var parts []string

	if in.EngineSize != nil && *in.EngineSize > 0 {
		parts = append(parts, fmt.Sprintf("%.1f", *in.EngineSize))
	}
	if !IsPlaceholder(in.VariantCode) {
		parts = append(parts, strings.TrimSpace(*in.VariantCode))
	}
	if !IsPlaceholder(in.FuelType) && *in.FuelType != constants.Unknown {
		parts = append(parts, strings.TrimSpace(*in.FuelType))
	}
	if in.Doors != nil && *in.Doors > 0 {
		parts = append(parts, fmt.Sprintf("%ddr", *in.Doors))
	}

	if len(parts) == 0 {
		return nil
	}
	variant := strings.Join(parts, " ")
	return &variant
}
