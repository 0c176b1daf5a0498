package normalize

import (
	"strings"

	"github.com/agentstation/carmap/pkg/constants"
)

// Normalized fuel types.
const (
	FuelPetrolPlugInHybrid = "Petrol Plug-in Hybrid"
	FuelDieselPlugInHybrid = "Diesel Plug-in Hybrid"
	FuelPlugInHybrid       = "Plug-in Hybrid"
	FuelPetrolHybrid       = "Petrol Hybrid"
	FuelDieselHybrid       = "Diesel Hybrid"
	FuelHybrid             = "Hybrid"
	FuelPetrol             = "Petrol"
	FuelDiesel             = "Diesel"
	FuelElectric           = "Electric"
)

// Normalized transmissions.
const (
	TransmissionManual        = "Manual"
	TransmissionAutomatic     = "Automatic"
	TransmissionSemiAutomatic = "Semi-Automatic"
)

// vocabularyRule maps a lower-cased raw value to result when it contains
// every word in all and, if anyOf is set, at least one word from anyOf.
type vocabularyRule struct {
	all    []string
	anyOf  []string
	result string
}

func (r vocabularyRule) matches(lower string) bool {
	for _, word := range r.all {
		if !strings.Contains(lower, word) {
			return false
		}
	}
	if len(r.anyOf) == 0 {
		return true
	}
	for _, word := range r.anyOf {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// fuelRules are ordered most specific first.
var fuelRules = []vocabularyRule{
	{all: []string{"plug-in", "hybrid", "petrol"}, result: FuelPetrolPlugInHybrid},
	{all: []string{"plug-in", "hybrid", "diesel"}, result: FuelDieselPlugInHybrid},
	{all: []string{"plug-in", "hybrid"}, result: FuelPlugInHybrid},
	{all: []string{"hybrid", "petrol"}, result: FuelPetrolHybrid},
	{all: []string{"hybrid", "diesel"}, result: FuelDieselHybrid},
	{all: []string{"hybrid"}, result: FuelHybrid},
	{anyOf: []string{"petrol", "gasoline"}, result: FuelPetrol},
	{anyOf: []string{"diesel"}, result: FuelDiesel},
	{anyOf: []string{"electric", "ev"}, result: FuelElectric},
}

// transmissionRules check "semi" before "auto" so semi-automatic gearboxes
// are not read as automatic.
var transmissionRules = []vocabularyRule{
	{anyOf: []string{"manual"}, result: TransmissionManual},
	{anyOf: []string{"semi", "cvt", "dsg"}, result: TransmissionSemiAutomatic},
	{anyOf: []string{"automatic", "auto"}, result: TransmissionAutomatic},
}

// FuelType normalizes a provider's fuel description. Unmatched strings are
// returned with their first character capitalized; missing, blank or
// non-string input returns "Unknown".
func FuelType(v any) string {
	return classify(v, fuelRules)
}

// Transmission normalizes a provider's transmission description with the
// same fallback rules as FuelType.
func Transmission(v any) string {
	return classify(v, transmissionRules)
}

func classify(v any, rules []vocabularyRule) string {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return constants.Unknown
	}
	lower := strings.ToLower(s)
	for _, rule := range rules {
		if rule.matches(lower) {
			return rule.result
		}
	}
	return capitalizeFirst(s)
}

// capitalizeFirst upper-cases the first character and leaves the rest alone.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}
