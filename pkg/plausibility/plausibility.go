// Package plausibility rejects values that are well formed but belong to a
// different field. Some providers put an engine-size/fuel-type composite
// such as "2.0 Diesel" into the model-name slot; ModelField turns those
// into absent values so a merge can fall back to another provider.
package plausibility

import "regexp"

// engineSizePattern matches a number with a decimal point, a litre marker
// or a fuel word, e.g. "3.0L", "3.", "2.0 Diesel", "1.6L Petrol Hybrid", "3L".
// A bare integer is not matched: "500" and "208" are real model names.
var engineSizePattern = regexp.MustCompile(
	`(?i)^\s*\d+(?:` +
		`\.\d*\s*(?:l|litres?|liters?)?` +
		`|\s*(?:l|litres?|liters?)` +
		`)?\s*(?:(?:petrol|diesel)?\s*(?:plug-in\s+)?hybrid|petrol|diesel|electric|gasoline)?\s*$`,
)

// bareNumber matches an integer with nothing else around it.
var bareNumber = regexp.MustCompile(`^\s*\d+\s*$`)

// LooksLikeEngineSize reports whether s is an engine-size/fuel-type
// composite rather than a model name.
func LooksLikeEngineSize(s string) bool {
	return engineSizePattern.MatchString(s) && !bareNumber.MatchString(s)
}

// ModelField returns nil for a model candidate that is really an engine
// size, and the candidate unchanged otherwise. Blank strings are left for
// the caller's emptiness rule.
func ModelField(candidate *string) *string {
	if candidate == nil {
		return nil
	}
	if LooksLikeEngineSize(*candidate) {
		return nil
	}
	return candidate
}
