// Package enhancer derives vehicle attributes that no provider supplied
// directly: a variant descriptor synthesized from resolved specification
// fields, and make, model and fuel type parsed from a free-text description.
package enhancer

import (
	"slices"
	"strings"

	"github.com/agentstation/carmap/pkg/constants"
)

// IsPlaceholder reports whether s carries no real value: nil, blank, or one
// of the placeholder strings ("null", "undefined") some providers send
// instead of leaving a field out.
func IsPlaceholder(s *string) bool {
	if s == nil {
		return true
	}
	trimmed := strings.ToLower(strings.TrimSpace(*s))
	return trimmed == "" || slices.Contains(constants.Placeholders, trimmed)
}
