// Package sources defines the identities of the providers that contribute
// vehicle attributes, and the categories their fields are grouped into.
//
// Example usage:
//
//	for _, id := range sources.Providers() {
//	    fmt.Println(id, id.Name())
//	}
package sources

import (
	"slices"
	"strings"
)

// ID identifies the origin of a field value.
type ID string

// String returns the string representation of a source ID.
func (id ID) String() string {
	return string(id)
}

// Name returns a human-readable name for the source.
func (id ID) Name() string {
	switch id {
	case Primary:
		return "Vehicle Data"
	case Secondary:
		return "Valuation"
	case Synthesized:
		return "Synthesized"
	default:
		str := id.String()
		if str == "" {
			return ""
		}
		return strings.ToUpper(str[:1]) + str[1:]
	}
}

// Source identifiers used throughout the system.
const (
	// Primary identifies the structured vehicle data provider.
	Primary ID = "primary"

	// Secondary identifies the valuation provider.
	Secondary ID = "secondary"

	// Synthesized marks values derived locally from other resolved fields.
	// It is never an input provider.
	Synthesized ID = "synthesized"
)

// Providers returns the input providers in fallback order.
func Providers() []ID {
	return []ID{
		Primary,
		Secondary,
	}
}

// IDs returns every known source identifier, synthetic ones included.
func IDs() []ID {
	return append(Providers(), Synthesized)
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// IsProvider returns true if the ID names an input provider.
func (id ID) IsProvider() bool {
	return slices.Contains(Providers(), id)
}

// Category groups output fields that share a default priority.
type Category string

// Field categories.
const (
	CategoryIdentity      Category = "identity"
	CategorySpecification Category = "specifications"
	CategoryRunningCosts  Category = "runningCosts"
	CategoryPerformance   Category = "performance"
	CategoryValuation     Category = "valuation"
)

// String returns the string representation of a category.
func (c Category) String() string {
	return string(c)
}

// CategoryOf returns the category a dotted field path belongs to.
// Top-level paths are identity fields.
func CategoryOf(path string) Category {
	head, _, found := strings.Cut(path, ".")
	if !found {
		return CategoryIdentity
	}
	return Category(head)
}
