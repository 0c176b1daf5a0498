package enhancer

import (
	"regexp"
	"strings"

	"github.com/agentstation/carmap/pkg/constants"
)

// Description holds what could be read from a free-text vehicle description.
// Any field may be nil.
type Description struct {
	Make     *string `json:"make" yaml:"make"`
	Model    *string `json:"model" yaml:"model"`
	FuelType *string `json:"fuelType" yaml:"fuelType"`
}

// bracketed matches a "[FuelType / TransmissionType]" segment.
var bracketed = regexp.MustCompile(`\[([^\]]*)\]`)

// ParseDescription reads make, model and fuel type from a description such
// as "BMW M6 Gran Coupe [Petrol / Automatic]". The fuel type is the text
// before the first "/" of the first bracketed segment. With the brackets
// removed, the first word is the make and up to five following words are
// the model, which keeps trailing marketing text out of it.
func ParseDescription(desc string) Description {
	var d Description

	if m := bracketed.FindStringSubmatch(desc); m != nil {
		fuel, _, _ := strings.Cut(m[1], "/")
		d.FuelType = nonBlank(fuel)
	}

	words := strings.Fields(bracketed.ReplaceAllString(desc, " "))
	if len(words) == 0 {
		return d
	}
	d.Make = nonBlank(words[0])

	rest := words[1:]
	if len(rest) > constants.MaxModelTokens {
		rest = rest[:constants.MaxModelTokens]
	}
	d.Model = nonBlank(strings.Join(rest, " "))

	return d
}

// IsZero reports whether nothing could be read.
func (d Description) IsZero() bool {
	return d.Make == nil && d.Model == nil && d.FuelType == nil
}

func nonBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
