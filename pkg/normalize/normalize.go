// Package normalize converts raw provider payloads into flat, typed
// vehicle.Attributes. Each provider shape is described by a Paths table of
// candidate JSON paths. Missing sections, wrong types and malformed JSON
// come out as absent fields rather than errors.
//
// Example usage:
//
//	attrs := normalize.NewPrimary().Normalize(payload)
//	if attrs.Make != nil {
//	    fmt.Println(*attrs.Make)
//	}
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agentstation/carmap/pkg/constants"
	"github.com/agentstation/carmap/pkg/sources"
	"github.com/agentstation/carmap/pkg/vehicle"
)

// Normalizer converts one provider's raw payload into Attributes.
type Normalizer interface {
	// Source returns the provider this normalizer reads.
	Source() sources.ID

	// Normalize never fails: nil, null, empty or malformed payloads yield
	// Attributes with every field nil.
	Normalize(raw []byte) *vehicle.Attributes
}

// normalizer reads a payload through a Paths table.
type normalizer struct {
	source sources.ID
	paths  Paths
}

// New creates a Normalizer for a provider described by paths.
func New(source sources.ID, paths Paths) Normalizer {
	return &normalizer{source: source, paths: paths}
}

// NewPrimary creates the normalizer for the structured vehicle data provider.
func NewPrimary() Normalizer {
	return New(sources.Primary, PrimaryPaths())
}

// NewValuation creates the normalizer for the valuation provider.
func NewValuation() Normalizer {
	return New(sources.Secondary, ValuationPaths())
}

// Defaults returns the built-in normalizer for every input provider.
func Defaults() map[sources.ID]Normalizer {
	return map[sources.ID]Normalizer{
		sources.Primary:   NewPrimary(),
		sources.Secondary: NewValuation(),
	}
}

// Source implements Normalizer.
func (n *normalizer) Source() sources.ID {
	return n.source
}

// Normalize implements Normalizer.
func (n *normalizer) Normalize(raw []byte) *vehicle.Attributes {
	attrs := &vehicle.Attributes{}
	doc := parse(raw)
	if doc.isEmpty() {
		return attrs
	}
	p := n.paths

	// Identity
	attrs.Make = doc.str(p.Make...)
	attrs.Model = doc.str(p.Model...)
	attrs.Variant = doc.str(p.Variant...)
	attrs.VariantCode = distinct(doc.str(p.VariantCode...), attrs.Variant)
	attrs.Year = year(doc, p)
	attrs.Color = doc.str(p.Color...)

	// Specification
	attrs.FuelType = vocabulary(doc.str(p.FuelType...), FuelType)
	attrs.Transmission = vocabulary(doc.str(p.Transmission...), Transmission)
	attrs.EngineSize = engineSize(doc, p)
	attrs.BodyType = doc.str(p.BodyType...)
	attrs.Doors = doc.count(p.Doors...)
	attrs.Seats = doc.count(p.Seats...)
	attrs.PreviousOwners = doc.count(p.PreviousOwners...)
	attrs.Gearbox = gearbox(doc, p)
	attrs.EmissionClass = doc.str(p.EmissionClass...)

	// Running costs
	attrs.FuelEconomy = vehicle.FuelEconomyAttributes{
		Urban:      doc.num(p.FuelEconomyUrban...),
		ExtraUrban: doc.num(p.FuelEconomyExtraUrban...),
		Combined:   doc.num(p.FuelEconomyCombined...),
	}
	attrs.CO2Emissions = doc.num(p.CO2Emissions...)
	attrs.InsuranceGroup = doc.str(p.InsuranceGroup...)
	attrs.AnnualTax = doc.num(p.AnnualTax...)

	// Performance
	attrs.Performance = vehicle.PerformanceAttributes{
		Power:        doc.num(p.Power...),
		Torque:       doc.num(p.Torque...),
		Acceleration: doc.num(p.Acceleration...),
		TopSpeed:     doc.num(p.TopSpeed...),
	}

	// Valuation
	attrs.Valuation = vehicle.ValuationAttributes{
		Retail:      doc.num(p.Retail...),
		Trade:       doc.num(p.Trade...),
		Private:     doc.num(p.Private...),
		Mileage:     doc.num(p.Mileage...),
		Description: doc.str(p.Description...),
	}

	return attrs
}

// vocabulary applies a vocabulary normalizer to a present value. "Unknown"
// means the input could not be read and is reported as absent.
func vocabulary(raw *string, normalize func(any) string) *string {
	if raw == nil {
		return nil
	}
	v := normalize(*raw)
	if v == constants.Unknown {
		return nil
	}
	return &v
}

// distinct drops code when it only repeats the trim.
func distinct(code, trim *string) *string {
	if code == nil || trim == nil {
		return code
	}
	if strings.EqualFold(strings.TrimSpace(*code), strings.TrimSpace(*trim)) {
		return nil
	}
	return code
}

var leadingYear = regexp.MustCompile(`^\s*(\d{4})`)

// year reads a year of manufacture, then falls back to the year of first
// registration. Implausibly early years are discarded.
func year(doc document, p Paths) *int {
	for _, path := range p.Year {
		if y := doc.count(path); y != nil && *y >= constants.MinPlausibleYear {
			return y
		}
	}
	for _, path := range p.RegistrationDate {
		date := doc.str(path)
		if date == nil {
			continue
		}
		m := leadingYear.FindStringSubmatch(*date)
		if m == nil {
			continue
		}
		if y := count(ParseNumber(m[1])); y != nil && *y >= constants.MinPlausibleYear {
			return y
		}
	}
	return nil
}

// engineSize returns the engine capacity in litres. The unit comes from
// which field carried the value, never from its magnitude.
func engineSize(doc document, p Paths) *float64 {
	for _, path := range p.EngineSizeCc {
		if cc := doc.num(path); cc != nil && *cc > 0 {
			litres := *cc / 1000
			return &litres
		}
	}
	for _, path := range p.EngineSizeLitres {
		if litres := doc.num(path); litres != nil && *litres > 0 {
			return litres
		}
	}
	return nil
}

// gearbox prefers a gearbox description and otherwise builds one from the
// number of gears.
func gearbox(doc document, p Paths) *string {
	if g := doc.str(p.Gearbox...); g != nil {
		return g
	}
	if gears := doc.count(p.GearCount...); gears != nil && *gears > 0 {
		g := fmt.Sprintf("%d Speed", *gears)
		return &g
	}
	return nil
}
