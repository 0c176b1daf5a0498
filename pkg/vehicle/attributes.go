// Package vehicle defines the vehicle data model shared by every stage of
// the pipeline: the flat per-provider Attributes a normalizer produces, the
// FieldValue leaves that pair a value with its source, and the merged Record.
package vehicle

// Attributes is the flat, provider-agnostic record a normalizer produces from
// one provider payload. Every field is independently nullable; a nil pointer
// means the provider did not supply the field.
type Attributes struct {
	Make    *string `json:"make,omitempty" yaml:"make,omitempty"`
	Model   *string `json:"model,omitempty" yaml:"model,omitempty"`
	Variant *string `json:"variant,omitempty" yaml:"variant,omitempty"`
	// VariantCode is the raw manufacturer variant code, kept only when it
	// differs from the trim. It feeds variant synthesis and is not an output field.
	VariantCode *string `json:"variantCode,omitempty" yaml:"variantCode,omitempty"`
	Year        *int    `json:"year,omitempty" yaml:"year,omitempty"`
	Color       *string `json:"color,omitempty" yaml:"color,omitempty"`

	FuelType       *string  `json:"fuelType,omitempty" yaml:"fuelType,omitempty"`
	Transmission   *string  `json:"transmission,omitempty" yaml:"transmission,omitempty"`
	EngineSize     *float64 `json:"engineSize,omitempty" yaml:"engineSize,omitempty"` // litres
	BodyType       *string  `json:"bodyType,omitempty" yaml:"bodyType,omitempty"`
	Doors          *int     `json:"doors,omitempty" yaml:"doors,omitempty"`
	Seats          *int     `json:"seats,omitempty" yaml:"seats,omitempty"`
	PreviousOwners *int     `json:"previousOwners,omitempty" yaml:"previousOwners,omitempty"`
	Gearbox        *string  `json:"gearbox,omitempty" yaml:"gearbox,omitempty"`
	EmissionClass  *string  `json:"emissionClass,omitempty" yaml:"emissionClass,omitempty"`

	FuelEconomy    FuelEconomyAttributes `json:"fuelEconomy" yaml:"fuelEconomy"`
	CO2Emissions   *float64              `json:"co2Emissions,omitempty" yaml:"co2Emissions,omitempty"`
	InsuranceGroup *string               `json:"insuranceGroup,omitempty" yaml:"insuranceGroup,omitempty"`
	AnnualTax      *float64              `json:"annualTax,omitempty" yaml:"annualTax,omitempty"`

	Performance PerformanceAttributes `json:"performance" yaml:"performance"`
	Valuation   ValuationAttributes   `json:"valuation" yaml:"valuation"`
}

// FuelEconomyAttributes holds fuel consumption figures in mpg.
type FuelEconomyAttributes struct {
	Urban      *float64 `json:"urban,omitempty" yaml:"urban,omitempty"`
	ExtraUrban *float64 `json:"extraUrban,omitempty" yaml:"extraUrban,omitempty"`
	Combined   *float64 `json:"combined,omitempty" yaml:"combined,omitempty"`
}

// PerformanceAttributes holds power (bhp), torque (Nm), 0-62mph time (s)
// and top speed (mph).
type PerformanceAttributes struct {
	Power        *float64 `json:"power,omitempty" yaml:"power,omitempty"`
	Torque       *float64 `json:"torque,omitempty" yaml:"torque,omitempty"`
	Acceleration *float64 `json:"acceleration,omitempty" yaml:"acceleration,omitempty"`
	TopSpeed     *float64 `json:"topSpeed,omitempty" yaml:"topSpeed,omitempty"`
}

// ValuationAttributes holds the prices a valuation provider quotes.
type ValuationAttributes struct {
	Retail      *float64 `json:"retail,omitempty" yaml:"retail,omitempty"`
	Trade       *float64 `json:"trade,omitempty" yaml:"trade,omitempty"`
	Private     *float64 `json:"private,omitempty" yaml:"private,omitempty"`
	Mileage     *float64 `json:"mileage,omitempty" yaml:"mileage,omitempty"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// HasIdentity reports whether make, model or year is present.
func (a *Attributes) HasIdentity() bool {
	if a == nil {
		return false
	}
	return !IsEmpty(a.Make) || !IsEmpty(a.Model) || !IsEmpty(a.Year)
}

// HasRunningCosts reports whether any running-cost figure is present.
func (a *Attributes) HasRunningCosts() bool {
	if a == nil {
		return false
	}
	return !IsEmpty(a.FuelEconomy.Urban) ||
		!IsEmpty(a.FuelEconomy.ExtraUrban) ||
		!IsEmpty(a.FuelEconomy.Combined) ||
		!IsEmpty(a.CO2Emissions) ||
		!IsEmpty(a.InsuranceGroup) ||
		!IsEmpty(a.AnnualTax)
}

// HasPerformance reports whether any performance figure is present.
func (a *Attributes) HasPerformance() bool {
	if a == nil {
		return false
	}
	p := a.Performance
	return !IsEmpty(p.Power) || !IsEmpty(p.Torque) || !IsEmpty(p.Acceleration) || !IsEmpty(p.TopSpeed)
}

// HasValuation reports whether any valuation figure or description is present.
func (a *Attributes) HasValuation() bool {
	if a == nil {
		return false
	}
	v := a.Valuation
	return !IsEmpty(v.Retail) ||
		!IsEmpty(v.Trade) ||
		!IsEmpty(v.Private) ||
		!IsEmpty(v.Mileage) ||
		!IsEmpty(v.Description)
}

// IsValid reports whether the attributes carry enough data for their
// provider to count as present: identity, running costs, performance or
// valuation. Specification fields alone do not qualify.
func (a *Attributes) IsValid() bool {
	return a.HasIdentity() || a.HasRunningCosts() || a.HasPerformance() || a.HasValuation()
}
