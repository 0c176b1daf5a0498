package vehicle

import (
	"github.com/agentstation/utc"
)

// Record is the merged vehicle record. Every leaf is a FieldValue, and the
// record is always structurally complete: a field nobody supplied is present
// with a null value and a null source.
type Record struct {
	Make    FieldValue[string] `json:"make" yaml:"make"`
	Model   FieldValue[string] `json:"model" yaml:"model"`
	Variant FieldValue[string] `json:"variant" yaml:"variant"`
	Year    FieldValue[int]    `json:"year" yaml:"year"`
	Color   FieldValue[string] `json:"color" yaml:"color"`

	Specifications Specifications `json:"specifications" yaml:"specifications"`
	RunningCosts   RunningCosts   `json:"runningCosts" yaml:"runningCosts"`
	Performance    Performance    `json:"performance" yaml:"performance"`
	Valuation      Valuation      `json:"valuation" yaml:"valuation"`

	DataSources  DataSources `json:"dataSources" yaml:"dataSources" walk:"-"`
	FieldSources SourceTree  `json:"fieldSources" yaml:"fieldSources"`
}

// Specifications groups the technical specification fields.
type Specifications struct {
	FuelType       FieldValue[string]  `json:"fuelType" yaml:"fuelType"`
	Transmission   FieldValue[string]  `json:"transmission" yaml:"transmission"`
	EngineSize     FieldValue[float64] `json:"engineSize" yaml:"engineSize"`
	BodyType       FieldValue[string]  `json:"bodyType" yaml:"bodyType"`
	Doors          FieldValue[int]     `json:"doors" yaml:"doors"`
	Seats          FieldValue[int]     `json:"seats" yaml:"seats"`
	PreviousOwners FieldValue[int]     `json:"previousOwners" yaml:"previousOwners"`
	Gearbox        FieldValue[string]  `json:"gearbox" yaml:"gearbox"`
	EmissionClass  FieldValue[string]  `json:"emissionClass" yaml:"emissionClass"`
}

// RunningCosts groups fuel economy, emissions, insurance and tax.
type RunningCosts struct {
	FuelEconomy    FuelEconomy         `json:"fuelEconomy" yaml:"fuelEconomy"`
	CO2Emissions   FieldValue[float64] `json:"co2Emissions" yaml:"co2Emissions"`
	InsuranceGroup FieldValue[string]  `json:"insuranceGroup" yaml:"insuranceGroup"`
	AnnualTax      FieldValue[float64] `json:"annualTax" yaml:"annualTax"`
}

// FuelEconomy holds resolved mpg figures.
type FuelEconomy struct {
	Urban      FieldValue[float64] `json:"urban" yaml:"urban"`
	ExtraUrban FieldValue[float64] `json:"extraUrban" yaml:"extraUrban"`
	Combined   FieldValue[float64] `json:"combined" yaml:"combined"`
}

// Performance holds resolved performance figures.
type Performance struct {
	Power        FieldValue[float64] `json:"power" yaml:"power"`
	Torque       FieldValue[float64] `json:"torque" yaml:"torque"`
	Acceleration FieldValue[float64] `json:"acceleration" yaml:"acceleration"`
	TopSpeed     FieldValue[float64] `json:"topSpeed" yaml:"topSpeed"`
}

// Valuation holds resolved prices, mileage and the provider's description.
type Valuation struct {
	Retail      FieldValue[float64] `json:"retail" yaml:"retail"`
	Trade       FieldValue[float64] `json:"trade" yaml:"trade"`
	Private     FieldValue[float64] `json:"private" yaml:"private"`
	Mileage     FieldValue[float64] `json:"mileage" yaml:"mileage"`
	Description FieldValue[string]  `json:"description" yaml:"description"`
}

// DataSources summarizes which providers contributed and when the merge ran.
type DataSources struct {
	Primary   bool     `json:"primary" yaml:"primary"`
	Secondary bool     `json:"secondary" yaml:"secondary"`
	Timestamp utc.Time `json:"timestamp" yaml:"timestamp"`
}

// Any reports whether at least one provider contributed.
func (d DataSources) Any() bool {
	return d.Primary || d.Secondary
}

// SourceTree mirrors the record's shape. Interior nodes are SourceTree
// values; leaves are the source ID string, or nil for a null field.
type SourceTree map[string]any

// Lookup returns the leaf at a dotted path.
func (t SourceTree) Lookup(path string) (any, bool) {
	var node any = t
	for _, part := range splitPath(path) {
		m, ok := node.(SourceTree)
		if !ok {
			return nil, false
		}
		node, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return node, true
}
