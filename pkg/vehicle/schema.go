package vehicle

import "github.com/agentstation/carmap/pkg/sources"

// Binding connects one output path to the Attributes field that feeds it
// and the Record leaf it fills.
type Binding interface {
	// Path returns the dotted output path, e.g. "runningCosts.fuelEconomy.combined".
	Path() string
	// Value returns the attribute value as a typed pointer in an interface,
	// or nil when the attributes do not carry the field.
	Value(a *Attributes) any
	// Assign sets the record leaf. value must be nil or the pointer type
	// returned by Value; anything else nulls the leaf.
	Assign(r *Record, value any, source sources.ID)
}

type binding[T any] struct {
	path string
	get  func(*Attributes) *T
	set  func(*Record) *FieldValue[T]
}

func (b binding[T]) Path() string {
	return b.path
}

func (b binding[T]) Value(a *Attributes) any {
	if a == nil {
		return nil
	}
	v := b.get(a)
	if v == nil {
		return nil
	}
	return v
}

func (b binding[T]) Assign(r *Record, value any, source sources.ID) {
	v, _ := value.(*T)
	*b.set(r) = NewFieldValue(v, source)
}

func bind[T any](path string, get func(*Attributes) *T, set func(*Record) *FieldValue[T]) Binding {
	return binding[T]{path: path, get: get, set: set}
}

// Schema returns the bindings for every output field, in record order.
func Schema() []Binding {
	return schema
}

// Lookup returns the binding for a path.
func Lookup(path string) (Binding, bool) {
	for _, b := range schema {
		if b.Path() == path {
			return b, true
		}
	}
	return nil, false
}

// Output paths referenced outside the schema table.
const (
	PathMake     = "make"
	PathModel    = "model"
	PathVariant  = "variant"
	PathFuelType = "specifications.fuelType"
)

var schema = []Binding{
	bind(PathMake, func(a *Attributes) *string { return a.Make }, func(r *Record) *FieldValue[string] { return &r.Make }),
	bind(PathModel, func(a *Attributes) *string { return a.Model }, func(r *Record) *FieldValue[string] { return &r.Model }),
	bind(PathVariant, func(a *Attributes) *string { return a.Variant }, func(r *Record) *FieldValue[string] { return &r.Variant }),
	bind("year", func(a *Attributes) *int { return a.Year }, func(r *Record) *FieldValue[int] { return &r.Year }),
	bind("color", func(a *Attributes) *string { return a.Color }, func(r *Record) *FieldValue[string] { return &r.Color }),

	bind(PathFuelType, func(a *Attributes) *string { return a.FuelType }, func(r *Record) *FieldValue[string] { return &r.Specifications.FuelType }),
	bind("specifications.transmission", func(a *Attributes) *string { return a.Transmission }, func(r *Record) *FieldValue[string] { return &r.Specifications.Transmission }),
	bind("specifications.engineSize", func(a *Attributes) *float64 { return a.EngineSize }, func(r *Record) *FieldValue[float64] { return &r.Specifications.EngineSize }),
	bind("specifications.bodyType", func(a *Attributes) *string { return a.BodyType }, func(r *Record) *FieldValue[string] { return &r.Specifications.BodyType }),
	bind("specifications.doors", func(a *Attributes) *int { return a.Doors }, func(r *Record) *FieldValue[int] { return &r.Specifications.Doors }),
	bind("specifications.seats", func(a *Attributes) *int { return a.Seats }, func(r *Record) *FieldValue[int] { return &r.Specifications.Seats }),
	bind("specifications.previousOwners", func(a *Attributes) *int { return a.PreviousOwners }, func(r *Record) *FieldValue[int] { return &r.Specifications.PreviousOwners }),
	bind("specifications.gearbox", func(a *Attributes) *string { return a.Gearbox }, func(r *Record) *FieldValue[string] { return &r.Specifications.Gearbox }),
	bind("specifications.emissionClass", func(a *Attributes) *string { return a.EmissionClass }, func(r *Record) *FieldValue[string] { return &r.Specifications.EmissionClass }),

	bind("runningCosts.fuelEconomy.urban", func(a *Attributes) *float64 { return a.FuelEconomy.Urban }, func(r *Record) *FieldValue[float64] { return &r.RunningCosts.FuelEconomy.Urban }),
	bind("runningCosts.fuelEconomy.extraUrban", func(a *Attributes) *float64 { return a.FuelEconomy.ExtraUrban }, func(r *Record) *FieldValue[float64] { return &r.RunningCosts.FuelEconomy.ExtraUrban }),
	bind("runningCosts.fuelEconomy.combined", func(a *Attributes) *float64 { return a.FuelEconomy.Combined }, func(r *Record) *FieldValue[float64] { return &r.RunningCosts.FuelEconomy.Combined }),
	bind("runningCosts.co2Emissions", func(a *Attributes) *float64 { return a.CO2Emissions }, func(r *Record) *FieldValue[float64] { return &r.RunningCosts.CO2Emissions }),
	bind("runningCosts.insuranceGroup", func(a *Attributes) *string { return a.InsuranceGroup }, func(r *Record) *FieldValue[string] { return &r.RunningCosts.InsuranceGroup }),
	bind("runningCosts.annualTax", func(a *Attributes) *float64 { return a.AnnualTax }, func(r *Record) *FieldValue[float64] { return &r.RunningCosts.AnnualTax }),

	bind("performance.power", func(a *Attributes) *float64 { return a.Performance.Power }, func(r *Record) *FieldValue[float64] { return &r.Performance.Power }),
	bind("performance.torque", func(a *Attributes) *float64 { return a.Performance.Torque }, func(r *Record) *FieldValue[float64] { return &r.Performance.Torque }),
	bind("performance.acceleration", func(a *Attributes) *float64 { return a.Performance.Acceleration }, func(r *Record) *FieldValue[float64] { return &r.Performance.Acceleration }),
	bind("performance.topSpeed", func(a *Attributes) *float64 { return a.Performance.TopSpeed }, func(r *Record) *FieldValue[float64] { return &r.Performance.TopSpeed }),

	bind("valuation.retail", func(a *Attributes) *float64 { return a.Valuation.Retail }, func(r *Record) *FieldValue[float64] { return &r.Valuation.Retail }),
	bind("valuation.trade", func(a *Attributes) *float64 { return a.Valuation.Trade }, func(r *Record) *FieldValue[float64] { return &r.Valuation.Trade }),
	bind("valuation.private", func(a *Attributes) *float64 { return a.Valuation.Private }, func(r *Record) *FieldValue[float64] { return &r.Valuation.Private }),
	bind("valuation.mileage", func(a *Attributes) *float64 { return a.Valuation.Mileage }, func(r *Record) *FieldValue[float64] { return &r.Valuation.Mileage }),
	bind("valuation.description", func(a *Attributes) *string { return a.Valuation.Description }, func(r *Record) *FieldValue[string] { return &r.Valuation.Description }),
}
