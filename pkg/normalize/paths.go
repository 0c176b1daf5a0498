package normalize

import "reflect"

// Paths lists, for every attribute, the gjson paths a payload may carry it
// under. The first candidate with a usable value wins, so order encodes
// which section of a provider response is trusted more.
type Paths struct {
	Make        []string
	Model       []string
	Variant     []string
	VariantCode []string
	Year        []string
	// RegistrationDate paths hold dates whose first four digits are a year.
	RegistrationDate []string
	Color            []string

	FuelType     []string
	Transmission []string
	// Engine capacity is converted by field identity: Cc paths are divided
	// by 1000, Litres paths pass through.
	EngineSizeCc     []string
	EngineSizeLitres []string
	BodyType         []string
	Doors            []string
	Seats            []string
	PreviousOwners   []string
	Gearbox          []string
	// GearCount paths hold a number of gears, used when no Gearbox text exists.
	GearCount     []string
	EmissionClass []string

	FuelEconomyUrban      []string
	FuelEconomyExtraUrban []string
	FuelEconomyCombined   []string
	CO2Emissions          []string
	InsuranceGroup        []string
	AnnualTax             []string

	Power        []string
	Torque       []string
	Acceleration []string
	TopSpeed     []string

	Retail      []string
	Trade       []string
	Private     []string
	Mileage     []string
	Description []string
}

// canonicalPaths are the flat keys of an already-normalized payload, i.e.
// the JSON form of vehicle.Attributes.
func canonicalPaths() Paths {
	return Paths{
		Make:        []string{"make"},
		Model:       []string{"model"},
		Variant:     []string{"variant"},
		VariantCode: []string{"variantCode"},
		Year:        []string{"year"},
		Color:       []string{"color"},

		FuelType:         []string{"fuelType"},
		Transmission:     []string{"transmission"},
		EngineSizeLitres: []string{"engineSize"},
		BodyType:         []string{"bodyType"},
		Doors:            []string{"doors"},
		Seats:            []string{"seats"},
		PreviousOwners:   []string{"previousOwners"},
		Gearbox:          []string{"gearbox"},
		EmissionClass:    []string{"emissionClass"},

		FuelEconomyUrban:      []string{"fuelEconomy.urban"},
		FuelEconomyExtraUrban: []string{"fuelEconomy.extraUrban"},
		FuelEconomyCombined:   []string{"fuelEconomy.combined"},
		CO2Emissions:          []string{"co2Emissions"},
		InsuranceGroup:        []string{"insuranceGroup"},
		AnnualTax:             []string{"annualTax"},

		Power:        []string{"performance.power"},
		Torque:       []string{"performance.torque"},
		Acceleration: []string{"performance.acceleration"},
		TopSpeed:     []string{"performance.topSpeed"},

		Retail:      []string{"valuation.retail"},
		Trade:       []string{"valuation.trade"},
		Private:     []string{"valuation.private"},
		Mileage:     []string{"valuation.mileage"},
		Description: []string{"valuation.description"},
	}
}

// Then returns p with every candidate list of next appended, so next's
// paths are only consulted when none of p's hold a value.
func (p Paths) Then(next Paths) Paths {
	out := p
	ov := reflect.ValueOf(&out).Elem()
	nv := reflect.ValueOf(next)
	for i := range ov.NumField() {
		field := ov.Field(i)
		extra := nv.Field(i)
		if extra.Len() == 0 {
			continue
		}
		merged := make([]string, 0, field.Len()+extra.Len())
		merged = append(merged, field.Interface().([]string)...)
		merged = append(merged, extra.Interface().([]string)...)
		field.Set(reflect.ValueOf(merged))
	}
	return out
}

// PrimaryPaths describes the structured vehicle data provider. Manufacturer
// classification (SMMT) sections are read before registration authority
// (DVLA) sections.
func PrimaryPaths() Paths {
	return Paths{
		Make:             []string{"ClassificationDetails.Smmt.Make", "VehicleIdentification.DvlaMake"},
		Model:            []string{"ClassificationDetails.Smmt.Model", "ClassificationDetails.Smmt.Range", "VehicleIdentification.DvlaModel"},
		Variant:          []string{"ClassificationDetails.Smmt.Trim"},
		VariantCode:      []string{"ClassificationDetails.Smmt.ModelVariant"},
		Year:             []string{"VehicleIdentification.YearOfManufacture"},
		RegistrationDate: []string{"VehicleIdentification.DateFirstRegistered"},
		Color:            []string{"VehicleHistory.ColourDetails.CurrentColour", "VehicleIdentification.Colour"},

		FuelType:         []string{"PowerSource.FuelType", "ClassificationDetails.Smmt.FuelType", "VehicleIdentification.DvlaFuelType"},
		Transmission:     []string{"TransmissionDetails.TransmissionType", "ClassificationDetails.Smmt.Transmission"},
		EngineSizeCc:     []string{"PowerSource.IceDetails.EngineCapacityCc", "VehicleIdentification.EngineCapacityCc"},
		EngineSizeLitres: []string{"PowerSource.IceDetails.EngineCapacityLitres"},
		BodyType:         []string{"BodyDetails.BodyStyle", "VehicleIdentification.DvlaBodyType"},
		Doors:            []string{"BodyDetails.NumberOfDoors"},
		Seats:            []string{"BodyDetails.NumberOfSeats"},
		PreviousOwners:   []string{"VehicleHistory.NumberOfPreviousKeepers"},
		Gearbox:          []string{"TransmissionDetails.Gearbox"},
		GearCount:        []string{"TransmissionDetails.NumberOfGears"},
		EmissionClass:    []string{"Emissions.EuroStatus"},

		FuelEconomyUrban:      []string{"Performance.FuelEconomy.UrbanColdMpg"},
		FuelEconomyExtraUrban: []string{"Performance.FuelEconomy.ExtraUrbanMpg"},
		FuelEconomyCombined:   []string{"Performance.FuelEconomy.CombinedMpg"},
		CO2Emissions:          []string{"Emissions.ManufacturerCo2", "Performance.Co2"},
		InsuranceGroup:        []string{"Insurance.InsuranceGroup"},
		AnnualTax:             []string{"VehicleExciseDuty.TwelveMonthRate"},

		Power:        []string{"Performance.Power.Bhp"},
		Torque:       []string{"Performance.Torque.Nm"},
		Acceleration: []string{"Performance.Statistics.ZeroToSixtyTwoMph"},
		TopSpeed:     []string{"Performance.Statistics.MaxSpeedMph"},
	}.Then(canonicalPaths())
}

// ValuationPaths describes the valuation provider: a price list, mileage,
// and a free-text description of the vehicle.
func ValuationPaths() Paths {
	return Paths{
		Year: []string{"YearOfManufacture"},

		Retail:      []string{"ValuationList.DealerForecourt", "ValuationList.OTR"},
		Trade:       []string{"ValuationList.TradeAverage", "ValuationList.PartExchange"},
		Private:     []string{"ValuationList.PrivateClean", "ValuationList.PrivateAverage"},
		Mileage:     []string{"Mileage"},
		Description: []string{"VehicleDescription"},
	}.Then(canonicalPaths())
}
