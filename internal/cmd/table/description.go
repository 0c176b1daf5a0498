package table

import "github.com/agentstation/carmap/pkg/enhancer"

// DescriptionToTableData shows the attributes recovered from a free-text
// vehicle description.
func DescriptionToTableData(d enhancer.Description) Data {
	return Data{
		Headers: []string{"Attribute", "Value"},
		Rows: [][]string{
			{"Make", FormatValue(d.Make)},
			{"Model", FormatValue(d.Model)},
			{"Fuel Type", FormatValue(d.FuelType)},
		},
	}
}
