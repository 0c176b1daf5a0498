// Package extract implements the extract command.
package extract

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/carmap/internal/appcontext"
	"github.com/agentstation/carmap/internal/cmd/output"
	"github.com/agentstation/carmap/internal/cmd/table"
	"github.com/agentstation/carmap/pkg/constants"
	"github.com/agentstation/carmap/pkg/enhancer"
	"github.com/agentstation/carmap/pkg/normalize"
)

// NewCommand creates the extract command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var canonical bool

	cmd := &cobra.Command{
		Use:     "extract <description>",
		GroupID: "inspect",
		Short:   "Read make, model and fuel type from a free-text description",
		Long: `Extract applies the free-text rules used when structured providers leave
identity fields empty: the first word is the make, up to five following
words are the model, and the text before the first "/" inside the first
[...] group is the fuel type.`,
		Example: `  carmap extract "BMW M6 Gran Coupe [Petrol / Automatic]"
  carmap extract --canonical Ford Focus Zetec [petrol/manual]`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc := enhancer.ParseDescription(strings.Join(args, " "))
			if canonical && desc.FuelType != nil {
				fuel := normalize.FuelType(*desc.FuelType)
				desc.FuelType = nil
				if fuel != constants.Unknown {
					desc.FuelType = &fuel
				}
			}

			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			var data any = desc
			if !format.IsStructured() {
				data = table.DescriptionToTableData(desc)
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}
	cmd.Flags().BoolVar(&canonical, "canonical", false,
		"Map the fuel type onto the normalized vocabulary")

	return cmd
}
