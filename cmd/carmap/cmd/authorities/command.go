// Package authorities implements the authorities command.
package authorities

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/carmap/internal/appcontext"
	"github.com/agentstation/carmap/internal/cmd/output"
	"github.com/agentstation/carmap/internal/cmd/table"
	"github.com/agentstation/carmap/pkg/authority"
	"github.com/agentstation/carmap/pkg/errors"
	"github.com/agentstation/carmap/pkg/sources"
	"github.com/agentstation/carmap/pkg/vehicle"
)

// Ranking is the structured output for a single field.
type Ranking struct {
	Field    string            `json:"field" yaml:"field"`
	Category sources.Category  `json:"category" yaml:"category"`
	Matches  []authority.Field `json:"matches" yaml:"matches"`
	Order    []sources.ID      `json:"order" yaml:"order"`
}

// NewCommand creates the authorities command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:     "authorities [field]",
		GroupID: "inspect",
		Short:   "Show the provider priority table",
		Long: `Authorities lists the priority rules in effect: the built-in defaults, or
the YAML table named by the authorities config key. Given a field path it
shows the rules that match it and the order providers are tried in.`,
		Example: `  carmap authorities
  carmap authorities valuation.retail
  carmap authorities --source secondary
  carmap authorities -o yaml > authorities.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			auth, err := app.Authorities()
			if err != nil {
				return err
			}
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			formatter := output.NewFormatter(format)

			rules := auth.List()
			if source != "" {
				id := sources.ID(strings.ToLower(strings.TrimSpace(source)))
				if !id.IsProvider() {
					return &errors.ValidationError{
						Field:   "source",
						Value:   source,
						Message: "must be one of: primary, secondary",
					}
				}
				rules = authority.BySource(rules, id)
			}

			if len(args) == 0 {
				var data any = authority.File{Authorities: rules}
				if !format.IsStructured() {
					data = table.AuthoritiesToTableData(rules)
				}
				return formatter.Format(cmd.OutOrStdout(), data)
			}

			field := args[0]
			if _, ok := vehicle.Lookup(field); !ok {
				return &errors.NotFoundError{Resource: "field", ID: field}
			}
			ranking := Ranking{
				Field:    field,
				Category: sources.CategoryOf(field),
				Matches:  authority.Matching(field, rules),
				Order:    auth.Rank(field, sources.Providers()),
			}
			if ranking.Matches == nil {
				ranking.Matches = []authority.Field{}
			}

			var data any = ranking
			if !format.IsStructured() {
				data = []table.Data{table.AuthoritiesToTableData(ranking.Matches), orderTable(ranking.Order)}
			}
			return formatter.Format(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().StringVar(&source, "source", "",
		"Only show rules that prefer this provider")

	return cmd
}

func orderTable(order []sources.ID) table.Data {
	rows := make([][]string, 0, len(order))
	for i, id := range order {
		rows = append(rows, []string{strconv.Itoa(i + 1), id.String(), id.Name()})
	}
	return table.Data{
		Headers:         []string{"Rank", "Source", "Provider"},
		Rows:            rows,
		ColumnAlignment: []table.Align{table.AlignRight, table.AlignLeft, table.AlignLeft},
	}
}
