// Package provenance implements the provenance command.
package provenance

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/carmap/cmd/carmap/cmd/merge"
	"github.com/agentstation/carmap/internal/appcontext"
	"github.com/agentstation/carmap/internal/cmd/globals"
	"github.com/agentstation/carmap/internal/cmd/output"
	"github.com/agentstation/carmap/internal/cmd/table"
	"github.com/agentstation/carmap/pkg/provenance"
	"github.com/agentstation/carmap/pkg/reconciler"
	"github.com/agentstation/carmap/pkg/vehicle"
)

// View is the structured output of the provenance command.
type View struct {
	Provenance   provenance.Map         `json:"provenance" yaml:"provenance"`
	FieldSources vehicle.SourceTree     `json:"fieldSources" yaml:"fieldSources"`
	Rejections   []reconciler.Rejection `json:"rejections" yaml:"rejections"`
	Unresolved   []string               `json:"unresolved" yaml:"unresolved"`
}

// NewCommand creates the provenance command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		inputs *globals.InputFlags
		fields []string
		report bool
	)

	cmd := &cobra.Command{
		Use:     "provenance",
		GroupID: "core",
		Short:   "Explain where each merged field came from",
		Long: `Provenance runs the same merge as the merge command and shows, for every
field, the candidate values each provider offered, which one was selected
and why the others were passed over or rejected.`,
		Example: `  carmap provenance -p vehicle.json -s valuation.json
  carmap provenance -p vehicle.json -s valuation.json --fields 'valuation.*'
  carmap provenance -p vehicle.json --report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := merge.Run(cmd, app, inputs)
			if err != nil {
				return err
			}
			view := filter(result, fields)

			if report {
				_, err := io.WriteString(cmd.OutOrStdout(), provenance.GenerateReport(view.Provenance).String())
				return err
			}

			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			var data any = view
			if !format.IsStructured() {
				tables := []table.Data{table.ProvenanceToTableData(view.Provenance, nil)}
				if len(view.Rejections) > 0 {
					tables = append(tables, table.RejectionsToTableData(view.Rejections))
				}
				data = tables
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}
	inputs = globals.AddInputFlags(cmd)
	cmd.Flags().StringSliceVarP(&fields, "fields", "f", nil,
		"Only show fields matching these patterns (e.g. 'valuation.*,make')")
	cmd.Flags().BoolVar(&report, "report", false,
		"Print a plain-text provenance report")

	return cmd
}

func filter(result *reconciler.Result, patterns []string) View {
	view := View{
		Provenance:   make(provenance.Map, len(result.Provenance)),
		FieldSources: result.Record.FieldSources,
		Rejections:   []reconciler.Rejection{},
		Unresolved:   []string{},
	}
	for field, entries := range result.Provenance {
		if table.MatchField(field, patterns) {
			view.Provenance[field] = entries
		}
	}
	for _, r := range result.Rejections {
		if table.MatchField(r.Field, patterns) {
			view.Rejections = append(view.Rejections, r)
		}
	}
	var paths []string
	for _, p := range vehicle.Paths() {
		if table.MatchField(p, patterns) {
			paths = append(paths, p)
		}
	}
	view.Unresolved = append(view.Unresolved, result.Provenance.Missing(paths)...)
	return view
}
