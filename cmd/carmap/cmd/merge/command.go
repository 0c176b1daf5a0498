// Package merge implements the merge command.
package merge

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/carmap/internal/appcontext"
	"github.com/agentstation/carmap/internal/cmd/globals"
	"github.com/agentstation/carmap/internal/cmd/output"
	"github.com/agentstation/carmap/internal/cmd/payload"
	"github.com/agentstation/carmap/internal/cmd/table"
	"github.com/agentstation/carmap/pkg/errors"
	"github.com/agentstation/carmap/pkg/logging"
	"github.com/agentstation/carmap/pkg/reconciler"
)

// NewCommand creates the merge command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var inputs *globals.InputFlags

	cmd := &cobra.Command{
		Use:     "merge",
		GroupID: "core",
		Short:   "Merge provider payloads into one vehicle record",
		Long: `Merge normalizes the vehicle data and valuation payloads, resolves every
field by provider priority and prints the merged record.

A provider whose flag is omitted, whose file cannot be read or whose
payload is not valid JSON is treated as having returned nothing.`,
		Example: `  carmap merge --primary vehicle.json --secondary valuation.json
  carmap merge -p vehicle.json -o yaml
  curl -s $VALUATION_URL | carmap merge -p vehicle.json -s -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := Run(cmd, app, inputs)
			if err != nil {
				return err
			}
			return render(cmd, app, result)
		},
	}
	inputs = globals.AddInputFlags(cmd)

	return cmd
}

// Run loads the named payloads and reconciles them. It is shared with the
// provenance command.
func Run(cmd *cobra.Command, app appcontext.Interface, inputs *globals.InputFlags) (*reconciler.Result, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	merger, err := app.Merger()
	if err != nil {
		return nil, err
	}

	payloads, err := payload.Load(inputs.Inputs(), cmd.InOrStdin(), logger)
	if err != nil {
		return nil, err
	}
	// Reading stdin can block until the user interrupts.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrCanceled, err)
	}

	result := merger.WithLogger(logger).Reconcile(payloads)

	ctx = logging.WithVehicle(ctx, deref(result.Record.Make.Value), deref(result.Record.Model.Value))
	event := logging.FromContext(ctx).Info()
	if globals.Parse(cmd).Quiet {
		event = logging.FromContext(ctx).Debug()
	}
	event.
		Int("resolved", result.Resolved()).
		Int("rejected", len(result.Rejections)).
		Msg(result.Summary())

	return result, nil
}

func render(cmd *cobra.Command, app appcontext.Interface, result *reconciler.Result) error {
	format, err := output.Resolve(app.OutputFormat())
	if err != nil {
		return err
	}

	var data any = result.Record
	if !format.IsStructured() {
		data = []table.Data{
			table.RecordToTableData(result.Record),
			table.DataSourcesToTableData(result.Record.DataSources),
		}
	}
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
