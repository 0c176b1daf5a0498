// Package normalize implements the normalize command.
package normalize

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/carmap/internal/appcontext"
	"github.com/agentstation/carmap/internal/cmd/output"
	"github.com/agentstation/carmap/internal/cmd/payload"
	"github.com/agentstation/carmap/internal/cmd/table"
	"github.com/agentstation/carmap/pkg/constants"
	"github.com/agentstation/carmap/pkg/errors"
	"github.com/agentstation/carmap/pkg/logging"
	"github.com/agentstation/carmap/pkg/normalize"
	"github.com/agentstation/carmap/pkg/sources"
)

// NewCommand creates the normalize command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		source string
		all    bool
	)

	cmd := &cobra.Command{
		Use:     "normalize [file]",
		GroupID: "inspect",
		Short:   "Show the attributes extracted from one provider payload",
		Long: `Normalize runs a single provider's extractor over a payload and prints the
attributes it found, before any merging. Reads standard input when no file
is given.`,
		Example: `  carmap normalize vehicle.json
  carmap normalize --source secondary valuation.json --all
  cat vehicle.json | carmap normalize -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := sources.ID(strings.ToLower(strings.TrimSpace(source)))
			normalizer, ok := normalize.Defaults()[id]
			if !ok {
				return &errors.ValidationError{
					Field:   "source",
					Value:   source,
					Message: "must be one of: primary, secondary",
				}
			}

			path := constants.StdinPath
			if len(args) == 1 {
				path = args[0]
			}
			ctx := logging.WithSource(cmd.Context(), id.String())
			payloads, err := payload.Load([]payload.Input{{Source: id, Path: path}}, cmd.InOrStdin(), logging.FromContext(ctx))
			if err != nil {
				return err
			}

			attrs := normalizer.Normalize(payloads[id])
			logging.FromContext(ctx).Debug().
				Bool("valid", attrs.IsValid()).
				Msg("Normalized payload")

			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			var data any = attrs
			if !format.IsStructured() {
				data = table.AttributesToTableData(attrs, all)
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}
	cmd.Flags().StringVar(&source, "source", sources.Primary.String(),
		"Provider shape of the payload: primary or secondary")
	cmd.Flags().BoolVar(&all, "all", false,
		"Include fields the payload does not carry (table output)")

	return cmd
}
