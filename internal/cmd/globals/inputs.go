package globals

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/carmap/internal/cmd/payload"
	"github.com/agentstation/carmap/pkg/sources"
)

// InputFlags names the payload file of each provider.
type InputFlags struct {
	Primary   string
	Secondary string
}

// AddInputFlags adds --primary and --secondary to a command.
func AddInputFlags(cmd *cobra.Command) *InputFlags {
	flags := &InputFlags{}

	cmd.Flags().StringVarP(&flags.Primary, "primary", "p", "",
		"Vehicle data provider payload (JSON file, - for stdin)")
	cmd.Flags().StringVarP(&flags.Secondary, "secondary", "s", "",
		"Valuation provider payload (JSON file, - for stdin)")

	return flags
}

// Inputs returns one payload input per provider in fallback order. Unset
// flags stay in the list with an empty path so the provider is null.
func (f *InputFlags) Inputs() []payload.Input {
	return []payload.Input{
		{Source: sources.Primary, Path: f.Primary},
		{Source: sources.Secondary, Path: f.Secondary},
	}
}

// Any reports whether at least one payload was named.
func (f *InputFlags) Any() bool {
	return f.Primary != "" || f.Secondary != ""
}
