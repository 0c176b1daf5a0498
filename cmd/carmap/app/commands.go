package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/carmap/cmd/carmap/cmd/authorities"
	"github.com/agentstation/carmap/cmd/carmap/cmd/completion"
	"github.com/agentstation/carmap/cmd/carmap/cmd/extract"
	"github.com/agentstation/carmap/cmd/carmap/cmd/merge"
	"github.com/agentstation/carmap/cmd/carmap/cmd/normalize"
	"github.com/agentstation/carmap/cmd/carmap/cmd/provenance"
	"github.com/agentstation/carmap/internal/cmd/output"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(merge.NewCommand(a))
	rootCmd.AddCommand(provenance.NewCommand(a))

	rootCmd.AddCommand(normalize.NewCommand(a))
	rootCmd.AddCommand(extract.NewCommand(a))
	rootCmd.AddCommand(authorities.NewCommand(a))

	rootCmd.AddCommand(completion.NewCommand())
	rootCmd.AddCommand(a.NewVersionCommand())
}

// VersionInfo is the output of the version command.
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	BuiltBy   string `json:"built_by" yaml:"built_by"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.config.Format == "" && !a.config.Verbose {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "carmap %s\n", a.version)
				return err
			}

			format, err := output.Resolve(a.config.Format)
			if err != nil {
				return err
			}
			info := VersionInfo{
				Version:   a.version,
				Commit:    a.commit,
				Date:      a.date,
				BuiltBy:   a.builtBy,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), info)
		},
	}
}
