package app

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/agentstation/carmap/internal/cmd/globals"
	"github.com/agentstation/carmap/pkg/logging"
)

// Execute runs the carmap CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:     "carmap",
		Short:   "Vehicle attribute reconciliation CLI",
		Version: a.version,
		Long: `carmap reconciles vehicle attributes reported by a structured vehicle data
provider and a valuation provider into one canonical record.

Every field carries the provider that supplied it. Fields are resolved by
a per-field priority table, implausible values are rejected and a missing
variant is synthesized from the resolved specification.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "inspect",
		Title: "Inspection Commands:",
	})

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is $HOME/.carmap.yaml)")
	flags := globals.AddFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.setupCommand(cmd, configFile, flags)
	}

	rootCmd.SetVersionTemplate("carmap {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand runs before every command. It reloads configuration when
// --config is given, applies flags, rebuilds the logger and tags the
// command context with a fresh request ID.
func (a *App) setupCommand(cmd *cobra.Command, configFile string, flags *globals.Flags) error {
	if configFile != "" {
		config, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		a.config = config
		a.mu.Lock()
		a.merger, a.authorities = nil, nil
		a.mu.Unlock()
	}
	a.config.UpdateFromFlags(flags)

	logger := NewLogger(a.config)
	ctx := logging.WithLogger(cmd.Context(), &logger)
	ctx = logging.WithRequestID(ctx, uuid.NewString())
	ctx = logging.WithOperation(ctx, cmd.Name())
	a.logger = logging.FromContext(ctx)
	cmd.SetContext(ctx)

	a.logger.Debug().
		Str("config", a.config.ConfigFile).
		Str("strategy", a.config.Strategy).
		Msg("Starting command")

	return nil
}

// ExitOnError prints an error and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
