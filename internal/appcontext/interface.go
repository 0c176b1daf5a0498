// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App so they can be tested with Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/carmap/pkg/authority"
	"github.com/agentstation/carmap/pkg/reconciler"
)

// Interface defines what commands need from the application.
type Interface interface {
	// Merger returns the reconciler built from the loaded configuration.
	// It is created once and safe for concurrent use.
	Merger() (*reconciler.Merger, error)

	// Authorities returns the priority table in effect: the file named by
	// the authorities config key, or the built-in defaults.
	Authorities() (authority.Authority, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
