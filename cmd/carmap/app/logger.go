package app

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/carmap/pkg/logging"
)

// NewLogger creates a configured logger based on the application configuration.
// Log level precedence (highest to lowest):
//  1. --log-level flag
//  2. -v/--verbose flag (debug)
//  3. -q/--quiet flag (warn)
//  4. LOG_LEVEL environment variable or log.level config key
//  5. Default (info)
func NewLogger(config *Config) zerolog.Logger {
	return newLogger(config, os.Stderr)
}

func newLogger(config *Config, warnings io.Writer) zerolog.Logger {
	level := determineLogLevel(config, warnings)
	return logging.NewLoggerFromConfig(&logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor,
		AddCaller: level == "debug" || level == "trace",
	})
}

// determineLogLevel resolves the level using the precedence of NewLogger.
// Conflicting or invalid settings are reported on warnings because the
// logger does not exist yet.
func determineLogLevel(config *Config, warnings io.Writer) string {
	if config.LogLevelFlag != "" {
		return validateLogLevel(config.LogLevelFlag, warnings)
	}

	if config.Verbose && config.Quiet {
		_, _ = fmt.Fprintln(warnings, "Warning: both --verbose and --quiet specified, using --quiet")
		return "warn"
	}
	if config.Verbose {
		return "debug"
	}
	if config.Quiet {
		return "warn"
	}

	if config.LogLevel != "" {
		return validateLogLevel(config.LogLevel, warnings)
	}
	return "info"
}

// validateLogLevel returns level when it is known, otherwise "info".
func validateLogLevel(level string, warnings io.Writer) string {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return level
	}
	_, _ = fmt.Fprintf(warnings, "Warning: invalid log level %q, using %q\n", level, "info")
	return "info"
}
