// Package constants provides shared constants used throughout the carmap codebase.
package constants

import "time"

// Resolution limits.
const (
	// MaxModelTokens bounds how many words after the make are taken as the
	// model when parsing a free-text vehicle description.
	MaxModelTokens = 5

	// MinPlausibleYear is the earliest year of manufacture accepted from a provider.
	MinPlausibleYear = 1885
)

// Placeholder values some providers send instead of real absence.
var Placeholders = []string{
	"null",
	"undefined",
}

// Vocabulary fallbacks.
const (
	// Unknown is returned by vocabulary normalizers for missing input.
	Unknown = "Unknown"
)

// CLI defaults.
const (
	// CommandTimeout is the default timeout for CLI commands.
	CommandTimeout = 2 * time.Minute

	// DefaultConfigName is the base name of the config file searched in $HOME and ".".
	DefaultConfigName = ".carmap"

	// StdinPath is the file argument that reads a payload from standard input.
	StdinPath = "-"

	// MaxPayloadBytes caps how much of a provider payload file is read.
	MaxPayloadBytes = 8 << 20
)

// File permission constants.
const (
	// FilePermissions is the default permission for created files (rw-r--r--).
	FilePermissions = 0644
)
