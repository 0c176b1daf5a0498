package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/carmap/internal/cmd/globals"
	"github.com/agentstation/carmap/pkg/constants"
	"github.com/agentstation/carmap/pkg/errors"
	"github.com/agentstation/carmap/pkg/reconciler"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Reconciliation
	Authorities string // path to a YAML priority table; empty means the defaults
	Strategy    string // field-authority or source-order

	// Logging configuration
	LogLevel     string // LOG_LEVEL or log.level
	LogLevelFlag string // --log-level, which beats -v and -q
	LogFormat    string
	LogOutput    string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. Environment variables (CARMAP_AUTHORITIES, LOG_LEVEL, ...)
//  3. .env and .env.local
//  4. Config file (configFile, or ~/.carmap.yaml, or ./.carmap.yaml)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix("carmap")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("strategy", reconciler.StrategyTypeFieldAuthority.String())
	v.SetDefault("log.format", "auto")
	v.SetDefault("log.output", "stderr")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.DefaultConfigName)
	}

	if err := v.ReadInConfig(); err != nil {
		// An explicitly named file must exist; the search locations are optional.
		if _, notFound := err.(viper.ConfigFileNotFoundError); configFile != "" || !notFound {
			return nil, errors.NewConfigError("config", "failed to read "+describe(configFile), err)
		}
	}

	config := &Config{
		Verbose:     v.GetBool("verbose"),
		Quiet:       v.GetBool("quiet"),
		NoColor:     v.GetBool("no-color") || os.Getenv("NO_COLOR") != "",
		Format:      v.GetString("format"),
		ConfigFile:  v.ConfigFileUsed(),
		Authorities: v.GetString("authorities"),
		Strategy:    v.GetString("strategy"),
		LogLevel:    firstNonEmpty(os.Getenv("LOG_LEVEL"), v.GetString("log.level")),
		LogFormat:   firstNonEmpty(os.Getenv("LOG_FORMAT"), v.GetString("log.format")),
		LogOutput:   firstNonEmpty(os.Getenv("LOG_OUTPUT"), v.GetString("log.output")),
	}

	if _, ok := reconciler.ParseStrategyType(config.Strategy); !ok {
		return nil, errors.NewConfigError("strategy",
			"unknown strategy "+config.Strategy+" (want field-authority or source-order)", nil)
	}

	return config, nil
}

// UpdateFromFlags applies parsed command flags on top of the loaded
// configuration. Unset string flags keep the configured value.
func (c *Config) UpdateFromFlags(flags *globals.Flags) {
	c.Verbose = c.Verbose || flags.Verbose
	c.Quiet = c.Quiet || flags.Quiet
	c.NoColor = c.NoColor || flags.NoColor
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.LogLevel != "" {
		c.LogLevelFlag = flags.LogLevel
	}
}

// loadEnvFiles loads .env and then .env.local. Existing variables win.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

func describe(configFile string) string {
	if configFile == "" {
		return constants.DefaultConfigName + ".yaml"
	}
	return configFile
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
