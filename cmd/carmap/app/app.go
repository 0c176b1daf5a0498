// Package app provides the application context and dependency management
// for the carmap CLI. It centralizes configuration, logging and the
// lifecycle of the shared reconciler.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/carmap/internal/appcontext"
	"github.com/agentstation/carmap/pkg/authority"
	"github.com/agentstation/carmap/pkg/errors"
	"github.com/agentstation/carmap/pkg/reconciler"
	"github.com/agentstation/carmap/pkg/sources"
)

// App represents the carmap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Lazily built from config on first use.
	mu          sync.Mutex
	merger      *reconciler.Merger
	authorities authority.Authority
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App with configuration loaded from the default
// locations. Options run after loading and may replace any dependency.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Authorities returns the priority table, loading the configured file once.
func (a *App) Authorities() (authority.Authority, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loadAuthorities()
}

func (a *App) loadAuthorities() (authority.Authority, error) {
	if a.authorities != nil {
		return a.authorities, nil
	}
	if a.config.Authorities == "" {
		a.authorities = authority.New()
		return a.authorities, nil
	}

	auth, err := authority.Load(a.config.Authorities)
	if err != nil {
		return nil, err
	}
	a.logger.Debug().
		Str("path", a.config.Authorities).
		Int("rules", len(auth.List())).
		Msg("Loaded priority table")
	a.authorities = auth
	return auth, nil
}

// Merger returns the shared reconciler, creating it on first use from the
// configured strategy and priority table.
func (a *App) Merger() (*reconciler.Merger, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.merger != nil {
		return a.merger, nil
	}

	auth, err := a.loadAuthorities()
	if err != nil {
		return nil, err
	}

	opts := []reconciler.Option{
		reconciler.WithAuthorities(auth),
		reconciler.WithLogger(a.logger),
	}
	strategy, _ := reconciler.ParseStrategyType(a.config.Strategy)
	if strategy == reconciler.StrategyTypeSourceOrder {
		opts = append(opts, reconciler.WithStrategy(reconciler.NewSourceOrderStrategy(sources.Providers()...)))
	}

	merger, err := reconciler.New(opts...)
	if err != nil {
		return nil, errors.NewConfigError("reconciler", "invalid options", err)
	}
	a.merger = merger
	return merger, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewValidationError("config", nil, "cannot be nil")
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithMerger sets the reconciler used by every command (useful for testing).
func WithMerger(m *reconciler.Merger) Option {
	return func(a *App) error {
		a.merger = m
		return nil
	}
}
