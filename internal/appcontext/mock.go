package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/carmap/pkg/authority"
	"github.com/agentstation/carmap/pkg/reconciler"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a working default.
//
//	mock := &appcontext.Mock{
//	    OutputFormatFunc: func() string { return "json" },
//	}
//	cmd := merge.NewCommand(mock)
type Mock struct {
	MergerFunc       func() (*reconciler.Merger, error)
	AuthoritiesFunc  func() (authority.Authority, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Merger returns a merger using the mock function or the default merger.
func (m *Mock) Merger() (*reconciler.Merger, error) {
	if m.MergerFunc != nil {
		return m.MergerFunc()
	}
	return reconciler.New(reconciler.WithLogger(m.Logger()))
}

// Authorities returns an authority table using the mock function or the defaults.
func (m *Mock) Authorities() (authority.Authority, error) {
	if m.AuthoritiesFunc != nil {
		return m.AuthoritiesFunc()
	}
	return authority.New(), nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "json".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "json"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
