package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/agentstation/carmap/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "authority",
			ID:       "valuation.retail",
		}
		assert.Equal(t, "authority with ID valuation.retail not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("source", "tertiary")
		assert.Equal(t, "source with ID tertiary not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("field", "test")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "source",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field source: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid authority table",
		}
		assert.Equal(t, "validation failed: invalid authority table", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("priority", -5, "must not be negative")
		require.NotNil(t, err)
		assert.Equal(t, "priority", err.Field)
		assert.Equal(t, -5, err.Value)
		assert.Contains(t, err.Error(), "must not be negative")
	})
}

func TestProviderError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		err := pkgerrors.NewProviderError("primary", "malformed payload", cause)
		assert.Equal(t, "provider primary: malformed payload: unexpected end of JSON input", err.Error())
		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, pkgerrors.IsProviderUnavailable(err))
	})

	t.Run("without cause", func(t *testing.T) {
		err := &pkgerrors.ProviderError{Provider: "secondary", Message: "empty payload"}
		assert.Equal(t, "provider secondary: empty payload", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrProviderUnavailable))
	})
}

func TestConfigError(t *testing.T) {
	baseErr := errors.New("file not found")
	err := pkgerrors.NewConfigError("authorities", "failed to load table", baseErr)
	assert.Equal(t, "configuration error in authorities: failed to load table", err.Error())
	assert.Equal(t, baseErr, err.Unwrap())

	err = &pkgerrors.ConfigError{Message: "missing format"}
	assert.Equal(t, "configuration error: missing format", err.Error())
}

func TestIOError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		baseErr := errors.New("permission denied")
		err := pkgerrors.NewIOError("read", "/tmp/primary.json", baseErr)
		assert.Equal(t, "IO error during read of /tmp/primary.json: permission denied", err.Error())
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("without path", func(t *testing.T) {
		err := &pkgerrors.IOError{Operation: "read", Message: "stdin closed"}
		assert.Equal(t, "IO error during read: stdin closed", err.Error())
	})

	t.Run("nil cause", func(t *testing.T) {
		err := pkgerrors.NewIOError("open", "file", nil)
		assert.Empty(t, err.Message)
	})
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *pkgerrors.ParseError
		want string
	}{
		{
			name: "with position",
			err:  &pkgerrors.ParseError{Format: "yaml", File: "authorities.yaml", Line: 3, Column: 7, Message: "bad indent"},
			want: "parse error in yaml at authorities.yaml:3:7: bad indent",
		},
		{
			name: "with file",
			err:  &pkgerrors.ParseError{Format: "json", File: "primary.json", Message: "unexpected token"},
			want: "parse error in json file primary.json: unexpected token",
		},
		{
			name: "bare",
			err:  &pkgerrors.ParseError{Format: "json", Message: "unexpected token"},
			want: "json parse error: unexpected token",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}

	base := errors.New("boom")
	assert.Equal(t, base, pkgerrors.NewParseError("yaml", "f", "boom", base).Unwrap())
}

func TestHelperFunctions(t *testing.T) {
	t.Run("IsNotFound", func(t *testing.T) {
		err1 := pkgerrors.NewNotFoundError("field", "test")
		err2 := errors.New("not found")
		err3 := pkgerrors.ErrNotFound

		assert.True(t, pkgerrors.IsNotFound(err1))
		assert.False(t, pkgerrors.IsNotFound(err2))
		assert.True(t, pkgerrors.IsNotFound(err3))
	})

	t.Run("IsCanceled", func(t *testing.T) {
		assert.True(t, pkgerrors.IsCanceled(pkgerrors.ErrCanceled))
	})

	t.Run("IsProviderUnavailable", func(t *testing.T) {
		assert.True(t, pkgerrors.IsProviderUnavailable(pkgerrors.ErrProviderUnavailable))
		assert.False(t, pkgerrors.IsProviderUnavailable(pkgerrors.ErrInvalidInput))
	})
}

func TestWrapHelpers(t *testing.T) {
	t.Run("WrapValidation", func(t *testing.T) {
		err := pkgerrors.WrapValidation("source", errors.New("unknown"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "source")
		assert.Contains(t, err.Error(), "unknown")

		// nil error returns nil
		assert.Nil(t, pkgerrors.WrapValidation("field", nil))
	})

	t.Run("WrapIO", func(t *testing.T) {
		err := pkgerrors.WrapIO("read", "/tmp/file", errors.New("no such file"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "read")
		assert.Contains(t, err.Error(), "/tmp/file")

		assert.Nil(t, pkgerrors.WrapIO("read", "file", nil))
	})

	t.Run("WrapParse", func(t *testing.T) {
		err := pkgerrors.WrapParse("json", "primary.json", errors.New("invalid syntax"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "json")
		assert.Contains(t, err.Error(), "primary.json")

		assert.Nil(t, pkgerrors.WrapParse("yaml", "file.yaml", nil))
	})

	t.Run("WrapProvider", func(t *testing.T) {
		err := pkgerrors.WrapProvider("secondary", "malformed payload", errors.New("bad json"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "secondary")
		assert.True(t, pkgerrors.IsProviderUnavailable(err))

		assert.Nil(t, pkgerrors.WrapProvider("primary", "x", nil))
	})
}

func TestErrorChaining(t *testing.T) {
	baseErr := errors.New("unexpected EOF")
	parseErr := pkgerrors.WrapParse("json", "secondary.json", baseErr)
	providerErr := pkgerrors.NewProviderError("secondary", "malformed payload", parseErr)

	assert.Equal(t, parseErr, providerErr.Unwrap())

	var target *pkgerrors.ParseError
	require.True(t, errors.As(providerErr, &target))
	assert.Equal(t, "secondary.json", target.File)
	assert.True(t, errors.Is(providerErr, baseErr))
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", pkgerrors.ErrNotFound},
		{"ErrInvalidInput", pkgerrors.ErrInvalidInput},
		{"ErrProviderUnavailable", pkgerrors.ErrProviderUnavailable},
		{"ErrCanceled", pkgerrors.ErrCanceled},
	}

	for _, tc := range sentinels {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotNil(t, tc.err)
			assert.NotEmpty(t, tc.err.Error())
		})
	}
}
