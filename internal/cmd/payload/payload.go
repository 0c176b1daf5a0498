// Package payload reads provider payloads for the CLI. A payload that is
// missing or malformed becomes a null provider instead of failing the run.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/carmap/pkg/constants"
	"github.com/agentstation/carmap/pkg/errors"
	"github.com/agentstation/carmap/pkg/sources"
)

// Input names where one provider's payload comes from.
type Input struct {
	Source sources.ID
	// Path is a file, constants.StdinPath for standard input, or empty for
	// a null provider.
	Path string
}

// Read returns the raw bytes at in.Path. An empty path yields nil with no
// error. Reads are capped at constants.MaxPayloadBytes.
func Read(in Input, stdin io.Reader) ([]byte, error) {
	var r io.Reader
	switch in.Path {
	case "":
		return nil, nil
	case constants.StdinPath:
		if stdin == nil {
			stdin = os.Stdin
		}
		r = stdin
	default:
		//nolint:gosec // payload path is supplied by the operator
		f, err := os.Open(in.Path)
		if err != nil {
			return nil, errors.WrapIO("open", in.Path, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, constants.MaxPayloadBytes+1))
	if err != nil {
		return nil, errors.WrapIO("read", in.Path, err)
	}
	if len(data) > constants.MaxPayloadBytes {
		return nil, &errors.ValidationError{
			Field:   in.Source.String(),
			Value:   in.Path,
			Message: fmt.Sprintf("payload exceeds %d bytes", constants.MaxPayloadBytes),
		}
	}
	return data, nil
}

// Check reports why raw cannot be used as a provider payload, or nil.
// Blank input and the JSON literal null are valid null payloads.
func Check(source sources.ID, raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return errors.WrapProvider(source.String(), "malformed JSON payload", err)
	}
	return nil
}

// Load reads every input and returns the payloads keyed by source. Inputs
// that fail to read or parse are logged as warnings and passed as nil so
// the reconciler treats that provider as null. Only standard input may be
// named once.
func Load(inputs []Input, stdin io.Reader, logger *zerolog.Logger) (map[sources.ID][]byte, error) {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	stdinUsed := false
	out := make(map[sources.ID][]byte, len(inputs))
	for _, in := range inputs {
		if in.Path == constants.StdinPath {
			if stdinUsed {
				return nil, &errors.ValidationError{
					Field:   in.Source.String(),
					Value:   in.Path,
					Message: "standard input can feed only one provider",
				}
			}
			stdinUsed = true
		}

		raw, err := Read(in, stdin)
		if err == nil {
			err = Check(in.Source, raw)
		}
		if err != nil {
			logger.Warn().
				Err(err).
				Str("source", in.Source.String()).
				Str("path", in.Path).
				Msg("Ignoring unusable provider payload")
			raw = nil
		}
		out[in.Source] = raw
	}
	return out, nil
}
