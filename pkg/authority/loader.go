package authority

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/carmap/pkg/errors"
)

// File is the on-disk form of an authority table.
//
//	authorities:
//	  - path: valuation.*
//	    source: secondary
//	    priority: 100
type File struct {
	Authorities []Field `yaml:"authorities" json:"authorities"`
}

// Load reads and validates an authority table from a YAML file.
func Load(path string) (Authority, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	fields, err := Parse(data)
	if err != nil {
		if errors.IsValidationError(err) {
			return nil, err
		}
		return nil, errors.WrapParse("yaml", path, err)
	}
	return &authorities{fields: fields}, nil
}

// Parse decodes and validates YAML authority table data.
func Parse(data []byte) ([]Field, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Authorities) == 0 {
		return nil, errors.NewValidationError("authorities", nil, "table is empty")
	}
	if err := Validate(f.Authorities); err != nil {
		return nil, err
	}
	return f.Authorities, nil
}

// Validate checks every entry of an authority table.
func Validate(fields []Field) error {
	for i, f := range fields {
		field := fmt.Sprintf("authorities[%d]", i)
		if f.Path == "" {
			return errors.NewValidationError(field+".path", f.Path, "path is required")
		}
		if _, err := filepath.Match(f.Path, ""); err != nil {
			return errors.NewValidationError(field+".path", f.Path, "invalid pattern")
		}
		if !f.Source.IsProvider() {
			return errors.NewValidationError(field+".source", f.Source, fmt.Sprintf("unknown source %q", f.Source))
		}
		if f.Priority < 0 {
			return errors.NewValidationError(field+".priority", f.Priority, "priority must not be negative")
		}
	}
	return nil
}
