// Package table converts carmap results into rows for the CLI table formatter.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// Placeholder shown for null values.
const Null = "-"

// FormatValue renders a field value for a table cell. Whole numbers lose
// their decimals and nested values are rendered as YAML.
func FormatValue(val any) string {
	switch v := val.(type) {
	case nil:
		return Null
	case *string:
		if v == nil {
			return Null
		}
		return FormatValue(*v)
	case *int:
		if v == nil {
			return Null
		}
		return strconv.Itoa(*v)
	case *float64:
		if v == nil {
			return Null
		}
		return FormatValue(*v)
	case string:
		if strings.TrimSpace(v) == "" {
			return "<empty>"
		}
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}

	out, err := yaml.Marshal(val)
	if err != nil {
		return fmt.Sprintf("%v", val)
	}
	return strings.TrimSuffix(string(out), "\n")
}
