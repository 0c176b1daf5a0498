package normalize

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leadingNumber matches the first signed decimal number in a string.
var leadingNumber = regexp.MustCompile(`-?(?:\d+(?:\.\d+)?|\.\d+)`)

// Number coerces a native number or a numeric-looking string into a float.
// Strings drop thousands separators and yield their first number, so
// "£1,250" is 1250, "45.8 mpg (2.0)" is 45.8 and "£12,500 - £13,000" is
// 12500. Anything else, including strings without digits, returns nil.
func Number(v any) *float64 {
	switch t := v.(type) {
	case float64:
		return finite(t)
	case float32:
		return finite(float64(t))
	case int:
		f := float64(t)
		return &f
	case int64:
		f := float64(t)
		return &f
	case json.Number:
		return ParseNumber(t.String())
	case string:
		return ParseNumber(t)
	default:
		return nil
	}
}

// ParseNumber applies the numeric coercion rule to a string.
func ParseNumber(s string) *float64 {
	match := leadingNumber.FindString(strings.ReplaceAll(s, ",", ""))
	if match == "" {
		return nil
	}
	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return finite(f)
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// count converts a coerced number into a non-negative whole count.
func count(f *float64) *int {
	if f == nil || *f < 0 {
		return nil
	}
	n := int(math.Round(*f))
	return &n
}
