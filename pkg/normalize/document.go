package normalize

import (
	"strings"

	"github.com/tidwall/gjson"
)

// document is a parsed provider payload. The zero document answers every
// lookup with "absent".
type document struct {
	root gjson.Result
}

// wrapperKey is a top-level envelope some providers put around their sections.
const wrapperKey = "Results"

// parse reads a payload. Anything that is not a JSON object yields the
// empty document rather than an error.
func parse(raw []byte) document {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return document{}
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return document{}
	}
	if inner := root.Get(wrapperKey); inner.IsObject() {
		root = inner
	}
	return document{root: root}
}

// get returns the value at path, or an empty result when any segment is missing.
func (d document) get(path string) gjson.Result {
	if !d.root.Exists() {
		return gjson.Result{}
	}
	return d.root.Get(path)
}

// str returns the first candidate that holds a non-blank string (or a
// number, taken verbatim). Objects, arrays, booleans and nulls are skipped.
func (d document) str(paths ...string) *string {
	for _, path := range paths {
		r := d.get(path)
		switch r.Type {
		case gjson.String:
			if s := strings.TrimSpace(r.Str); s != "" {
				return &s
			}
		case gjson.Number:
			s := r.Raw
			return &s
		}
	}
	return nil
}

// num returns the first candidate that coerces to a number.
func (d document) num(paths ...string) *float64 {
	for _, path := range paths {
		r := d.get(path)
		switch r.Type {
		case gjson.Number:
			if f := finite(r.Num); f != nil {
				return f
			}
		case gjson.String:
			if f := ParseNumber(r.Str); f != nil {
				return f
			}
		}
	}
	return nil
}

// count returns the first candidate that coerces to a non-negative whole number.
func (d document) count(paths ...string) *int {
	for _, path := range paths {
		if n := count(d.num(path)); n != nil {
			return n
		}
	}
	return nil
}

// isEmpty reports whether the payload carried nothing to read.
func (d document) isEmpty() bool {
	return !d.root.Exists() || len(d.root.Map()) == 0
}
