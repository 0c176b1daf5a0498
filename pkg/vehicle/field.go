package vehicle

import (
	"encoding/json"

	"github.com/agentstation/carmap/pkg/sources"
)

// Leaf is implemented by every FieldValue so record trees can be walked
// without knowing each leaf's value type.
type Leaf interface {
	// IsNull reports whether the leaf has no value.
	IsNull() bool
	// SourceID returns the source that supplied the value, or "" when null.
	SourceID() sources.ID
	// Any returns the value, or nil when null.
	Any() any
}

// FieldValue is one resolved output field and the source that produced it.
// Source is empty exactly when Value is nil.
type FieldValue[T any] struct {
	Value  *T
	Source sources.ID
}

// NewFieldValue pairs a value with its source. A nil value or an empty
// source yields the null FieldValue, so the pair is never half set.
func NewFieldValue[T any](value *T, source sources.ID) FieldValue[T] {
	if value == nil || source == "" {
		return FieldValue[T]{}
	}
	v := *value
	return FieldValue[T]{Value: &v, Source: source}
}

// Null returns the FieldValue with neither value nor source.
func Null[T any]() FieldValue[T] {
	return FieldValue[T]{}
}

// IsNull reports whether the field has no value.
func (f FieldValue[T]) IsNull() bool {
	return f.Value == nil
}

// SourceID returns the source of the value.
func (f FieldValue[T]) SourceID() sources.ID {
	return f.Source
}

// Any returns the value as an interface, or nil.
func (f FieldValue[T]) Any() any {
	if f.Value == nil {
		return nil
	}
	return *f.Value
}

// Get returns the value and whether it is set.
func (f FieldValue[T]) Get() (T, bool) {
	if f.Value == nil {
		var zero T
		return zero, false
	}
	return *f.Value, true
}

// fieldWire is the serialized form of a FieldValue.
type fieldWire[T any] struct {
	Value  *T          `json:"value" yaml:"value"`
	Source *sources.ID `json:"source" yaml:"source"`
}

func (f FieldValue[T]) wire() fieldWire[T] {
	w := fieldWire[T]{Value: f.Value}
	if f.Value != nil && f.Source != "" {
		src := f.Source
		w.Source = &src
	}
	return w
}

// MarshalJSON implements json.Marshaler, writing explicit nulls.
func (f FieldValue[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.wire())
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FieldValue[T]) UnmarshalJSON(data []byte) error {
	var w fieldWire[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Value == nil || w.Source == nil {
		*f = FieldValue[T]{}
		return nil
	}
	*f = FieldValue[T]{Value: w.Value, Source: *w.Source}
	return nil
}

// MarshalYAML implements yaml.InterfaceMarshaler.
func (f FieldValue[T]) MarshalYAML() (any, error) {
	return f.wire(), nil
}
