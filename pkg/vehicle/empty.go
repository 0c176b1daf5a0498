package vehicle

import (
	"reflect"
	"strings"
)

// IsEmpty reports whether v counts as "no value": nil, a nil pointer, an
// empty or whitespace-only string, or an empty map or slice. Pointers are
// followed, so a pointer to a blank string is empty too.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case *string:
		return t == nil || strings.TrimSpace(*t) == ""
	case *int:
		return t == nil
	case *float64:
		return t == nil
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsEmpty(rv.Elem().Interface())
	case reflect.Map, reflect.Slice:
		return rv.Len() == 0
	default:
		return false
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
