package vehicle

import (
	"reflect"
	"strings"
)

var leafType = reflect.TypeOf((*Leaf)(nil)).Elem()

// Walk visits every leaf of the record in declaration order, passing its
// dotted path (the JSON field names joined by "."). DataSources and
// FieldSources are not leaves and are skipped.
func Walk(r *Record, fn func(path string, leaf Leaf)) {
	if r == nil {
		return
	}
	walk(reflect.ValueOf(r).Elem(), "", fn)
}

func walk(v reflect.Value, prefix string, fn func(string, Leaf)) {
	t := v.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Tag.Get("walk") == "-" {
			continue
		}
		name := jsonName(sf)
		if name == "" {
			continue
		}
		path := joinPath(prefix, name)

		fv := v.Field(i)
		switch {
		case sf.Type.Implements(leafType):
			fn(path, fv.Interface().(Leaf))
		case sf.Type.Kind() == reflect.Struct:
			walk(fv, path, fn)
		}
	}
}

// Paths returns every leaf path of the record schema.
func Paths() []string {
	var paths []string
	Walk(&Record{}, func(path string, _ Leaf) {
		paths = append(paths, path)
	})
	return paths
}

func jsonName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return sf.Name
	}
	return name
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}
