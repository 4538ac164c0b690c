package format

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Normalize rewrites values so every mapping is a map[string]interface{}
// and every sequence a []interface{}. Mapping keys of other types are
// stringified. Structs become mappings of their fields, honoring
// `mapstructure` tags, unless they marshal themselves as text.
// map[string]interface{} and []interface{} values are rewritten in place.
func Normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case nil, []byte:
		return v
	case map[string]interface{}:
		for k, val := range t {
			t[k] = Normalize(val)
		}
		return t
	case []interface{}:
		for i, val := range t {
			t[i] = Normalize(val)
		}
		return t
	case encoding.TextMarshaler:
		return v
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = Normalize(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv.Interface()
		}
		out := make([]interface{}, rv.Len())
		for i := range out {
			out[i] = Normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Struct:
		if _, ok := rv.Interface().(encoding.TextMarshaler); ok {
			return rv.Interface()
		}
		var fields map[string]interface{}
		if err := mapstructure.Decode(rv.Interface(), &fields); err != nil {
			return rv.Interface()
		}
		return Normalize(fields)
	default:
		return rv.Interface()
	}
}
