// Package merge combines structured mappings the way cfgkit's merge write
// mode needs: nested mappings merge key by key, sequences concatenate, and
// everything else is overridden by the incoming side.
package merge

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/arthur-debert/cfgkit/pkg/format"
	"github.com/knadh/koanf/maps"
)

// Options controls how sequences are treated after the deep merge.
type Options struct {
	// ReplaceArrays makes sequences from the incoming mapping replace the
	// merged ones instead of extending them
	ReplaceArrays bool

	// RemoveDuplicatesInArrays drops repeated values from top-level
	// sequences, keeping the first occurrence
	RemoveDuplicatesInArrays bool
}

// DefaultOptions concatenates sequences and removes duplicates.
func DefaultOptions() Options {
	return Options{RemoveDuplicatesInArrays: true}
}

// Merge deep-merges incoming over original and applies the sequence
// policy. Neither argument is modified.
func Merge(original, incoming map[string]interface{}, opts Options) map[string]interface{} {
	merged := DeepMerge(original, incoming)

	if opts.ReplaceArrays {
		merged = ReplaceArrays(merged, incoming)
	}

	if opts.RemoveDuplicatesInArrays {
		merged = RemoveDuplicatesInArrays(merged)
	}

	return merged
}

// DeepMerge returns a new mapping holding original with incoming merged on
// top of it.
func DeepMerge(original, incoming map[string]interface{}) map[string]interface{} {
	dest := clone(original)
	mergeInto(dest, clone(incoming))
	return dest
}

func mergeInto(dest, src map[string]interface{}) {
	for key, srcVal := range src {
		destVal, destOk := dest[key]
		if !destOk {
			dest[key] = srcVal
			continue
		}

		// Merge maps
		if srcMap, srcOk := srcVal.(map[string]interface{}); srcOk {
			if destMap, destOk := destVal.(map[string]interface{}); destOk {
				mergeInto(destMap, srcMap)
				continue
			}
		}

		// Append slices
		if isSlice(srcVal) && isSlice(destVal) {
			dest[key] = appendSlices(destVal, srcVal)
			continue
		}

		// Otherwise, overwrite
		dest[key] = srcVal
	}
}

// ReplaceArrays overwrites every sequence in merged with the sequence held
// under the same key in incoming. Keys incoming has no sequence for keep
// their merged value.
func ReplaceArrays(merged, incoming map[string]interface{}) map[string]interface{} {
	src := clone(incoming)
	out := make(map[string]interface{}, len(merged))
	for key, value := range merged {
		if isSlice(value) {
			if replacement, ok := src[key]; ok && isSlice(replacement) {
				out[key] = toInterfaceSlice(replacement)
				continue
			}
		}
		out[key] = value
	}
	return out
}

// RemoveDuplicatesInArrays removes repeated values from every top-level
// sequence of data, preserving first-occurrence order.
func RemoveDuplicatesInArrays(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for key, value := range data {
		if isSlice(value) {
			out[key] = Unique(toInterfaceSlice(value))
			continue
		}
		out[key] = value
	}
	return out
}

// Unique returns items without repeated values. Values are compared
// structurally, so equal numbers of different Go types and equal nested
// mappings count as duplicates.
func Unique(items []interface{}) []interface{} {
	seen := make(map[string]struct{}, len(items))
	out := make([]interface{}, 0, len(items))
	for _, item := range items {
		key := identity(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

func identity(v interface{}) string {
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%T:%#v", v, v)
}

// clone deep-copies m with nested mappings of any Go type turned into
// map[string]interface{}, so they merge key by key
func clone(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	return format.Normalize(maps.Copy(m)).(map[string]interface{})
}

func isSlice(v interface{}) bool {
	switch v.(type) {
	case []interface{}, []string:
		return true
	case nil, []byte:
		return false
	default:
		return reflect.TypeOf(v).Kind() == reflect.Slice
	}
}

func appendSlices(dest, src interface{}) interface{} {
	// Convert both to []interface{} for uniform handling
	destSlice := toInterfaceSlice(dest)
	srcSlice := toInterfaceSlice(src)
	out := make([]interface{}, 0, len(destSlice)+len(srcSlice))
	out = append(out, destSlice...)
	return append(out, srcSlice...)
}

func toInterfaceSlice(v interface{}) []interface{} {
	switch s := v.(type) {
	case []interface{}:
		return s
	case []string:
		result := make([]interface{}, len(s))
		for i, v := range s {
			result[i] = v
		}
		return result
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return []interface{}{}
	}
	result := make([]interface{}, rv.Len())
	for i := range result {
		result[i] = rv.Index(i).Interface()
	}
	return result
}
