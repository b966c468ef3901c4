package jsonschema

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
)

// evaluateUniqueItems checks that every element of an array instance is
// distinct when "uniqueItems" is true.
//
// According to JSON Schema Draft-6:
//   - If "uniqueItems" is false or absent, no check is performed.
//   - If true, the instance is valid only if no two elements are equal.
//
// Equality is canonical-JSON equality (normalizeValue, also used by const
// and enum), so {"a":1,"b":2} and {"b":2,"a":1} count as duplicates despite
// differing key order.
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.12
func evaluateUniqueItems(schema *Schema, instance any, st *State) {
	if schema.UniqueItems == nil || !*schema.UniqueItems {
		return
	}
	array, ok := instance.([]any)
	if !ok || len(array) < 2 {
		return
	}

	seen := make(map[string]bool, len(array))
	for _, item := range array {
		key, err := normalizeValue(item)
		if err != nil {
			st.Fail("uniqueItems")
			return
		}
		if seen[key] {
			st.Fail("uniqueItems")
			return
		}
		seen[key] = true
	}
}

// normalizeValue recursively renders a decoded JSON value into a canonical
// string form for equality comparison, so object key order and whether a
// number is held as a Go integer or a float never affect the comparison
// (both render in plain decimal, e.g. 1000000). A json.Number renders as
// its literal text. Shared by uniqueItems, const, and enum.
func normalizeValue(value any) (string, error) {
	// Fast path: type assertions for the types a JSON decode actually
	// produces, avoiding reflection overhead in the common case.
	switch v := value.(type) {
	case nil:
		return "null", nil

	case string:
		return fmt.Sprintf("%q", v), nil

	case bool:
		return fmt.Sprintf("%t", v), nil

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil

	case int:
		return fmt.Sprintf("%d", v), nil

	case int64:
		return fmt.Sprintf("%d", v), nil

	case int32:
		return fmt.Sprintf("%d", v), nil

	case uint:
		return fmt.Sprintf("%d", v), nil

	case uint64:
		return fmt.Sprintf("%d", v), nil

	case uint32:
		return fmt.Sprintf("%d", v), nil

	case json.Number:
		return v.String(), nil

	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		var sb strings.Builder
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(fmt.Sprintf("%q:", k))
			normalized, err := normalizeValue(v[k])
			if err != nil {
				return "", err
			}
			sb.WriteString(normalized)
		}
		sb.WriteByte('}')
		return sb.String(), nil

	case []any:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, elem := range v {
			if i > 0 {
				sb.WriteByte(',')
			}
			normalized, err := normalizeValue(elem)
			if err != nil {
				return "", err
			}
			sb.WriteString(normalized)
		}
		sb.WriteByte(']')
		return sb.String(), nil
	}

	// Slow path: reflection, for values constructed in Go code rather than
	// decoded from JSON.
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map:
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return cmp.Compare(fmt.Sprintf("%v", a.Interface()), fmt.Sprintf("%v", b.Interface()))
		})
		var pairs []string
		for _, key := range keys {
			keyStr, err := normalizeValue(key.Interface())
			if err != nil {
				return "", err
			}
			valStr, err := normalizeValue(rv.MapIndex(key).Interface())
			if err != nil {
				return "", err
			}
			pairs = append(pairs, fmt.Sprintf("%s:%s", keyStr, valStr))
		}
		return fmt.Sprintf("{%s}", strings.Join(pairs, ",")), nil

	case reflect.Slice, reflect.Array:
		elements := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elemStr, err := normalizeValue(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			elements = append(elements, elemStr)
		}
		return fmt.Sprintf("[%s]", strings.Join(elements, ",")), nil

	case reflect.String:
		return fmt.Sprintf("%q", rv.String()), nil

	case reflect.Bool:
		return fmt.Sprintf("%t", rv.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("%d", rv.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%d", rv.Uint()), nil

	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil

	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "null", nil
		}
		return normalizeValue(rv.Elem().Interface())

	default:
		bytes, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		return string(bytes), nil
	}
}
