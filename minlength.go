package jsonschema

import "unicode/utf8"

// evaluateMinLength checks that a string instance's length meets
// "minLength".
//
// According to JSON Schema Draft-6:
//   - "minLength" must be a non-negative integer; omitting it behaves as 0.
//   - Length is counted in Unicode code points, per RFC 8259, not bytes.
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.7
func evaluateMinLength(schema *Schema, instance any, st *State) {
	if schema.MinLength == nil {
		return
	}
	value, ok := instance.(string)
	if !ok {
		return
	}
	if utf8.RuneCountInString(value) < int(*schema.MinLength) {
		st.Fail("minLength")
	}
}
