package jsonschema

import "unicode/utf8"

// evaluateMaxLength checks that a string instance's length does not exceed
// "maxLength".
//
// According to JSON Schema Draft-6:
//   - "maxLength" must be a non-negative integer.
//   - Length is counted in Unicode code points, per RFC 8259, not bytes.
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.6
func evaluateMaxLength(schema *Schema, instance any, st *State) {
	if schema.MaxLength == nil {
		return
	}
	value, ok := instance.(string)
	if !ok {
		return
	}
	if utf8.RuneCountInString(value) > int(*schema.MaxLength) {
		st.Fail("maxLength")
	}
}
