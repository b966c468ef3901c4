package jsonschema

// evaluateConst checks that the instance is equal to the schema's "const"
// value.
//
// According to JSON Schema Draft-6:
//   - The value of "const" may be of any type, including null.
//   - An instance validates successfully if it is equal to that value.
//
// Equality is canonical-JSON equality (normalizeValue), not Go identity, so
// a float64 and a Go integer of the same value (1.0 and 1) compare equal,
// and object property order never matters.
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.24
func evaluateConst(schema *Schema, instance any, st *State) {
	if schema.Const == nil {
		return
	}

	want, err := normalizeValue(schema.Const.Value)
	if err != nil {
		st.Fail("const")
		return
	}
	got, err := normalizeValue(instance)
	if err != nil || got != want {
		st.Fail("const")
	}
}
