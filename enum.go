package jsonschema

// evaluateEnum checks that the instance equals one of the values listed in
// the schema's "enum" array.
//
// According to JSON Schema Draft-6:
//   - The value of "enum" must be an array with at least one element, every
//     element unique.
//   - An instance validates successfully if it equals any one element.
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.23
func evaluateEnum(schema *Schema, instance any, st *State) {
	if len(schema.Enum) == 0 {
		return
	}

	got, err := normalizeValue(instance)
	if err != nil {
		st.Fail("enum")
		return
	}

	for _, want := range schema.Enum {
		wantNorm, err := normalizeValue(want)
		if err == nil && wantNorm == got {
			return
		}
	}
	st.Fail("enum")
}
