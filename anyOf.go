package jsonschema

// evaluateAnyOf checks that the instance validates against at least one
// subschema listed in "anyOf".
//
// According to JSON Schema Draft-6:
//   - "anyOf" must be a non-empty array of valid JSON Schemas (or booleans).
//   - The instance is valid if it validates against at least one of them.
//
// Every branch is evaluated against a fresh forked state so failures from
// rejected branches never leak into the result; only if every branch fails
// is a single "anyOf" tag recorded at the containing path.
//
// Reference: https://json-schema.org/draft-06/json-schema-core#rfc.section.8.2.4
func evaluateAnyOf(schema *Schema, instance any, st *State) {
	if len(schema.AnyOf) == 0 {
		return
	}

	for _, sub := range schema.AnyOf {
		branch := st.Fork()
		evaluate(sub, instance, branch)
		if branch.IsValid() {
			return
		}
	}
	st.Fail("anyOf")
}
