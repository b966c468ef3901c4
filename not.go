package jsonschema

// evaluateNot checks that the instance fails to validate against "not".
//
// According to JSON Schema Draft-6:
//   - "not" must be a valid JSON Schema (or boolean).
//   - The instance is valid only if it does NOT validate successfully
//     against it.
//
// Evaluated against a forked, discarded state: whatever "not" rejects with
// is irrelevant, only whether it passed or failed matters.
//
// Reference: https://json-schema.org/draft-06/json-schema-core#rfc.section.8.2.2
func evaluateNot(schema *Schema, instance any, st *State) {
	if schema.Not == nil {
		return
	}

	branch := st.Fork()
	evaluate(schema.Not, instance, branch)
	if branch.IsValid() {
		st.Fail("not")
	}
}
