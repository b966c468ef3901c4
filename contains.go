package jsonschema

// evaluateContains checks that at least one element of an array instance
// validates against "contains".
//
// According to JSON Schema Draft-6:
//   - "contains" must be a valid JSON Schema.
//   - An array instance is valid if at least one of its elements matches.
//   - An empty array never satisfies "contains".
//
// Candidate elements are evaluated against a forked state so a failed match
// at index i doesn't pollute the result with errors from items that were
// never required to match in the first place.
//
// Reference: https://json-schema.org/draft-06/json-schema-core#rfc.section.8.3.2
func evaluateContains(schema *Schema, instance any, st *State) {
	if schema.Contains == nil {
		return
	}
	array, ok := instance.([]any)
	if !ok {
		return
	}

	for _, item := range array {
		probe := st.Fork()
		evaluate(schema.Contains, item, probe)
		if probe.IsValid() {
			return
		}
	}
	st.Fail("contains")
}
