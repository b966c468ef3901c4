package jsonschema

// evaluateRequired checks that every property name listed in "required" is
// present on an object instance.
//
// According to JSON Schema Draft-6:
//   - "required" must be an array of unique strings.
//   - Omitting it behaves as an empty array (nothing required).
//
// Each missing property is reported at its own path (e.g. "$.b"), not at
// the containing object's path, so a single evaluateRequired call can
// surface several independent errors.
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.17
func evaluateRequired(schema *Schema, instance any, st *State) {
	if len(schema.Required) == 0 {
		return
	}
	object, ok := instance.(map[string]any)
	if !ok {
		return
	}

	for _, name := range schema.Required {
		if _, present := object[name]; !present {
			st.Descend(name).Fail("required")
		}
	}
}
