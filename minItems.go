package jsonschema

// evaluateMinItems checks that an array instance has at least "minItems"
// elements.
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.11
func evaluateMinItems(schema *Schema, instance any, st *State) {
	if schema.MinItems == nil {
		return
	}
	array, ok := instance.([]any)
	if !ok {
		return
	}
	if float64(len(array)) < *schema.MinItems {
		st.Fail("minItems")
	}
}
