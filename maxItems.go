package jsonschema

// evaluateMaxItems checks that an array instance has no more than
// "maxItems" elements.
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.10
func evaluateMaxItems(schema *Schema, instance any, st *State) {
	if schema.MaxItems == nil {
		return
	}
	array, ok := instance.([]any)
	if !ok {
		return
	}
	if float64(len(array)) > *schema.MaxItems {
		st.Fail("maxItems")
	}
}
