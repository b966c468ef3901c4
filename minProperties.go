package jsonschema

// evaluateMinProperties checks that an object instance has at least
// "minProperties" properties.
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.16
func evaluateMinProperties(schema *Schema, instance any, st *State) {
	if schema.MinProperties == nil {
		return
	}
	object, ok := instance.(map[string]any)
	if !ok {
		return
	}
	if float64(len(object)) < *schema.MinProperties {
		st.Fail("minProperties")
	}
}
