package jsonschema

// evaluateMaxProperties checks that an object instance has no more than
// "maxProperties" properties.
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.15
func evaluateMaxProperties(schema *Schema, instance any, st *State) {
	if schema.MaxProperties == nil {
		return
	}
	object, ok := instance.(map[string]any)
	if !ok {
		return
	}
	if float64(len(object)) > *schema.MaxProperties {
		st.Fail("maxProperties")
	}
}
