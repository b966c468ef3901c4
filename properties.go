package jsonschema

// evaluateProperties checks named properties of an object instance against
// their corresponding subschemas.
//
// According to JSON Schema Draft-6:
//   - "properties" must be an object whose values are valid JSON Schemas.
//   - For every name that appears both in the instance and as a key of
//     "properties", the child instance validates against the matching
//     subschema.
//   - A property named in "properties" but absent from the instance is not
//     validated at all (use "required" to demand its presence).
//
// Reference: https://json-schema.org/draft-06/json-schema-core#rfc.section.8.3.3
func evaluateProperties(schema *Schema, instance any, st *State) {
	if schema.Properties == nil {
		return
	}
	object, ok := instance.(map[string]any)
	if !ok {
		return
	}

	for name, propSchema := range *schema.Properties {
		value, present := object[name]
		if !present {
			continue
		}
		evaluate(propSchema, value, st.Descend(name))
	}
}
