package jsonschema

// evaluateType checks the instance's runtime JSON type against the "type"
// keyword.
//
// According to JSON Schema Draft-6:
//   - "type" is either a single type-name string or an array of unique
//     type-name strings among "null", "boolean", "object", "array",
//     "number", "string", and "integer" (any number with a zero fractional
//     part).
//   - The instance is valid if its type matches any named type.
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.1.1
func evaluateType(schema *Schema, instance any, st *State) {
	if len(schema.Type) == 0 {
		return
	}

	instanceType := getDataType(instance)

	for _, want := range schema.Type {
		if want == "number" && instanceType == "integer" {
			return
		}
		if want == instanceType {
			return
		}
	}

	st.Fail("type")
}
