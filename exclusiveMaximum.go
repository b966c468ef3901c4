package jsonschema

// evaluateExclusiveMaximum checks that a numeric instance is strictly less
// than "exclusiveMaximum".
//
// According to JSON Schema Draft-6, "exclusiveMaximum" is itself a number
// (unlike Draft-4, where it was a boolean modifier on "maximum").
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.3
func evaluateExclusiveMaximum(schema *Schema, instance any, st *State) {
	if schema.ExclusiveMaximum == nil {
		return
	}
	value, ok := instanceRat(instance)
	if !ok {
		return
	}
	if value.Cmp(schema.ExclusiveMaximum.Rat) >= 0 {
		st.Fail("exclusiveMaximum")
	}
}
