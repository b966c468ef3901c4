package jsonschema

// evaluateExclusiveMinimum checks that a numeric instance is strictly
// greater than "exclusiveMinimum".
//
// According to JSON Schema Draft-6, "exclusiveMinimum" is itself a number
// (unlike Draft-4, where it was a boolean modifier on "minimum").
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.5
func evaluateExclusiveMinimum(schema *Schema, instance any, st *State) {
	if schema.ExclusiveMinimum == nil {
		return
	}
	value, ok := instanceRat(instance)
	if !ok {
		return
	}
	if value.Cmp(schema.ExclusiveMinimum.Rat) <= 0 {
		st.Fail("exclusiveMinimum")
	}
}
