package jsonschema

// evaluateMinimum checks that a numeric instance does not fall below the
// inclusive lower bound "minimum".
//
// According to JSON Schema Draft-6:
//   - "minimum" must be a number.
//   - A numeric instance is valid if it is greater than or equal to it.
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.4
func evaluateMinimum(schema *Schema, instance any, st *State) {
	if schema.Minimum == nil {
		return
	}
	value, ok := instanceRat(instance)
	if !ok {
		return
	}
	if value.Cmp(schema.Minimum.Rat) < 0 {
		st.Fail("minimum")
	}
}
