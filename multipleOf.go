package jsonschema

import "math/big"

// evaluateMultipleOf checks that a numeric instance divides evenly by
// "multipleOf".
//
// According to JSON Schema Draft-6:
//   - The value of "multipleOf" must be a number, strictly greater than 0.
//   - A numeric instance is valid only if dividing it by this value yields
//     an integer.
//
// Division is done with exact big.Rat arithmetic, never float64, so values
// like 0.1 multipleOf 0.01 are judged exactly rather than subject to binary
// floating point error.
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.1
func evaluateMultipleOf(schema *Schema, instance any, st *State) {
	if schema.MultipleOf == nil {
		return
	}
	value, ok := instanceRat(instance)
	if !ok {
		return
	}

	result := new(big.Rat).Quo(value.Rat, schema.MultipleOf.Rat)
	if !result.IsInt() {
		st.Fail("multipleOf")
	}
}
