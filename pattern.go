package jsonschema

import "regexp"

// evaluatePattern checks that a string instance matches the "pattern"
// regular expression.
//
// According to JSON Schema Draft-6:
//   - "pattern" must be a valid regular expression per ECMA-262.
//   - The instance is valid if the pattern matches anywhere in the string;
//     patterns are not implicitly anchored.
//
// The engine here is Go's RE2-based regexp, not an ECMA-262 engine, so
// patterns relying on backreferences or lookaround will fail to compile or
// behave differently. schema.go rejects uncompilable patterns at compile
// time via validateRegexSyntax, so a nil error here is guaranteed once a
// schema has compiled successfully.
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.8
func evaluatePattern(schema *Schema, instance any, st *State) {
	if schema.Pattern == nil {
		return
	}
	value, ok := instance.(string)
	if !ok {
		return
	}

	regExp, err := getCompiledPattern(schema)
	if err != nil {
		st.Fail("pattern")
		return
	}
	if !regExp.MatchString(value) {
		st.Fail("pattern")
	}
}

func getCompiledPattern(schema *Schema) (*regexp.Regexp, error) {
	if schema.compiledStringPattern == nil {
		regExp, err := regexp.Compile(*schema.Pattern)
		if err != nil {
			return nil, err
		}
		schema.compiledStringPattern = regExp
	}

	return schema.compiledStringPattern, nil
}
