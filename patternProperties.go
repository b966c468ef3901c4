package jsonschema

import "regexp"

// compilePatterns precompiles every patternProperties regex and caches it on
// the schema, so evaluatePatternProperties never recompiles per instance.
func (s *Schema) compilePatterns() {
	if s.PatternProperties == nil {
		return
	}

	s.compiledPatterns = make(map[string]*regexp.Regexp)
	for pattern := range *s.PatternProperties {
		regex, err := regexp.Compile(pattern)
		if err == nil {
			s.compiledPatterns[pattern] = regex
		}
	}
}

// evaluatePatternProperties checks object properties whose name matches a
// "patternProperties" regex against the corresponding subschema.
//
// According to JSON Schema Draft-6:
//   - Each key of "patternProperties" must be a valid regular expression;
//     each value a valid JSON Schema.
//   - Every instance property name that matches one or more patterns
//     validates against every one of the matching subschemas.
//
// Patterns that failed to compile are skipped silently here: schema.go's
// validateRegexSyntax rejects them at compile time, so a schema that made
// it this far has none.
//
// Reference: https://json-schema.org/draft-06/json-schema-core#rfc.section.8.3.4
func evaluatePatternProperties(schema *Schema, instance any, st *State) {
	if schema.PatternProperties == nil {
		return
	}
	object, ok := instance.(map[string]any)
	if !ok {
		return
	}

	for patternKey, patternSchema := range *schema.PatternProperties {
		regex, ok := schema.compiledPatterns[patternKey]
		if !ok {
			var err error
			regex, err = regexp.Compile(patternKey)
			if err != nil {
				continue
			}
			if schema.compiledPatterns == nil {
				schema.compiledPatterns = make(map[string]*regexp.Regexp)
			}
			schema.compiledPatterns[patternKey] = regex
		}

		for name, value := range object {
			if regex.MatchString(name) {
				evaluate(patternSchema, value, st.Descend(name))
			}
		}
	}
}
