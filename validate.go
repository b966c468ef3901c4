package jsonschema

// keywordFunc is the signature every keyword handler implements: inspect
// instance against schema, recording any failure on st at the current path.
type keywordFunc func(schema *Schema, instance any, st *State)

// keywordDispatch maps a JSON Schema keyword name to its handler. Built once
// at package init so dispatch never falls back to reflection or struct-field
// iteration order — validate.go walks schema.presentKeywords (already sorted
// lexicographically) and looks each one up here.
var keywordDispatch map[string]keywordFunc

func init() {
	keywordDispatch = map[string]keywordFunc{
		"type":  evaluateType,
		"enum":  evaluateEnum,
		"const": evaluateConst,

		"multipleOf":       evaluateMultipleOf,
		"maximum":          evaluateMaximum,
		"exclusiveMaximum": evaluateExclusiveMaximum,
		"minimum":          evaluateMinimum,
		"exclusiveMinimum": evaluateExclusiveMinimum,

		"maxLength": evaluateMaxLength,
		"minLength": evaluateMinLength,
		"pattern":   evaluatePattern,

		"items":       evaluateItems,
		"maxItems":    evaluateMaxItems,
		"minItems":    evaluateMinItems,
		"uniqueItems": evaluateUniqueItems,
		"contains":    evaluateContains,

		"required":             evaluateRequired,
		"properties":           evaluateProperties,
		"patternProperties":    evaluatePatternProperties,
		"additionalProperties": evaluateAdditionalProperties,
		"maxProperties":        evaluateMaxProperties,
		"minProperties":        evaluateMinProperties,
		"dependencies":         evaluateDependencies,

		"allOf": evaluateAllOf,
		"anyOf": evaluateAnyOf,
		"oneOf": evaluateOneOf,
		"not":   evaluateNot,
	}
}

// Validate checks instance against the schema and returns the flattened
// validation result: is_valid plus a path-to-keyword-tags error map.
func (s *Schema) Validate(instance any) *Result {
	st := NewState(s.getRootSchema())
	evaluate(s, instance, st)
	return st.toResult()
}

// ValidateJSON decodes raw JSON through the schema's configured Compiler
// decoder (go-json-experiment/json by default, overridable via
// Compiler.WithDecoderJSON) and validates the decoded value.
func (s *Schema) ValidateJSON(data []byte) *Result {
	var instance any
	if err := s.GetCompiler().jsonDecoder(data, &instance); err != nil {
		return &Result{Errors: map[string][]string{"$": {"invalid_json"}}}
	}
	return s.Validate(instance)
}

// evaluate is the recursive interpreter at the heart of the validator: it
// handles the boolean-schema shortcut, resolves $ref (which short-circuits
// every sibling keyword per Draft-6 semantics), then dispatches every other
// present keyword in sorted order.
func evaluate(schema *Schema, instance any, st *State) {
	if schema == nil {
		return
	}

	if schema.Boolean != nil {
		if !*schema.Boolean {
			st.Fail("false")
		}
		return
	}

	if schema.Ref != "" {
		target := schema.ResolvedRef
		if target == nil {
			resolved, err := schema.resolveRef(schema.Ref)
			if err != nil {
				st.Fail("$ref")
				return
			}
			target = resolved
		}
		evaluate(target, instance, st)
		return
	}

	for _, keyword := range schema.presentKeywords {
		if fn, ok := keywordDispatch[keyword]; ok {
			fn(schema, instance, st)
		}
	}
}
