package jsonschema

// evaluateAdditionalProperties checks object properties not claimed by
// "properties" or "patternProperties" against "additionalProperties".
//
// According to JSON Schema Draft-6:
//   - "additionalProperties" must be a valid JSON Schema (or boolean).
//   - It applies to every instance property name that matches neither a
//     "properties" key nor any "patternProperties" regex on this same
//     schema node.
//   - Omitting it behaves like an empty schema (anything allowed); a
//     "false" schema rejects any such leftover property outright.
//
// "properties"/"patternProperties"/"additionalProperties" are all read off
// the schema parameter passed to this function, which is always the
// specific schema node that declared them — never a cached document root.
// That keeps a nested subschema's additionalProperties from ever being
// checked against the root schema's properties set.
//
// Reference: https://json-schema.org/draft-06/json-schema-core#rfc.section.8.3.5
func evaluateAdditionalProperties(schema *Schema, instance any, st *State) {
	if schema.AdditionalProperties == nil {
		return
	}
	object, ok := instance.(map[string]any)
	if !ok {
		return
	}

	claimed := make(map[string]bool, len(object))
	if schema.Properties != nil {
		for name := range *schema.Properties {
			claimed[name] = true
		}
	}
	if schema.PatternProperties != nil {
		for name := range object {
			if claimed[name] {
				continue
			}
			for _, regex := range schema.compiledPatterns {
				if regex.MatchString(name) {
					claimed[name] = true
					break
				}
			}
		}
	}

	for name, value := range object {
		if !claimed[name] {
			evaluate(schema.AdditionalProperties, value, st.Descend(name))
		}
	}
}
