package jsonschema

// evaluateDependencies checks the "dependencies" keyword, which Draft-6
// allows in two forms per listed property:
//
//   - Schema dependency: if the property is present, the whole object
//     instance must additionally validate against the given subschema.
//   - Property dependency: if the property is present, every property
//     named in the given list must also be present.
//
// According to JSON Schema Draft-6, "dependencies" is an object whose
// values are each either a schema or an array of unique property name
// strings; the keyword itself has no effect when the instance isn't an
// object, or for a dependency whose triggering property is absent.
//
// Reference: https://json-schema.org/draft-06/json-schema-validation#rfc.section.6.21
func evaluateDependencies(schema *Schema, instance any, st *State) {
	if len(schema.Dependencies) == 0 {
		return
	}
	object, ok := instance.(map[string]any)
	if !ok {
		return
	}

	for trigger, dep := range schema.Dependencies {
		if _, present := object[trigger]; !present {
			continue
		}

		if dep.Schema != nil {
			evaluate(dep.Schema, instance, st)
			continue
		}

		for _, required := range dep.Properties {
			if _, present := object[required]; !present {
				st.Descend(required).Fail("dependencies")
			}
		}
	}
}
