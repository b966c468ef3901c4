package jsonschema

import "strconv"

// evaluateItems checks array elements against "items" (and, for the tuple
// form, against "additionalItems").
//
// According to JSON Schema Draft-6:
//   - If "items" is a single schema, every element of the array must
//     validate against it.
//   - If "items" is an array of schemas (tuple validation), element i
//     validates against items[i] for i < len(items); "additionalItems"
//     governs elements beyond that, defaulting to allow-anything when
//     absent.
//
// Both forms resolve "items"/"additionalItems" off the schema node passed
// in here, which is always the schema that actually declares them, not a
// cached document root — so a subschema nested anywhere in the tree (inside
// allOf, a $ref target, a properties entry) gets its own items/
// additionalItems pair instead of accidentally inheriting the root
// schema's.
//
// Reference: https://json-schema.org/draft-06/json-schema-core#rfc.section.8.3.1
func evaluateItems(schema *Schema, instance any, st *State) {
	if schema.Items == nil {
		return
	}
	array, ok := instance.([]any)
	if !ok {
		return
	}

	if schema.Items.Single != nil {
		for i, item := range array {
			evaluate(schema.Items.Single, item, st.Descend(strconv.Itoa(i)))
		}
		return
	}

	tuple := schema.Items.Tuple
	for i, item := range array {
		if i < len(tuple) {
			evaluate(tuple[i], item, st.Descend(strconv.Itoa(i)))
			continue
		}
		if schema.AdditionalItems != nil {
			evaluate(schema.AdditionalItems, item, st.Descend(strconv.Itoa(i)))
		}
	}
}
