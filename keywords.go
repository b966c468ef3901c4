package jsonschema

// Keyword represents a schema keyword that can be applied to any schema.
type Keyword func(*Schema)

// New builds a schema of the given instance type (or no type restriction, if
// typ is empty) and applies every keyword option in order.
func New(typ string, keywords ...Keyword) *Schema {
	schema := &Schema{}
	if typ != "" {
		schema.Type = SchemaType{typ}
	}
	for _, keyword := range keywords {
		keyword(schema)
	}
	schema.initializeSchema(nil, nil)
	return schema
}

// ===============================
// String keywords
// ===============================

// MinLen sets the minLength keyword.
func MinLen(min int) Keyword {
	return func(s *Schema) {
		f := float64(min)
		s.MinLength = &f
	}
}

// MaxLen sets the maxLength keyword.
func MaxLen(max int) Keyword {
	return func(s *Schema) {
		f := float64(max)
		s.MaxLength = &f
	}
}

// Pattern sets the pattern keyword.
func Pattern(pattern string) Keyword {
	return func(s *Schema) {
		s.Pattern = &pattern
	}
}

// ===============================
// Number keywords
// ===============================

// Min sets the minimum keyword.
func Min(min float64) Keyword {
	return func(s *Schema) {
		s.Minimum = NewRat(min)
	}
}

// Max sets the maximum keyword.
func Max(max float64) Keyword {
	return func(s *Schema) {
		s.Maximum = NewRat(max)
	}
}

// ExclusiveMin sets the exclusiveMinimum keyword.
func ExclusiveMin(min float64) Keyword {
	return func(s *Schema) {
		s.ExclusiveMinimum = NewRat(min)
	}
}

// ExclusiveMax sets the exclusiveMaximum keyword.
func ExclusiveMax(max float64) Keyword {
	return func(s *Schema) {
		s.ExclusiveMaximum = NewRat(max)
	}
}

// MultipleOf sets the multipleOf keyword.
func MultipleOf(multiple float64) Keyword {
	return func(s *Schema) {
		s.MultipleOf = NewRat(multiple)
	}
}

// ===============================
// Array keywords
// ===============================

// Items sets "items" to a single schema applied to every element.
func Items(itemSchema *Schema) Keyword {
	return func(s *Schema) {
		s.Items = &ItemsValue{Single: itemSchema}
	}
}

// TupleItems sets "items" to a positional tuple of schemas.
func TupleItems(schemas ...*Schema) Keyword {
	return func(s *Schema) {
		s.Items = &ItemsValue{Tuple: schemas}
	}
}

// AdditionalItemsSchema sets the additionalItems keyword.
func AdditionalItemsSchema(schema *Schema) Keyword {
	return func(s *Schema) {
		s.AdditionalItems = schema
	}
}

// AdditionalItemsAllowed sets additionalItems to a boolean schema.
func AdditionalItemsAllowed(allowed bool) Keyword {
	return func(s *Schema) {
		s.AdditionalItems = &Schema{Boolean: &allowed}
	}
}

// MinItems sets the minItems keyword.
func MinItems(min int) Keyword {
	return func(s *Schema) {
		f := float64(min)
		s.MinItems = &f
	}
}

// MaxItems sets the maxItems keyword.
func MaxItems(max int) Keyword {
	return func(s *Schema) {
		f := float64(max)
		s.MaxItems = &f
	}
}

// UniqueItems sets the uniqueItems keyword.
func UniqueItems(unique bool) Keyword {
	return func(s *Schema) {
		s.UniqueItems = &unique
	}
}

// Contains sets the contains keyword.
func Contains(schema *Schema) Keyword {
	return func(s *Schema) {
		s.Contains = schema
	}
}

// ===============================
// Object keywords
// ===============================

// Properties sets the properties keyword.
func Properties(props map[string]*Schema) Keyword {
	return func(s *Schema) {
		schemaMap := SchemaMap(props)
		s.Properties = &schemaMap
	}
}

// Required sets the required keyword.
func Required(fields ...string) Keyword {
	return func(s *Schema) {
		s.Required = fields
	}
}

// AdditionalProps sets the additionalProperties keyword to a boolean schema.
func AdditionalProps(allowed bool) Keyword {
	return func(s *Schema) {
		s.AdditionalProperties = &Schema{Boolean: &allowed}
	}
}

// AdditionalPropsSchema sets the additionalProperties keyword to a schema.
func AdditionalPropsSchema(schema *Schema) Keyword {
	return func(s *Schema) {
		s.AdditionalProperties = schema
	}
}

// MinProps sets the minProperties keyword.
func MinProps(min int) Keyword {
	return func(s *Schema) {
		f := float64(min)
		s.MinProperties = &f
	}
}

// MaxProps sets the maxProperties keyword.
func MaxProps(max int) Keyword {
	return func(s *Schema) {
		f := float64(max)
		s.MaxProperties = &f
	}
}

// PatternProps sets the patternProperties keyword.
func PatternProps(patterns map[string]*Schema) Keyword {
	return func(s *Schema) {
		schemaMap := SchemaMap(patterns)
		s.PatternProperties = &schemaMap
	}
}

// DependsOn sets a property-dependency: when name is present, every entry in
// required must also be present. Backs the "dependencies" keyword's
// array form.
func DependsOn(name string, required ...string) Keyword {
	return func(s *Schema) {
		if s.Dependencies == nil {
			s.Dependencies = make(map[string]*Dependency)
		}
		s.Dependencies[name] = &Dependency{Properties: required}
	}
}

// DependsOnSchema sets a schema-dependency: when name is present, the whole
// object must also validate against schema. Backs the "dependencies"
// keyword's schema form.
func DependsOnSchema(name string, schema *Schema) Keyword {
	return func(s *Schema) {
		if s.Dependencies == nil {
			s.Dependencies = make(map[string]*Dependency)
		}
		s.Dependencies[name] = &Dependency{Schema: schema}
	}
}

// Defs sets the $defs keyword.
func Defs(defs map[string]*Schema) Keyword {
	return func(s *Schema) {
		s.Defs = defs
	}
}

// ===============================
// Annotation keywords
// ===============================

// Title sets the title keyword.
func Title(title string) Keyword {
	return func(s *Schema) {
		s.Title = &title
	}
}

// Description sets the description keyword.
func Description(desc string) Keyword {
	return func(s *Schema) {
		s.Description = &desc
	}
}

// Default sets the default keyword. Draft-6 treats it as a non-validating
// annotation only.
func Default(value any) Keyword {
	return func(s *Schema) {
		s.Default = value
	}
}

// Examples sets the examples keyword.
func Examples(examples ...any) Keyword {
	return func(s *Schema) {
		s.Examples = examples
	}
}

// ===============================
// Core identifier keywords
// ===============================

// ID sets the $id keyword.
func ID(id string) Keyword {
	return func(s *Schema) {
		s.ID = id
	}
}

// SchemaURI sets the $schema keyword.
func SchemaURI(schemaURI string) Keyword {
	return func(s *Schema) {
		s.Schema = schemaURI
	}
}

// ===============================
// Convenience constructors
// ===============================

// String creates a string schema with validation keywords.
func String(keywords ...Keyword) *Schema { return New("string", keywords...) }

// Integer creates an integer schema with validation keywords.
func Integer(keywords ...Keyword) *Schema { return New("integer", keywords...) }

// Number creates a number schema with validation keywords.
func Number(keywords ...Keyword) *Schema { return New("number", keywords...) }

// Boolean creates a boolean schema.
func Boolean(keywords ...Keyword) *Schema { return New("boolean", keywords...) }

// Null creates a null schema.
func Null(keywords ...Keyword) *Schema { return New("null", keywords...) }

// Array creates an array schema with validation keywords.
func Array(keywords ...Keyword) *Schema { return New("array", keywords...) }

// Object creates an object schema with validation keywords.
func Object(keywords ...Keyword) *Schema { return New("object", keywords...) }

// Any creates a schema with no type restriction.
func Any(keywords ...Keyword) *Schema { return New("", keywords...) }

// PositiveInt creates a positive integer schema.
func PositiveInt() *Schema { return Integer(Min(1)) }

// NonNegativeInt creates a non-negative integer schema.
func NonNegativeInt() *Schema { return Integer(Min(0)) }

// NegativeInt creates a negative integer schema.
func NegativeInt() *Schema { return Integer(Max(-1)) }

// NonPositiveInt creates a non-positive integer schema.
func NonPositiveInt() *Schema { return Integer(Max(0)) }

// Const creates a const schema.
func Const(value any) *Schema {
	schema := &Schema{Const: &ConstValue{Value: value, IsSet: true}}
	schema.initializeSchema(nil, nil)
	return schema
}

// Enum creates an enum schema.
func Enum(values ...any) *Schema {
	schema := &Schema{Enum: values}
	schema.initializeSchema(nil, nil)
	return schema
}

// OneOf creates a oneOf combination schema.
func OneOf(schemas ...*Schema) *Schema {
	schema := &Schema{OneOf: schemas}
	schema.initializeSchema(nil, nil)
	return schema
}

// AnyOf creates an anyOf combination schema.
func AnyOf(schemas ...*Schema) *Schema {
	schema := &Schema{AnyOf: schemas}
	schema.initializeSchema(nil, nil)
	return schema
}

// AllOf creates an allOf combination schema.
func AllOf(schemas ...*Schema) *Schema {
	schema := &Schema{AllOf: schemas}
	schema.initializeSchema(nil, nil)
	return schema
}

// Not creates a not combination schema.
func Not(schema *Schema) *Schema {
	result := &Schema{Not: schema}
	result.initializeSchema(nil, nil)
	return result
}

// Ref creates a schema that is nothing but a "$ref".
func Ref(ref string) *Schema {
	schema := &Schema{Ref: ref}
	schema.initializeSchema(nil, nil)
	return schema
}
