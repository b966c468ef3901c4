package jsonschema

import (
	"errors"
	"maps"
	"regexp"
	"slices"
	"sort"
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/kaptinlin/jsonpointer"
)

// knownSchemaFields contains every keyword recognized by the Draft-6 dialect.
// Any other top-level key found while decoding a schema object is preserved
// verbatim in Extra rather than rejected — Draft-6 schemas are open by
// design, unrecognized keywords are simply ignored during validation.
var knownSchemaFields = map[string]struct{}{
	"$id":         {},
	"$schema":     {},
	"$ref":        {},
	"$comment":    {},
	"$defs":       {},
	"definitions": {}, // pre-2019-09 spelling, still accepted

	"allOf": {},
	"anyOf": {},
	"oneOf": {},
	"not":   {},

	"items":           {},
	"additionalItems": {},
	"contains":        {},

	"properties":           {},
	"patternProperties":    {},
	"additionalProperties": {},

	"type":  {},
	"enum":  {},
	"const": {},

	"multipleOf":       {},
	"maximum":          {},
	"exclusiveMaximum": {},
	"minimum":          {},
	"exclusiveMinimum": {},

	"maxLength": {},
	"minLength": {},
	"pattern":   {},

	"maxItems":    {},
	"minItems":    {},
	"uniqueItems": {},

	"maxProperties": {},
	"minProperties": {},
	"required":      {},
	"dependencies":  {},

	"title":       {},
	"description": {},
	"default":     {},
	"examples":    {},
}

// Schema represents a compiled Draft-6 JSON Schema document or subschema.
type Schema struct {
	compiledPatterns      map[string]*regexp.Regexp // lazily compiled patternProperties keys
	compiledStringPattern *regexp.Regexp            // lazily compiled pattern
	compiler              *Compiler
	parent                *Schema
	uri                   string
	baseURI               string
	schemas               map[string]*Schema // $id index, populated on the root schema

	// presentKeywords holds, in sorted order, the keyword names that were
	// actually present on this schema object at decode time. The evaluator
	// walks this slice to obtain the deterministic dispatch order spec
	// section 4.4 requires, instead of relying on Go struct field order.
	presentKeywords []string

	ID      string `json:"$id,omitempty"`
	Schema  string `json:"$schema,omitempty"`
	Comment string `json:"$comment,omitempty"`

	Ref         string  `json:"$ref,omitempty"`
	Defs        map[string]*Schema `json:"$defs,omitempty"`
	ResolvedRef *Schema `json:"-"`

	// Boolean JSON Schemas ("true"/"false" in place of an object).
	Boolean *bool `json:"-"`

	AllOf []*Schema `json:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`

	// Items holds either a single schema (applies to every item) or a
	// tuple of schemas (positional validation); AdditionalItems governs
	// instance positions past the tuple. Both are Draft-6-native — unlike
	// later drafts, there is no separate prefixItems keyword.
	Items           *ItemsValue `json:"items,omitempty"`
	AdditionalItems *Schema     `json:"additionalItems,omitempty"`
	Contains        *Schema     `json:"contains,omitempty"`

	Properties           *SchemaMap `json:"properties,omitempty"`
	PatternProperties    *SchemaMap `json:"patternProperties,omitempty"`
	AdditionalProperties *Schema    `json:"additionalProperties,omitempty"`

	Type  SchemaType  `json:"type,omitempty"`
	Enum  []any       `json:"enum,omitempty"`
	Const *ConstValue `json:"const,omitempty"`

	MultipleOf       *Rat `json:"multipleOf,omitempty"`
	Maximum          *Rat `json:"maximum,omitempty"`
	ExclusiveMaximum *Rat `json:"exclusiveMaximum,omitempty"`
	Minimum          *Rat `json:"minimum,omitempty"`
	ExclusiveMinimum *Rat `json:"exclusiveMinimum,omitempty"`

	MaxLength *float64 `json:"maxLength,omitempty"`
	MinLength *float64 `json:"minLength,omitempty"`
	Pattern   *string  `json:"pattern,omitempty"`

	MaxItems    *float64 `json:"maxItems,omitempty"`
	MinItems    *float64 `json:"minItems,omitempty"`
	UniqueItems *bool    `json:"uniqueItems,omitempty"`

	MaxProperties *float64               `json:"maxProperties,omitempty"`
	MinProperties *float64               `json:"minProperties,omitempty"`
	Required      []string               `json:"required,omitempty"`
	Dependencies  map[string]*Dependency `json:"dependencies,omitempty"`

	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Default     any     `json:"default,omitempty"`
	Examples    []any   `json:"examples,omitempty"`

	// Extra carries any keyword not recognized by this dialect, preserved
	// for round-tripping but never consulted during validation.
	Extra map[string]any `json:"-"`
}

// ItemsValue is the Draft-6 polymorphic representation of the "items"
// keyword: either a single schema applied to every array element, or a
// tuple of schemas applied positionally.
type ItemsValue struct {
	Single *Schema
	Tuple  []*Schema
}

// UnmarshalJSON detects tuple vs single-schema form by inspecting the first
// non-whitespace byte of the raw value, the same polymorphism the Draft-6
// JSON-Schema-Core spec itself describes for "items".
func (iv *ItemsValue) UnmarshalJSON(data []byte) error {
	trimmed := data
	for len(trimmed) > 0 && isJSONWhitespace(trimmed[0]) {
		trimmed = trimmed[1:]
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(data, &iv.Tuple)
	}
	return json.Unmarshal(data, &iv.Single)
}

// MarshalJSON re-emits whichever form was parsed.
func (iv ItemsValue) MarshalJSON() ([]byte, error) {
	if iv.Tuple != nil {
		return json.Marshal(iv.Tuple, json.Deterministic(true))
	}
	return json.Marshal(iv.Single, json.Deterministic(true))
}

func isJSONWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// Dependency is the Draft-6 "dependencies" keyword value for a single
// property: either a subschema applied to the whole object when the
// property is present, or a list of sibling property names that must also
// be present.
type Dependency struct {
	Schema     *Schema
	Properties []string
}

// UnmarshalJSON disambiguates the two dependency forms the same way
// ItemsValue does: an array is a property-name list, anything else
// (object or boolean) is a schema.
func (d *Dependency) UnmarshalJSON(data []byte) error {
	trimmed := data
	for len(trimmed) > 0 && isJSONWhitespace(trimmed[0]) {
		trimmed = trimmed[1:]
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(data, &d.Properties)
	}
	return json.Unmarshal(data, &d.Schema)
}

// MarshalJSON re-emits whichever form was parsed.
func (d Dependency) MarshalJSON() ([]byte, error) {
	if d.Properties != nil {
		return json.Marshal(d.Properties, json.Deterministic(true))
	}
	return json.Marshal(d.Schema, json.Deterministic(true))
}

// newSchema parses raw JSON schema data into a Schema object.
func newSchema(jsonSchema []byte) (*Schema, error) {
	schema := &Schema{}
	if err := json.Unmarshal(jsonSchema, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// initializeSchema resolves URIs, registers the $id index entry, and walks
// into every nested schema so that $ref resolution and regex precompilation
// can see the whole tree.
func (s *Schema) initializeSchema(compiler *Compiler, parent *Schema) {
	s.initializeSchemaWithoutReferences(compiler, parent)
	s.resolveReferences()
}

// initializeSchemaWithoutReferences does everything initializeSchema does
// except the final $ref resolution pass, so CompileBatch can initialize a
// whole set of interdependent schemas before any of them tries to resolve
// a $ref that points at a sibling not yet registered.
func (s *Schema) initializeSchemaWithoutReferences(compiler *Compiler, parent *Schema) {
	if compiler != nil {
		s.compiler = compiler
	}
	s.parent = parent

	// A schema built through the fluent constructors (New and friends) never
	// goes through UnmarshalJSON, so presentKeywords is still nil here;
	// derive it from whichever fields are actually set. A schema decoded
	// from JSON already has presentKeywords (possibly an empty, non-nil
	// slice for "{}"), so this leaves that path untouched.
	if s.presentKeywords == nil {
		s.derivePresentKeywords()
	}

	effectiveCompiler := s.GetCompiler()

	parentBaseURI := s.getParentBaseURI()
	if parentBaseURI == "" && effectiveCompiler != nil {
		parentBaseURI = effectiveCompiler.DefaultBaseURI
	}

	if s.ID != "" {
		if isValidURI(s.ID) {
			s.uri = s.ID
			s.baseURI = getBaseURI(s.ID)
		} else {
			resolved := resolveRelativeURI(parentBaseURI, s.ID)
			s.uri = resolved
			s.baseURI = getBaseURI(resolved)
		}
	} else {
		s.baseURI = parentBaseURI
	}

	if s.baseURI == "" && s.uri != "" && isValidURI(s.uri) {
		s.baseURI = getBaseURI(s.uri)
	}

	// Index this schema by its resolved $id so $ref resolution can find it
	// directly instead of only via JSON-Pointer walking from the root.
	if s.uri != "" && isValidURI(s.uri) {
		s.getRootSchema().setSchema(s.uri, s)
	}

	s.compilePatterns()

	for _, child := range s.children() {
		child.initializeSchemaWithoutReferences(compiler, s)
	}
}

// children enumerates every direct subschema this schema references, used
// for initialization, regex validation, and reference resolution passes.
func (s *Schema) children() []*Schema {
	var out []*Schema
	add := func(c *Schema) {
		if c != nil {
			out = append(out, c)
		}
	}

	for _, def := range s.Defs {
		add(def)
	}
	out = append(out, s.AllOf...)
	out = append(out, s.AnyOf...)
	out = append(out, s.OneOf...)
	add(s.Not)

	if s.Items != nil {
		add(s.Items.Single)
		out = append(out, s.Items.Tuple...)
	}
	add(s.AdditionalItems)
	add(s.Contains)

	add(s.AdditionalProperties)
	if s.Properties != nil {
		for _, prop := range *s.Properties {
			add(prop)
		}
	}
	if s.PatternProperties != nil {
		for _, prop := range *s.PatternProperties {
			add(prop)
		}
	}
	for _, dep := range s.Dependencies {
		if dep != nil {
			add(dep.Schema)
		}
	}

	return out
}

// validateRegexSyntax validates every regex pattern in the schema tree is
// valid Go RE2 syntax, tagging failures with their JSON-Pointer location.
func (s *Schema) validateRegexSyntax() error {
	if s == nil {
		return nil
	}

	visited := make(map[*Schema]bool)
	errs := s.collectRegexErrors(nil, visited)
	if len(errs) == 0 {
		return nil
	}

	combined := append([]error{ErrRegexValidation}, errs...)
	return errors.Join(combined...)
}

func (s *Schema) collectRegexErrors(pathTokens []string, visited map[*Schema]bool) []error {
	if s == nil || visited[s] {
		return nil
	}
	visited[s] = true

	var errs []error

	if s.Pattern != nil {
		if err := compilePattern(*s.Pattern); err != nil {
			tokens := slices.Concat(pathTokens, []string{"pattern"})
			errs = append(errs, &RegexPatternError{
				Keyword:  "pattern",
				Location: "#" + jsonpointer.Format(tokens...),
				Pattern:  *s.Pattern,
				Err:      err,
			})
		}
	}

	if s.PatternProperties != nil {
		for pattern, schema := range *s.PatternProperties {
			tokens := slices.Concat(pathTokens, []string{"patternProperties", pattern})
			if err := compilePattern(pattern); err != nil {
				errs = append(errs, &RegexPatternError{
					Keyword:  "patternProperties",
					Location: "#" + jsonpointer.Format(tokens...),
					Pattern:  pattern,
					Err:      err,
				})
				continue
			}
			errs = append(errs, schema.collectRegexErrors(tokens, visited)...)
		}
	}

	addSchema := func(child *Schema, token string) {
		if child == nil {
			return
		}
		errs = append(errs, child.collectRegexErrors(slices.Concat(pathTokens, []string{token}), visited)...)
	}
	addSchemaMap := func(m map[string]*Schema, prefix string) {
		for key, schema := range m {
			errs = append(errs, schema.collectRegexErrors(slices.Concat(pathTokens, []string{prefix, key}), visited)...)
		}
	}
	addSchemaSlice := func(children []*Schema, prefix string) {
		for i, child := range children {
			errs = append(errs, child.collectRegexErrors(slices.Concat(pathTokens, []string{prefix, strconv.Itoa(i)}), visited)...)
		}
	}

	if s.Properties != nil {
		addSchemaMap(map[string]*Schema(*s.Properties), "properties")
	}
	addSchemaMap(s.Defs, "$defs")

	addSchema(s.AdditionalProperties, "additionalProperties")
	addSchema(s.AdditionalItems, "additionalItems")
	addSchema(s.Contains, "contains")
	addSchema(s.Not, "not")
	addSchema(s.ResolvedRef, "$ref")

	if s.Items != nil {
		addSchema(s.Items.Single, "items")
		addSchemaSlice(s.Items.Tuple, "items")
	}
	addSchemaSlice(s.AllOf, "allOf")
	addSchemaSlice(s.AnyOf, "anyOf")
	addSchemaSlice(s.OneOf, "oneOf")

	for name, dep := range s.Dependencies {
		if dep != nil && dep.Schema != nil {
			errs = append(errs, dep.Schema.collectRegexErrors(slices.Concat(pathTokens, []string{"dependencies", name}), visited)...)
		}
	}

	return errs
}

func compilePattern(pattern string) error {
	if pattern == "" {
		return nil
	}
	_, err := regexp.Compile(pattern)
	return err
}

// setSchema adds a schema to the $id index, keyed by its resolved URI.
func (s *Schema) setSchema(uri string, schema *Schema) {
	if s.schemas == nil {
		s.schemas = make(map[string]*Schema)
	}
	s.schemas[uri] = schema
}

func (s *Schema) getSchema(ref string) (*Schema, error) {
	baseURI, anchor := splitRef(ref)

	if schema, ok := s.schemas[baseURI]; ok {
		if baseURI == ref || anchor == "" {
			return schema, nil
		}
		return schema.resolveJSONPointer(anchor)
	}

	return nil, ErrReferenceResolution
}

// GetSchemaURI returns the resolved URI for the schema, or an empty string.
func (s *Schema) GetSchemaURI() string {
	if s.uri != "" {
		return s.uri
	}
	if root := s.getRootSchema(); root.uri != "" {
		return root.uri
	}
	return ""
}

func (s *Schema) getRootSchema() *Schema {
	if s.parent != nil {
		return s.parent.getRootSchema()
	}
	return s
}

func (s *Schema) getParentBaseURI() string {
	for p := s.parent; p != nil; p = p.parent {
		if p.baseURI != "" {
			return p.baseURI
		}
	}
	return ""
}

// MarshalJSON implements json.Marshaler.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.Boolean != nil {
		return json.Marshal(s.Boolean, json.Deterministic(true))
	}

	type Alias Schema
	alias := (*Alias)(s)

	data, err := json.Marshal(alias, json.Deterministic(true))
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	maps.Copy(result, s.Extra)

	return json.Marshal(result, json.Deterministic(true))
}

// MarshalJSONTo implements the go-json-experiment v2 MarshalerTo interface.
func (s *Schema) MarshalJSONTo(enc *jsontext.Encoder, opts json.Options) error {
	opts = json.JoinOptions(opts, json.Deterministic(true))

	if s.Boolean != nil {
		return json.MarshalEncode(enc, s.Boolean, opts)
	}

	data, err := s.MarshalJSON()
	if err != nil {
		return err
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return err
	}
	return json.MarshalEncode(enc, result, opts)
}

// UnmarshalJSON handles unmarshaling JSON data into the Schema type, and
// records the sorted set of keywords present on the object so the
// evaluator can dispatch in deterministic order.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		s.Boolean = &b
		return nil
	}

	type Alias Schema
	aux := (*Alias)(s)
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var raw map[string]jsontext.Value
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if defsData, ok := raw["definitions"]; ok && s.Defs == nil {
		var defs map[string]*Schema
		if err := json.Unmarshal(defsData, &defs); err != nil {
			return err
		}
		s.Defs = defs
	}

	if constData, ok := raw["const"]; ok {
		s.Const = &ConstValue{}
		if err := s.Const.UnmarshalJSON(constData); err != nil {
			return err
		}
	}

	keywords := make([]string, 0, len(raw))
	var extra map[string]any
	for key, v := range raw {
		if _, known := knownSchemaFields[key]; known {
			keywords = append(keywords, key)
			continue
		}
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return err
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = val
	}
	sort.Strings(keywords)
	s.presentKeywords = keywords
	s.Extra = extra

	return nil
}

// derivePresentKeywords computes presentKeywords for a schema assembled
// through the fluent constructors instead of decoded from JSON, checking
// the same set of fields knownSchemaFields recognizes so evaluate() walks
// both kinds of schema identically.
func (s *Schema) derivePresentKeywords() {
	var keywords []string
	add := func(name string, present bool) {
		if present {
			keywords = append(keywords, name)
		}
	}

	add("allOf", s.AllOf != nil)
	add("anyOf", s.AnyOf != nil)
	add("oneOf", s.OneOf != nil)
	add("not", s.Not != nil)

	add("items", s.Items != nil)
	add("additionalItems", s.AdditionalItems != nil)
	add("contains", s.Contains != nil)

	add("properties", s.Properties != nil)
	add("patternProperties", s.PatternProperties != nil)
	add("additionalProperties", s.AdditionalProperties != nil)

	add("type", len(s.Type) > 0)
	add("enum", s.Enum != nil)
	add("const", s.Const != nil)

	add("multipleOf", s.MultipleOf != nil)
	add("maximum", s.Maximum != nil)
	add("exclusiveMaximum", s.ExclusiveMaximum != nil)
	add("minimum", s.Minimum != nil)
	add("exclusiveMinimum", s.ExclusiveMinimum != nil)

	add("maxLength", s.MaxLength != nil)
	add("minLength", s.MinLength != nil)
	add("pattern", s.Pattern != nil)

	add("maxItems", s.MaxItems != nil)
	add("minItems", s.MinItems != nil)
	add("uniqueItems", s.UniqueItems != nil)

	add("maxProperties", s.MaxProperties != nil)
	add("minProperties", s.MinProperties != nil)
	add("required", s.Required != nil)
	add("dependencies", s.Dependencies != nil)

	add("title", s.Title != nil)
	add("description", s.Description != nil)
	add("default", s.Default != nil)
	add("examples", s.Examples != nil)

	sort.Strings(keywords)
	s.presentKeywords = keywords
}

// SchemaMap represents a map of property/pattern names to subschemas.
type SchemaMap map[string]*Schema

// MarshalJSON ensures SchemaMap serializes as a deterministic JSON object.
func (sm SchemaMap) MarshalJSON() ([]byte, error) {
	m := make(map[string]*Schema)
	maps.Copy(m, sm)
	return json.Marshal(m, json.Deterministic(true))
}

// UnmarshalJSON parses a JSON object into a SchemaMap.
func (sm *SchemaMap) UnmarshalJSON(data []byte) error {
	m := make(map[string]*Schema)
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*sm = SchemaMap(m)
	return nil
}

// SchemaType holds the "type" keyword value, a single string or an array
// of unique type-name strings.
type SchemaType []string

func (st SchemaType) MarshalJSON() ([]byte, error) {
	if len(st) == 1 {
		return json.Marshal(st[0])
	}
	return json.Marshal([]string(st))
}

func (st *SchemaType) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*st = SchemaType{single}
		return nil
	}

	var multi []string
	if err := json.Unmarshal(data, &multi); err == nil {
		*st = SchemaType(multi)
		return nil
	}

	return ErrInvalidJSONSchemaType
}

// ConstValue represents the "const" keyword, distinguishing an explicit
// JSON null from "const was not set at all".
type ConstValue struct {
	Value any
	IsSet bool
}

func (cv *ConstValue) UnmarshalJSON(data []byte) error {
	if cv == nil {
		return ErrNilConstValue
	}
	cv.IsSet = true
	if string(data) == "null" {
		cv.Value = nil
		return nil
	}
	return json.Unmarshal(data, &cv.Value)
}

func (cv ConstValue) MarshalJSON() ([]byte, error) {
	if cv.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(cv.Value)
}

// SetCompiler sets a custom Compiler for the Schema.
func (s *Schema) SetCompiler(compiler *Compiler) *Schema {
	s.compiler = compiler
	return s
}

// GetCompiler returns the effective Compiler for the schema: itself, the
// nearest ancestor's, or the package default for schemas built via the
// keywords.go constructor helpers without ever being compiled.
func (s *Schema) GetCompiler() *Compiler {
	if s.compiler != nil {
		return s.compiler
	}
	if s.parent != nil {
		return s.parent.GetCompiler()
	}
	return defaultCompiler
}
