package jsonschema

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// resolveRef resolves a "$ref" value to the schema it points at, either
// within this document (a root "#" or JSON-Pointer fragment) or in another
// document entirely (an absolute or relative URI, possibly with its own
// fragment).
func (s *Schema) resolveRef(ref string) (*Schema, error) {
	if ref == "#" {
		return s.getRootSchema(), nil
	}

	if strings.HasPrefix(ref, "#") {
		return s.getRootSchema().resolveJSONPointer(ref[1:])
	}

	if !isAbsoluteURI(ref) && s.baseURI != "" {
		ref = resolveRelativeURI(s.baseURI, ref)
	}

	return s.resolveRefWithFullURL(ref)
}

// resolveRefWithFullURL resolves a ref carrying a full URI, first against
// this document's own $id index, then against the compiler's registry of
// every other schema it has compiled.
func (s *Schema) resolveRefWithFullURL(ref string) (*Schema, error) {
	root := s.getRootSchema()
	if resolved, err := root.getSchema(ref); err == nil {
		return resolved, nil
	}

	resolved, err := s.GetCompiler().GetSchema(ref)
	if err != nil {
		return nil, ErrGlobalReferenceResolution
	}
	return resolved, nil
}

// resolveJSONPointer resolves a JSON Pointer fragment (the part of a $ref
// after "#") against this schema, decoding "~0"/"~1" and percent-escapes at
// each segment per RFC 6901.
func (s *Schema) resolveJSONPointer(pointer string) (*Schema, error) {
	if pointer == "" || pointer == "/" {
		return s, nil
	}

	tokens := jsonpointer.Parse(pointer)
	decoded := make([]string, len(tokens))
	for i, tok := range tokens {
		d, err := url.PathUnescape(tok)
		if err != nil {
			return nil, ErrJSONPointerSegmentDecode
		}
		decoded[i] = d
	}

	return s.walkPointer(decoded)
}

// walkPointer consumes JSON Pointer tokens one keyword at a time. Each
// keyword that carries subschemas knows how many further tokens it needs
// (a map key, a tuple index, or none at all) before recursing.
func (s *Schema) walkPointer(tokens []string) (*Schema, error) {
	if len(tokens) == 0 {
		return s, nil
	}
	head, rest := tokens[0], tokens[1:]

	switch head {
	case "$defs", "definitions":
		if len(rest) == 0 {
			return nil, ErrJSONPointerSegmentNotFound
		}
		if def, ok := s.Defs[rest[0]]; ok {
			return def.walkPointer(rest[1:])
		}
		return nil, ErrJSONPointerSegmentNotFound

	case "properties":
		if len(rest) == 0 || s.Properties == nil {
			return nil, ErrJSONPointerSegmentNotFound
		}
		if prop, ok := (*s.Properties)[rest[0]]; ok {
			return prop.walkPointer(rest[1:])
		}
		return nil, ErrJSONPointerSegmentNotFound

	case "patternProperties":
		if len(rest) == 0 || s.PatternProperties == nil {
			return nil, ErrJSONPointerSegmentNotFound
		}
		if prop, ok := (*s.PatternProperties)[rest[0]]; ok {
			return prop.walkPointer(rest[1:])
		}
		return nil, ErrJSONPointerSegmentNotFound

	case "items":
		if s.Items == nil {
			return nil, ErrJSONPointerSegmentNotFound
		}
		if s.Items.Single != nil {
			return s.Items.Single.walkPointer(rest)
		}
		if len(rest) == 0 {
			return nil, ErrJSONPointerSegmentNotFound
		}
		idx, err := strconv.Atoi(rest[0])
		if err != nil || idx < 0 || idx >= len(s.Items.Tuple) {
			return nil, ErrJSONPointerSegmentNotFound
		}
		return s.Items.Tuple[idx].walkPointer(rest[1:])

	case "additionalItems":
		if s.AdditionalItems == nil {
			return nil, ErrJSONPointerSegmentNotFound
		}
		return s.AdditionalItems.walkPointer(rest)

	case "additionalProperties":
		if s.AdditionalProperties == nil {
			return nil, ErrJSONPointerSegmentNotFound
		}
		return s.AdditionalProperties.walkPointer(rest)

	case "contains":
		if s.Contains == nil {
			return nil, ErrJSONPointerSegmentNotFound
		}
		return s.Contains.walkPointer(rest)

	case "not":
		if s.Not == nil {
			return nil, ErrJSONPointerSegmentNotFound
		}
		return s.Not.walkPointer(rest)

	case "allOf", "anyOf", "oneOf":
		list := s.AllOf
		if head == "anyOf" {
			list = s.AnyOf
		} else if head == "oneOf" {
			list = s.OneOf
		}
		if len(rest) == 0 {
			return nil, ErrJSONPointerSegmentNotFound
		}
		idx, err := strconv.Atoi(rest[0])
		if err != nil || idx < 0 || idx >= len(list) {
			return nil, ErrJSONPointerSegmentNotFound
		}
		return list[idx].walkPointer(rest[1:])

	case "dependencies":
		if len(rest) == 0 {
			return nil, ErrJSONPointerSegmentNotFound
		}
		if dep, ok := s.Dependencies[rest[0]]; ok && dep != nil && dep.Schema != nil {
			return dep.Schema.walkPointer(rest[1:])
		}
		return nil, ErrJSONPointerSegmentNotFound

	default:
		return nil, ErrJSONPointerSegmentNotFound
	}
}

// resolveReferences eagerly resolves this schema's own "$ref", if any, then
// recurses into every subschema so ResolvedRef is populated wherever
// possible before the first Validate call. A ref that can't yet be resolved
// (e.g. it points at a document not compiled yet) is left nil; evaluate()
// retries resolution lazily and fails with the "$ref" tag if it still can't
// be found.
func (s *Schema) resolveReferences() {
	if s.Ref != "" {
		if resolved, err := s.resolveRef(s.Ref); err == nil {
			s.ResolvedRef = resolved
		}
	}
	for _, child := range s.children() {
		child.resolveReferences()
	}
}

// ResolveUnresolvedReferences retries resolution for every $ref in the tree
// that failed to resolve at compile time. Call this after registering a
// schema the failed refs depend on.
func (s *Schema) ResolveUnresolvedReferences() {
	if s.Ref != "" && s.ResolvedRef == nil {
		if resolved, err := s.resolveRef(s.Ref); err == nil {
			s.ResolvedRef = resolved
		}
	}
	for _, child := range s.children() {
		child.ResolveUnresolvedReferences()
	}
}

// GetUnresolvedReferenceURIs reports every "$ref" in the tree that has not
// yet resolved to a target schema.
func (s *Schema) GetUnresolvedReferenceURIs() []string {
	var unresolved []string
	if s.Ref != "" && s.ResolvedRef == nil {
		unresolved = append(unresolved, s.Ref)
	}
	for _, child := range s.children() {
		unresolved = append(unresolved, child.GetUnresolvedReferenceURIs()...)
	}
	return unresolved
}
