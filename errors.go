package jsonschema

import (
	"errors"
	"fmt"
)

// === Schema compilation and reference resolution ===
var (
	// ErrSchemaCompilation is returned when a schema fails to compile.
	ErrSchemaCompilation = errors.New("schema compilation failed")

	// ErrReferenceResolution is returned when a $ref cannot be resolved.
	ErrReferenceResolution = errors.New("reference resolution failed")

	// ErrRegexValidation is returned when one or more regex patterns in a
	// schema fail to compile; see RegexPatternError for the offending ones.
	ErrRegexValidation = errors.New("regex pattern validation failed")

	// ErrInvalidJSONSchemaType is returned when the "type" keyword value is
	// neither a string nor an array of strings.
	ErrInvalidJSONSchemaType = errors.New("invalid schema type")

	// ErrNilConstValue is returned when attempting to unmarshal into a nil
	// ConstValue receiver.
	ErrNilConstValue = errors.New("cannot unmarshal into nil ConstValue")

	// ErrSchemaIsNil is returned when an operation requires a non-nil schema.
	ErrSchemaIsNil = errors.New("schema is nil")

	// ErrGlobalReferenceResolution is returned when a $ref cannot be found
	// either in the local schema tree or via the compiler's global registry.
	ErrGlobalReferenceResolution = errors.New("could not resolve reference in any known schema")

	// ErrJSONPointerSegmentDecode is returned when a JSON Pointer segment is
	// not valid percent-encoded UTF-8.
	ErrJSONPointerSegmentDecode = errors.New("failed to decode json pointer segment")

	// ErrJSONPointerSegmentNotFound is returned when a JSON Pointer segment
	// names a path that does not exist in the schema tree.
	ErrJSONPointerSegmentNotFound = errors.New("json pointer segment not found in schema")
)

// === Remote loading ===
var (
	// ErrNoLoaderRegistered is returned when no loader is registered for a
	// $ref's URI scheme.
	ErrNoLoaderRegistered = errors.New("no loader registered for scheme")

	// ErrDataRead is returned when a remote schema document cannot be read.
	ErrDataRead = errors.New("data read failed")

	// ErrInvalidStatusCode is returned when a remote loader receives a
	// non-success HTTP status code.
	ErrInvalidStatusCode = errors.New("invalid http status code")

	// ErrNetworkFetch is returned when an HTTP loader fails to reach a
	// remote schema document.
	ErrNetworkFetch = errors.New("failed to fetch remote schema")
)

// === Numeric conversion ===
var (
	// ErrUnsupportedRatType is returned when a value cannot be converted to
	// *big.Rat for a numeric keyword.
	ErrUnsupportedRatType = errors.New("unsupported type for exact rational conversion")

	// ErrRatConversion is returned when a value looks numeric but fails to
	// parse as a big.Rat.
	ErrRatConversion = errors.New("rational conversion failed")
)

// RegexPatternError reports a single invalid regular expression found while
// precompiling a schema's "pattern"/"patternProperties" keywords.
type RegexPatternError struct {
	Keyword  string
	Location string
	Pattern  string
	Err      error
}

func (e *RegexPatternError) Error() string {
	return fmt.Sprintf("%s at %s: invalid pattern %q: %v", e.Keyword, e.Location, e.Pattern, e.Err)
}

func (e *RegexPatternError) Unwrap() error {
	return e.Err
}
