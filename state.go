package jsonschema

import "strings"

// State is the validation state threaded through the recursive evaluator:
// the current instance path, the schema root, and the accumulated error
// map. The root is carried along but not read during evaluation: $ref
// resolution goes through each schema's own getRootSchema. It is the
// concrete form of the "current instance path, schema root, accumulated
// errors, id index" state C4 describes.
//
// A derived state (Descend) shares the same underlying error map as its
// parent — mutations are visible to the caller without any explicit merge,
// since nothing about sibling evaluation needs to be undone on return. Only
// combinators and "not" need an isolated branch, which Fork provides.
type State struct {
	root   *Schema
	path   []string
	errors map[string][]string
}

// NewState seeds validation state at the document root, "$".
func NewState(root *Schema) *State {
	return &State{root: root, errors: make(map[string][]string)}
}

// PathString renders the current path as "$.name" / "$.0"-style segments.
func (st *State) PathString() string {
	if len(st.path) == 0 {
		return "$"
	}
	var b strings.Builder
	b.WriteString("$")
	for _, tok := range st.path {
		b.WriteByte('.')
		b.WriteString(tok)
	}
	return b.String()
}

// Descend returns a state for a nested instance location (an object
// property name or array index), sharing this state's error map.
func (st *State) Descend(token string) *State {
	path := make([]string, len(st.path)+1)
	copy(path, st.path)
	path[len(st.path)] = token
	return &State{root: st.root, path: path, errors: st.errors}
}

// Fail records a keyword-tag error at the current path.
func (st *State) Fail(tag string) {
	p := st.PathString()
	st.errors[p] = append(st.errors[p], tag)
}

// IsValid reports whether any error has been recorded.
func (st *State) IsValid() bool {
	return len(st.errors) == 0
}

// Fork produces a sibling state at the same path, sharing the schema root
// but with an empty error map — used by allOf/anyOf/oneOf/not to evaluate a
// branch without its errors leaking into the parent unless explicitly
// merged back in.
func (st *State) Fork() *State {
	return &State{root: st.root, path: st.path, errors: make(map[string][]string)}
}

// Merge appends every error recorded in other into st.
func (st *State) Merge(other *State) {
	for path, tags := range other.errors {
		st.errors[path] = append(st.errors[path], tags...)
	}
}

// Result is the external, flattened validation outcome: whether the
// instance is valid and, for every path that failed, the ordered list of
// keyword tags that failed there.
type Result struct {
	Valid  bool                `json:"valid"`
	Errors map[string][]string `json:"errors,omitempty"`
}

// IsValid reports overall validity.
func (r *Result) IsValid() bool {
	return r.Valid
}

func (st *State) toResult() *Result {
	return &Result{Valid: st.IsValid(), Errors: st.errors}
}
