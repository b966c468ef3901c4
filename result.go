package jsonschema

import "github.com/kaptinlin/go-i18n"

// EvaluationError is a single keyword failure at one instance location,
// rendered through the i18n bundle so callers can get a human message
// instead of a bare keyword tag.
type EvaluationError struct {
	Keyword string         `json:"keyword"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params"`
}

// NewEvaluationError creates a new evaluation error with the specified details.
func NewEvaluationError(keyword string, code string, message string, params ...map[string]any) *EvaluationError {
	if len(params) > 0 {
		return &EvaluationError{Keyword: keyword, Code: code, Message: message, Params: params[0]}
	}
	return &EvaluationError{Keyword: keyword, Code: code, Message: message}
}

func (e *EvaluationError) Error() string {
	return replace(e.Message, e.Params)
}

// Localize renders the error through a localizer, falling back to the
// untranslated message if none is given.
func (e *EvaluationError) Localize(localizer *i18n.Localizer) string {
	if localizer != nil {
		return localizer.Get(e.Code, i18n.Vars(e.Params))
	}
	return e.Error()
}

// Flag is the cheapest possible validation outcome: valid or not.
type Flag struct {
	Valid bool `json:"valid"`
}

// List is a per-instance-location view of validation errors, suited to
// serializing or rendering in a UI.
type List struct {
	Valid            bool              `json:"valid"`
	InstanceLocation string            `json:"instanceLocation"`
	Errors           map[string]string `json:"errors,omitempty"`
	Details          []List            `json:"details,omitempty"`
}

// EvaluationResult is a localizable view over a Result: one entry per
// instance location that failed, each carrying the keyword tags that failed
// there as EvaluationErrors instead of bare strings.
type EvaluationResult struct {
	Valid   bool              `json:"valid"`
	Details []*LocationResult `json:"details,omitempty"`
}

// LocationResult collects every failed keyword at a single instance path.
type LocationResult struct {
	InstanceLocation string                      `json:"instanceLocation"`
	Errors           map[string]*EvaluationError `json:"errors"`
}

// bundle is the package-wide message bundle backing EvaluationResult
// localization. Loaded lazily so packages that never call Evaluate don't pay
// for it.
var bundle *i18n.I18n

func messageBundle() *i18n.I18n {
	if bundle == nil {
		b, err := GetI18n()
		if err != nil {
			return nil
		}
		bundle = b
	}
	return bundle
}

// Evaluate validates instance and returns a localizable EvaluationResult
// instead of Validate's bare Result.
func (s *Schema) Evaluate(instance any) *EvaluationResult {
	return newEvaluationResult(s.Validate(instance))
}

func newEvaluationResult(r *Result) *EvaluationResult {
	e := &EvaluationResult{Valid: r.Valid}
	for path, tags := range r.Errors {
		loc := &LocationResult{InstanceLocation: path, Errors: make(map[string]*EvaluationError, len(tags))}
		for _, tag := range tags {
			loc.Errors[tag] = evaluationErrorFor(tag)
		}
		e.Details = append(e.Details, loc)
	}
	return e
}

func evaluationErrorFor(tag string) *EvaluationError {
	message := tag
	if b := messageBundle(); b != nil {
		if localized := b.NewLocalizer("en").Get(tag); localized != "" {
			message = localized
		}
	}
	return NewEvaluationError(tag, tag, message)
}

// ToResult flattens this EvaluationResult back into the plain path-to-tag
// shape Validate returns, discarding the localized messages.
func (e *EvaluationResult) ToResult() *Result {
	r := &Result{Valid: e.Valid}
	if len(e.Details) > 0 {
		r.Errors = make(map[string][]string, len(e.Details))
		for _, loc := range e.Details {
			tags := make([]string, 0, len(loc.Errors))
			for tag := range loc.Errors {
				tags = append(tags, tag)
			}
			r.Errors[loc.InstanceLocation] = tags
		}
	}
	return r
}

// ToFlag discards location detail, keeping only overall validity.
func (e *EvaluationResult) ToFlag() *Flag {
	return &Flag{Valid: e.Valid}
}

// ToList renders the result as a flat, serializable List, localizing
// messages through localizer if given.
func (e *EvaluationResult) ToList(localizer *i18n.Localizer) *List {
	list := &List{Valid: e.Valid, InstanceLocation: "$"}
	for _, loc := range e.Details {
		detail := List{Valid: false, InstanceLocation: loc.InstanceLocation, Errors: make(map[string]string, len(loc.Errors))}
		for tag, evalErr := range loc.Errors {
			detail.Errors[tag] = evalErr.Localize(localizer)
		}
		list.Details = append(list.Details, detail)
	}
	return list
}

// GetDetailedErrors returns a flat map of instance path to a single rendered
// message, one entry per failed keyword (paths with multiple failing
// keywords get a path#tag suffix so no detail is silently dropped).
func (e *EvaluationResult) GetDetailedErrors(localizer *i18n.Localizer) map[string]string {
	out := make(map[string]string)
	for _, loc := range e.Details {
		for tag, evalErr := range loc.Errors {
			key := loc.InstanceLocation
			if len(loc.Errors) > 1 {
				key = loc.InstanceLocation + "#" + tag
			}
			out[key] = evalErr.Localize(localizer)
		}
	}
	return out
}
