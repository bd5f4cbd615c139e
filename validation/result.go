package validation

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// FieldResult is the verdict for a single field.
type FieldResult struct {
	Error string `json:"error,omitempty"`
}

// IsValid reports whether the field passed.
func (r FieldResult) IsValid() bool {
	return r.Error == ""
}

// FormResult is the verdict for a whole form. A form is valid exactly when
// no field has an error.
type FormResult struct {
	Errors map[string]string `json:"errors"`

	missing []string
}

// IsValid reports whether the form passed.
func (r FormResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Error returns the message recorded for field, or "".
func (r FormResult) Error(field string) string {
	return r.Errors[field]
}

// Fields returns the names of the fields with errors, sorted.
func (r FormResult) Fields() []string {
	return slices.Sorted(maps.Keys(r.Errors))
}

// Summary returns one message describing the form: the list of missing
// fields if any are missing, otherwise the first error by field name.
func (r FormResult) Summary() string {
	if r.IsValid() {
		return ""
	}
	if len(r.missing) > 0 {
		return MissingFields(r.missing)
	}
	return r.Errors[r.Fields()[0]]
}

// Err returns the result as a *FormError, or nil when the form is valid.
func (r FormResult) Err() error {
	if r.IsValid() {
		return nil
	}
	return &FormError{Errors: maps.Clone(r.Errors)}
}

// FormError carries the field errors of an invalid form for callers that
// want an error value.
type FormError struct {
	Errors map[string]string
}

func (e *FormError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, f := range slices.Sorted(maps.Keys(e.Errors)) {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Errors[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// formValidator accumulates field errors. Later errors for a field replace
// earlier ones.
type formValidator struct {
	data    Fields
	errors  map[string]string
	missing []string
}

func newFormValidator(data Fields) *formValidator {
	return &formValidator{data: data, errors: make(map[string]string)}
}

func (v *formValidator) require(fields ...string) {
	for _, f := range fields {
		if !present(v.data[f]) {
			v.errors[f] = Required(f)
			v.missing = append(v.missing, f)
		}
	}
}

func (v *formValidator) set(field, msg string) {
	if msg == "" {
		return
	}
	v.errors[field] = msg
	v.missing = slices.DeleteFunc(v.missing, func(f string) bool { return f == field })
}

func (v *formValidator) result() FormResult {
	return FormResult{Errors: v.errors, missing: v.missing}
}
