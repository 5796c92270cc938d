package document

import "errors"

// Sentinel errors for geometry derivation and document validation.
var (
	// ErrZeroSpan indicates a sweep angle was requested from a linear sweep on a fin with no span.
	ErrZeroSpan = errors.New("fin span is zero")
	// ErrUnknownKind indicates a component kind name that is not part of the variant set.
	ErrUnknownKind = errors.New("unknown component kind")
	// ErrUnknownShape indicates a nose shape name that is not recognised.
	ErrUnknownShape = errors.New("unknown nose shape")
	// ErrMissingField indicates a required field (e.g. a name) is empty.
	ErrMissingField = errors.New("required field missing")
	// ErrNegativeValue indicates a physical quantity below zero.
	ErrNegativeValue = errors.New("value must not be negative")
	// ErrEmptyFinset indicates a finset that generates no fins.
	ErrEmptyFinset = errors.New("finset has no fins")
)

// ValidationCategory classifies a validation error for programmatic handling.
type ValidationCategory string

const (
	// ValCatMissingField indicates a required field is empty.
	ValCatMissingField ValidationCategory = "missing_field"
	// ValCatNegative indicates a mass or dimension below zero.
	ValCatNegative ValidationCategory = "negative_value"
	// ValCatGeometry indicates geometry that cannot be derived.
	ValCatGeometry ValidationCategory = "invalid_geometry"
)

// ValidationError records a validation problem and where in the tree it was found.
type ValidationError struct {
	Category ValidationCategory
	Path     string // stage/component path, e.g. "Sustainer/Body/Fins"
	Field    string
	Err      error
}

// Error returns a human-readable string including the tree path.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Path + ": " + e.Field + ": " + e.Err.Error()
	}
	return e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
