// Package formats holds what every file-format adapter shares: the error
// type returned on malformed input and unit conversions between the units
// hobby formats use and the SI units of the document model.
package formats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors wrapped by FormatError.
var (
	// ErrMalformed indicates input that does not follow the format's grammar.
	ErrMalformed = errors.New("malformed input")
	// ErrUnsupported indicates a well-formed input using a feature the adapter does not handle.
	ErrUnsupported = errors.New("unsupported feature")
)

// FormatError reports a parse failure with its location in the source.
type FormatError struct {
	Format string // adapter name, e.g. "rasp"
	Line   int    // 1-based; 0 when unknown
	Field  string // offending field or attribute, if any
	Err    error
}

// Error renders the location followed by the cause.
func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString(e.Format)
	if e.Line > 0 {
		fmt.Fprintf(&b, ": line %d", e.Line)
	}
	if e.Field != "" {
		b.WriteString(": ")
		b.WriteString(e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Malformed returns a FormatError wrapping ErrMalformed with a detail message.
func Malformed(format string, line int, field, detail string) *FormatError {
	return &FormatError{
		Format: format,
		Line:   line,
		Field:  field,
		Err:    fmt.Errorf("%w: %s", ErrMalformed, detail),
	}
}

// ParseFloat parses s as a float64, reporting failures as a FormatError.
func ParseFloat(format string, line int, field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, Malformed(format, line, field, fmt.Sprintf("%q is not a number", s))
	}
	return v, nil
}

// ParseInt parses s as an int, reporting failures as a FormatError.
func ParseInt(format string, line int, field, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Malformed(format, line, field, fmt.Sprintf("%q is not an integer", s))
	}
	return v, nil
}

// Token returns name with whitespace runs replaced by '-', for formats whose
// fields are space separated.
func Token(name string) string {
	return strings.Join(strings.Fields(name), "-")
}
