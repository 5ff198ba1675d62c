// Package errors provides structured error handling for the motion library.
package errors

import "fmt"

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a transition preset configuration error.
	KindConfig
	// KindParsing indicates a value parsing failure (easing names, colors).
	KindParsing
	// KindUnsupported indicates a request for a capability that is not
	// available, such as an unknown strategy type.
	KindUnsupported
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// MotionError represents a structured error in the motion library.
type MotionError struct {
	// Op is the operation that failed (e.g., "config.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *MotionError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MotionError) Unwrap() error {
	return e.Err
}

// E wraps err with the operation and kind.
func E(op string, kind ErrorKind, err error) error {
	return &MotionError{Op: op, Kind: kind, Err: err}
}

// Errorf wraps a formatted message with the operation and kind.
func Errorf(op string, kind ErrorKind, format string, args ...any) error {
	return &MotionError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}
