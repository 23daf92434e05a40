// Package errors provides structured error handling for the glass tooling.
//
// The rendering core itself never errors: degenerate geometry renders
// nothing by contract. Errors only arise at the edges — scene configuration
// parsing and image output.
package errors

import "fmt"

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a scene configuration error.
	KindConfig
	// KindRender indicates a rendering backend error.
	KindRender
	// KindIO indicates a file read/write error.
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// GlassError represents a structured error in the glass tooling.
type GlassError struct {
	// Op is the operation that failed (e.g., "config.LoadScene").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if applicable.
	Path string
}

func (e *GlassError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *GlassError) Unwrap() error {
	return e.Err
}

// New creates a GlassError for the given operation and kind.
func New(op string, kind ErrorKind, err error) *GlassError {
	return &GlassError{Op: op, Kind: kind, Err: err}
}

// NewPath creates a GlassError carrying the file path involved.
func NewPath(op string, kind ErrorKind, path string, err error) *GlassError {
	return &GlassError{Op: op, Kind: kind, Err: err, Path: path}
}
