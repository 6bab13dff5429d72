package texfmt

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned when an identifier is not in the table.
	// The asset loader should reject the asset or substitute a format.
	ErrUnknownFormat = errors.New("texfmt: unknown format")

	// ErrUnsupportedOnBackend is returned when a valid format has no mapping
	// on the requested backend. Callers recover by choosing a substitute.
	ErrUnsupportedOnBackend = errors.New("texfmt: format unsupported on backend")

	// ErrInvalidExtent is returned for non-positive texture dimensions.
	ErrInvalidExtent = errors.New("texfmt: invalid texture extent")

	// ErrShaderCompilerNotReady is returned when a shader program is
	// constructed before the compiler finished its one-time initialization.
	ErrShaderCompilerNotReady = errors.New("texfmt: shader compiler not ready")
)

// FormatError records a failed registry operation together with the format
// identifier and backend involved.
type FormatError struct {
	Op      string
	ID      string
	Backend Backend
	Err     error
}

func (e *FormatError) Error() string {
	if e.Backend != 0 {
		return fmt.Sprintf("%s %q on %s: %v", e.Op, e.ID, e.Backend, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.ID, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
