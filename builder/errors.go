package builder

import "errors"

// Sentinel errors for maze configuration. All are terminal to the build
// attempt: supply a valid configuration and build again.
var (
	// ErrNoRadius indicates Build was called without WithRadius.
	ErrNoRadius = errors.New("builder: radius must be specified to build a maze")

	// ErrNegativeRadius indicates WithRadius was given a negative value.
	ErrNegativeRadius = errors.New("builder: radius must be non-negative")

	// ErrInvalidStartPosition indicates the start position supplied via
	// WithStart does not exist in the shaped grid.
	ErrInvalidStartPosition = errors.New("builder: start position is outside maze bounds")
)
