package curves

import "errors"

// Sentinel errors for the curves package.
var (
	// ErrUnknownShape is returned by ParseShape for unrecognised names.
	ErrUnknownShape = errors.New("curves: unknown shape")

	// ErrInvalidScale is returned when the scale factor is not a positive finite number.
	ErrInvalidScale = errors.New("curves: scale must be positive")

	// ErrInvalidInterval is returned when the parameter interval is not a positive finite number.
	ErrInvalidInterval = errors.New("curves: interval must be positive")

	// ErrInvalidSteps is returned when the step count is not positive.
	ErrInvalidSteps = errors.New("curves: step count must be positive")

	// ErrInvalidSize is returned when a pixmap or gallery would be empty.
	ErrInvalidSize = errors.New("curves: size must be positive")
)
