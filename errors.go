package gr4j

import "errors"

// Error kinds returned by the public entry points. Callers test with
// errors.Is; wrapped messages carry the offending value.
var (
	// ErrInvalidInput indicates malformed or non-finite forcing values.
	ErrInvalidInput = errors.New("gr4j: invalid input")

	// ErrInvalidParameter indicates a parameter outside its physical domain.
	ErrInvalidParameter = errors.New("gr4j: invalid parameter")

	// ErrLengthMismatch indicates paired series of unequal length.
	ErrLengthMismatch = errors.New("gr4j: length mismatch")

	// ErrInsufficientData indicates fewer than two valid paired observations.
	ErrInsufficientData = errors.New("gr4j: insufficient data")

	// ErrInvalidConfiguration indicates infeasible calibration settings.
	ErrInvalidConfiguration = errors.New("gr4j: invalid configuration")
)
