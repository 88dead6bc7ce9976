package forcing

import "errors"

// ErrInvalidInput indicates a malformed forcing series: gaps, disorder,
// non-finite or negative values, or misaligned columns.
var ErrInvalidInput = errors.New("forcing: invalid input")
