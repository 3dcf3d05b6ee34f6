package sentinel

import "errors"

// Sentinel errors shared by the coordinate model and its collaborators.
// Callers wrap them with context and match with errors.Is.
//
//   - ErrInvalidValue: non-finite component or negative radius
//   - ErrNilReference: an operation was given no counterpart where one is required
//   - ErrSchemaMismatch: a record lacks a required field or declares the wrong type
//   - ErrOutOfRange: a stored variant ordinal matches no known variant
var (
	ErrInvalidValue   = errors.New("invalid value")
	ErrNilReference   = errors.New("nil reference")
	ErrSchemaMismatch = errors.New("schema mismatch")
	ErrOutOfRange     = errors.New("out of range")
)
