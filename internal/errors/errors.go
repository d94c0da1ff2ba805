// Package errors provides error handling for thermokit.
//
// It re-exports github.com/cockroachdb/errors and declares the three failure
// kinds every evaluation path reports:
//
//   - [ErrInvalidInput]: malformed arguments (negative mass or temperature,
//     non-ascending grid, length mismatch, bad spin2)
//   - [ErrIntegrationFailure]: the quadrature could not meet its tolerance
//   - [ErrInitializationFailure]: an interpolant could not be built
//
// Lower layers mark their own errors with one of these sentinels, so callers
// only need [Is]:
//
//	if errors.Is(err, errors.ErrIntegrationFailure) {
//	    // relax the tolerance and retry, or give up
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Failure kinds.
var (
	ErrInvalidInput          = crdb.New("invalid input")
	ErrIntegrationFailure    = crdb.New("integration failure")
	ErrInitializationFailure = crdb.New("initialization failure")
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	FlattenHints   = crdb.FlattenHints
	GetAllHints    = crdb.GetAllHints
	FlattenDetails = crdb.FlattenDetails
)

// InvalidInputf returns a new error marked as ErrInvalidInput.
func InvalidInputf(format string, args ...interface{}) error {
	return crdb.Mark(crdb.Newf(format, args...), ErrInvalidInput)
}
