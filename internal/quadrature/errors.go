package quadrature

import (
	"fmt"

	"github.com/san-kum/thermokit/internal/errors"
)

// Failure causes. Every one of them is also marked as
// errors.ErrIntegrationFailure.
var (
	// ErrMaxSubdivisions indicates the subinterval budget ran out.
	ErrMaxSubdivisions = errors.New("quadrature: maximum number of subdivisions reached")

	// ErrRoundoff indicates roundoff error prevents reaching the tolerance.
	ErrRoundoff = errors.New("quadrature: roundoff error prevents the requested tolerance")

	// ErrBadIntegrand indicates non-finite values or a non-integrable singularity.
	ErrBadIntegrand = errors.New("quadrature: bad integrand behaviour")
)

// Error carries the state of an integration that did not converge.
type Error struct {
	Value     float64
	AbsErr    float64
	Intervals int
	Wrapped   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (value=%g, abserr=%g, intervals=%d)", e.Wrapped.Error(), e.Value, e.AbsErr, e.Intervals)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

func fail(cause error, value, abserr float64, intervals int) error {
	return errors.Mark(&Error{
		Value:     value,
		AbsErr:    abserr,
		Intervals: intervals,
		Wrapped:   cause,
	}, errors.ErrIntegrationFailure)
}
