// Package spline builds exact cubic interpolants over tabulated data.
//
// Fitting is delegated to gonum's not-a-knot cubic, which interpolates every
// node exactly and is the zero-smoothing limit of a cubic smoothing spline.
// What happens outside the fitted range is never left to a default: every
// [Interpolant] carries an explicit [Extrapolation] mode.
package spline

import (
	"math"
	"strings"

	"github.com/san-kum/thermokit/internal/errors"
	"gonum.org/v1/gonum/interp"
)

// Extrapolation selects the value returned outside the fitted range.
type Extrapolation int

const (
	// Extrapolate continues linearly with the slope at the nearest end.
	Extrapolate Extrapolation = iota
	// Zeros returns 0.
	Zeros
	// Const returns the value at the nearest end.
	Const
)

func (e Extrapolation) String() string {
	switch e {
	case Extrapolate:
		return "extrapolate"
	case Zeros:
		return "zeros"
	case Const:
		return "const"
	default:
		return "unknown"
	}
}

func ParseExtrapolation(s string) (Extrapolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "extrapolate":
		return Extrapolate, nil
	case "zeros":
		return Zeros, nil
	case "const", "constant":
		return Const, nil
	default:
		return 0, errors.InvalidInputf("spline: unknown extrapolation mode %q", s)
	}
}

const SupportedDegree = 3

type Options struct {
	Degree        int
	Smoothing     float64
	Extrapolation Extrapolation
}

func DefaultOptions() Options {
	return Options{Degree: SupportedDegree, Smoothing: 0, Extrapolation: Const}
}

type predictor interface {
	Predict(x float64) float64
	PredictDerivative(x float64) float64
}

type Interpolant struct {
	fit    predictor
	lo, hi float64
	mode   Extrapolation
}

// Build fits ys over the strictly ascending xs.
func Build(xs, ys []float64, opts Options) (*Interpolant, error) {
	if err := validate(xs, ys); err != nil {
		return nil, err
	}
	if opts.Extrapolation < Extrapolate || opts.Extrapolation > Const {
		return nil, errors.InvalidInputf("spline: unknown extrapolation mode %d", int(opts.Extrapolation))
	}
	if opts.Degree != SupportedDegree {
		return nil, errors.Mark(
			errors.Newf("spline: degree %d not supported", opts.Degree),
			errors.ErrInitializationFailure,
		)
	}
	if opts.Smoothing != 0 {
		return nil, errors.Mark(
			errors.Newf("spline: smoothing factor %g not supported, only exact interpolation", opts.Smoothing),
			errors.ErrInitializationFailure,
		)
	}
	if len(xs) < opts.Degree+1 {
		return nil, errors.Mark(
			errors.WithHintf(
				errors.Newf("spline: %d points cannot determine a degree %d fit", len(xs), opts.Degree),
				"supply at least %d points", opts.Degree+1,
			),
			errors.ErrInitializationFailure,
		)
	}

	var nak interp.NotAKnotCubic
	if err := nak.Fit(xs, ys); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "spline: fit"), errors.ErrInitializationFailure)
	}

	return &Interpolant{
		fit:  &nak,
		lo:   xs[0],
		hi:   xs[len(xs)-1],
		mode: opts.Extrapolation,
	}, nil
}

func validate(xs, ys []float64) error {
	if len(xs) == 0 || len(ys) == 0 {
		return errors.InvalidInputf("spline: empty data (len(x)=%d, len(y)=%d)", len(xs), len(ys))
	}
	if len(xs) != len(ys) {
		return errors.InvalidInputf("spline: length mismatch (len(x)=%d, len(y)=%d)", len(xs), len(ys))
	}
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return errors.InvalidInputf("spline: non-finite value at index %d", i)
		}
		if i > 0 && xs[i] <= xs[i-1] {
			return errors.InvalidInputf("spline: x not strictly ascending at index %d (%g <= %g)", i, xs[i], xs[i-1])
		}
	}
	return nil
}

func (s *Interpolant) Domain() (lo, hi float64) {
	return s.lo, s.hi
}

func (s *Interpolant) Extrapolation() Extrapolation {
	return s.mode
}

func (s *Interpolant) Contains(x float64) bool {
	return x >= s.lo && x <= s.hi
}

func (s *Interpolant) Eval(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if s.Contains(x) {
		return s.fit.Predict(x)
	}
	edge := s.nearest(x)
	switch s.mode {
	case Zeros:
		return 0
	case Const:
		return s.fit.Predict(edge)
	default:
		return s.fit.Predict(edge) + s.fit.PredictDerivative(edge)*(x-edge)
	}
}

// Derivative evaluates the derivative of the given order at x. Orders 0 and
// 1 are supported.
func (s *Interpolant) Derivative(order int, x float64) (float64, error) {
	switch order {
	case 0:
		return s.Eval(x), nil
	case 1:
		return s.slope(x), nil
	default:
		return 0, errors.InvalidInputf("spline: derivative order %d not supported", order)
	}
}

func (s *Interpolant) slope(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if s.Contains(x) {
		return s.fit.PredictDerivative(x)
	}
	if s.mode == Extrapolate {
		return s.fit.PredictDerivative(s.nearest(x))
	}
	return 0
}

func (s *Interpolant) nearest(x float64) float64 {
	if x < s.lo {
		return s.lo
	}
	return s.hi
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
