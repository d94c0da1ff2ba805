// Package quadrature provides globally adaptive Gauss-Kronrod integration.
//
// The integrator bisects the subinterval with the largest error estimate
// until the summed estimate meets max(AbsTol, RelTol*|I|):
//
//   - [Config]: tolerances, rule and subinterval budget
//   - [Rule]: Gauss-Kronrod pair (GK15 ... GK61)
//   - [Integrator]: evaluates integrals over finite or infinite bounds
//   - [Result]: value, error estimate and work counters
//   - [Error]: failure with the partial result attached
//
// Infinite bounds are mapped onto (0, 1] with z = a + (1-t)/t, so callers
// pass math.Inf(1) directly:
//
//	in, _ := quadrature.New(quadrature.DefaultConfig())
//	res, err := in.Integrate(func(z float64) float64 { return math.Exp(-z) }, 0, math.Inf(1))
//
// # Thread Safety
//
// An Integrator holds no mutable state and may be shared across goroutines.
package quadrature
