package quadrature

import (
	"container/heap"
	"math"
)

const (
	epsilon = 2.220446049250313e-16
	uflow   = 2.2250738585072014e-308
)

type rule struct {
	xgk []float64
	wgk []float64
	wg  []float64
}

// Result of a converged integration.
type Result struct {
	Value       float64
	AbsErr      float64
	Intervals   int
	Evaluations int
}

type Integrator struct {
	absTol float64
	relTol float64
	limit  int
	rule   *rule
}

func New(cfg Config) (*Integrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Integrator{
		absTol: cfg.AbsTol,
		relTol: cfg.RelTol,
		limit:  cfg.Limit,
		rule:   rules[cfg.Rule],
	}, nil
}

func (in *Integrator) Config() Config {
	for r, rl := range rules {
		if rl == in.rule {
			return Config{AbsTol: in.absTol, RelTol: in.relTol, Rule: r, Limit: in.limit}
		}
	}
	return Config{AbsTol: in.absTol, RelTol: in.relTol, Limit: in.limit}
}

// Integrate computes the integral of f over [a, b]. Either bound may be
// infinite; the integrand is then evaluated on a transformed variable and
// never at the infinite end point.
func (in *Integrator) Integrate(f func(float64) float64, a, b float64) (Result, error) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return Result{}, fail(ErrBadIntegrand, math.NaN(), math.Inf(1), 0)
	}
	if a == b {
		return Result{}, nil
	}
	if a > b {
		res, err := in.Integrate(f, b, a)
		res.Value = -res.Value
		return res, err
	}

	aInf, bInf := math.IsInf(a, -1), math.IsInf(b, 1)
	switch {
	case aInf && bInf:
		return in.adapt(func(t float64) float64 {
			z := (1 - t) / t
			return (f(z) + f(-z)) / (t * t)
		}, 0, 1)
	case bInf:
		return in.adapt(func(t float64) float64 {
			return f(a+(1-t)/t) / (t * t)
		}, 0, 1)
	case aInf:
		return in.adapt(func(t float64) float64 {
			return f(b-(1-t)/t) / (t * t)
		}, 0, 1)
	default:
		return in.adapt(f, a, b)
	}
}

type segment struct {
	a, b   float64
	value  float64
	abserr float64
	resabs float64
	resasc float64
}

// segments is a max-heap on the error estimate.
type segments []segment

func (s segments) Len() int            { return len(s) }
func (s segments) Less(i, j int) bool  { return s[i].abserr > s[j].abserr }
func (s segments) Swap(i, j int)       { s[i], s[j] = s[j], s[i] }
func (s *segments) Push(x interface{}) { *s = append(*s, x.(segment)) }
func (s *segments) Pop() interface{} {
	old := *s
	n := len(old)
	x := old[n-1]
	*s = old[:n-1]
	return x
}

func (in *Integrator) tolerance(value float64) float64 {
	return math.Max(in.absTol, in.relTol*math.Abs(value))
}

func (in *Integrator) adapt(f func(float64) float64, a, b float64) (Result, error) {
	evals := 0
	eval := func(lo, hi float64) segment {
		s := in.rule.apply(f, lo, hi)
		evals += 2*len(in.rule.xgk) - 1
		return s
	}

	first := eval(a, b)
	if !finite(first.value) || !finite(first.abserr) {
		return Result{}, fail(ErrBadIntegrand, first.value, first.abserr, 1)
	}

	tol := in.tolerance(first.value)
	roundoff := 50 * epsilon * first.resabs
	if first.abserr <= roundoff && first.abserr > tol {
		return Result{}, fail(ErrRoundoff, first.value, first.abserr, 1)
	}
	if (first.abserr <= tol && first.abserr != first.resasc) || first.abserr == 0 {
		return Result{Value: first.value, AbsErr: first.abserr, Intervals: 1, Evaluations: evals}, nil
	}
	if in.limit == 1 {
		return Result{}, fail(ErrMaxSubdivisions, first.value, first.abserr, 1)
	}

	h := &segments{first}
	area, errsum := first.value, first.abserr
	iroff1, iroff2 := 0, 0

	for h.Len() < in.limit {
		worst := heap.Pop(h).(segment)
		mid := 0.5 * (worst.a + worst.b)

		left := eval(worst.a, mid)
		right := eval(mid, worst.b)

		area12 := left.value + right.value
		err12 := left.abserr + right.abserr

		area += area12 - worst.value
		errsum += err12 - worst.abserr

		if !finite(area) || !finite(errsum) {
			return Result{}, fail(ErrBadIntegrand, area, errsum, h.Len()+2)
		}

		if left.resasc != left.abserr && right.resasc != right.abserr {
			delta := worst.value - area12
			if math.Abs(delta) <= 1e-5*math.Abs(area12) && err12 >= 0.99*worst.abserr {
				iroff1++
			}
			if h.Len() >= 10 && err12 > worst.abserr {
				iroff2++
			}
		}

		heap.Push(h, left)
		heap.Push(h, right)

		tol = in.tolerance(area)
		if errsum <= tol {
			return Result{Value: area, AbsErr: errsum, Intervals: h.Len(), Evaluations: evals}, nil
		}

		if iroff1 >= 6 || iroff2 >= 20 {
			return Result{}, fail(ErrRoundoff, area, errsum, h.Len())
		}

		// No representable point is left between the end points.
		if math.Max(math.Abs(worst.a), math.Abs(worst.b)) <= (1+100*epsilon)*(math.Abs(mid)+1000*uflow) {
			return Result{}, fail(ErrBadIntegrand, area, errsum, h.Len())
		}
	}

	return Result{}, fail(ErrMaxSubdivisions, area, errsum, h.Len())
}

// apply evaluates the Gauss-Kronrod pair on [a, b] and rescales |K - G| into
// an error estimate.
func (r *rule) apply(f func(float64) float64, a, b float64) segment {
	center := 0.5 * (a + b)
	half := 0.5 * (b - a)
	absHalf := math.Abs(half)
	n := len(r.xgk) - 1

	fc := f(center)
	resK := fc * r.wgk[n]
	resG := fc * r.wg[n]
	resAbs := math.Abs(resK)

	fv1 := make([]float64, n)
	fv2 := make([]float64, n)
	for j := 0; j < n; j++ {
		dx := half * r.xgk[j]
		f1 := f(center - dx)
		f2 := f(center + dx)
		fv1[j], fv2[j] = f1, f2
		resK += r.wgk[j] * (f1 + f2)
		resG += r.wg[j] * (f1 + f2)
		resAbs += r.wgk[j] * (math.Abs(f1) + math.Abs(f2))
	}

	mean := 0.5 * resK
	resAsc := r.wgk[n] * math.Abs(fc-mean)
	for j := 0; j < n; j++ {
		resAsc += r.wgk[j] * (math.Abs(fv1[j]-mean) + math.Abs(fv2[j]-mean))
	}

	value := resK * half
	resAbs *= absHalf
	resAsc *= absHalf
	abserr := math.Abs((resK - resG) * half)

	if resAsc != 0 && abserr != 0 {
		abserr = resAsc * math.Min(1, math.Pow(200*abserr/resAsc, 1.5))
	}
	if resAbs > uflow/(50*epsilon) {
		abserr = math.Max(50*epsilon*resAbs, abserr)
	}

	return segment{a: a, b: b, value: value, abserr: abserr, resabs: resAbs, resasc: resAsc}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
