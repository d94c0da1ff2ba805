package bath

import (
	"math"

	"github.com/san-kum/thermokit/internal/errors"
	"github.com/san-kum/thermokit/internal/spline"
	"go.uber.org/zap"
)

const (
	energyFactor  = math.Pi * math.Pi / 30
	entropyFactor = 2 * math.Pi * math.Pi / 45
)

type region int

const (
	front region = iota
	interior
	back
)

// curve is one tabulated quantity with its two asymptotes.
type curve struct {
	name        string
	fit         *spline.Interpolant
	front, back float64
}

type Bath struct {
	lo, hi        float64
	extrapolation spline.Extrapolation
	geff          curve
	heff          curve
	sqrtGStar     curve
}

type options struct {
	extrapolation spline.Extrapolation
	logger        *zap.Logger
}

type Option func(*options)

// WithExtrapolation sets the extrapolation mode shared by all three
// interpolants. The default is spline.Const.
func WithExtrapolation(e spline.Extrapolation) Option {
	return func(o *options) {
		o.extrapolation = e
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New builds the three interpolants of ds (degree 3, no smoothing).
func New(ds Dataset, opts ...Option) (*Bath, error) {
	o := options{extrapolation: spline.Const, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := ds.Asymptotes.validate(); err != nil {
		return nil, err
	}

	splineOpts := spline.Options{
		Degree:        spline.SupportedDegree,
		Smoothing:     0,
		Extrapolation: o.extrapolation,
	}

	build := func(name string, ys []float64, frontValue, backValue float64) (curve, error) {
		fit, err := spline.Build(ds.LogTemperature, ys, splineOpts)
		if err != nil {
			return curve{}, errors.Wrapf(err, "bath: %s table", name)
		}
		return curve{name: name, fit: fit, front: frontValue, back: backValue}, nil
	}

	a := ds.Asymptotes
	geff, err := build("g_eff", ds.GEff, a.GEffFront, a.GEffBack)
	if err != nil {
		return nil, err
	}
	heff, err := build("h_eff", ds.HEff, a.HEffFront, a.HEffBack)
	if err != nil {
		return nil, err
	}
	sqrtGStar, err := build("sqrt(g*)", ds.SqrtGStar, a.SqrtGStarFront, a.SqrtGStarBack)
	if err != nil {
		return nil, err
	}

	lo, hi := geff.fit.Domain()
	o.logger.Debug("bath interpolants built",
		zap.Int("points", len(ds.LogTemperature)),
		zap.Float64("log_t_min", lo),
		zap.Float64("log_t_max", hi),
		zap.Stringer("extrapolation", o.extrapolation),
	)

	return &Bath{
		lo:            lo,
		hi:            hi,
		extrapolation: o.extrapolation,
		geff:          geff,
		heff:          heff,
		sqrtGStar:     sqrtGStar,
	}, nil
}

// Window returns the log10(T) range served by the interpolants.
func (b *Bath) Window() (lo, hi float64) {
	return b.lo, b.hi
}

func (b *Bath) Extrapolation() spline.Extrapolation {
	return b.extrapolation
}

func (b *Bath) locate(temperature float64) (float64, region, error) {
	if math.IsNaN(temperature) || math.IsInf(temperature, 1) || temperature < 0 {
		return 0, 0, errors.InvalidInputf("bath: temperature must be finite and non-negative, got %g", temperature)
	}
	L := math.Log10(temperature)
	switch {
	case L <= b.lo:
		return L, front, nil
	case L >= b.hi:
		return L, back, nil
	default:
		return L, interior, nil
	}
}

func (b *Bath) value(c *curve, temperature float64) (float64, error) {
	L, r, err := b.locate(temperature)
	if err != nil {
		return 0, err
	}
	switch r {
	case front:
		return c.front, nil
	case back:
		return c.back, nil
	default:
		return c.fit.Eval(L), nil
	}
}

func (b *Bath) derivative(c *curve, temperature float64) (float64, error) {
	L, r, err := b.locate(temperature)
	if err != nil {
		return 0, err
	}
	if r != interior {
		return 0, nil
	}
	dL, err := c.fit.Derivative(1, L)
	if err != nil {
		return 0, errors.Wrapf(err, "bath: %s derivative", c.name)
	}
	return dL / (temperature * math.Ln10), nil
}

// GEff is the effective number of degrees of freedom in energy.
func (b *Bath) GEff(temperature float64) (float64, error) {
	return b.value(&b.geff, temperature)
}

// HEff is the effective number of degrees of freedom in entropy.
func (b *Bath) HEff(temperature float64) (float64, error) {
	return b.value(&b.heff, temperature)
}

// SqrtGStar is √g*, read from its own table.
func (b *Bath) SqrtGStar(temperature float64) (float64, error) {
	return b.value(&b.sqrtGStar, temperature)
}

// GEffDeriv is dg_eff/dT; 0 outside the grid.
func (b *Bath) GEffDeriv(temperature float64) (float64, error) {
	return b.derivative(&b.geff, temperature)
}

// HEffDeriv is dh_eff/dT; 0 outside the grid.
func (b *Bath) HEffDeriv(temperature float64) (float64, error) {
	return b.derivative(&b.heff, temperature)
}

func (b *Bath) EnergyDensity(temperature float64) (float64, error) {
	g, err := b.GEff(temperature)
	if err != nil {
		return 0, err
	}
	t2 := temperature * temperature
	return energyFactor * g * t2 * t2, nil
}

// EnergyDensityDeriv is π²/30 T³ (T dg_eff/dT + 4 g_eff).
func (b *Bath) EnergyDensityDeriv(temperature float64) (float64, error) {
	g, err := b.GEff(temperature)
	if err != nil {
		return 0, err
	}
	dg, err := b.GEffDeriv(temperature)
	if err != nil {
		return 0, err
	}
	t3 := temperature * temperature * temperature
	return energyFactor * t3 * (temperature*dg + 4*g), nil
}

func (b *Bath) EntropyDensity(temperature float64) (float64, error) {
	h, err := b.HEff(temperature)
	if err != nil {
		return 0, err
	}
	return entropyFactor * h * temperature * temperature * temperature, nil
}

// EntropyDensityDeriv is 2π²/45 T² (T dh_eff/dT + 3 h_eff).
func (b *Bath) EntropyDensityDeriv(temperature float64) (float64, error) {
	h, err := b.HEff(temperature)
	if err != nil {
		return 0, err
	}
	dh, err := b.HEffDeriv(temperature)
	if err != nil {
		return 0, err
	}
	t2 := temperature * temperature
	return entropyFactor * t2 * (temperature*dh + 3*h), nil
}
