package thermal

import (
	"math"
	"sync"

	"github.com/san-kum/thermokit/internal/errors"
	"github.com/san-kum/thermokit/internal/quadrature"
	"go.uber.org/zap"
)

const (
	// geffFactor converts a scaled energy density into g_eff: 30/π².
	geffFactor = 30 / (math.Pi * math.Pi)
	// heffFactor converts a scaled entropy density into h_eff: 45/(2π²).
	heffFactor = 45 / (2 * math.Pi * math.Pi)
)

// DefaultQuadrature is the fixed integration setting for thermal integrals:
// purely relative tolerance 1e-8 with the 21-point Gauss-Kronrod rule.
func DefaultQuadrature() quadrature.Config {
	return quadrature.Config{
		AbsTol: 0,
		RelTol: 1e-8,
		Rule:   quadrature.GK21,
		Limit:  quadrature.DefaultLimit,
	}
}

type Calculator struct {
	integrator *quadrature.Integrator
	logger     *zap.Logger
}

type Option func(*Calculator)

func WithLogger(l *zap.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

func New(cfg quadrature.Config, opts ...Option) (*Calculator, error) {
	in, err := quadrature.New(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "thermal: quadrature config")
	}
	c := &Calculator{integrator: in, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var defaultCalculator = sync.OnceValues(func() (*Calculator, error) {
	return New(DefaultQuadrature())
})

// Default returns the process-wide Calculator built from DefaultQuadrature.
func Default() *Calculator {
	c, err := defaultCalculator()
	if err != nil {
		// DefaultQuadrature is a constant valid config.
		panic(err)
	}
	return c
}

func (c *Calculator) QuadratureConfig() quadrature.Config {
	return c.integrator.Config()
}

// Scaled evaluates the dimensionless density q at x = m/T.
func (c *Calculator) Scaled(q Quantity, x float64, spin2 int) (float64, error) {
	spec, ok := quantities[q]
	if !ok {
		return 0, errors.InvalidInputf("thermal: unknown quantity %d", int(q))
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return 0, errors.InvalidInputf("thermal: x = m/T must be finite and non-negative, got %g", x)
	}
	stats, err := StatisticsOf(spin2)
	if err != nil {
		return 0, err
	}

	eta := stats.Eta()
	res, err := c.integrator.Integrate(func(z float64) float64 {
		return spec.integrand(z, x, eta)
	}, x, math.Inf(1))
	if err != nil {
		c.logger.Debug("thermal integral did not converge",
			zap.String("quantity", spec.name),
			zap.Float64("x", x),
			zap.Int("spin2", spin2),
			zap.Error(err),
		)
		return 0, errors.Wrapf(err, "thermal: %s at x=%g, spin2=%d", spec.name, x, spin2)
	}

	return res.Value / spec.norm, nil
}

// Physical evaluates q in physical units: g*Tⁿ*Scaled(q, m/T).
func (c *Calculator) Physical(q Quantity, temperature, mass, degeneracy float64, spin2 int) (float64, error) {
	x, err := reduced(temperature, mass, degeneracy)
	if err != nil {
		return 0, err
	}
	scaled, err := c.Scaled(q, x, spin2)
	if err != nil {
		return 0, err
	}
	return degeneracy * math.Pow(temperature, q.Power()) * scaled, nil
}

func reduced(temperature, mass, degeneracy float64) (float64, error) {
	if math.IsNaN(temperature) || math.IsInf(temperature, 0) || temperature <= 0 {
		return 0, errors.InvalidInputf("thermal: temperature must be finite and positive, got %g", temperature)
	}
	if math.IsNaN(mass) || math.IsInf(mass, 0) || mass < 0 {
		return 0, errors.InvalidInputf("thermal: mass must be finite and non-negative, got %g", mass)
	}
	if math.IsNaN(degeneracy) || math.IsInf(degeneracy, 0) || degeneracy <= 0 {
		return 0, errors.InvalidInputf("thermal: degeneracy must be finite and positive, got %g", degeneracy)
	}
	x := mass / temperature
	if math.IsInf(x, 0) {
		return 0, errors.InvalidInputf("thermal: m/T overflows (m=%g, T=%g)", mass, temperature)
	}
	return x, nil
}

func (c *Calculator) NeqScaled(x float64, spin2 int) (float64, error) {
	return c.Scaled(NumberDensity, x, spin2)
}

func (c *Calculator) EnergyDensityScaled(x float64, spin2 int) (float64, error) {
	return c.Scaled(EnergyDensity, x, spin2)
}

func (c *Calculator) PressureDensityScaled(x float64, spin2 int) (float64, error) {
	return c.Scaled(PressureDensity, x, spin2)
}

func (c *Calculator) EntropyDensityScaled(x float64, spin2 int) (float64, error) {
	return c.Scaled(EntropyDensity, x, spin2)
}

// Neq is the equilibrium number density g*T³*n(m/T).
func (c *Calculator) Neq(temperature, mass, degeneracy float64, spin2 int) (float64, error) {
	return c.Physical(NumberDensity, temperature, mass, degeneracy, spin2)
}

func (c *Calculator) EnergyDensity(temperature, mass, degeneracy float64, spin2 int) (float64, error) {
	return c.Physical(EnergyDensity, temperature, mass, degeneracy, spin2)
}

func (c *Calculator) PressureDensity(temperature, mass, degeneracy float64, spin2 int) (float64, error) {
	return c.Physical(PressureDensity, temperature, mass, degeneracy, spin2)
}

func (c *Calculator) EntropyDensity(temperature, mass, degeneracy float64, spin2 int) (float64, error) {
	return c.Physical(EntropyDensity, temperature, mass, degeneracy, spin2)
}

// GEff is the species' contribution to the effective degrees of freedom in
// energy, 30/π² * g * ρ(m/T). It tends to g for a massless boson and 7g/8
// for a massless fermion.
func (c *Calculator) GEff(temperature, mass, degeneracy float64, spin2 int) (float64, error) {
	x, err := reduced(temperature, mass, degeneracy)
	if err != nil {
		return 0, err
	}
	rho, err := c.EnergyDensityScaled(x, spin2)
	if err != nil {
		return 0, err
	}
	return geffFactor * degeneracy * rho, nil
}

// HEff is the species' contribution to the effective degrees of freedom in
// entropy, 45/(2π²) * g * s(m/T).
func (c *Calculator) HEff(temperature, mass, degeneracy float64, spin2 int) (float64, error) {
	x, err := reduced(temperature, mass, degeneracy)
	if err != nil {
		return 0, err
	}
	s, err := c.EntropyDensityScaled(x, spin2)
	if err != nil {
		return 0, err
	}
	return heffFactor * degeneracy * s, nil
}
