package thermal

import (
	"math"

	"github.com/san-kum/thermokit/internal/errors"
)

// Particle is an immutable species description. Every accessor is a pure
// function of the temperature passed in.
type Particle struct {
	mass       float64
	degeneracy float64
	spin2      int
	calc       *Calculator
}

type ParticleOption func(*Particle)

// WithCalculator evaluates the particle with c instead of Default().
func WithCalculator(c *Calculator) ParticleOption {
	return func(p *Particle) {
		p.calc = c
	}
}

func NewParticle(mass, degeneracy float64, spin2 int, opts ...ParticleOption) (Particle, error) {
	if math.IsNaN(mass) || math.IsInf(mass, 0) || mass < 0 {
		return Particle{}, errors.InvalidInputf("thermal: mass must be finite and non-negative, got %g", mass)
	}
	if math.IsNaN(degeneracy) || math.IsInf(degeneracy, 0) || degeneracy <= 0 {
		return Particle{}, errors.InvalidInputf("thermal: degeneracy must be finite and positive, got %g", degeneracy)
	}
	if _, err := StatisticsOf(spin2); err != nil {
		return Particle{}, err
	}

	p := Particle{mass: mass, degeneracy: degeneracy, spin2: spin2}
	for _, opt := range opts {
		opt(&p)
	}
	return p, nil
}

func (p Particle) Mass() float64       { return p.mass }
func (p Particle) Degeneracy() float64 { return p.degeneracy }
func (p Particle) Spin2() int          { return p.spin2 }

func (p Particle) Statistics() Statistics {
	s, _ := StatisticsOf(p.spin2)
	return s
}

func (p Particle) calculator() *Calculator {
	if p.calc != nil {
		return p.calc
	}
	return Default()
}

func (p Particle) Neq(temperature float64) (float64, error) {
	return p.calculator().Neq(temperature, p.mass, p.degeneracy, p.spin2)
}

func (p Particle) EnergyDensity(temperature float64) (float64, error) {
	return p.calculator().EnergyDensity(temperature, p.mass, p.degeneracy, p.spin2)
}

func (p Particle) PressureDensity(temperature float64) (float64, error) {
	return p.calculator().PressureDensity(temperature, p.mass, p.degeneracy, p.spin2)
}

func (p Particle) EntropyDensity(temperature float64) (float64, error) {
	return p.calculator().EntropyDensity(temperature, p.mass, p.degeneracy, p.spin2)
}

func (p Particle) GEff(temperature float64) (float64, error) {
	return p.calculator().GEff(temperature, p.mass, p.degeneracy, p.spin2)
}

// HEff uses the entropy density, not the energy density.
func (p Particle) HEff(temperature float64) (float64, error) {
	return p.calculator().HEff(temperature, p.mass, p.degeneracy, p.spin2)
}
