package thermal

import "math"

// Quantity identifies one of the four thermal densities.
type Quantity int

const (
	NumberDensity Quantity = iota
	EnergyDensity
	PressureDensity
	EntropyDensity
)

type quantitySpec struct {
	name      string
	integrand Integrand
	norm      float64
	power     float64
}

var quantities = map[Quantity]quantitySpec{
	NumberDensity:   {"number density", NumberDensityIntegrand, 2 * math.Pi * math.Pi, 3},
	EnergyDensity:   {"energy density", EnergyDensityIntegrand, 2 * math.Pi * math.Pi, 4},
	PressureDensity: {"pressure density", PressureDensityIntegrand, 6 * math.Pi * math.Pi, 4},
	EntropyDensity:  {"entropy density", EntropyDensityIntegrand, 6 * math.Pi * math.Pi, 3},
}

func (q Quantity) String() string {
	if s, ok := quantities[q]; ok {
		return s.name
	}
	return "unknown"
}

// Integrand returns the dimensionless integrand of q.
func (q Quantity) Integrand() Integrand {
	return quantities[q].integrand
}

// Normalization is the divisor applied to the raw integral.
func (q Quantity) Normalization() float64 {
	return quantities[q].norm
}

// Power is the exponent n in the physical-unit factor g*Tⁿ.
func (q Quantity) Power() float64 {
	return quantities[q].power
}

func Quantities() []Quantity {
	return []Quantity{NumberDensity, EnergyDensity, PressureDensity, EntropyDensity}
}
