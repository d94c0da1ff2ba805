package thermal

import "math"

// Integrand is a dimensionless thermal integrand of z >= x.
type Integrand func(z, x, eta float64) float64

// tailCutoff is -ln of the smallest normal float64; past it e⁻ᶻ is subnormal.
const tailCutoff = 708

// occupation returns e⁻ᶻ/(1 - η e⁻ᶻ) = 1/(eᶻ - η). It is 0 once e⁻ᶻ leaves
// the normal range, so polynomial prefactors never meet an infinite
// denominator and the quadrature never sees subnormal noise.
func occupation(z, eta float64) float64 {
	if z > tailCutoff || math.IsNaN(z) {
		return 0
	}
	w := math.Exp(-z)
	if eta > 0 {
		return w / -math.Expm1(-z)
	}
	return w / (1 - eta*w)
}

// kinematics returns √(z²-x²) and the occupation, or zeros where the
// integrand vanishes (at threshold z <= x and in the far tail).
func kinematics(z, x, eta float64) (p, occ float64) {
	d := z*z - x*x
	if d <= 0 {
		return 0, 0
	}
	occ = occupation(z, eta)
	if occ == 0 {
		return 0, 0
	}
	return math.Sqrt(d), occ
}

// NumberDensityIntegrand is z·√(z²-x²)/(eᶻ - η).
func NumberDensityIntegrand(z, x, eta float64) float64 {
	p, occ := kinematics(z, x, eta)
	if occ == 0 {
		return 0
	}
	return z * p * occ
}

// EnergyDensityIntegrand is z²·√(z²-x²)/(eᶻ - η).
func EnergyDensityIntegrand(z, x, eta float64) float64 {
	p, occ := kinematics(z, x, eta)
	if occ == 0 {
		return 0
	}
	return z * z * p * occ
}

// PressureDensityIntegrand is (z²-x²)^1.5/(eᶻ - η).
func PressureDensityIntegrand(z, x, eta float64) float64 {
	p, occ := kinematics(z, x, eta)
	if occ == 0 {
		return 0
	}
	return p * p * p * occ
}

// EntropyDensityIntegrand is (4z²-x²)·√(z²-x²)/(eᶻ - η).
func EntropyDensityIntegrand(z, x, eta float64) float64 {
	p, occ := kinematics(z, x, eta)
	if occ == 0 {
		return 0
	}
	return (4*z*z - x*x) * p * occ
}
