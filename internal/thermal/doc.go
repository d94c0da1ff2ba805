// Package thermal computes equilibrium thermodynamic quantities of a single
// particle species in a plasma.
//
// Each density is a dimensionless integral over z = E/T from x = m/T to
// infinity, rescaled to physical units by g*Tⁿ:
//
//   - [NumberDensityIntegrand], [EnergyDensityIntegrand],
//     [PressureDensityIntegrand], [EntropyDensityIntegrand]: pure integrands
//     of (z, x, η)
//   - [Quantity]: integrand, normalisation and temperature power of a density
//   - [Calculator]: scaled and physical-unit densities, g_eff and h_eff
//   - [Particle]: immutable (mass, degeneracy, spin2) bound to a Calculator
//
// # Statistics
//
// Even spin2 selects Bose-Einstein statistics (η = +1, denominator eᶻ - 1),
// odd spin2 selects Fermi-Dirac statistics (η = -1, denominator eᶻ + 1).
//
// # Example
//
//	electron, _ := thermal.NewParticle(0.511e-3, 4, 1)
//	n, err := electron.Neq(1e-3)
//
// # Thread Safety
//
// Calculator and Particle are immutable and safe for concurrent use.
// [Default] builds the shared Calculator once.
package thermal
