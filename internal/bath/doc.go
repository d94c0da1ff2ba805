// Package bath evaluates effective degrees of freedom of a thermal bath as
// continuous functions of temperature.
//
// A [Bath] is built once from a [Dataset]: three tables (√g*, h_eff, g_eff)
// over a shared ascending log10(T) grid, plus the constant values used
// outside the grid. Every quantity follows the same three-piece policy on
// L = log10(T):
//
//   - L <= first grid point: front constant
//   - inside the grid: cubic interpolant at L
//   - L >= last grid point: back constant
//
// Derivatives are taken on the interpolant and converted with
// d/dT = (d/dL)/(T ln 10); outside the grid they are exactly 0. Energy and
// entropy densities are algebraic in g_eff and h_eff:
//
//	ρ = π²/30 g_eff T⁴      s = 2π²/45 h_eff T³
//
// [StandardModel] returns the shared Standard Model bath (T in GeV), and the
// package-level functions ([GEff], [HEff], [SqrtGStar], ...) evaluate it.
//
// # Thread Safety
//
// A Bath is immutable after New and safe for concurrent use.
package bath
