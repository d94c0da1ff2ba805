// Package tabulate evaluates particle and bath quantities over a range of
// temperatures.
package tabulate

import (
	"math"

	"github.com/san-kum/thermokit/internal/bath"
	"github.com/san-kum/thermokit/internal/errors"
	"github.com/san-kum/thermokit/internal/thermal"
)

// Table is column-major: Values[i] holds Columns[i] at every temperature.
type Table struct {
	Temperature []float64
	Columns     []string
	Values      [][]float64
}

func (t *Table) Column(name string) ([]float64, bool) {
	for i, c := range t.Columns {
		if c == name {
			return t.Values[i], true
		}
	}
	return nil, false
}

// Row returns the values at Temperature[i] in column order.
func (t *Table) Row(i int) []float64 {
	row := make([]float64, len(t.Columns))
	for j := range t.Columns {
		row[j] = t.Values[j][i]
	}
	return row
}

func (t *Table) Len() int {
	return len(t.Temperature)
}

// LogSpace returns n temperatures evenly spaced in log10 over [tmin, tmax].
func LogSpace(tmin, tmax float64, n int) ([]float64, error) {
	if !(tmin > 0) || math.IsInf(tmax, 0) || !(tmax > tmin) {
		return nil, errors.InvalidInputf("tabulate: range must satisfy 0 < tmin < tmax, got [%g, %g]", tmin, tmax)
	}
	if n < 2 {
		return nil, errors.InvalidInputf("tabulate: need at least 2 points, got %d", n)
	}
	lo, hi := math.Log10(tmin), math.Log10(tmax)
	step := (hi - lo) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Pow(10, lo+step*float64(i))
	}
	out[0], out[n-1] = tmin, tmax
	return out, nil
}

type column struct {
	name string
	eval func(float64) (float64, error)
}

func evaluate(cols []column, temps []float64) (*Table, error) {
	t := &Table{
		Temperature: append([]float64(nil), temps...),
		Columns:     make([]string, len(cols)),
		Values:      make([][]float64, len(cols)),
	}
	for j, c := range cols {
		t.Columns[j] = c.name
		t.Values[j] = make([]float64, len(temps))
		for i, T := range temps {
			v, err := c.eval(T)
			if err != nil {
				return nil, errors.Wrapf(err, "tabulate: %s at T=%g", c.name, T)
			}
			t.Values[j][i] = v
		}
	}
	return t, nil
}

var ParticleColumns = []string{
	"neq", "energy_density", "pressure_density", "entropy_density", "geff", "heff",
}

func Particle(p thermal.Particle, temps []float64) (*Table, error) {
	return evaluate([]column{
		{ParticleColumns[0], p.Neq},
		{ParticleColumns[1], p.EnergyDensity},
		{ParticleColumns[2], p.PressureDensity},
		{ParticleColumns[3], p.EntropyDensity},
		{ParticleColumns[4], p.GEff},
		{ParticleColumns[5], p.HEff},
	}, temps)
}

var BathColumns = []string{
	"geff", "heff", "sqrt_gstar", "geff_deriv", "heff_deriv",
	"energy_density", "energy_density_deriv", "entropy_density", "entropy_density_deriv",
}

func Bath(b *bath.Bath, temps []float64) (*Table, error) {
	return evaluate([]column{
		{BathColumns[0], b.GEff},
		{BathColumns[1], b.HEff},
		{BathColumns[2], b.SqrtGStar},
		{BathColumns[3], b.GEffDeriv},
		{BathColumns[4], b.HEffDeriv},
		{BathColumns[5], b.EnergyDensity},
		{BathColumns[6], b.EnergyDensityDeriv},
		{BathColumns[7], b.EntropyDensity},
		{BathColumns[8], b.EntropyDensityDeriv},
	}, temps)
}
