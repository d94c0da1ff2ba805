package bath

import (
	"math"

	"github.com/san-kum/thermokit/internal/errors"
)

const (
	smLogTemperatureMin = -4.5
	smLogTemperatureMax = 4.0
	smGridPoints        = 341
)

// Asymptotes are the values used at and beyond the ends of the grid.
type Asymptotes struct {
	GEffFront      float64
	GEffBack       float64
	HEffFront      float64
	HEffBack       float64
	SqrtGStarFront float64
	SqrtGStarBack  float64
}

func (a Asymptotes) validate() error {
	for name, v := range map[string]float64{
		"g_eff front": a.GEffFront, "g_eff back": a.GEffBack,
		"h_eff front": a.HEffFront, "h_eff back": a.HEffBack,
		"sqrt(g*) front": a.SqrtGStarFront, "sqrt(g*) back": a.SqrtGStarBack,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.InvalidInputf("bath: %s asymptote is not finite", name)
		}
	}
	return nil
}

// Dataset holds the three tables aligned with LogTemperature.
type Dataset struct {
	LogTemperature []float64
	SqrtGStar      []float64
	HEff           []float64
	GEff           []float64
	Asymptotes     Asymptotes
}

// Linspace returns n evenly spaced values over [lo, hi], end points included.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}

// LogTemperatureGrid returns the Standard Model grid: 341 points over
// log10(T/GeV) in [-4.5, 4.0].
func LogTemperatureGrid() []float64 {
	return Linspace(smLogTemperatureMin, smLogTemperatureMax, smGridPoints)
}

// StandardModelAsymptotes are the g_eff, h_eff and √g* limits below
// T = 10^-4.5 GeV and above T = 10^4 GeV.
var StandardModelAsymptotes = Asymptotes{
	GEffFront:      3.3839699989395835,
	GEffBack:       106.83,
	HEffFront:      3.9387999991430975,
	HEffBack:       106.83,
	SqrtGStarFront: 2.141289997868463,
	SqrtGStarBack:  10.3359,
}

// StandardModelDataset returns a copy of the Standard Model tables.
func StandardModelDataset() Dataset {
	return Dataset{
		LogTemperature: LogTemperatureGrid(),
		SqrtGStar:      append([]float64(nil), smSqrtGStarData...),
		HEff:           append([]float64(nil), smHEffData...),
		GEff:           append([]float64(nil), smGEffData...),
		Asymptotes:     StandardModelAsymptotes,
	}
}
