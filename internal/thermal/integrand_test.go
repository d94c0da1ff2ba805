package thermal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatisticsOf(t *testing.T) {
	tests := []struct {
		spin2 int
		stats Statistics
		eta   float64
	}{
		{0, BoseEinstein, 1},
		{1, FermiDirac, -1},
		{2, BoseEinstein, 1},
		{3, FermiDirac, -1},
		{4, BoseEinstein, 1},
	}

	for _, tt := range tests {
		s, err := StatisticsOf(tt.spin2)
		assert.NoError(t, err)
		assert.Equal(t, tt.stats, s, "spin2=%d", tt.spin2)
		assert.Equal(t, tt.eta, s.Eta(), "spin2=%d", tt.spin2)
	}

	_, err := StatisticsOf(-1)
	assert.Error(t, err)
}

func TestIntegrandsMatchClosedForm(t *testing.T) {
	points := []struct{ z, x, eta float64 }{
		{0.5, 0, 1},
		{1.5, 1, 1},
		{3, 2, -1},
		{10, 0.3, -1},
		{25, 20, 1},
	}

	for _, p := range points {
		p2 := math.Sqrt(p.z*p.z - p.x*p.x)
		den := math.Exp(p.z) - p.eta

		assert.InEpsilon(t, p.z*p2/den, NumberDensityIntegrand(p.z, p.x, p.eta), 1e-12)
		assert.InEpsilon(t, p.z*p.z*p2/den, EnergyDensityIntegrand(p.z, p.x, p.eta), 1e-12)
		assert.InEpsilon(t, math.Pow(p.z*p.z-p.x*p.x, 1.5)/den, PressureDensityIntegrand(p.z, p.x, p.eta), 1e-12)
		assert.InEpsilon(t, (4*p.z*p.z-p.x*p.x)*p2/den, EntropyDensityIntegrand(p.z, p.x, p.eta), 1e-12)
	}
}

func TestIntegrandsVanishAtThresholdAndTail(t *testing.T) {
	for _, q := range Quantities() {
		f := q.Integrand()
		for _, eta := range []float64{1, -1} {
			assert.Equal(t, 0.0, f(0, 0, eta), "%s at z=0", q)
			assert.Equal(t, 0.0, f(2, 2, eta), "%s at threshold", q)
			assert.Equal(t, 0.0, f(1e4, 1, eta), "%s in tail", q)
			assert.Equal(t, 0.0, f(1e300, 1, eta), "%s far tail", q)
			assert.Equal(t, 0.0, f(math.Inf(1), 1, eta), "%s at infinity", q)
		}
	}
}

func TestBoseExceedsFermi(t *testing.T) {
	for _, q := range Quantities() {
		f := q.Integrand()
		assert.Greater(t, f(1.2, 1, 1), f(1.2, 1, -1), q.String())
	}
}

func TestQuantitySpec(t *testing.T) {
	assert.Equal(t, 3.0, NumberDensity.Power())
	assert.Equal(t, 4.0, EnergyDensity.Power())
	assert.Equal(t, 4.0, PressureDensity.Power())
	assert.Equal(t, 3.0, EntropyDensity.Power())

	assert.InDelta(t, 2*math.Pi*math.Pi, NumberDensity.Normalization(), 1e-12)
	assert.InDelta(t, 2*math.Pi*math.Pi, EnergyDensity.Normalization(), 1e-12)
	assert.InDelta(t, 6*math.Pi*math.Pi, PressureDensity.Normalization(), 1e-12)
	assert.InDelta(t, 6*math.Pi*math.Pi, EntropyDensity.Normalization(), 1e-12)

	assert.Equal(t, "unknown", Quantity(42).String())
}
