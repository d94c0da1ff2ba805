package quadrature

import (
	"math"
	"testing"

	"github.com/san-kum/thermokit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefault(t *testing.T) *Integrator {
	t.Helper()
	in, err := New(DefaultConfig())
	require.NoError(t, err)
	return in
}

func TestIntegrate_Finite(t *testing.T) {
	in := newDefault(t)

	res, err := in.Integrate(func(x float64) float64 { return x * x }, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, res.Value, 1e-14)
	assert.Equal(t, 1, res.Intervals)
	assert.Equal(t, 21, res.Evaluations)
}

func TestIntegrate_InfiniteBounds(t *testing.T) {
	in := newDefault(t)

	tests := []struct {
		name     string
		f        func(float64) float64
		a, b     float64
		expected float64
	}{
		{"upper", func(x float64) float64 { return math.Exp(-x) }, 0, math.Inf(1), 1},
		{"shifted upper", func(x float64) float64 { return math.Exp(-x) }, 2, math.Inf(1), math.Exp(-2)},
		{"lower", func(x float64) float64 { return math.Exp(x) }, math.Inf(-1), 0, 1},
		{"both", func(x float64) float64 { return math.Exp(-x * x) }, math.Inf(-1), math.Inf(1), math.Sqrt(math.Pi)},
		{"lorentzian", func(x float64) float64 { return 1 / (1 + x*x) }, 0, math.Inf(1), math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := in.Integrate(tt.f, tt.a, tt.b)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.expected, res.Value, 1e-8)
			assert.LessOrEqual(t, res.AbsErr, 1e-8*math.Abs(res.Value))
		})
	}
}

func TestIntegrate_BoseIntegralAllRules(t *testing.T) {
	// ∫ x³/(eˣ-1) dx over [0, ∞) = π⁴/15
	f := func(x float64) float64 {
		if x == 0 {
			return 0
		}
		return x * x * x / math.Expm1(x)
	}
	expected := math.Pow(math.Pi, 4) / 15

	for _, r := range []Rule{GK15, GK21, GK31, GK41, GK51, GK61} {
		cfg := DefaultConfig()
		cfg.Rule = r
		in, err := New(cfg)
		require.NoError(t, err)

		res, err := in.Integrate(f, 0, math.Inf(1))
		require.NoError(t, err, "rule GK%d", int(r))
		assert.InEpsilon(t, expected, res.Value, 1e-8, "rule GK%d", int(r))
	}
}

func TestIntegrate_ReversedAndEmpty(t *testing.T) {
	in := newDefault(t)
	f := func(x float64) float64 { return math.Cos(x) }

	res, err := in.Integrate(f, math.Pi/2, 0)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, res.Value, 1e-12)

	res, err = in.Integrate(f, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Value)
}

func TestIntegrate_ZeroIntegrand(t *testing.T) {
	in := newDefault(t)

	res, err := in.Integrate(func(float64) float64 { return 0 }, 3, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Value)
	assert.Equal(t, 0.0, res.AbsErr)
}

func TestIntegrate_MaxSubdivisions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Limit = 3
	in, err := New(cfg)
	require.NoError(t, err)

	_, err = in.Integrate(func(x float64) float64 { return 1 / math.Sqrt(x) }, 0, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMaxSubdivisions))
	assert.True(t, errors.Is(err, errors.ErrIntegrationFailure))

	var qerr *Error
	require.True(t, errors.As(err, &qerr))
	assert.Equal(t, 3, qerr.Intervals)
	assert.Greater(t, qerr.AbsErr, 0.0)
}

func TestIntegrate_SingleInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Limit = 1
	in, err := New(cfg)
	require.NoError(t, err)

	_, err = in.Integrate(func(x float64) float64 { return 1 / math.Sqrt(x) }, 0, 1)
	assert.True(t, errors.Is(err, ErrMaxSubdivisions))
}

func TestIntegrate_NaN(t *testing.T) {
	in := newDefault(t)

	_, err := in.Integrate(func(float64) float64 { return math.NaN() }, 0, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadIntegrand))
	assert.True(t, errors.Is(err, errors.ErrIntegrationFailure))

	_, err = in.Integrate(math.Exp, math.NaN(), 1)
	assert.True(t, errors.Is(err, ErrBadIntegrand))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative abs", Config{AbsTol: -1, RelTol: 1e-8, Rule: GK21, Limit: 10}},
		{"negative rel", Config{AbsTol: 0, RelTol: -1e-8, Rule: GK21, Limit: 10}},
		{"zero tolerances", Config{AbsTol: 0, RelTol: 0, Rule: GK21, Limit: 10}},
		{"rel below roundoff", Config{AbsTol: 0, RelTol: 1e-16, Rule: GK21, Limit: 10}},
		{"zero limit", Config{AbsTol: 0, RelTol: 1e-8, Rule: GK21, Limit: 0}},
		{"unknown rule", Config{AbsTol: 0, RelTol: 1e-8, Rule: Rule(17), Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidInput))
		})
	}

	_, err := New(Config{AbsTol: 1e-12, RelTol: 0, Rule: GK15, Limit: 1})
	assert.NoError(t, err)
}

func TestRuleForKey(t *testing.T) {
	r, err := RuleForKey(2)
	require.NoError(t, err)
	assert.Equal(t, GK21, r)

	r, err = RuleForKey(6)
	require.NoError(t, err)
	assert.Equal(t, GK61, r)

	_, err = RuleForKey(0)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	_, err = RuleForKey(7)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestRulesIntegrateOne(t *testing.T) {
	// Kronrod weights sum to 2 on [-1, 1]; so do the embedded Gauss weights.
	for r, rl := range rules {
		n := len(rl.xgk) - 1
		k, g := rl.wgk[n], rl.wg[n]
		for j := 0; j < n; j++ {
			k += 2 * rl.wgk[j]
			g += 2 * rl.wg[j]
		}
		assert.InDelta(t, 2.0, k, 1e-14, "kronrod GK%d", int(r))
		assert.InDelta(t, 2.0, g, 1e-14, "gauss GK%d", int(r))
	}
}

func TestIntegratorConfig(t *testing.T) {
	cfg := Config{AbsTol: 1e-10, RelTol: 1e-6, Rule: GK41, Limit: 50}
	in, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg, in.Config())
}
