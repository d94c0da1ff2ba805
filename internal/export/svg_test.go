package export

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/thermokit/internal/errors"
)

func TestCurveToSVG(t *testing.T) {
	svg, err := CurveToSVG([]float64{0, 1, 2}, []float64{0, 1, 4}, 200, 100, "#00ff00", false)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(svg, `<?xml`))
	assert.Contains(t, svg, `width="200" height="100"`)
	assert.Contains(t, svg, `stroke="#00ff00"`)
	assert.Equal(t, 1, strings.Count(svg, "M"))
	assert.Equal(t, 2, strings.Count(svg, "L"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
}

func TestCurveToSVG_LogAxis(t *testing.T) {
	lin, err := CurveToSVG([]float64{1, 10, 100}, []float64{1, 2, 3}, 100, 100, "red", false)
	require.NoError(t, err)
	log, err := CurveToSVG([]float64{1, 10, 100}, []float64{1, 2, 3}, 100, 100, "red", true)
	require.NoError(t, err)
	assert.NotEqual(t, lin, log)
	// evenly spaced in log10, so the middle point sits at the centre
	assert.Contains(t, log, "L50.0,50.0")

	_, err = CurveToSVG([]float64{0, 1}, []float64{1, 2}, 100, 100, "red", true)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestCurveToSVG_BreaksOnNonFinite(t *testing.T) {
	svg, err := CurveToSVG([]float64{0, 1, 2, 3}, []float64{1, math.NaN(), 2, 3}, 100, 100, "red", false)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(svg, "M"))
}

func TestCurveToSVG_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []float64
		w, h   int
	}{
		{"mismatch", []float64{1, 2}, []float64{1}, 10, 10},
		{"single point", []float64{1}, []float64{1}, 10, 10},
		{"zero size", []float64{1, 2}, []float64{1, 2}, 0, 10},
		{"all nan", []float64{1, 2}, []float64{math.NaN(), math.NaN()}, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CurveToSVG(tt.xs, tt.ys, tt.w, tt.h, "red", false)
			assert.True(t, errors.Is(err, errors.ErrInvalidInput))
		})
	}
}
