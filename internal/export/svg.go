package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/thermokit/internal/errors"
)

const padding = 0.05

// CurveToSVG draws ys against xs as a single polyline. With logX the
// horizontal axis is log10(x). Non-finite ys break the line.
func CurveToSVG(xs, ys []float64, width, height int, strokeColor string, logX bool) (string, error) {
	if len(xs) != len(ys) {
		return "", errors.InvalidInputf("export: %d x values but %d y values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return "", errors.InvalidInputf("export: need at least 2 points, got %d", len(xs))
	}
	if width <= 0 || height <= 0 {
		return "", errors.InvalidInputf("export: invalid size %dx%d", width, height)
	}

	px := make([]float64, len(xs))
	for i, x := range xs {
		if logX {
			if !(x > 0) {
				return "", errors.InvalidInputf("export: x[%d]=%g cannot go on a log axis", i, x)
			}
			x = math.Log10(x)
		}
		px[i] = x
	}

	minX, maxX := bounds(px)
	minY, maxY := bounds(ys)
	if math.IsInf(minY, 1) {
		return "", errors.InvalidInputf("export: no finite y values")
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * padding
	minY -= rangeY * padding
	rangeX *= 1 + 2*padding
	rangeY *= 1 + 2*padding

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="`,
		width, height, width, height, strokeColor))

	pen := "M"
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			pen = "M"
			continue
		}
		sx := (px[i] - minX) / rangeX * float64(width)
		sy := float64(height) - (y-minY)/rangeY*float64(height)
		if pen == "L" {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%s%.1f,%.1f", pen, sx, sy))
		pen = "L"
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String(), nil
}

// bounds ignores non-finite values; with none it returns (+Inf, -Inf).
func bounds(vs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
