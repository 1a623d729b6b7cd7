package plotrender

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Axis range and tick helpers for the charts in this package. Ranges are
// widened slightly beyond the data and snapped to round values; Geom maps
// pixels against the same widened view, so annotation coordinates and axis
// labels always agree.

// niceAxisBounds widens [min, max] by 5% per side and snaps both ends
// outward to the span's order of magnitude.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	lo, hi := min-pad, max+pad
	if mag := magnitude(span); mag > 0 {
		lo = math.Floor(lo/mag) * mag
		hi = math.Ceil(hi/mag) * mag
	}
	return lo, hi
}

// magnitude returns the power of ten of v, or 0 when that is undefined.
func magnitude(v float64) float64 {
	m := math.Pow(10, math.Floor(math.Log10(v)))
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return 0
	}
	return m
}

// niceTicks lays out roughly n ticks across [min, max] on a 1/2/2.5/5 step
// grid. The first tick sits at or below min, the last at or above max.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	step := tickStep(max-min, n)
	start := math.Floor(min/step) * step
	stop := math.Ceil(max/step) * step

	var ticks []chart.Tick
	for i := 0; ; i++ {
		v := start + float64(i)*step
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if v >= stop || len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

// tickStep picks the candidate step whose resulting tick count lands
// closest to want.
func tickStep(span float64, want int) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(want-1))))
	best := mag
	bestDiff := math.MaxFloat64
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		step := m * mag
		count := math.Max(2, math.Ceil(span/step))
		if d := math.Abs(count - float64(want)); d < bestDiff {
			bestDiff = d
			best = step
		}
	}
	return best
}

// formatTick prints a tick value with fewer decimals the larger it gets.
func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	prec := 2
	switch av := math.Abs(v); {
	case av >= 100:
		prec = 0
	case av >= 10:
		prec = 1
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
