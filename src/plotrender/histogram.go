package plotrender

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/mmoraschini/annoplot/src/annotate"
)

// Histogram bins the given values, renders the bins as a step outline, and
// returns a plot whose annotatable content is the bin centers vs counts.
// Every bin gets an implicit label of the form "edges: a, b\ncount: n" so
// clicking a bar reports its extent and population.
func Histogram(values []float64, bins int, opts Options) (*Plot, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("render histogram: no values")
	}
	if bins <= 0 {
		bins = 10
	}
	edges, counts := binValues(values, bins)

	centers := make([]float64, bins)
	labels := make([]string, bins)
	maxCount := 0.0
	for i := 0; i < bins; i++ {
		centers[i] = (edges[i] + edges[i+1]) / 2
		labels[i] = fmt.Sprintf("edges: %.4f, %.4f\ncount: %.0f", edges[i], edges[i+1], counts[i])
		if counts[i] > maxCount {
			maxCount = counts[i]
		}
	}

	// Step outline: up the left edge of each bar, across, down the right.
	outlineX := make([]float64, 0, bins*2+2)
	outlineY := make([]float64, 0, bins*2+2)
	outlineX = append(outlineX, edges[0])
	outlineY = append(outlineY, 0)
	for i := 0; i < bins; i++ {
		outlineX = append(outlineX, edges[i], edges[i+1])
		outlineY = append(outlineY, counts[i], counts[i])
	}
	outlineX = append(outlineX, edges[bins])
	outlineY = append(outlineY, 0)

	w, h := opts.size()
	nMinX, nMaxX := niceAxisBounds(edges[0], edges[bins])
	_, nMaxY := niceAxisBounds(0, math.Max(maxCount, 1))

	ch := chart.Chart{
		Title:      opts.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: padTopPx, Left: padLeftPx, Right: padRightPx, Bottom: padBottomPx}},
		XAxis:      chart.XAxis{Name: opts.XName, Range: &chart.ContinuousRange{Min: nMinX, Max: nMaxX}},
		YAxis:      chart.YAxis{Name: opts.YName, Range: &chart.ContinuousRange{Min: 0, Max: nMaxY}, Ticks: niceTicks(0, nMaxY, 6)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    opts.seriesName(0),
				XValues: outlineX,
				YValues: outlineY,
				Style:   lineStyle(opts.seriesColor(0)),
			},
		},
	}

	img, err := renderToImage(ch)
	if err != nil {
		return nil, err
	}
	return &Plot{
		Image: img,
		Geom: Geom{
			Width:     w,
			Height:    h,
			PadLeft:   padLeftPx + axisLeftGutterPx,
			PadRight:  padRightPx + axisRightGutterPx,
			PadTop:    padTopPx,
			PadBottom: padBottomPx + axisBottomGutterPx,
			View:      annotate.View{XMin: nMinX, XMax: nMaxX, YMin: 0, YMax: nMaxY},
		},
		Content: annotate.PatchContent(annotate.Series{X: centers, Y: counts}),
		Labels:  annotate.AxisLabels{labels},
	}, nil
}

// binValues splits values into equal-width bins over [min, max], returning
// bins+1 edges and the per-bin counts. The final edge is inclusive so the
// maximum lands in the last bin.
func binValues(values []float64, bins int) (edges []float64, counts []float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	if max <= min {
		max = min + 1
	}
	width := (max - min) / float64(bins)
	edges = make([]float64, bins+1)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	edges[bins] = max
	counts = make([]float64, bins)
	for _, v := range values {
		i := int((v - min) / width)
		if i >= bins {
			i = bins - 1
		}
		if i < 0 {
			i = 0
		}
		counts[i]++
	}
	return edges, counts
}
