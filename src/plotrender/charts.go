package plotrender

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mmoraschini/annoplot/src/annotate"
)

// Fixed layout of rendered charts in image pixels. The gutters approximate
// the space go-chart reserves for tick labels next to the padding we set
// explicitly; Geom uses the combined values for pixel/data mapping.
const (
	padTopPx    = 14
	padLeftPx   = 16
	padRightPx  = 12
	padBottomPx = 28

	axisLeftGutterPx   = 10
	axisRightGutterPx  = 46
	axisBottomGutterPx = 20
)

// Plot bundles a rendered chart image with its pixel/data geometry and the
// annotatable content that was drawn, ready to be attached to an annotation
// registry.
type Plot struct {
	Image   image.Image
	Geom    Geom
	Content annotate.Content
	// Labels holds implicit per-sample labels generated while rendering
	// (histogram bin edges/counts); nil for plots without any.
	Labels annotate.AxisLabels
}

// Options control chart rendering.
type Options struct {
	Width, Height int
	Title         string
	XName, YName  string
	// Scatter renders dots only, no connecting stroke.
	Scatter bool
	// SeriesNames feed the legend; missing entries fall back to "series N".
	SeriesNames []string
	// Colors are applied per series in order; missing entries cycle a
	// default palette.
	Colors []drawing.Color
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = 800
	}
	if h <= 0 {
		h = 500
	}
	return w, h
}

var defaultPalette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorRed,
	chart.ColorOrange,
	chart.ColorCyan,
}

func (o Options) seriesName(i int) string {
	if i < len(o.SeriesNames) && o.SeriesNames[i] != "" {
		return o.SeriesNames[i]
	}
	return fmt.Sprintf("series %d", i+1)
}

func (o Options) seriesColor(i int) drawing.Color {
	if i < len(o.Colors) && !o.Colors[i].IsZero() {
		return o.Colors[i]
	}
	return defaultPalette[i%len(defaultPalette)]
}

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 1.5,
		StrokeColor: col,
		DotWidth:    3,
		DotColor:    col,
	}
}

// Line renders one or more x/y traces as a line chart (or scatter when
// Options.Scatter is set) and returns the plot ready for annotation. Series
// with time-valued X render on a time axis; the returned geometry speaks the
// same ordinal scale the annotation core uses.
func Line(series []annotate.Series, opts Options) (*Plot, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("render line: no series")
	}
	w, h := opts.size()
	timeMode := series[0].XTimes != nil

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	total := 0
	for _, s := range series {
		n := s.Len()
		total += n
		for j := 0; j < n; j++ {
			x, y := s.Sample(j)
			minX = math.Min(minX, x)
			maxX = math.Max(maxX, x)
			minY = math.Min(minY, y)
			maxY = math.Max(maxY, y)
		}
	}
	if total == 0 {
		return nil, fmt.Errorf("render line: series are empty")
	}
	nMinX, nMaxX := niceAxisBounds(minX, maxX)
	nMinY, nMaxY := niceAxisBounds(minY, maxY)

	var chartSeries []chart.Series
	for i, s := range series {
		st := lineStyle(opts.seriesColor(i))
		if opts.Scatter {
			st = pointStyle(opts.seriesColor(i))
		}
		n := s.Len()
		if timeMode {
			xs := make([]time.Time, n)
			ys := make([]float64, n)
			copy(xs, s.XTimes[:n])
			copy(ys, s.Y[:n])
			// go-chart needs at least two X values per series.
			if n == 1 {
				xs = append(xs, xs[0].Add(time.Second))
				ys = append(ys, ys[0])
			}
			chartSeries = append(chartSeries, chart.TimeSeries{Name: opts.seriesName(i), XValues: xs, YValues: ys, Style: st})
		} else {
			xs := make([]float64, n)
			ys := make([]float64, n)
			copy(xs, s.X[:n])
			copy(ys, s.Y[:n])
			if n == 1 {
				xs = append(xs, xs[0]+1)
				ys = append(ys, ys[0])
			}
			chartSeries = append(chartSeries, chart.ContinuousSeries{Name: opts.seriesName(i), XValues: xs, YValues: ys, Style: st})
		}
	}

	var xRange chart.ContinuousRange
	if timeMode {
		// The chart speaks go-chart's time floats; Geom keeps the ordinal
		// scale. Both are linear over the same interval.
		xRange = chart.ContinuousRange{
			Min: chart.TimeToFloat64(time.Unix(int64(nMinX), 0)),
			Max: chart.TimeToFloat64(time.Unix(int64(nMaxX), 0)),
		}
	} else {
		xRange = chart.ContinuousRange{Min: nMinX, Max: nMaxX}
	}
	ch := chart.Chart{
		Title:      opts.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: padTopPx, Left: padLeftPx, Right: padRightPx, Bottom: padBottomPx}},
		XAxis:      chart.XAxis{Name: opts.XName, Range: &xRange},
		YAxis:      chart.YAxis{Name: opts.YName, Range: &chart.ContinuousRange{Min: nMinY, Max: nMaxY}, Ticks: niceTicks(nMinY, nMaxY, 6)},
		Series:     chartSeries,
	}
	if len(series) > 1 {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
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
			View:      annotate.View{XMin: nMinX, XMax: nMaxX, YMin: nMinY, YMax: nMaxY},
		},
		Content: annotate.LineContent(series...),
	}, nil
}

func renderToImage(ch chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("chart decode: %w", err)
	}
	return img, nil
}

// Blank returns a dark placeholder image, used when there is nothing to
// render yet.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}
