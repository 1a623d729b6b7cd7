package plotrender

import (
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/mmoraschini/annoplot/src/annotate"
)

// Heatmap rasterizes a pixel grid into a plot image, one colored cell per
// grid value, row 0 at the top. The returned geometry maps data coordinate
// (col, row) onto the center of the matching cell, which is what pixel
// annotation navigates over.
func Heatmap(g *annotate.Grid, opts Options) (*Plot, error) {
	rows, cols := g.Rows(), g.Cols()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("render heatmap: empty grid")
	}
	w, h := opts.size()

	min, max := math.Inf(1), math.Inf(-1)
	for _, row := range g.Values {
		for _, v := range row {
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
	}
	if max <= min {
		max = min + 1
	}

	// One image pixel per cell, then scale up without smoothing so cell
	// boundaries stay crisp.
	small := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			small.SetRGBA(c, r, heatColor((g.Values[r][c] - min) / (max - min)))
		}
	}

	geom := Geom{
		Width:     w,
		Height:    h,
		PadLeft:   padLeftPx,
		PadRight:  padRightPx,
		PadTop:    padTopPx,
		PadBottom: padBottomPx,
		View: annotate.View{
			XMin: -0.5, XMax: float64(cols) - 0.5,
			YMin: -0.5, YMax: float64(rows) - 0.5,
		},
		YDown: true,
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(out, out.Bounds(), image.NewUniform(color.RGBA{R: 18, G: 18, B: 18, A: 255}), image.Point{}, xdraw.Src)
	plotRect := image.Rect(
		int(geom.PadLeft), int(geom.PadTop),
		w-int(geom.PadRight), h-int(geom.PadBottom),
	)
	xdraw.NearestNeighbor.Scale(out, plotRect, small, small.Bounds(), xdraw.Src, nil)

	return &Plot{
		Image:   out,
		Geom:    geom,
		Content: annotate.ImageContent(g),
	}, nil
}

// heatColor maps a normalized value in [0,1] onto a dark-violet-to-yellow
// ramp.
func heatColor(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(a, b float64) uint8 { return uint8(a + (b-a)*t) }
	return color.RGBA{
		R: lerp(48, 253),
		G: lerp(18, 231),
		B: lerp(89, 37),
		A: 255,
	}
}
