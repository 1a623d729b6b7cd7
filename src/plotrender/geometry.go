package plotrender

import "github.com/mmoraschini/annoplot/src/annotate"

// Geom describes where the plot area sits inside a rendered chart image and
// which data extent it covers. It is what lets the interactive layer map
// image pixels to data coordinates and back.
//
// The paddings mirror the fixed values the charts in this package are
// rendered with. For nearest-point annotation this does not need to be
// pixel-perfect: the lookup snaps to the closest sample anyway.
type Geom struct {
	Width, Height int

	PadLeft, PadRight float64
	PadTop, PadBottom float64

	View annotate.View

	// YDown flips the vertical axis (image/heatmap convention: row 0 at the
	// top, y growing downward).
	YDown bool
}

// PlotW returns the plot-area width in pixels.
func (g Geom) PlotW() float64 { return float64(g.Width) - g.PadLeft - g.PadRight }

// PlotH returns the plot-area height in pixels.
func (g Geom) PlotH() float64 { return float64(g.Height) - g.PadTop - g.PadBottom }

// DataToImage maps a data coordinate to image pixel coordinates.
func (g Geom) DataToImage(x, y float64) (px, py float64) {
	xr := g.View.XRange()
	yr := g.View.YRange()
	if xr == 0 {
		xr = 1
	}
	if yr == 0 {
		yr = 1
	}
	px = g.PadLeft + (x-g.View.XMin)/xr*g.PlotW()
	if g.YDown {
		py = g.PadTop + (y-g.View.YMin)/yr*g.PlotH()
	} else {
		py = g.PadTop + (g.View.YMax-y)/yr*g.PlotH()
	}
	return px, py
}

// ImageToData maps image pixel coordinates to a data coordinate.
func (g Geom) ImageToData(px, py float64) (x, y float64) {
	pw := g.PlotW()
	ph := g.PlotH()
	if pw <= 0 {
		pw = 1
	}
	if ph <= 0 {
		ph = 1
	}
	x = g.View.XMin + (px-g.PadLeft)/pw*g.View.XRange()
	if g.YDown {
		y = g.View.YMin + (py-g.PadTop)/ph*g.View.YRange()
	} else {
		y = g.View.YMax - (py-g.PadTop)/ph*g.View.YRange()
	}
	return x, y
}

// InPlot reports whether an image pixel lies inside the plot area.
func (g Geom) InPlot(px, py float64) bool {
	return px >= g.PadLeft && px <= float64(g.Width)-g.PadRight &&
		py >= g.PadTop && py <= float64(g.Height)-g.PadBottom
}
