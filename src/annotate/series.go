package annotate

import "time"

// Series references one plotted trace: ordered x/y samples. The slices are
// owned by the caller (typically the code that built the chart); the
// annotation layer only reads them.
//
// When XTimes is non-nil it takes precedence over X and each timestamp is
// converted to a numeric ordinal (Unix seconds) before any distance math.
type Series struct {
	X      []float64
	Y      []float64
	XTimes []time.Time
}

// Len returns the number of usable samples (the shorter of the coordinate
// slices, so a ragged pair never indexes out of range).
func (s Series) Len() int {
	n := len(s.Y)
	if s.XTimes != nil {
		if len(s.XTimes) < n {
			n = len(s.XTimes)
		}
		return n
	}
	if len(s.X) < n {
		n = len(s.X)
	}
	return n
}

// Sample returns the i-th sample with time-valued X already converted to its
// ordinal. Callers must keep i within [0, Len()).
func (s Series) Sample(i int) (x, y float64) {
	if s.XTimes != nil {
		return TimeOrdinal(s.XTimes[i]), s.Y[i]
	}
	return s.X[i], s.Y[i]
}

// TimeOrdinal maps a timestamp onto the numeric axis used for distance
// computations. Unix seconds keep the mapping monotonic and cheap.
func TimeOrdinal(t time.Time) float64 {
	return float64(t.Unix())
}

// Grid references image content: row-major pixel values of shape rows x cols.
// Pixel (col, row) sits at data coordinate (col, row), matching how the
// renderer lays the image out with pixel centers on integer coordinates.
type Grid struct {
	Values [][]float64
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return len(g.Values) }

// Cols returns the row width (0 for an empty grid).
func (g *Grid) Cols() int {
	if len(g.Values) == 0 {
		return 0
	}
	return len(g.Values[0])
}

// At returns the value at (col, row), reporting false when out of bounds.
func (g *Grid) At(col, row int) (float64, bool) {
	if row < 0 || row >= g.Rows() || col < 0 || col >= g.Cols() {
		return 0, false
	}
	return g.Values[row][col], true
}

// Content is everything annotatable that is drawn on one axis. Series and
// Grid are mutually exclusive; an axis carrying both is malformed and every
// event targeting it fails with ErrMixedContent.
type Content struct {
	Kind   Kind
	Series []Series
	Grid   *Grid
}

// LineContent wraps plain x/y traces.
func LineContent(series ...Series) Content {
	return Content{Kind: KindLine, Series: series}
}

// ImageContent wraps a pixel grid.
func ImageContent(g *Grid) Content {
	return Content{Kind: KindImage, Grid: g}
}

// PatchContent wraps a histogram trace (bin centers vs counts).
func PatchContent(s Series) Content {
	return Content{Kind: KindPatch, Series: []Series{s}}
}

// check validates the series/grid exclusivity and reports the effective kind.
func (c Content) check() (Kind, error) {
	if len(c.Series) > 0 && c.Grid != nil {
		return KindNone, ErrMixedContent
	}
	if c.Grid != nil {
		return KindImage, nil
	}
	if len(c.Series) > 0 {
		if c.Kind == KindPatch {
			return KindPatch, nil
		}
		return KindLine, nil
	}
	return KindNone, nil
}

// View is the visible data-space extent of an axis at one instant.
type View struct {
	XMin, XMax float64
	YMin, YMax float64
}

// XRange returns the visible x span.
func (v View) XRange() float64 { return v.XMax - v.XMin }

// YRange returns the visible y span.
func (v View) YRange() float64 { return v.YMax - v.YMin }
