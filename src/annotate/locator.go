package annotate

import "math"

// ShownID identifies the currently annotated element of an axis. For series
// content (line, patch) Series/Sample are meaningful; for image content
// Col/Row are.
type ShownID struct {
	Series, Sample int
	Col, Row       int
}

// Hit is the outcome of a lookup or a navigation step: the element's
// identifier, its data coordinate, its label (if the label structure has an
// entry there) and, for image hits, the pixel value.
type Hit struct {
	ID       ShownID
	X, Y     float64
	Label    string
	HasLabel bool
	Value    float64
}

// Nearest finds the sample closest to the click (cx, cy) under normalized
// Manhattan distance: |x-cx|/xRange + |y-cy|/yRange, with each axis
// normalized by its own visible span. All series are scanned flat, series
// order then sample order, and ties keep the first sample encountered.
//
// Image content skips the scan entirely: the click rounds to the nearest
// integer pixel coordinate. A click rounding outside the grid reports no
// hit. Mixed series+image content is rejected.
func Nearest(c Content, labels AxisLabels, v View, cx, cy float64) (Hit, bool, error) {
	kind, err := c.check()
	if err != nil {
		return Hit{}, false, err
	}
	switch kind {
	case KindImage:
		return nearestPixel(c.Grid, cx, cy)
	case KindLine, KindPatch:
		hit, ok := nearestSample(c.Series, labels, v, cx, cy)
		return hit, ok, nil
	default:
		return Hit{}, false, nil
	}
}

func nearestSample(series []Series, labels AxisLabels, v View, cx, cy float64) (Hit, bool) {
	xr := v.XRange()
	yr := v.YRange()
	// Degenerate views still need a defined metric.
	if xr == 0 {
		xr = 1
	}
	if yr == 0 {
		yr = 1
	}

	var best Hit
	found := false
	minDist := math.Inf(1)
	for si, s := range series {
		n := s.Len()
		for j := 0; j < n; j++ {
			x, y := s.Sample(j)
			dist := math.Abs(x-cx)/xr + math.Abs(y-cy)/yr
			// Strict < keeps the first sample on ties.
			if dist < minDist {
				minDist = dist
				lbl, ok := labels.At(si, j)
				best = Hit{
					ID:       ShownID{Series: si, Sample: j},
					X:        x,
					Y:        y,
					Label:    lbl,
					HasLabel: ok,
				}
				found = true
			}
		}
	}
	return best, found
}

func nearestPixel(g *Grid, cx, cy float64) (Hit, bool, error) {
	col := int(math.Round(cx))
	row := int(math.Round(cy))
	val, ok := g.At(col, row)
	if !ok {
		return Hit{}, false, nil
	}
	return Hit{
		ID:    ShownID{Col: col, Row: row},
		X:     float64(col),
		Y:     float64(row),
		Value: val,
	}, true, nil
}
