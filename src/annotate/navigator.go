package annotate

// Key is the normalized key event delivered to an axis. Escape and
// delete/backspace both arrive as KeyClear.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyClear
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Step computes the element adjacent to cur in the direction of k. Stepping
// past a series end or a grid edge is not an error and does not wrap: the
// second return is false and the caller leaves the display as is. Up/down
// only navigate image content; on series they report no change.
func Step(c Content, labels AxisLabels, cur ShownID, k Key) (Hit, bool, error) {
	kind, err := c.check()
	if err != nil {
		return Hit{}, false, err
	}
	switch kind {
	case KindImage:
		return stepPixel(c.Grid, cur, k)
	case KindLine, KindPatch:
		return stepSample(c.Series, labels, cur, k)
	default:
		return Hit{}, false, nil
	}
}

func stepSample(series []Series, labels AxisLabels, cur ShownID, k Key) (Hit, bool, error) {
	if cur.Series < 0 || cur.Series >= len(series) {
		return Hit{}, false, nil
	}
	s := series[cur.Series]
	j := cur.Sample
	switch k {
	case KeyLeft:
		j--
	case KeyRight:
		j++
	default:
		// Up/down have no meaning along a series.
		return Hit{}, false, nil
	}
	if j < 0 || j >= s.Len() {
		return Hit{}, false, nil
	}
	x, y := s.Sample(j)
	lbl, ok := labels.At(cur.Series, j)
	return Hit{
		ID:       ShownID{Series: cur.Series, Sample: j},
		X:        x,
		Y:        y,
		Label:    lbl,
		HasLabel: ok,
	}, true, nil
}

func stepPixel(g *Grid, cur ShownID, k Key) (Hit, bool, error) {
	col, row := cur.Col, cur.Row
	switch k {
	case KeyLeft:
		col--
	case KeyRight:
		col++
	case KeyUp:
		row--
	case KeyDown:
		row++
	default:
		return Hit{}, false, nil
	}
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
