package annotate

import "fmt"

// AxisLabels holds the optional per-sample label strings for one axis,
// indexed by (series, sample). Shorter-than-data slices are fine; any
// out-of-range lookup simply yields no label.
type AxisLabels [][]string

// At returns the label for a sample, reporting false when the structure has
// no entry at that position or the entry is empty.
func (l AxisLabels) At(series, sample int) (string, bool) {
	if series < 0 || series >= len(l) {
		return "", false
	}
	row := l[series]
	if sample < 0 || sample >= len(row) {
		return "", false
	}
	if row[sample] == "" {
		return "", false
	}
	return row[sample], true
}

// LabelSource is what callers hand to Attach: one of the three accepted
// label shapes (flat, nested, or per-axis). forAxes resolves it against the
// actual axis count, returning one AxisLabels per axis in axis order.
type LabelSource interface {
	forAxes(n int) ([]AxisLabels, error)
}

// FlatLabels carries one label per sample of a single-series, single-axis
// figure.
type FlatLabels []string

func (f FlatLabels) forAxes(n int) ([]AxisLabels, error) {
	if n != 1 {
		return nil, fmt.Errorf("%w: flat labels given for %d axes, need per-axis labels", ErrLabelShape, n)
	}
	return []AxisLabels{{[]string(f)}}, nil
}

// NestedLabels carries one label slice per series of a single-axis figure.
type NestedLabels [][]string

func (nl NestedLabels) forAxes(n int) ([]AxisLabels, error) {
	if n != 1 {
		return nil, fmt.Errorf("%w: nested labels given for %d axes, need per-axis labels", ErrLabelShape, n)
	}
	return []AxisLabels{AxisLabels(nl)}, nil
}

// PerAxisLabels maps axis position (0-based, in registration order) to that
// axis's nested labels. Every axis of the figure must have an entry.
type PerAxisLabels map[int][][]string

func (p PerAxisLabels) forAxes(n int) ([]AxisLabels, error) {
	if len(p) != n {
		return nil, fmt.Errorf("%w: %d label entries for %d axes", ErrLabelShape, len(p), n)
	}
	out := make([]AxisLabels, n)
	for i := 0; i < n; i++ {
		ls, ok := p[i]
		if !ok {
			return nil, fmt.Errorf("%w: no labels for axis %d", ErrLabelShape, i)
		}
		out[i] = AxisLabels(ls)
	}
	return out, nil
}

// NoLabels is the zero label source: every lookup resolves to "no label".
type NoLabels struct{}

func (NoLabels) forAxes(n int) ([]AxisLabels, error) {
	return make([]AxisLabels, n), nil
}
