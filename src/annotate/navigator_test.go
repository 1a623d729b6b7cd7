package annotate

import "testing"

func TestStep_SeriesBoundariesAreNoOps(t *testing.T) {
	s := Series{X: []float64{0, 1, 2, 3}, Y: []float64{0, 1, 4, 9}}
	c := LineContent(s)
	labels := AxisLabels{{"a", "b", "c", "d"}}

	cases := []struct {
		name  string
		cur   ShownID
		key   Key
		want  int
		moved bool
	}{
		{"right from middle", ShownID{Sample: 2}, KeyRight, 3, true},
		{"left from middle", ShownID{Sample: 2}, KeyLeft, 1, true},
		{"right from end", ShownID{Sample: 3}, KeyRight, 0, false},
		{"left from start", ShownID{Sample: 0}, KeyLeft, 0, false},
		{"up is undefined for series", ShownID{Sample: 1}, KeyUp, 0, false},
		{"down is undefined for series", ShownID{Sample: 1}, KeyDown, 0, false},
	}
	for _, tc := range cases {
		hit, moved, err := Step(c, labels, tc.cur, tc.key)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if moved != tc.moved {
			t.Fatalf("%s: moved=%v want %v", tc.name, moved, tc.moved)
		}
		if moved && hit.ID.Sample != tc.want {
			t.Fatalf("%s: landed on %d want %d", tc.name, hit.ID.Sample, tc.want)
		}
	}
}

func TestStep_SeriesCarriesCoordinateAndLabel(t *testing.T) {
	s := Series{X: []float64{0, 1, 2, 3}, Y: []float64{0, 1, 4, 9}}
	labels := AxisLabels{{"a", "b", "c", "d"}}

	hit, moved, err := Step(LineContent(s), labels, ShownID{Sample: 2}, KeyRight)
	if err != nil || !moved {
		t.Fatalf("expected a move, got moved=%v err=%v", moved, err)
	}
	if hit.X != 3 || hit.Y != 9 {
		t.Fatalf("expected (3,9), got (%v,%v)", hit.X, hit.Y)
	}
	if hit.Label != "d" {
		t.Fatalf("expected label d, got %q", hit.Label)
	}
}

func TestStep_GridAllFourDirections(t *testing.T) {
	g := &Grid{Values: make([][]float64, 10)}
	for r := range g.Values {
		g.Values[r] = make([]float64, 8)
	}
	c := ImageContent(g)

	cases := []struct {
		name     string
		cur      ShownID
		key      Key
		col, row int
		moved    bool
	}{
		{"left", ShownID{Col: 3, Row: 5}, KeyLeft, 2, 5, true},
		{"right", ShownID{Col: 3, Row: 5}, KeyRight, 4, 5, true},
		{"up", ShownID{Col: 3, Row: 5}, KeyUp, 3, 4, true},
		{"down", ShownID{Col: 3, Row: 5}, KeyDown, 3, 6, true},
		{"left edge", ShownID{Col: 0, Row: 5}, KeyLeft, 0, 0, false},
		{"right edge", ShownID{Col: 7, Row: 5}, KeyRight, 0, 0, false},
		{"top edge", ShownID{Col: 3, Row: 0}, KeyUp, 0, 0, false},
		{"bottom edge", ShownID{Col: 3, Row: 9}, KeyDown, 0, 0, false},
	}
	for _, tc := range cases {
		hit, moved, err := Step(c, nil, tc.cur, tc.key)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if moved != tc.moved {
			t.Fatalf("%s: moved=%v want %v", tc.name, moved, tc.moved)
		}
		if moved && (hit.ID.Col != tc.col || hit.ID.Row != tc.row) {
			t.Fatalf("%s: landed on (%d,%d) want (%d,%d)", tc.name, hit.ID.Col, hit.ID.Row, tc.col, tc.row)
		}
	}
}

func TestStep_StaleSeriesIndexIsIgnored(t *testing.T) {
	s := Series{X: []float64{0, 1}, Y: []float64{0, 1}}
	_, moved, err := Step(LineContent(s), nil, ShownID{Series: 4, Sample: 0}, KeyRight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved {
		t.Fatalf("stale identifier must not move")
	}
}
