package annotate

import (
	"errors"
	"testing"
)

func attachN(t *testing.T, n int, labels LabelSource) error {
	t.Helper()
	cfgs := make([]AxisConfig, n)
	for i := range cfgs {
		cfgs[i] = AxisConfig{
			Content:  LineContent(Series{X: []float64{0}, Y: []float64{0}}),
			Renderer: &fakeRenderer{},
			View:     func() View { return View{XMax: 1, YMax: 1} },
		}
	}
	_, err := NewRegistry().Attach(cfgs, labels, Style{})
	return err
}

func TestAttach_LabelShapeValidation(t *testing.T) {
	cases := []struct {
		name   string
		axes   int
		labels LabelSource
		ok     bool
	}{
		{"flat on single axis", 1, FlatLabels{"a", "b"}, true},
		{"nested on single axis", 1, NestedLabels{{"a"}, {"b"}}, true},
		{"nil labels", 3, nil, true},
		{"no labels", 2, NoLabels{}, true},
		{"flat on multi axis", 2, FlatLabels{"a"}, false},
		{"nested on multi axis", 2, NestedLabels{{"a"}}, false},
		{"per-axis complete", 2, PerAxisLabels{0: {{"a"}}, 1: {{"b"}}}, true},
		{"per-axis count mismatch", 3, PerAxisLabels{0: {{"a"}}, 1: {{"b"}}}, false},
		{"per-axis wrong keys", 2, PerAxisLabels{0: {{"a"}}, 5: {{"b"}}}, false},
	}
	for _, tc := range cases {
		err := attachN(t, tc.axes, tc.labels)
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.ok {
			if !errors.Is(err, ErrLabelShape) {
				t.Fatalf("%s: expected ErrLabelShape, got %v", tc.name, err)
			}
		}
	}
}

func TestAxisLabels_At(t *testing.T) {
	l := AxisLabels{{"a", ""}, {"c"}}
	if got, ok := l.At(0, 0); !ok || got != "a" {
		t.Fatalf("expected a, got %q ok=%v", got, ok)
	}
	if _, ok := l.At(0, 1); ok {
		t.Fatalf("empty string counts as no label")
	}
	if _, ok := l.At(0, 5); ok {
		t.Fatalf("out-of-range sample must be no label")
	}
	if _, ok := l.At(3, 0); ok {
		t.Fatalf("out-of-range series must be no label")
	}
	if _, ok := AxisLabels(nil).At(0, 0); ok {
		t.Fatalf("nil labels must be no label")
	}
}

func TestAttach_RejectsIncompleteConfig(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Attach(nil, nil, Style{}); err == nil {
		t.Fatalf("empty attach must fail")
	}
	_, err := reg.Attach([]AxisConfig{{
		Content: LineContent(Series{X: []float64{0}, Y: []float64{0}}),
		View:    func() View { return View{} },
	}}, nil, Style{})
	if err == nil {
		t.Fatalf("missing renderer must fail")
	}
	_, err = reg.Attach([]AxisConfig{{
		Content:  LineContent(Series{X: []float64{0}, Y: []float64{0}}),
		Renderer: &fakeRenderer{},
	}}, nil, Style{})
	if err == nil {
		t.Fatalf("missing view query must fail")
	}
}
