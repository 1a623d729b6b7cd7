package main

import (
	"fmt"
	"image/color"
	"testing"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/mmoraschini/annoplot/src/annotate"
	"github.com/mmoraschini/annoplot/src/plotrender"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.Color
	}{
		{"#ff0000", color.RGBA{R: 255, A: 255}},
		{"00ff00", color.RGBA{G: 255, A: 255}},
		{"", nil},
		{"#abc", nil},
		{"zzzzzz", nil},
	}
	for _, tc := range cases {
		got := parseHexColor(tc.in)
		if tc.want == nil {
			if got != nil {
				t.Fatalf("%q: expected nil, got %v", tc.in, got)
			}
			continue
		}
		if got != tc.want {
			t.Fatalf("%q: got %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestStyleFromPrefs_FlagWinsAndPersists(t *testing.T) {
	prefs := test.NewApp().Preferences()

	st := styleFromPrefs(prefs, "#ff0000", "", "")
	if st.MarkerColor != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("flag color not applied: %v", st.MarkerColor)
	}
	if st.FaceColor != nil || st.EdgeColor != nil {
		t.Fatalf("colors set nowhere must stay nil: %v %v", st.FaceColor, st.EdgeColor)
	}

	// A later run without the flag picks up the stored value.
	st = styleFromPrefs(prefs, "", "", "")
	if st.MarkerColor != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("stored color not restored: %v", st.MarkerColor)
	}

	// A new flag value replaces the stored one.
	st = styleFromPrefs(prefs, "#00ff00", "", "")
	if st.MarkerColor != (color.RGBA{G: 255, A: 255}) {
		t.Fatalf("flag must override the stored color: %v", st.MarkerColor)
	}
	st = styleFromPrefs(prefs, "", "", "")
	if st.MarkerColor != (color.RGBA{G: 255, A: 255}) {
		t.Fatalf("override not persisted: %v", st.MarkerColor)
	}
}

func TestRestoreSelectedTab_GuardsRange(t *testing.T) {
	a := test.NewApp()
	newTabs := func(n int) *container.AppTabs {
		tabs := container.NewAppTabs()
		for i := 0; i < n; i++ {
			tabs.Append(container.NewTabItem(fmt.Sprintf("tab %d", i), widget.NewLabel("")))
		}
		return tabs
	}

	a.Preferences().SetInt("selectedTabIndex", 2)
	tabs := newTabs(4)
	restoreSelectedTab(a.Preferences(), tabs)
	if tabs.SelectedIndex() != 2 {
		t.Fatalf("expected tab 2 restored, got %d", tabs.SelectedIndex())
	}

	// An index stored by a session with more tabs must not be applied.
	a.Preferences().SetInt("selectedTabIndex", 9)
	tabs = newTabs(2)
	restoreSelectedTab(a.Preferences(), tabs)
	if tabs.SelectedIndex() != 0 {
		t.Fatalf("out-of-range index must keep the default, got %d", tabs.SelectedIndex())
	}
}

func TestBuildDemoFigures_AllKindsPresent(t *testing.T) {
	figures, err := buildDemoFigures()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(figures) != 4 {
		t.Fatalf("expected 4 demo figures, got %d", len(figures))
	}
	kinds := map[string]annotate.Kind{
		"Line":      annotate.KindLine,
		"Scatter":   annotate.KindLine,
		"Histogram": annotate.KindPatch,
		"Image":     annotate.KindImage,
	}
	for _, f := range figures {
		if f.plot == nil || f.plot.Image == nil {
			t.Fatalf("%s: figure not rendered", f.name)
		}
		if f.plot.Content.Kind != kinds[f.name] {
			t.Fatalf("%s: content kind %v want %v", f.name, f.plot.Content.Kind, kinds[f.name])
		}
	}
}

func TestDemoFigures_AttachAsOneFigure(t *testing.T) {
	figures, err := buildDemoFigures()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	reg := annotate.NewRegistry()
	cfgs := make([]annotate.AxisConfig, len(figures))
	perAxis := annotate.PerAxisLabels{}
	for i, f := range figures {
		geom := f.plot.Geom
		cfgs[i] = annotate.AxisConfig{
			Content:  f.plot.Content,
			Renderer: plotrender.NewImageAnnotator(f.plot.Image, geom),
			View:     func() annotate.View { return geom.View },
		}
		perAxis[i] = f.labels
	}
	axes, err := reg.Attach(cfgs, perAxis, annotate.Style{})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if len(axes) != len(figures) {
		t.Fatalf("expected %d axes, got %d", len(figures), len(axes))
	}

	// Drive a click on the histogram axis and make sure the implicit bin
	// labels came through the per-axis wiring.
	var histAxis *annotate.Axis
	for i, f := range figures {
		if f.name == "Histogram" {
			histAxis = axes[i]
		}
	}
	if histAxis == nil {
		t.Fatalf("histogram axis missing")
	}
	if err := histAxis.Click(12, 50); err != nil {
		t.Fatalf("click: %v", err)
	}
	if _, ok := histAxis.Shown(); !ok {
		t.Fatalf("histogram click must show an annotation")
	}
}
