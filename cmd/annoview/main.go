// Annoplot demo viewer.
//
// Shows the four supported plot kinds (line, scatter, histogram, image) with
// interactive point annotation attached: click near a sample to show its
// callout, step with the arrow keys, clear with escape or delete.
//
// Two modes:
//  1. Interactive (default): a Fyne window with one tab per plot kind.
//  2. Screenshot mode (-screenshots DIR): renders each plot headlessly with
//     a baked-in annotation and writes PNGs under DIR, without a window.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"os"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/mmoraschini/annoplot/src/annotate"
	"github.com/mmoraschini/annoplot/src/annoview"
	"github.com/mmoraschini/annoplot/src/plotrender"
)

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

type uiState struct {
	app    fyne.App
	window fyne.Window

	reg    *annotate.Registry
	router *annoview.Router
	style  annotate.Style
}

// demoFigure is one rendered demo plot plus the label shape it wants.
type demoFigure struct {
	name   string
	plot   *plotrender.Plot
	labels [][]string
}

func main() {
	var screenshotsDir string
	var logLevel string
	var markerHex, faceHex, edgeHex string
	flag.StringVar(&screenshotsDir, "screenshots", "", "Render annotated demo charts as PNGs into this directory and exit")
	flag.StringVar(&logLevel, "loglevel", "warn", "Log level: debug, info, warn, error")
	flag.StringVar(&markerHex, "markercolor", "", "Annotation marker color as #rrggbb (default red)")
	flag.StringVar(&faceHex, "facecolor", "", "Callout fill color as #rrggbb (default white)")
	flag.StringVar(&edgeHex, "edgecolor", "", "Callout border color as #rrggbb (default black)")
	flag.Parse()

	annotate.SetLogLevel(logLevel)

	if screenshotsDir != "" {
		// Headless mode has no app and hence no preferences: flags only.
		style := annotate.Style{
			MarkerColor: parseHexColor(markerHex),
			FaceColor:   parseHexColor(faceHex),
			EdgeColor:   parseHexColor(edgeHex),
		}
		if err := runScreenshotsMode(screenshotsDir, style); err != nil {
			fmt.Fprintf(os.Stderr, "screenshots: %v\n", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.annoplot.viewer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("Annoplot Viewer")
	w.Resize(fyne.NewSize(900, 650))

	state := &uiState{
		app:    a,
		window: w,
		reg:    annotate.NewRegistry(),
		style:  styleFromPrefs(a.Preferences(), markerHex, faceHex, edgeHex),
	}
	state.router = annoview.NewRouter(state.reg)

	figures, err := buildDemoFigures()
	if err != nil {
		fmt.Fprintf(os.Stderr, "render demo figures: %v\n", err)
		os.Exit(1)
	}

	// All axes of the figure attach in one call; a multi-axis figure needs
	// per-axis labels.
	overlays := make([]*annoview.Overlay, len(figures))
	cfgs := make([]annotate.AxisConfig, len(figures))
	perAxis := annotate.PerAxisLabels{}
	for i, f := range figures {
		imgCanvas := canvas.NewImageFromImage(f.plot.Image)
		imgCanvas.FillMode = canvas.ImageFillContain
		overlays[i] = annoview.NewOverlay(imgCanvas, f.plot.Geom)
		cfgs[i] = annotate.AxisConfig{
			Content:  f.plot.Content,
			Renderer: overlays[i],
			View:     overlays[i].View,
		}
		perAxis[i] = f.labels
	}
	axes, err := state.reg.Attach(cfgs, perAxis, state.style)
	if err != nil {
		fmt.Fprintf(os.Stderr, "attach annotation: %v\n", err)
		os.Exit(1)
	}

	tabs := container.NewAppTabs()
	for i, f := range figures {
		overlays[i].Bind(state.reg, axes[i])
		state.router.Add(overlays[i])
		imgCanvas := overlays[i].ChartImage()
		tabs.Append(container.NewTabItem(f.name, container.NewStack(imgCanvas, overlays[i])))
	}
	restoreSelectedTab(a.Preferences(), tabs)
	tabs.OnSelected = func(*container.TabItem) {
		a.Preferences().SetInt("selectedTabIndex", tabs.SelectedIndex())
	}
	state.router.InstallKeys(w.Canvas())

	hint := widget.NewLabel("Click near a point to annotate it. Arrow keys step, escape/delete clears.")
	w.SetContent(container.NewBorder(hint, nil, nil, nil, tabs))
	w.ShowAndRun()
}

// buildDemoFigures renders one plot per supported kind over fixed synthetic
// data (seeded, so screenshots are reproducible).
func buildDemoFigures() ([]demoFigure, error) {
	rng := rand.New(rand.NewSource(42))

	// Line: two traces on one axis, damped sine and cosine.
	n := 60
	sine := annotate.Series{X: make([]float64, n), Y: make([]float64, n)}
	cosine := annotate.Series{X: make([]float64, n), Y: make([]float64, n)}
	sineLabels := make([]string, n)
	for i := 0; i < n; i++ {
		x := float64(i) * 0.5
		sine.X[i] = x
		sine.Y[i] = math.Sin(x) * math.Exp(-x/20)
		cosine.X[i] = x
		cosine.Y[i] = math.Cos(x) * math.Exp(-x/20)
		sineLabels[i] = fmt.Sprintf("sample %d", i)
	}
	linePlot, err := plotrender.Line([]annotate.Series{sine, cosine}, plotrender.Options{
		Title:       "Damped oscillation",
		SeriesNames: []string{"sin", "cos"},
	})
	if err != nil {
		return nil, err
	}

	// Scatter: noisy cluster; no labels on purpose (callout falls back to
	// plain coordinates).
	m := 80
	scatter := annotate.Series{X: make([]float64, m), Y: make([]float64, m)}
	for i := 0; i < m; i++ {
		scatter.X[i] = rng.NormFloat64()*2 + 10
		scatter.Y[i] = rng.NormFloat64()*5 + 40
	}
	scatterPlot, err := plotrender.Line([]annotate.Series{scatter}, plotrender.Options{
		Title:       "Noisy cluster",
		Scatter:     true,
		SeriesNames: []string{"samples"},
	})
	if err != nil {
		return nil, err
	}

	// Histogram: labels come from the renderer (bin edges and counts).
	values := make([]float64, 500)
	for i := range values {
		values[i] = rng.NormFloat64()*3 + 12
	}
	histPlot, err := plotrender.Histogram(values, 16, plotrender.Options{
		Title:       "Value distribution",
		SeriesNames: []string{"values"},
	})
	if err != nil {
		return nil, err
	}

	// Image: a small gridded field, annotated per pixel.
	rows, cols := 16, 24
	grid := &annotate.Grid{Values: make([][]float64, rows)}
	for r := 0; r < rows; r++ {
		grid.Values[r] = make([]float64, cols)
		for c := 0; c < cols; c++ {
			grid.Values[r][c] = math.Sin(float64(c)/4) * math.Cos(float64(r)/3)
		}
	}
	imagePlot, err := plotrender.Heatmap(grid, plotrender.Options{Title: "Field"})
	if err != nil {
		return nil, err
	}

	return []demoFigure{
		{name: "Line", plot: linePlot, labels: [][]string{sineLabels, nil}},
		{name: "Scatter", plot: scatterPlot, labels: nil},
		{name: "Histogram", plot: histPlot, labels: histPlot.Labels},
		{name: "Image", plot: imagePlot, labels: nil},
	}, nil
}

// styleFromPrefs resolves the annotation style against the app preferences:
// a color flag wins and is stored for the next run, otherwise the stored
// value applies. Colors set nowhere stay nil, so the style falls back to its
// defaults.
func styleFromPrefs(prefs fyne.Preferences, markerHex, faceHex, edgeHex string) annotate.Style {
	resolve := func(key, flagVal string) color.Color {
		if c := parseHexColor(flagVal); c != nil {
			prefs.SetString(key, flagVal)
			return c
		}
		return parseHexColor(prefs.StringWithFallback(key, ""))
	}
	return annotate.Style{
		MarkerColor: resolve("markerColor", markerHex),
		FaceColor:   resolve("faceColor", faceHex),
		EdgeColor:   resolve("edgeColor", edgeHex),
	}
}

// restoreSelectedTab re-selects the tab from the previous session when it is
// still a valid index.
func restoreSelectedTab(prefs fyne.Preferences, tabs *container.AppTabs) {
	idx := prefs.IntWithFallback("selectedTabIndex", 0)
	if idx > 0 && idx < len(tabs.Items) {
		tabs.SelectIndex(idx)
	}
}

// parseHexColor parses #rrggbb (or rrggbb); anything else yields nil so the
// style falls back to its documented default.
func parseHexColor(s string) color.Color {
	if len(s) == 7 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return nil
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return nil
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
