package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/mmoraschini/annoplot/src/annotate"
	"github.com/mmoraschini/annoplot/src/plotrender"
)

// runScreenshotsMode renders every demo figure with an annotation already
// applied and writes the composites as PNGs under outDir. It runs headlessly
// without creating a UI window, driving the same click/key path the
// interactive viewer uses.
func runScreenshotsMode(outDir string, style annotate.Style) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	figures, err := buildDemoFigures()
	if err != nil {
		return err
	}

	// A representative interaction per figure: a click somewhere interesting
	// followed by a couple of steps.
	interactions := map[string]struct {
		cx, cy float64
		keys   []annotate.Key
	}{
		"Line":      {cx: 4.7, cy: 0.8, keys: []annotate.Key{annotate.KeyRight}},
		"Scatter":   {cx: 10, cy: 40, keys: nil},
		"Histogram": {cx: 12, cy: 50, keys: []annotate.Key{annotate.KeyLeft}},
		"Image":     {cx: 11.8, cy: 7.2, keys: []annotate.Key{annotate.KeyUp, annotate.KeyRight}},
	}

	for _, f := range figures {
		reg := annotate.NewRegistry()
		ia := plotrender.NewImageAnnotator(f.plot.Image, f.plot.Geom)
		geom := f.plot.Geom
		var labels annotate.LabelSource
		if f.labels != nil {
			labels = annotate.NestedLabels(f.labels)
		}
		axes, err := reg.Attach([]annotate.AxisConfig{{
			Content:  f.plot.Content,
			Renderer: ia,
			View:     func() annotate.View { return geom.View },
		}}, labels, style)
		if err != nil {
			return fmt.Errorf("attach %s: %w", f.name, err)
		}

		in := interactions[f.name]
		reg.Click(axes[0].ID(), in.cx, in.cy)
		for _, k := range in.keys {
			reg.Key(axes[0].ID(), k)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, ia.Image()); err != nil {
			return fmt.Errorf("png encode %s: %w", f.name, err)
		}
		outPath := filepath.Join(outDir, fmt.Sprintf("demo_%s.png", f.name))
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
	}
	return nil
}
