package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmoraschini/annoplot/src/annotate"
)

func TestRunScreenshotsMode_WritesDecodablePNGs(t *testing.T) {
	dir := t.TempDir()
	if err := runScreenshotsMode(dir, annotate.DefaultStyle()); err != nil {
		t.Fatalf("screenshots mode: %v", err)
	}
	for _, name := range []string{"Line", "Scatter", "Histogram", "Image"} {
		p := filepath.Join(dir, "demo_"+name+".png")
		f, err := os.Open(p)
		if err != nil {
			t.Fatalf("missing screenshot %s: %v", p, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s: not a decodable PNG: %v", p, err)
		}
		if img.Bounds().Dx() < 100 || img.Bounds().Dy() < 100 {
			t.Fatalf("%s: implausibly small screenshot %v", p, img.Bounds())
		}
	}
}
