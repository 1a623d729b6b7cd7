package plotrender

import (
	"image"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mmoraschini/annoplot/src/annotate"
)

const (
	calloutPadPx = 4
	markerSizePx = 7
	lineHeightPx = 13 // basicfont.Face7x13
)

// ImageAnnotator draws annotations straight into a raster copy of a rendered
// plot. It implements annotate.Renderer for headless use (screenshot mode,
// tests): removal re-composites the pristine base image, so the
// at-most-one-annotation rule holds by construction.
type ImageAnnotator struct {
	base image.Image
	geom Geom
	out  *image.RGBA
}

// NewImageAnnotator wraps a rendered plot image. The base image is treated
// as immutable.
func NewImageAnnotator(base image.Image, geom Geom) *ImageAnnotator {
	ia := &ImageAnnotator{base: base, geom: geom}
	ia.reset()
	return ia
}

// Image returns the current composite (base plus any live annotation).
func (ia *ImageAnnotator) Image() image.Image { return ia.out }

func (ia *ImageAnnotator) reset() {
	b := ia.base.Bounds()
	ia.out = image.NewRGBA(b)
	draw.Draw(ia.out, b, ia.base, b.Min, draw.Src)
}

type imageHandle struct {
	ia *ImageAnnotator
}

func (h *imageHandle) Remove() {
	if h.ia != nil {
		h.ia.reset()
		h.ia = nil
	}
}

// Draw stamps a square marker at pt and a callout box offset by 1/50 of the
// visible span per axis, clamped once so the box stays inside the plot area.
func (ia *ImageAnnotator) Draw(v annotate.View, pt annotate.Point, text string, st annotate.Style) (annotate.Handle, error) {
	ia.reset()

	mx, my := ia.geom.DataToImage(pt.X, pt.Y)
	half := markerSizePx / 2
	markerRect := image.Rect(int(mx)-half, int(my)-half, int(mx)+half+1, int(my)+half+1)
	draw.Draw(ia.out, markerRect, image.NewUniform(st.MarkerColor), image.Point{}, draw.Over)

	// Offset the callout in data space, then measure and clamp in pixels.
	tx, ty := ia.geom.DataToImage(pt.X+v.XRange()/50, pt.Y+v.YRange()/50)
	lines := strings.Split(text, "\n")
	face := basicfont.Face7x13
	dr := &font.Drawer{Face: face}
	maxW := 0
	for _, ln := range lines {
		if w := dr.MeasureString(ln).Ceil(); w > maxW {
			maxW = w
		}
	}
	boxW := maxW + 2*calloutPadPx
	boxH := len(lines)*lineHeightPx + 2*calloutPadPx

	left := ia.geom.PadLeft
	top := ia.geom.PadTop
	right := float64(ia.geom.Width) - ia.geom.PadRight
	bottom := float64(ia.geom.Height) - ia.geom.PadBottom
	if tx+float64(boxW) > right {
		tx = right - float64(boxW)
	}
	if ty+float64(boxH) > bottom {
		ty = bottom - float64(boxH)
	}
	if tx < left {
		tx = left
	}
	if ty < top {
		ty = top
	}

	box := image.Rect(int(tx), int(ty), int(tx)+boxW, int(ty)+boxH)
	draw.Draw(ia.out, box, image.NewUniform(st.FaceColor), image.Point{}, draw.Over)
	edge := image.NewUniform(st.EdgeColor)
	draw.Draw(ia.out, image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+1), edge, image.Point{}, draw.Over)
	draw.Draw(ia.out, image.Rect(box.Min.X, box.Max.Y-1, box.Max.X, box.Max.Y), edge, image.Point{}, draw.Over)
	draw.Draw(ia.out, image.Rect(box.Min.X, box.Min.Y, box.Min.X+1, box.Max.Y), edge, image.Point{}, draw.Over)
	draw.Draw(ia.out, image.Rect(box.Max.X-1, box.Min.Y, box.Max.X, box.Max.Y), edge, image.Point{}, draw.Over)

	ascent := face.Metrics().Ascent.Ceil()
	for i, ln := range lines {
		d := &font.Drawer{
			Dst:  ia.out,
			Src:  image.NewUniform(st.EdgeColor),
			Face: face,
			Dot: fixed.Point26_6{
				X: fixed.I(box.Min.X + calloutPadPx),
				Y: fixed.I(box.Min.Y + calloutPadPx + ascent + i*lineHeightPx),
			},
		}
		d.DrawString(ln)
	}

	return &imageHandle{ia: ia}, nil
}
