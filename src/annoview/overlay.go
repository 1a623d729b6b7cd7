package annoview

import (
	"image/color"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/mmoraschini/annoplot/src/annotate"
	"github.com/mmoraschini/annoplot/src/plotrender"
)

const (
	calloutPad = 6
	markerSize = 8
)

// Overlay is the interactive annotation layer above one chart image. It
// implements annotate.Renderer (the core asks it to draw/remove the callout
// and marker) plus fyne.Tappable and desktop.Hoverable (clicks become
// nearest-point lookups; hover decides which axis receives key events).
type Overlay struct {
	widget.BaseWidget

	img  *canvas.Image
	geom plotrender.Geom

	reg  *annotate.Registry
	axis *annotate.Axis

	hovering bool
	pending  *drawReq
}

// drawReq is the annotation the core asked us to show, kept in data space
// so resizing the widget re-places it correctly.
type drawReq struct {
	view annotate.View
	pt   annotate.Point
	text string
	st   annotate.Style
}

// NewOverlay builds an overlay for a rendered plot. Bind must be called
// after the axis has been attached to a registry.
func NewOverlay(img *canvas.Image, geom plotrender.Geom) *Overlay {
	o := &Overlay{img: img, geom: geom}
	o.ExtendBaseWidget(o)
	return o
}

// Bind wires the overlay to its registered axis.
func (o *Overlay) Bind(reg *annotate.Registry, axis *annotate.Axis) {
	o.reg = reg
	o.axis = axis
}

// View reports the data extent of the rendered plot; handed to Attach as the
// axis view query.
func (o *Overlay) View() annotate.View { return o.geom.View }

// ChartImage returns the chart image canvas the overlay sits on, for layout
// stacking.
func (o *Overlay) ChartImage() *canvas.Image { return o.img }

// Draw implements annotate.Renderer. The actual artists are created by the
// widget renderer during layout; here we just record what to show.
func (o *Overlay) Draw(v annotate.View, pt annotate.Point, text string, st annotate.Style) (annotate.Handle, error) {
	o.pending = &drawReq{view: v, pt: pt, text: text, st: st}
	o.Refresh()
	return &overlayHandle{o: o}, nil
}

type overlayHandle struct {
	o *Overlay
}

func (h *overlayHandle) Remove() {
	if h.o == nil {
		return
	}
	h.o.pending = nil
	h.o.Refresh()
	h.o = nil
}

// Tapped maps the tap through the contain-fit rect and the plot geometry to
// a data coordinate and routes it as a click. Taps outside the plot area are
// ignored.
func (o *Overlay) Tapped(ev *fyne.PointEvent) {
	if o.reg == nil || o.axis == nil {
		return
	}
	size := o.Size()
	imgW, imgH := o.imageSize()
	px, py, ok := viewToImage(ev.Position.X, ev.Position.Y, imgW, imgH, size.Width, size.Height)
	if !ok {
		return
	}
	if !o.geom.InPlot(float64(px), float64(py)) {
		return
	}
	x, y := o.geom.ImageToData(float64(px), float64(py))
	o.reg.Click(o.axis.ID(), x, y)
}

// MouseIn marks this overlay as the key-event target.
func (o *Overlay) MouseIn(*desktop.MouseEvent) { o.hovering = true }

// MouseMoved is required by desktop.Hoverable.
func (o *Overlay) MouseMoved(*desktop.MouseEvent) {}

// MouseOut releases the key-event target.
func (o *Overlay) MouseOut() { o.hovering = false }

func (o *Overlay) imageSize() (float32, float32) {
	if o.img != nil && o.img.Image != nil {
		b := o.img.Image.Bounds()
		return float32(b.Dx()), float32(b.Dy())
	}
	return float32(o.geom.Width), float32(o.geom.Height)
}

// CreateRenderer builds the annotation artists: a square marker, the callout
// background box and one text line per callout line.
func (o *Overlay) CreateRenderer() fyne.WidgetRenderer {
	marker := canvas.NewRectangle(color.Transparent)
	bg := canvas.NewRectangle(color.Transparent)
	return &overlayRenderer{o: o, marker: marker, bg: bg}
}

type overlayRenderer struct {
	o      *Overlay
	marker *canvas.Rectangle
	bg     *canvas.Rectangle
	texts  []*canvas.Text
}

func (r *overlayRenderer) Destroy() {}

func (r *overlayRenderer) MinSize() fyne.Size { return fyne.NewSize(10, 10) }

func (r *overlayRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.marker, r.bg}
	for _, t := range r.texts {
		objs = append(objs, t)
	}
	return objs
}

func (r *overlayRenderer) Refresh() {
	r.Layout(r.o.Size())
	r.marker.Refresh()
	r.bg.Refresh()
	for _, t := range r.texts {
		t.Refresh()
	}
}

func (r *overlayRenderer) Layout(size fyne.Size) {
	req := r.o.pending
	if req == nil {
		r.hide()
		return
	}

	imgW, imgH := r.o.imageSize()

	// Marker: a small filled square centered on the data point.
	mpx, mpy := r.o.geom.DataToImage(req.pt.X, req.pt.Y)
	mvx, mvy := imageToView(float32(mpx), float32(mpy), imgW, imgH, size.Width, size.Height)
	r.marker.FillColor = req.st.MarkerColor
	r.marker.StrokeWidth = 0
	r.marker.Resize(fyne.NewSize(markerSize, markerSize))
	r.marker.Move(fyne.NewPos(mvx-markerSize/2, mvy-markerSize/2))

	// Callout: offset by 1/50 of the visible span per axis, measured, then
	// clamped once against the drawn plot-area rectangle.
	tpx, tpy := r.o.geom.DataToImage(req.pt.X+req.view.XRange()/50, req.pt.Y+req.view.YRange()/50)
	tvx, tvy := imageToView(float32(tpx), float32(tpy), imgW, imgH, size.Width, size.Height)

	r.rebuildTexts(req)
	var textW, textH float32
	for _, t := range r.texts {
		ms := t.MinSize()
		if ms.Width > textW {
			textW = ms.Width
		}
		textH += ms.Height
	}
	boxW := textW + 2*calloutPad
	boxH := textH + 2*calloutPad

	// Plot-area bounds in view coordinates.
	leftV, topV := imageToView(float32(r.o.geom.PadLeft), float32(r.o.geom.PadTop), imgW, imgH, size.Width, size.Height)
	rightV, bottomV := imageToView(float32(r.o.geom.Width)-float32(r.o.geom.PadRight), float32(r.o.geom.Height)-float32(r.o.geom.PadBottom), imgW, imgH, size.Width, size.Height)
	if tvx+boxW > rightV {
		tvx = rightV - boxW
	}
	if tvy+boxH > bottomV {
		tvy = bottomV - boxH
	}
	if tvx < leftV {
		tvx = leftV
	}
	if tvy < topV {
		tvy = topV
	}

	r.bg.FillColor = req.st.FaceColor
	r.bg.StrokeColor = req.st.EdgeColor
	r.bg.StrokeWidth = 1
	r.bg.Resize(fyne.NewSize(boxW, boxH))
	r.bg.Move(fyne.NewPos(tvx, tvy))

	y := tvy + calloutPad
	for _, t := range r.texts {
		t.Move(fyne.NewPos(tvx+calloutPad, y))
		y += t.MinSize().Height
	}
}

func (r *overlayRenderer) rebuildTexts(req *drawReq) {
	lines := strings.Split(req.text, "\n")
	if len(r.texts) != len(lines) {
		r.texts = make([]*canvas.Text, len(lines))
		for i := range r.texts {
			r.texts[i] = canvas.NewText("", req.st.EdgeColor)
			r.texts[i].TextSize = 12
		}
	}
	for i, ln := range lines {
		r.texts[i].Text = ln
		r.texts[i].Color = req.st.EdgeColor
	}
}

func (r *overlayRenderer) hide() {
	off := fyne.NewPos(-1000, -1000)
	r.marker.Resize(fyne.NewSize(0, 0))
	r.marker.Move(off)
	r.bg.Resize(fyne.NewSize(0, 0))
	r.bg.Move(off)
	for _, t := range r.texts {
		t.Move(off)
	}
}

var (
	_ annotate.Renderer = (*Overlay)(nil)
	_ fyne.Tappable     = (*Overlay)(nil)
	_ desktop.Hoverable = (*Overlay)(nil)
)
