package annotate

import (
	"fmt"
	"image/color"
)

// Point is a data-space coordinate.
type Point struct {
	X, Y float64
}

// Handle owns one drawn callout+marker pair. Remove releases both artists;
// it must be safe to call on a handle whose surface is already gone.
type Handle interface {
	Remove()
}

// Renderer draws annotations on one axis's drawing surface. Draw places a
// text callout offset from pt by 1/50 of the visible span in each direction
// and a square marker exactly at pt, keeping the callout inside the visible
// area and leaving the view limits untouched.
type Renderer interface {
	Draw(v View, pt Point, text string, st Style) (Handle, error)
}

// Style holds the three caller-tunable annotation style parameters.
type Style struct {
	MarkerColor color.Color // marker glyph fill, default red
	FaceColor   color.Color // callout background, default white
	EdgeColor   color.Color // callout border, default black
}

// DefaultStyle returns the documented defaults (red marker, white face,
// black edge).
func DefaultStyle() Style {
	return Style{
		MarkerColor: color.RGBA{R: 220, G: 40, B: 40, A: 255},
		FaceColor:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		EdgeColor:   color.RGBA{R: 0, G: 0, B: 0, A: 255},
	}
}

func (st Style) withDefaults() Style {
	def := DefaultStyle()
	if st.MarkerColor == nil {
		st.MarkerColor = def.MarkerColor
	}
	if st.FaceColor == nil {
		st.FaceColor = def.FaceColor
	}
	if st.EdgeColor == nil {
		st.EdgeColor = def.EdgeColor
	}
	return st
}

// Axis is the per-axis display state machine: Idle (nothing shown) or
// Showing (one identifier, one drawn handle). The two fields move together;
// at no point is a handle live without a shown identifier or vice versa.
type Axis struct {
	id      AxisID
	content Content
	labels  AxisLabels
	rend    Renderer
	view    func() View
	style   Style

	shown  *ShownID
	handle Handle
}

// ID returns the registry identifier assigned at attach time.
func (a *Axis) ID() AxisID { return a.id }

// Content returns the annotatable content this axis was registered with.
func (a *Axis) Content() Content { return a.content }

// Shown reports the currently annotated identifier, if any.
func (a *Axis) Shown() (ShownID, bool) {
	if a.shown == nil {
		return ShownID{}, false
	}
	return *a.shown, true
}

// Click runs the nearest-point lookup for a press at data coordinate (x, y)
// and redraws the annotation on the winning sample. A click that resolves to
// nothing (empty axis, image click outside the grid) leaves the state alone.
func (a *Axis) Click(x, y float64) error {
	hit, ok, err := Nearest(a.content, a.labels, a.view(), x, y)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return a.show(hit)
}

// Key applies a key press. Arrow keys step the shown element and are ignored
// while idle; KeyClear always returns the axis to idle. Stepping past a
// boundary keeps the current annotation without redrawing.
func (a *Axis) Key(k Key) error {
	if a.shown == nil {
		return nil
	}
	if k == KeyClear {
		a.release()
		return nil
	}
	hit, moved, err := Step(a.content, a.labels, *a.shown, k)
	if err != nil {
		return err
	}
	if !moved {
		return nil
	}
	return a.show(hit)
}

// Clear removes any drawn annotation and resets the axis to idle.
func (a *Axis) Clear() { a.release() }

// show replaces the current annotation with one for hit. The old handle is
// always released first so a failed draw can never leak the previous
// artists; on failure the axis ends up idle.
func (a *Axis) show(hit Hit) error {
	a.release()
	kind, err := a.content.check()
	if err != nil {
		return err
	}
	h, err := a.rend.Draw(a.view(), Point{X: hit.X, Y: hit.Y}, CalloutText(kind, hit), a.style)
	if err != nil {
		return fmt.Errorf("draw annotation: %w", err)
	}
	id := hit.ID
	a.handle = h
	a.shown = &id
	return nil
}

func (a *Axis) release() {
	if a.handle != nil {
		a.handle.Remove()
	}
	a.handle = nil
	a.shown = nil
}
