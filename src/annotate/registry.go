package annotate

import "fmt"

// AxisID is the stable identifier a registry hands out at attach time.
// Event glue keys its dispatch on this instead of on host-toolkit object
// identity.
type AxisID int

// AxisConfig describes one axis at attach time.
type AxisConfig struct {
	// Content is what is plotted on the axis.
	Content Content
	// Renderer draws and removes this axis's annotation artists.
	Renderer Renderer
	// View reports the axis's current visible extent (queried per event so
	// pan/zoom is always respected).
	View func() View
}

// Registry owns the display state of every annotated axis of one figure and
// routes incoming events to it.
type Registry struct {
	axes map[AxisID]*Axis
	next AxisID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{axes: map[AxisID]*Axis{}}
}

// Attach registers every axis of a figure in one call, validating the label
// shape against the axis count synchronously. This is the only place a
// misconfiguration surfaces as a hard error; from here on events are
// best-effort. Returns the axes in registration order.
func (r *Registry) Attach(axes []AxisConfig, labels LabelSource, style Style) ([]*Axis, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("attach: no axes given")
	}
	if labels == nil {
		labels = NoLabels{}
	}
	perAxis, err := labels.forAxes(len(axes))
	if err != nil {
		return nil, err
	}
	out := make([]*Axis, 0, len(axes))
	for i, cfg := range axes {
		if cfg.Renderer == nil {
			return nil, fmt.Errorf("attach: axis %d has no renderer", i)
		}
		if cfg.View == nil {
			return nil, fmt.Errorf("attach: axis %d has no view query", i)
		}
		a := &Axis{
			id:      r.next,
			content: cfg.Content,
			labels:  perAxis[i],
			rend:    cfg.Renderer,
			view:    cfg.View,
			style:   style.withDefaults(),
		}
		r.axes[a.id] = a
		r.next++
		out = append(out, a)
	}
	return out, nil
}

// Axis looks up a registered axis.
func (r *Registry) Axis(id AxisID) (*Axis, bool) {
	a, ok := r.axes[id]
	return a, ok
}

// Click dispatches a pointer press at data coordinate (x, y) on the given
// axis. Unknown axes are ignored; axis-level failures (mixed content, draw
// errors) are logged and swallowed, matching best-effort interactive
// behavior.
func (r *Registry) Click(id AxisID, x, y float64) {
	a, ok := r.axes[id]
	if !ok {
		return
	}
	if err := a.Click(x, y); err != nil {
		Warnf("axis %d: click dropped: %v", id, err)
	}
}

// Key dispatches a key press on the given axis, with the same best-effort
// semantics as Click.
func (r *Registry) Key(id AxisID, k Key) {
	a, ok := r.axes[id]
	if !ok {
		return
	}
	if err := a.Key(k); err != nil {
		Warnf("axis %d: key %s dropped: %v", id, k, err)
	}
}

// ClearAll resets every registered axis to idle.
func (r *Registry) ClearAll() {
	for _, a := range r.axes {
		a.Clear()
	}
}
