package annoview

import (
	fyne "fyne.io/fyne/v2"

	"github.com/mmoraschini/annoplot/src/annotate"
)

// Router forwards canvas-level key events to the overlay the pointer is
// currently over, mirroring how the pointer position picks the target axis.
// Keys pressed while no annotated axis is hovered are dropped.
type Router struct {
	reg      *annotate.Registry
	overlays []*Overlay
}

// NewRouter creates a router for one registry.
func NewRouter(reg *annotate.Registry) *Router {
	return &Router{reg: reg}
}

// Add registers an overlay for key dispatch.
func (r *Router) Add(o *Overlay) {
	r.overlays = append(r.overlays, o)
}

// InstallKeys hooks the router into a window canvas.
func (r *Router) InstallKeys(c fyne.Canvas) {
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		k, ok := keyFor(ev.Name)
		if !ok {
			return
		}
		for _, o := range r.overlays {
			if o.hovering && o.axis != nil {
				r.reg.Key(o.axis.ID(), k)
				return
			}
		}
	})
}

// keyFor normalizes a Fyne key name to an annotation key. Escape, delete and
// backspace all clear.
func keyFor(name fyne.KeyName) (annotate.Key, bool) {
	switch name {
	case fyne.KeyLeft:
		return annotate.KeyLeft, true
	case fyne.KeyRight:
		return annotate.KeyRight, true
	case fyne.KeyUp:
		return annotate.KeyUp, true
	case fyne.KeyDown:
		return annotate.KeyDown, true
	case fyne.KeyEscape, fyne.KeyDelete, fyne.KeyBackspace:
		return annotate.KeyClear, true
	default:
		return 0, false
	}
}
