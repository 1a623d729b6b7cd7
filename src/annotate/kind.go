package annotate

// Kind tags the renderable content of an axis. One tagged value covers all
// plot types so the locator and navigator can switch on it directly.
type Kind int

const (
	// KindNone means the axis has no annotatable content.
	KindNone Kind = iota
	// KindLine covers line and scatter traces (ordered x/y samples).
	KindLine
	// KindImage covers gridded pixel data annotated per pixel.
	KindImage
	// KindPatch covers histogram bars, annotated at bin centers.
	KindPatch
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindImage:
		return "image"
	case KindPatch:
		return "patch"
	default:
		return "none"
	}
}
