package annotate

import "errors"

var (
	// ErrMixedContent is returned when an axis holds both series and image
	// data; nearest-point lookup would be ambiguous across the two.
	ErrMixedContent = errors.New("axis mixes series and image content")

	// ErrLabelShape is returned by Attach when the caller-supplied label
	// structure does not line up with the figure's axes.
	ErrLabelShape = errors.New("label structure does not match figure axes")
)
