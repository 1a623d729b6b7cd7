package annotate

import "fmt"

// CalloutText builds the text shown in the callout for a hit. Series hits
// show the coordinates, with the label (when present) on a second line.
// Image hits show "row, col" and the pixel value.
func CalloutText(kind Kind, hit Hit) string {
	if kind == KindImage {
		return fmt.Sprintf("%d, %d\n%.4f", hit.ID.Row, hit.ID.Col, hit.Value)
	}
	s := fmt.Sprintf("%.4f, %.4f", hit.X, hit.Y)
	if hit.HasLabel {
		s += "\n" + hit.Label
	}
	return s
}
