// Package annoview glues the annotation core to a Fyne canvas: an overlay
// widget stacked on top of a rendered chart image receives taps and hover,
// draws the callout and marker, and a router forwards canvas key events to
// the axis under the pointer.
//
// The overlay is a separate layer above the chart image, so drawing an
// annotation can never disturb the chart's own scale.
package annoview

// containRect computes where an imgW x imgH image lands inside a
// viewW x viewH box under contain-fit scaling (canvas.ImageFillContain):
// the drawn rectangle's offset, size and scale factor.
func containRect(imgW, imgH, viewW, viewH float32) (drawX, drawY, drawW, drawH, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, viewW, viewH, 1
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	drawW = imgW * scale
	drawH = imgH * scale
	drawX = (viewW - drawW) / 2
	drawY = (viewH - drawH) / 2
	return drawX, drawY, drawW, drawH, scale
}

// viewToImage maps a position in overlay (view) coordinates to image pixel
// coordinates, reporting false when the position falls outside the drawn
// image rectangle.
func viewToImage(vx, vy, imgW, imgH, viewW, viewH float32) (float32, float32, bool) {
	drawX, drawY, drawW, drawH, scale := containRect(imgW, imgH, viewW, viewH)
	if scale <= 0 {
		return 0, 0, false
	}
	if vx < drawX || vx > drawX+drawW || vy < drawY || vy > drawY+drawH {
		return 0, 0, false
	}
	return (vx - drawX) / scale, (vy - drawY) / scale, true
}

// imageToView maps image pixel coordinates to overlay (view) coordinates.
func imageToView(px, py, imgW, imgH, viewW, viewH float32) (float32, float32) {
	drawX, drawY, _, _, scale := containRect(imgW, imgH, viewW, viewH)
	return drawX + px*scale, drawY + py*scale
}
