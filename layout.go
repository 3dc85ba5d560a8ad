package vitrine

// GridLayout places images in rows of equal-width columns, the stand-in for
// the page layout the gallery reads its rects from. All values are device
// pixels.
type GridLayout struct {
	Columns int
	Gap     float64
	Margin  float64
}

// Place returns one rect per entry of sizes (each an image's pixel size), in
// the same order. Cells are row-major; each keeps its image's aspect ratio at
// the column width, and a row is as tall as its tallest cell. The result
// depends only on the inputs.
func (l GridLayout) Place(canvasW float64, sizes []Vec2) []Rect {
	cols := max(l.Columns, 1)
	colW := (canvasW - 2*l.Margin - float64(cols-1)*l.Gap) / float64(cols)
	if colW < 0 {
		colW = 0
	}

	rects := make([]Rect, len(sizes))
	y := l.Margin
	for row := 0; row*cols < len(sizes); row++ {
		rowH := 0.0
		for c := 0; c < cols; c++ {
			i := row*cols + c
			if i >= len(sizes) {
				break
			}
			h := colW
			if s := sizes[i]; s.X() > 0 {
				h = colW * s.Y() / s.X()
			}
			rects[i] = Rect{
				X:      l.Margin + float64(c)*(colW+l.Gap),
				Y:      y,
				Width:  colW,
				Height: h,
			}
			rowH = max(rowH, h)
		}
		y += rowH + l.Gap
	}
	return rects
}
