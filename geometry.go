package vitrine

// PlaneConfig describes a subdivided rectangle.
type PlaneConfig struct {
	Width, Height float64
	// SubdivisionsX and SubdivisionsY are cell counts per axis. Values below
	// 1 are treated as 1.
	SubdivisionsX int
	SubdivisionsY int
}

// Plane builds a subdivided rectangle from independent, non-indexed
// triangles: one quad (6 vertices, 2 triangles) per cell, cells in row-major
// order. It returns two parallel buffers with 3 floats per vertex: positions
// in [0,Width]x[0,Height] at z=0, and UVs in [0,1] with z fixed at 0.
func Plane(cfg PlaneConfig) (positions, uvs []float32) {
	subX := max(cfg.SubdivisionsX, 1)
	subY := max(cfg.SubdivisionsY, 1)

	quadW := cfg.Width / float64(subX)
	quadH := cfg.Height / float64(subY)
	uvW := 1 / float64(subX)
	uvH := 1 / float64(subY)

	n := subX * subY * 6 * 3
	positions = make([]float32, 0, n)
	uvs = make([]float32, 0, n)

	for y := 0; y < subY; y++ {
		for x := 0; x < subX; x++ {
			positions = appendQuad(positions, float64(x)*quadW, float64(y)*quadH, quadW, quadH)
			uvs = appendQuad(uvs, float64(x)*uvW, float64(y)*uvH, uvW, uvH)
		}
	}
	return positions, uvs
}

// appendQuad appends the two triangles (x,y)-(x2,y)-(x,y2) and
// (x,y2)-(x2,y)-(x2,y2).
func appendQuad(buf []float32, x, y, w, h float64) []float32 {
	x1, y1 := float32(x), float32(y)
	x2, y2 := float32(x+w), float32(y+h)
	return append(buf,
		x1, y1, 0,
		x2, y1, 0,
		x1, y2, 0,
		x1, y2, 0,
		x2, y1, 0,
		x2, y2, 0,
	)
}
