package vitrine

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// waveStart is where along the UV diagonal the progress wave begins.
const waveStart = 0.5

// RenderStats counts the work submitted since the last Begin.
type RenderStats struct {
	DrawCalls int
	Triangles int
	// Clipped counts triangles dropped for having a vertex behind the camera.
	Clipped int
}

// QuadConfig describes a textured mesh drawn by Renderer.Quad.
type QuadConfig struct {
	Texture *ebiten.Image
	// Positions and UVs are parallel buffers of 3 floats per vertex, as
	// produced by Plane.
	Positions []float32
	UVs       []float32
	// Zoom returns the texture zoom about the quad's center. Nil means 1.
	Zoom func() float64
}

// Renderer is the drawing backend for scene objects. It runs the vertex
// stage on the CPU (projection * view * model), maps the result to target
// pixels and submits textured triangles through ebiten.
type Renderer struct {
	target  *ebiten.Image
	targetW float64
	targetH float64

	verts []ebiten.Vertex
	inds  []uint32
	stats RenderStats
}

// NewRenderer creates a renderer. Call Begin before drawing each frame.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Begin sets the image this frame draws into and resets the stats.
func (r *Renderer) Begin(target *ebiten.Image) {
	r.target = target
	r.stats = RenderStats{}
	if target != nil {
		b := target.Bounds()
		r.targetW = float64(b.Dx())
		r.targetH = float64(b.Dy())
	}
}

// Stats returns the counters accumulated since Begin.
func (r *Renderer) Stats() RenderStats {
	return r.stats
}

// Quad returns a DrawFunc that draws cfg with the props it is called with.
func (r *Renderer) Quad(cfg QuadConfig) DrawFunc {
	return func(p DrawProps) {
		r.drawQuad(&cfg, p)
	}
}

func (r *Renderer) drawQuad(cfg *QuadConfig, p DrawProps) {
	if r.target == nil || cfg.Texture == nil || p.Opacity <= 0 {
		return
	}
	n := min(len(cfg.Positions), len(cfg.UVs)) / 3
	if n < 3 {
		return
	}

	zoom := 1.0
	if cfg.Zoom != nil {
		zoom = cfg.Zoom()
	}
	tb := cfg.Texture.Bounds()
	tex := texMapping{
		width:    float64(tb.Dx()),
		height:   float64(tb.Dy()),
		scale:    2 - zoom,
		velocity: p.Velocity,
	}
	mvp := p.Projection.Mul4(p.View).Mul4(p.Model)
	alpha := float32(p.Opacity)

	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	var tri [3]ebiten.Vertex
	for t := 0; t+2 < n; t += 3 {
		visible := true
		for k := 0; k < 3; k++ {
			i := (t + k) * 3
			pos := Vec3{float64(cfg.Positions[i]), float64(cfg.Positions[i+1]), float64(cfg.Positions[i+2])}
			uv := Vec2{float64(cfg.UVs[i]), float64(cfg.UVs[i+1])}
			pos = waveDisplace(pos, uv, p.Progress)

			sx, sy, ok := r.projectVertex(mvp, pos)
			if !ok {
				visible = false
				break
			}
			srcX, srcY := tex.source(uv)
			tri[k] = ebiten.Vertex{
				DstX:   float32(sx),
				DstY:   float32(sy),
				SrcX:   float32(srcX),
				SrcY:   float32(srcY),
				ColorR: alpha,
				ColorG: alpha,
				ColorB: alpha,
				ColorA: alpha,
			}
		}
		if !visible {
			r.stats.Clipped++
			continue
		}
		base := uint32(len(r.verts))
		r.verts = append(r.verts, tri[0], tri[1], tri[2])
		r.inds = append(r.inds, base, base+1, base+2)
	}
	if len(r.inds) == 0 {
		return
	}

	var op ebiten.DrawTrianglesOptions
	op.Address = ebiten.AddressClampToZero
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.Filter = ebiten.FilterLinear
	r.target.DrawTriangles32(r.verts, r.inds, cfg.Texture, &op)

	r.stats.DrawCalls++
	r.stats.Triangles += len(r.inds) / 3
}

// projectVertex maps a local-space position to target pixels. ok is false
// when the vertex lies behind the camera.
func (r *Renderer) projectVertex(mvp Mat4, pos Vec3) (x, y float64, ok bool) {
	return projectToViewport(mvp, pos, r.targetW, r.targetH)
}

// projectToViewport applies mvp, performs the perspective divide and maps
// normalized device coordinates to a w x h viewport with a top-left origin.
func projectToViewport(mvp Mat4, pos Vec3, w, h float64) (x, y float64, ok bool) {
	clip := mvp.Mul4x1(Vec4{pos.X(), pos.Y(), pos.Z(), 1})
	cw := clip.W()
	if cw <= 0 {
		return 0, 0, false
	}
	ndcX := clip.X() / cw
	ndcY := clip.Y() / cw
	return (ndcX + 1) / 2 * w, (1 - ndcY) / 2 * h, true
}

// waveDisplace offsets a vertex vertically by a sine wave that sweeps across
// the quad diagonally as progress goes from 0 to 1.
func waveDisplace(pos Vec3, uv Vec2, progress float64) Vec3 {
	if progress == 0 {
		return pos
	}
	startAt := (uv.X() - uv.Y() + 1) / 2 * waveStart
	vprog := smoothstep(startAt, 1, progress)
	return Vec3{pos.X(), pos.Y() + math.Sin(vprog*20), pos.Z()}
}

// texMapping converts a vertex UV into texture pixel coordinates, shifted by
// the drag velocity and zoomed about the texture center.
type texMapping struct {
	width, height float64
	scale         float64
	velocity      Vec2
}

func (m texMapping) source(uv Vec2) (x, y float64) {
	u := uv.X() + m.velocity.X()*2
	v := uv.Y() + m.velocity.Y()*2
	u = (u-0.5)*m.scale + 0.5
	v = (v-0.5)*m.scale + 0.5
	return u * m.width, v * m.height
}
