package vitrine

import "github.com/hajimehoshi/ebiten/v2"

// Default plane subdivisions for image quads.
const (
	defaultSubdivisionsX = 3
	defaultSubdivisionsY = 4
)

// ImageConfig configures NewImage.
type ImageConfig struct {
	Texture *ebiten.Image
	// Position and Dimensions are in world units, usually from
	// Camera.Unproject of the image's layout rect.
	Position   Vec3
	Dimensions Vec2
	// SubdivisionsX and SubdivisionsY default to 3 and 4.
	SubdivisionsX int
	SubdivisionsY int
	// Smoothing is passed to the underlying Object.
	Smoothing float64
	// Zoom is the initial texture zoom. Zero means 1.
	Zoom     float64
	Renderer *Renderer
}

// Image is a textured, subdivided quad in the scene graph.
type Image struct {
	*Object

	texture    *ebiten.Image
	zoom       float64
	resolution Vec2
}

// NewImage creates an image object whose draw callback renders cfg.Texture
// through cfg.Renderer.
func NewImage(cfg ImageConfig) *Image {
	subX := cfg.SubdivisionsX
	if subX == 0 {
		subX = defaultSubdivisionsX
	}
	subY := cfg.SubdivisionsY
	if subY == 0 {
		subY = defaultSubdivisionsY
	}
	zoom := cfg.Zoom
	if zoom == 0 {
		zoom = 1
	}

	img := &Image{
		texture: cfg.Texture,
		zoom:    zoom,
	}
	if cfg.Texture != nil {
		b := cfg.Texture.Bounds()
		img.resolution = Vec2{float64(b.Dx()), float64(b.Dy())}
	}

	img.Object = NewObject(ObjectConfig{
		Position:   cfg.Position,
		Dimensions: cfg.Dimensions,
		Smoothing:  cfg.Smoothing,
	})

	if cfg.Renderer != nil {
		dims := img.Dimensions()
		pos, uv := Plane(PlaneConfig{
			Width:         dims.X(),
			Height:        dims.Y(),
			SubdivisionsX: subX,
			SubdivisionsY: subY,
		})
		img.SetDrawFunc(cfg.Renderer.Quad(QuadConfig{
			Texture:   cfg.Texture,
			Positions: pos,
			UVs:       uv,
			Zoom:      img.Zoom,
		}))
	}
	return img
}

// SetZoom sets the texture zoom. 1 shows the whole texture; larger values
// magnify it about the center.
func (img *Image) SetZoom(z float64) {
	img.zoom = z
}

// Zoom returns the texture zoom.
func (img *Image) Zoom() float64 {
	return img.zoom
}

// Texture returns the image's texture.
func (img *Image) Texture() *ebiten.Image {
	return img.texture
}

// Resolution returns the texture size in pixels.
func (img *Image) Resolution() Vec2 {
	return img.resolution
}
