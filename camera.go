package vitrine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	cameraFov  = math.Pi / 4
	cameraNear = 0.001
	cameraFar  = 100
)

// cameraUp points toward -Y so that world Y grows downward on screen, matching
// device-pixel layout coordinates.
var cameraUp = Vec3{0, -1, 0}

// Projection holds the matrices a frame is drawn with.
type Projection struct {
	View       Mat4
	Projection Mat4
}

// UnprojectRequest selects what Unproject converts. Nil fields are skipped.
type UnprojectRequest struct {
	// Position is a device-pixel point (origin top-left); Z passes through.
	Position *Vec3
	// Size is a device-pixel extent; Z passes through.
	Size *Vec3
}

// Unprojected is the world-space result of Unproject. Position defaults to the
// origin and Size to (1, 1, 1) when the matching request field is nil.
type Unprojected struct {
	Position Vec3
	Size     Vec3
}

// Camera is a perspective camera looking at a target from a world position.
// It is the single conversion point between device-pixel layout coordinates
// and the scene's world space.
type Camera struct {
	position Vec3
	target   Vec3
	up       Vec3
	fov      float64

	canvasW float64
	canvasH float64
	aspect  float64
}

// NewCamera creates a camera for a canvas of canvasW x canvasH device pixels.
// A position with Z == 0 collapses every Unproject result to the origin; the
// caller must not place the camera at depth 0.
func NewCamera(canvasW, canvasH float64, position Vec3) *Camera {
	c := &Camera{
		position: position,
		up:       cameraUp,
		fov:      cameraFov,
	}
	c.SetCanvasSize(canvasW, canvasH)
	return c
}

// SetPosition moves the camera.
func (c *Camera) SetPosition(p Vec3) {
	c.position = p
}

// Position returns the camera's world position.
func (c *Camera) Position() Vec3 {
	return c.position
}

// LookAt points the camera at target.
func (c *Camera) LookAt(target Vec3) {
	c.target = target
}

// Target returns the point the camera looks at.
func (c *Camera) Target() Vec3 {
	return c.target
}

// SetCanvasSize updates the canvas size in device pixels and the aspect ratio.
// A zero height leaves the aspect unchanged.
func (c *Camera) SetCanvasSize(w, h float64) {
	c.canvasW = w
	c.canvasH = h
	if h != 0 {
		c.aspect = w / h
	}
}

// CanvasSize returns the canvas size in device pixels.
func (c *Camera) CanvasSize() (w, h float64) {
	return c.canvasW, c.canvasH
}

// Aspect returns the canvas width divided by its height.
func (c *Camera) Aspect() float64 {
	return c.aspect
}

// Fov returns the vertical field of view in radians.
func (c *Camera) Fov() float64 {
	return c.fov
}

// ViewSize returns the world-space extent visible at the camera's distance
// from the z=0 plane.
func (c *Camera) ViewSize() (w, h float64) {
	h = math.Abs(c.position.Z()) * math.Tan(c.fov/2) * 2
	return h * c.aspect, h
}

// Project computes the view and projection matrices for the current camera
// state. Nothing is cached; call it every frame the camera moves.
func (c *Camera) Project() Projection {
	return Projection{
		View:       mgl64.LookAtV(c.position, c.target, c.up),
		Projection: mgl64.Perspective(c.fov, c.aspect, cameraNear, cameraFar),
	}
}

// Unproject converts a device-pixel point and/or extent into world units.
// Extents scale by viewSize/canvasSize per axis. Points scale the same way
// and are then recentered, since device pixels start at the top-left while
// world space is centered on the canvas.
func (c *Camera) Unproject(req UnprojectRequest) Unprojected {
	vw, vh := c.ViewSize()
	out := Unprojected{Size: Vec3{1, 1, 1}}
	if c.canvasW == 0 || c.canvasH == 0 {
		return out
	}

	if req.Size != nil {
		s := *req.Size
		out.Size = Vec3{
			s.X() * vw / c.canvasW,
			s.Y() * vh / c.canvasH,
			s.Z(),
		}
	}

	if req.Position != nil {
		p := *req.Position
		x := p.X() * vw / c.canvasW
		y := p.Y() * vh / c.canvasH
		out.Position = Vec3{x - vw/2, y - vh/2, p.Z()}
	}

	return out
}

// ScreenToWorld converts a device-pixel point into a world-space point on the
// z=0 plane, including the camera's pan on X and Y.
func (c *Camera) ScreenToWorld(px Vec2) Vec3 {
	p := Vec3{px.X(), px.Y(), 0}
	w := c.Unproject(UnprojectRequest{Position: &p}).Position
	return Vec3{w.X() + c.position.X(), w.Y() + c.position.Y(), w.Z()}
}
