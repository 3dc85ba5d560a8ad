package vitrine

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D vector used for device-pixel points, clip-space offsets and
// per-axis sizes.
type Vec2 = mgl64.Vec2

// Vec3 is a 3D vector used for world positions, scale factors and extents.
type Vec3 = mgl64.Vec3

// Vec4 is a homogeneous 4D vector.
type Vec4 = mgl64.Vec4

// Mat4 is a column-major 4x4 transform matrix.
type Mat4 = mgl64.Mat4

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R float64 `toml:"r"`
	G float64 `toml:"g"`
	B float64 `toml:"b"`
	A float64 `toml:"a"`
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Rect is an axis-aligned rectangle in device pixels. The origin is the
// top-left corner, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Origin selects the pivot an Object scales around.
type Origin uint8

const (
	OriginDefault Origin = iota // scale around the object's corner
	OriginCenter                // scale around the object's own center
)

// String returns the origin name.
func (o Origin) String() string {
	switch o {
	case OriginCenter:
		return "center"
	default:
		return "default"
	}
}

// EventType identifies a kind of scene graph event.
type EventType uint8

const (
	EventHover       EventType = iota // fires when an object's hover latch flips
	EventClick                        // fires on a click without movement over a hovered object
	EventPointerDown                  // fires when a pointer is pressed
	EventPointerMove                  // fires when a pointer moves
	EventPointerUp                    // fires when a pointer is released
	eventTypeCount
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventHover:
		return "hover"
	case EventClick:
		return "click"
	case EventPointerDown:
		return "pointerdown"
	case EventPointerMove:
		return "pointermove"
	case EventPointerUp:
		return "pointerup"
	default:
		return "unknown"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
