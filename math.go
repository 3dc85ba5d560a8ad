package vitrine

import "github.com/go-gl/mathgl/mgl64"

// Translate returns m post-multiplied by a translation: m * T(v).
func Translate(m Mat4, v Vec3) Mat4 {
	return m.Mul4(mgl64.Translate3D(v.X(), v.Y(), v.Z()))
}

// Scale returns m post-multiplied by a scale: m * S(v).
func Scale(m Mat4, v Vec3) Mat4 {
	return m.Mul4(mgl64.Scale3D(v.X(), v.Y(), v.Z()))
}

// Translation extracts the translation component of m.
func Translation(m Mat4) Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// Scaling extracts the per-axis scale of m as the length of each basis column.
// The result is always non-negative.
func Scaling(m Mat4) Vec3 {
	return Vec3{
		m.Col(0).Vec3().Len(),
		m.Col(1).Vec3().Len(),
		m.Col(2).Vec3().Len(),
	}
}

// modelMatrix composes the model transform of an object:
//
//	T(position) -> [T(+dimensions/2)] -> S(size) -> [T(-dimensions/2)]
//
// The bracketed steps apply only for OriginCenter, which makes the object
// scale around its own center instead of its corner.
func modelMatrix(position, size Vec3, origin Origin, dimensions Vec2) Mat4 {
	m := Translate(mgl64.Ident4(), position)
	half := Vec3{dimensions.X() * 0.5, dimensions.Y() * 0.5, 0}
	if origin == OriginCenter {
		m = Translate(m, half)
	}
	m = Scale(m, size)
	if origin == OriginCenter {
		m = Translate(m, half.Mul(-1))
	}
	return m
}

// Lerp linearly interpolates from a to b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec2 interpolates each component of a toward b by t.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t)}
}

// LerpVec3 interpolates each component of a toward b by t.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t), Lerp(a[2], b[2], t)}
}

// LerpVec4 interpolates each component of a toward b by t.
func LerpVec4(a, b Vec4, t float64) Vec4 {
	return Vec4{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t), Lerp(a[2], b[2], t), Lerp(a[3], b[3], t)}
}

// ToClipspace maps a device-pixel position into [-1, 1] on each axis of the
// given viewport size. It is independent of the camera projection and is
// used for drag offsets.
func ToClipspace(pos, size Vec2) Vec2 {
	return Vec2{pos[0]/size[0]*2 - 1, pos[1]/size[1]*2 - 1}
}

// smoothstep is the GLSL smoothstep.
func smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}
