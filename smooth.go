package vitrine

// Smoothable is the set of value types a SmoothValue can interpolate.
type Smoothable interface {
	float64 | Vec2 | Vec3 | Vec4
}

// SmoothValue approaches a target by a fixed fraction of the remaining
// distance on every Update. Stepping is per frame, not per second: with a
// constant target, after n updates the distance left is
// |current0 - target| * (1-factor)^n.
//
// Reading Value returns the current value; SetValue only moves the target.
type SmoothValue[T Smoothable] struct {
	target  T
	current T
	factor  float64
}

// NewSmoothValue creates a SmoothValue at rest on initial. factor must be in
// (0, 1]; values above 1 are clamped to 1. Panics if factor <= 0.
func NewSmoothValue[T Smoothable](initial T, factor float64) *SmoothValue[T] {
	if factor <= 0 {
		panic("vitrine: smoothing factor must be positive")
	}
	if factor > 1 {
		factor = 1
	}
	return &SmoothValue[T]{target: initial, current: initial, factor: factor}
}

// Value returns the current (smoothed) value.
func (s *SmoothValue[T]) Value() T {
	return s.current
}

// SetValue sets the target. The current value is untouched until Update.
func (s *SmoothValue[T]) SetValue(v T) {
	s.target = v
}

// Target returns the value being approached.
func (s *SmoothValue[T]) Target() T {
	return s.target
}

// Factor returns the per-update interpolation fraction.
func (s *SmoothValue[T]) Factor() float64 {
	return s.factor
}

// Snap sets both target and current, ending any approach in progress.
func (s *SmoothValue[T]) Snap(v T) {
	s.target = v
	s.current = v
}

// Update moves current toward target by factor.
func (s *SmoothValue[T]) Update() {
	s.current = lerpSmoothable(s.current, s.target, s.factor)
}

func lerpSmoothable[T Smoothable](a, b T, t float64) T {
	switch av := any(a).(type) {
	case float64:
		return any(Lerp(av, any(b).(float64), t)).(T)
	case Vec2:
		return any(LerpVec2(av, any(b).(Vec2), t)).(T)
	case Vec3:
		return any(LerpVec3(av, any(b).(Vec3), t)).(T)
	case Vec4:
		return any(LerpVec4(av, any(b).(Vec4), t)).(T)
	}
	return b
}
