package vitrine

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates a single float64 through a setter using gween. Call Update
// each frame; Done becomes true once the duration has elapsed.
type Tween struct {
	tween *gween.Tween
	set   func(float64)
	Done  bool
}

// NewTween creates a tween from from to to over duration seconds. set
// receives every interpolated value.
func NewTween(from, to float64, duration float32, fn ease.TweenFunc, set func(float64)) *Tween {
	return &Tween{
		tween: gween.New(float32(from), float32(to), duration, fn),
		set:   set,
	}
}

// Update advances the tween by dt seconds and applies the value.
func (t *Tween) Update(dt float32) {
	if t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	t.set(float64(val))
	t.Done = finished
}

// TweenZoom creates a tween that animates img's texture zoom to the given
// value.
func TweenZoom(img *Image, to float64, duration float32, fn ease.TweenFunc) *Tween {
	return NewTween(img.Zoom(), to, duration, fn, img.SetZoom)
}

// TweenOpacity creates a tween that animates obj's opacity to the given value.
func TweenOpacity(obj *Object, to float64, duration float32, fn ease.TweenFunc) *Tween {
	return NewTween(obj.Opacity(), to, duration, fn, obj.SetOpacity)
}

type keyedTween struct {
	key   string
	tween *Tween
}

// Tweens runs a set of keyed tweens. Starting a tween under a key that is
// already running replaces the running one; there is no other cancellation.
//
// There is no global animation manager; the owner calls Update itself.
type Tweens struct {
	active []keyedTween
}

// Start runs t under key, replacing any tween already running under key.
func (ts *Tweens) Start(key string, t *Tween) {
	for i := range ts.active {
		if ts.active[i].key == key {
			ts.active[i].tween = t
			return
		}
	}
	ts.active = append(ts.active, keyedTween{key: key, tween: t})
}

// Update advances every tween by dt seconds in start order and drops the
// finished ones.
func (ts *Tweens) Update(dt float32) {
	kept := ts.active[:0]
	for _, kt := range ts.active {
		kt.tween.Update(dt)
		if !kt.tween.Done {
			kept = append(kept, kt)
		}
	}
	for i := len(kept); i < len(ts.active); i++ {
		ts.active[i] = keyedTween{}
	}
	ts.active = kept
}

// Len returns the number of running tweens.
func (ts *Tweens) Len() int {
	return len(ts.active)
}

// Running reports whether a tween is running under key.
func (ts *Tweens) Running(key string) bool {
	for _, kt := range ts.active {
		if kt.key == key {
			return true
		}
	}
	return false
}
