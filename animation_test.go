package vitrine

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenLinear(t *testing.T) {
	var got float64
	tw := NewTween(0, 10, 1, ease.Linear, func(v float64) { got = v })
	tw.Update(0.5)
	assertNear(t, "halfway", got, 5)
	if tw.Done {
		t.Error("Done after half the duration")
	}
	tw.Update(0.6)
	assertNear(t, "end", got, 10)
	if !tw.Done {
		t.Error("not Done after the full duration")
	}
	tw.Update(1)
	assertNear(t, "after end", got, 10)
}

func TestTweenZoom(t *testing.T) {
	img := NewImage(ImageConfig{Zoom: 1.2})
	tw := TweenZoom(img, 1.25, 0.5, ease.Linear)
	for !tw.Done {
		tw.Update(0.1)
	}
	assertNear(t, "Zoom", img.Zoom(), 1.25)
}

func TestTweenOpacity(t *testing.T) {
	o := NewObject(ObjectConfig{})
	tw := TweenOpacity(o, 0, 0.2, ease.Linear)
	tw.Update(0.1)
	assertNear(t, "Opacity halfway", o.Opacity(), 0.5)
	tw.Update(0.1)
	assertNear(t, "Opacity", o.Opacity(), 0)
}

func TestTweensDropFinished(t *testing.T) {
	var ts Tweens
	ts.Start("a", NewTween(0, 1, 0.1, ease.Linear, func(float64) {}))
	ts.Start("b", NewTween(0, 1, 1, ease.Linear, func(float64) {}))
	if ts.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ts.Len())
	}
	ts.Update(0.2)
	if ts.Len() != 1 || ts.Running("a") || !ts.Running("b") {
		t.Errorf("after update: Len=%d a=%v b=%v", ts.Len(), ts.Running("a"), ts.Running("b"))
	}
}

func TestTweensStartReplacesSameKey(t *testing.T) {
	var ts Tweens
	var got float64
	ts.Start("zoom", NewTween(0, 100, 1, ease.Linear, func(v float64) { got = v }))
	ts.Start("zoom", NewTween(0, 10, 1, ease.Linear, func(v float64) { got = v }))
	if ts.Len() != 1 {
		t.Fatalf("Len = %d, want 1", ts.Len())
	}
	ts.Update(1)
	assertNear(t, "value", got, 10)
}
