package vitrine

import (
	"image/color"
	"testing"
)

func TestTypedHandlersIgnoreOtherEvents(t *testing.T) {
	hovers, clicks := 0, 0
	h := HoverHandler(func(HoverEvent) { hovers++ })
	c := ClickHandler(func(ClickEvent) { clicks++ })

	h(ClickEvent{})
	c(HoverEvent{})
	if hovers != 0 || clicks != 0 {
		t.Errorf("mismatched events delivered: hovers=%d clicks=%d", hovers, clicks)
	}
	h(HoverEvent{Over: true})
	c(ClickEvent{})
	if hovers != 1 || clicks != 1 {
		t.Errorf("hovers=%d clicks=%d, want 1 each", hovers, clicks)
	}
}

func TestEventTableUnknownType(t *testing.T) {
	var table eventTable
	called := false
	table.on(EventType(200), func(Event) { called = true })
	table.dispatch(PointerEvent{Kind: EventType(200)})
	if called {
		t.Error("out-of-range event type should be ignored")
	}
}

func TestPointerEventType(t *testing.T) {
	e := PointerEvent{Kind: EventPointerUp}
	if e.Type() != EventPointerUp {
		t.Errorf("Type = %v, want pointerup", e.Type())
	}
}

func TestEventTypeString(t *testing.T) {
	tests := map[EventType]string{
		EventHover:       "hover",
		EventClick:       "click",
		EventPointerDown: "pointerdown",
		EventPointerMove: "pointermove",
		EventPointerUp:   "pointerup",
		EventType(99):    "unknown",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("EventType(%d).String() = %q, want %q", typ, got, want)
		}
	}
	if OriginCenter.String() != "center" || OriginDefault.String() != "default" {
		t.Error("Origin names mismatch")
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	want := color.RGBA{R: 128, G: 64, B: 0, A: 128}
	if got != want {
		t.Errorf("toRGBA = %v, want %v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 10}
	if !r.Contains(10, 20) || !r.Contains(30, 10) {
		t.Error("edges should be inside")
	}
	if r.Contains(31, 15) {
		t.Error("point right of the rect reported inside")
	}
}
