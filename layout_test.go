package vitrine

import "testing"

func TestGridLayoutPlace(t *testing.T) {
	l := GridLayout{Columns: 2, Gap: 10, Margin: 20}
	sizes := []Vec2{{100, 50}, {100, 100}, {200, 100}}
	rects := l.Place(230, sizes)

	// Column width: (230 - 40 - 10) / 2 = 90.
	want := []Rect{
		{X: 20, Y: 20, Width: 90, Height: 45},
		{X: 120, Y: 20, Width: 90, Height: 90},
		{X: 20, Y: 120, Width: 90, Height: 45},
	}
	if len(rects) != len(want) {
		t.Fatalf("got %d rects, want %d", len(rects), len(want))
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Errorf("rect %d = %+v, want %+v", i, rects[i], want[i])
		}
	}
}

func TestGridLayoutDeterministic(t *testing.T) {
	l := GridLayout{Columns: 3, Gap: 4, Margin: 8}
	sizes := []Vec2{{640, 480}, {480, 640}, {500, 500}, {1920, 1080}}
	a := l.Place(1024, sizes)
	b := l.Place(1024, sizes)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("rect %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGridLayoutZeroWidthImage(t *testing.T) {
	rects := GridLayout{Columns: 1}.Place(100, []Vec2{{0, 0}})
	if rects[0].Height != 100 {
		t.Errorf("Height = %v, want a square cell", rects[0].Height)
	}
}

func TestGridLayoutClampsColumns(t *testing.T) {
	rects := GridLayout{}.Place(100, []Vec2{{10, 10}, {10, 10}})
	if rects[1].Y <= rects[0].Y {
		t.Error("zero Columns should place one image per row")
	}
}
