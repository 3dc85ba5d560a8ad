package vitrine

import (
	"fmt"
	"strings"
	"testing"
)

// pointerLog records listener calls as strings.
type pointerLog struct {
	calls []string
}

func (l *pointerLog) PointerDown(x, y float64, _ bool) {
	l.calls = append(l.calls, fmt.Sprintf("down %v,%v", x, y))
}

func (l *pointerLog) PointerMove(x, y float64, _ bool) {
	l.calls = append(l.calls, fmt.Sprintf("move %v,%v", x, y))
}

func (l *pointerLog) PointerUp(x, y float64, _ bool) {
	l.calls = append(l.calls, fmt.Sprintf("up %v,%v", x, y))
}

func (l *pointerLog) Click() {
	l.calls = append(l.calls, "click")
}

func (l *pointerLog) String() string {
	return strings.Join(l.calls, "; ")
}

func drain(q *InputQueue) int {
	frames := 0
	for q.Len() > 0 {
		q.Poll()
		frames++
	}
	return frames
}

func TestInjectClickSpansTwoFrames(t *testing.T) {
	q := NewInputQueue()
	log := &pointerLog{}
	q.Attach(log)

	q.InjectClick(10, 20)
	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}
	if frames := drain(q); frames != 2 {
		t.Errorf("frames = %d, want 2", frames)
	}
	want := "move 10,20; down 10,20; up 10,20; click"
	if log.String() != want {
		t.Errorf("calls = %q, want %q", log.String(), want)
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	q := NewInputQueue()
	log := &pointerLog{}
	q.Attach(log)

	q.InjectDrag(0, 0, 30, 0, 4)
	if q.Len() != 4 {
		t.Fatalf("Len = %d, want 4", q.Len())
	}
	drain(q)
	want := "down 0,0; move 10,0; move 20,0; move 30,0; up 30,0; click"
	if log.String() != want {
		t.Errorf("calls = %q, want %q", log.String(), want)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	q := NewInputQueue()
	q.InjectDrag(0, 0, 5, 5, 0)
	if q.Len() != 2 {
		t.Errorf("Len = %d, want 2", q.Len())
	}
}

func TestInjectMoveWhilePressed(t *testing.T) {
	q := NewInputQueue()
	log := &pointerLog{}
	q.Attach(log)

	q.InjectPress(1, 1)
	q.InjectMove(2, 2)
	q.InjectMove(3, 3)
	q.InjectRelease(3, 3)
	drain(q)
	want := "move 1,1; down 1,1; move 2,2; move 3,3; up 3,3; click"
	if log.String() != want {
		t.Errorf("calls = %q, want %q", log.String(), want)
	}
}

func TestInputQueuePollEmpty(t *testing.T) {
	q := NewInputQueue()
	log := &pointerLog{}
	q.Attach(log)
	q.Poll()
	if len(log.calls) != 0 {
		t.Errorf("calls = %v, want none", log.calls)
	}
}

func TestInputQueueDetach(t *testing.T) {
	q := NewInputQueue()
	a, b := &pointerLog{}, &pointerLog{}
	q.Attach(a)
	q.Attach(b)
	q.Detach(a)
	q.InjectMove(4, 4)
	q.Poll()
	if len(a.calls) != 0 || len(b.calls) != 1 {
		t.Errorf("a=%v b=%v", a.calls, b.calls)
	}
}

// A scripted click on a hovered object reaches it through the scene.
func TestInputQueueDrivesSceneClick(t *testing.T) {
	s := NewScene()
	q := NewInputQueue()
	s.Attach(q)
	o := NewObject(ObjectConfig{Dimensions: Vec2{10, 10}})
	s.Add(o)
	clicks := 0
	s.OnClick(func(ClickEvent) { clicks++ })

	q.InjectClick(3, 3)
	for q.Len() > 0 {
		s.PollInput()
		s.Update(ViewProps{}, Vec3{5, 5, 0})
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}
