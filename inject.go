package vitrine

// syntheticPointerEvent represents a single injected pointer event in device
// pixels.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InputQueue is an input source fed by synthetic events, used by test
// scripts and tests. One event is consumed per Poll, so a click spans two
// frames, like real input.
type InputQueue struct {
	listenerSet

	queue []syntheticPointerEvent
	held  bool
	lastX float64
	lastY float64
}

// NewInputQueue creates an empty queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Len returns the number of queued events.
func (q *InputQueue) Len() int {
	return len(q.queue)
}

// InjectPress queues a pointer press at (x, y).
func (q *InputQueue) InjectPress(x, y float64) {
	q.queue = append(q.queue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move to (x, y). While a press is active this
// is a drag step; otherwise it is a hover move.
func (q *InputQueue) InjectMove(x, y float64) {
	q.queue = append(q.queue, syntheticPointerEvent{x: x, y: y, pressed: q.pressedAtTail()})
}

// InjectRelease queues a pointer release at (x, y).
func (q *InputQueue) InjectRelease(x, y float64) {
	q.queue = append(q.queue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (q *InputQueue) InjectClick(x, y float64) {
	q.InjectPress(x, y)
	q.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (q *InputQueue) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	q.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		q.InjectMove(Lerp(fromX, toX, t), Lerp(fromY, toY, t))
	}
	q.InjectRelease(toX, toY)
}

// pressedAtTail reports whether the pointer will be down once every queued
// event has been consumed.
func (q *InputQueue) pressedAtTail() bool {
	if len(q.queue) == 0 {
		return q.held
	}
	return q.queue[len(q.queue)-1].pressed
}

// Poll pops one event and notifies listeners. A release also produces a
// click, the same as EbitenInput.
func (q *InputQueue) Poll() {
	if len(q.queue) == 0 {
		return
	}
	evt := q.queue[0]
	copy(q.queue, q.queue[1:])
	q.queue = q.queue[:len(q.queue)-1]

	moved := evt.x != q.lastX || evt.y != q.lastY
	q.lastX, q.lastY = evt.x, evt.y

	switch {
	case evt.pressed && !q.held:
		if moved {
			q.move(evt.x, evt.y, false)
		}
		q.held = true
		q.down(evt.x, evt.y, false)
	case !evt.pressed && q.held:
		if moved {
			q.move(evt.x, evt.y, false)
		}
		q.held = false
		q.up(evt.x, evt.y, false)
		q.click()
	default:
		q.move(evt.x, evt.y, false)
	}
}
