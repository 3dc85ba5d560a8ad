package vitrine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerListener consumes pointer input in device pixels. Scene is the
// listener in practice.
type PointerListener interface {
	PointerDown(x, y float64, touch bool)
	PointerMove(x, y float64, touch bool)
	PointerUp(x, y float64, touch bool)
	// Click follows a PointerUp that completed a press, mirroring the
	// browser's click event.
	Click()
}

// InputSource delivers pointer input to attached listeners.
type InputSource interface {
	Attach(l PointerListener)
	Detach(l PointerListener)
}

// Poller is implemented by sources that must be polled once per frame.
type Poller interface {
	Poll()
}

// listenerSet is the attach/detach bookkeeping shared by input sources.
type listenerSet struct {
	listeners []PointerListener
}

// Attach adds l. Attaching the same listener twice is a no-op.
func (ls *listenerSet) Attach(l PointerListener) {
	for _, existing := range ls.listeners {
		if existing == l {
			return
		}
	}
	ls.listeners = append(ls.listeners, l)
}

// Detach removes l.
func (ls *listenerSet) Detach(l PointerListener) {
	for i, existing := range ls.listeners {
		if existing == l {
			copy(ls.listeners[i:], ls.listeners[i+1:])
			ls.listeners[len(ls.listeners)-1] = nil
			ls.listeners = ls.listeners[:len(ls.listeners)-1]
			return
		}
	}
}

func (ls *listenerSet) down(x, y float64, touch bool) {
	for _, l := range ls.listeners {
		l.PointerDown(x, y, touch)
	}
}

func (ls *listenerSet) move(x, y float64, touch bool) {
	for _, l := range ls.listeners {
		l.PointerMove(x, y, touch)
	}
}

func (ls *listenerSet) up(x, y float64, touch bool) {
	for _, l := range ls.listeners {
		l.PointerUp(x, y, touch)
	}
}

func (ls *listenerSet) click() {
	for _, l := range ls.listeners {
		l.Click()
	}
}

// EbitenInput reads the mouse (left button) and the primary touch from
// ebiten. Coordinates are in the game's layout space, which the gallery sets
// to device pixels.
type EbitenInput struct {
	listenerSet

	lastX, lastY int
	havePos      bool

	touchID        ebiten.TouchID
	touching       bool
	touchX, touchY int
	pressedBuf     []ebiten.TouchID
}

// NewEbitenInput creates an input source backed by ebiten's input state.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// Poll reads this tick's input and notifies listeners. Must be called from
// ebiten's Update.
func (in *EbitenInput) Poll() {
	in.pollMouse()
	in.pollTouch()
}

func (in *EbitenInput) pollMouse() {
	x, y := ebiten.CursorPosition()
	if !in.havePos || x != in.lastX || y != in.lastY {
		in.havePos = true
		in.lastX, in.lastY = x, y
		in.move(float64(x), float64(y), false)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.down(float64(x), float64(y), false)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.up(float64(x), float64(y), false)
		in.click()
	}
}

func (in *EbitenInput) pollTouch() {
	if in.touching {
		if inpututil.IsTouchJustReleased(in.touchID) {
			x, y := inpututil.TouchPositionInPreviousTick(in.touchID)
			in.touching = false
			in.up(float64(x), float64(y), true)
			in.click()
			return
		}
		x, y := ebiten.TouchPosition(in.touchID)
		if x != in.touchX || y != in.touchY {
			in.touchX, in.touchY = x, y
			in.move(float64(x), float64(y), true)
		}
		return
	}

	in.pressedBuf = inpututil.AppendJustPressedTouchIDs(in.pressedBuf[:0])
	if len(in.pressedBuf) == 0 {
		return
	}
	in.touchID = in.pressedBuf[0]
	in.touching = true
	in.touchX, in.touchY = ebiten.TouchPosition(in.touchID)
	in.down(float64(in.touchX), float64(in.touchY), true)
}
