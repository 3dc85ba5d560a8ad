package vitrine

// Event is a typed scene graph event. Handlers switch on the concrete type.
type Event interface {
	Type() EventType
}

// HoverEvent reports a change of an object's hover latch.
type HoverEvent struct {
	Object *Object
	Over   bool
}

// Type implements Event.
func (HoverEvent) Type() EventType { return EventHover }

// ClickEvent is dispatched to a hovered object when the scene sees a click
// without pointer movement since the press.
type ClickEvent struct {
	Object *Object
}

// Type implements Event.
func (ClickEvent) Type() EventType { return EventClick }

// PointerEvent carries raw pointer input in device pixels.
type PointerEvent struct {
	Kind  EventType // EventPointerDown, EventPointerMove or EventPointerUp
	X, Y  float64
	Touch bool
}

// Type implements Event.
func (e PointerEvent) Type() EventType { return e.Kind }

// Handler receives events registered with On.
type Handler func(Event)

// HoverHandler adapts a typed hover callback to a Handler.
func HoverHandler(fn func(HoverEvent)) Handler {
	return func(e Event) {
		if he, ok := e.(HoverEvent); ok {
			fn(he)
		}
	}
}

// ClickHandler adapts a typed click callback to a Handler.
func ClickHandler(fn func(ClickEvent)) Handler {
	return func(e Event) {
		if ce, ok := e.(ClickEvent); ok {
			fn(ce)
		}
	}
}

// PointerHandler adapts a typed pointer callback to a Handler.
func PointerHandler(fn func(PointerEvent)) Handler {
	return func(e Event) {
		if pe, ok := e.(PointerEvent); ok {
			fn(pe)
		}
	}
}

// eventTable holds at most one handler per event type. Registering a second
// handler for the same type replaces the first.
type eventTable [eventTypeCount]Handler

func (t *eventTable) on(typ EventType, h Handler) {
	if typ >= eventTypeCount {
		return
	}
	t[typ] = h
}

func (t *eventTable) dispatch(e Event) {
	typ := e.Type()
	if typ >= eventTypeCount {
		return
	}
	if h := t[typ]; h != nil {
		h(e)
	}
}
