package vitrine

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type EventType
	// ObjectID is the ID of the object involved; empty for raw pointer events.
	ObjectID string
	// X and Y are the pointer position in device pixels.
	X, Y float64
	// Over is the new hover state (EventHover only).
	Over  bool
	Touch bool
}

// Scene is the root group. It turns raw pointer input into pointer events,
// tells clicks apart from drags, and routes clicks to hovered children.
//
// A Scene is not safe for concurrent use; drive input, Update and Draw from
// one goroutine.
type Scene struct {
	Group

	events        eventTable
	pointer       Vec2
	pointerDownAt Vec2

	sources []InputSource
	store   EntityStore
	debug   bool
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// On registers h on the scene itself (pointer events are dispatched there)
// and on every child, current and future.
func (s *Scene) On(typ EventType, h Handler) {
	s.events.on(typ, h)
	s.Group.On(typ, h)
}

// OnPointer registers a typed pointer handler for typ.
func (s *Scene) OnPointer(typ EventType, fn func(PointerEvent)) {
	s.On(typ, PointerHandler(fn))
}

// OnClick registers a typed click handler on every child.
func (s *Scene) OnClick(fn func(ClickEvent)) {
	s.On(EventClick, ClickHandler(fn))
}

// Pointer returns the last known pointer position in device pixels.
func (s *Scene) Pointer() Vec2 {
	return s.pointer
}

// PointerDownAt returns where the last press happened.
func (s *Scene) PointerDownAt() Vec2 {
	return s.pointerDownAt
}

// Update forwards to every child and reports hover transitions to the entity
// store, if one is set.
func (s *Scene) Update(props ViewProps, cursor Vec3) {
	for _, c := range s.children {
		was := c.Hovered()
		c.Update(props, cursor)
		if s.store != nil && c.Hovered() != was {
			s.store.EmitEvent(InteractionEvent{
				Type:     EventHover,
				ObjectID: c.ID,
				X:        s.pointer.X(),
				Y:        s.pointer.Y(),
				Over:     c.Hovered(),
			})
		}
	}
}

// --- PointerListener ---

// PointerDown records the press position and dispatches EventPointerDown.
func (s *Scene) PointerDown(x, y float64, touch bool) {
	s.pointer = Vec2{x, y}
	s.pointerDownAt = s.pointer
	s.dispatchPointer(EventPointerDown, x, y, touch)
}

// PointerMove records the position and dispatches EventPointerMove.
func (s *Scene) PointerMove(x, y float64, touch bool) {
	s.pointer = Vec2{x, y}
	s.dispatchPointer(EventPointerMove, x, y, touch)
}

// PointerUp records the position and dispatches EventPointerUp.
func (s *Scene) PointerUp(x, y float64, touch bool) {
	s.pointer = Vec2{x, y}
	s.dispatchPointer(EventPointerUp, x, y, touch)
}

// Click dispatches a ClickEvent to every hovered child, unless the pointer
// moved at all between press and release, in which case the gesture was a
// drag and nothing is dispatched.
func (s *Scene) Click() {
	if s.pointerDownAt != s.pointer {
		if s.debug {
			Logger().Debug("click suppressed as drag",
				"down", s.pointerDownAt, "up", s.pointer)
		}
		return
	}
	for _, c := range s.children {
		if !c.Hovered() {
			continue
		}
		c.Dispatch(ClickEvent{Object: c})
		s.emit(InteractionEvent{
			Type:     EventClick,
			ObjectID: c.ID,
			X:        s.pointer.X(),
			Y:        s.pointer.Y(),
		})
	}
}

func (s *Scene) dispatchPointer(kind EventType, x, y float64, touch bool) {
	s.events.dispatch(PointerEvent{Kind: kind, X: x, Y: y, Touch: touch})
	s.emit(InteractionEvent{Type: kind, X: x, Y: y, Touch: touch})
}

func (s *Scene) emit(e InteractionEvent) {
	if s.store == nil {
		return
	}
	s.store.EmitEvent(e)
}

// --- Input sources ---

// Attach subscribes the scene to src. Attaching the same source twice is a
// no-op.
func (s *Scene) Attach(src InputSource) {
	for _, existing := range s.sources {
		if existing == src {
			return
		}
	}
	src.Attach(s)
	s.sources = append(s.sources, src)
}

// Detach unsubscribes the scene from src.
func (s *Scene) Detach(src InputSource) {
	for i, existing := range s.sources {
		if existing == src {
			src.Detach(s)
			copy(s.sources[i:], s.sources[i+1:])
			s.sources[len(s.sources)-1] = nil
			s.sources = s.sources[:len(s.sources)-1]
			return
		}
	}
}

// PollInput polls every attached source that needs polling. Call it once per
// frame before Update; pointer callbacks run synchronously inside it.
func (s *Scene) PollInput() {
	for _, src := range s.sources {
		if p, ok := src.(Poller); ok {
			p.Poll()
		}
	}
}

// --- Options ---

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, suppressed clicks
// and child-count warnings are logged through Logger.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that group
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
