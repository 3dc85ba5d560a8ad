package vitrine

// Group is an ordered composite of objects. Insertion order is update and
// draw order. There is no removal.
//
// Handlers registered with On apply to every child, including children added
// later: Add replays each recorded handler onto the new child.
type Group struct {
	children []*Object
	handlers eventTable
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Add appends obj and gives it every handler registered on the group so far.
// Panics if obj is nil.
func (g *Group) Add(obj *Object) {
	if obj == nil {
		panic("vitrine: cannot add nil object")
	}
	for typ, h := range g.handlers {
		if h != nil {
			obj.On(EventType(typ), h)
		}
	}
	g.children = append(g.children, obj)
	if globalDebug {
		debugCheckChildCount(len(g.children))
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (g *Group) Children() []*Object {
	return g.children
}

// Len returns the number of children.
func (g *Group) Len() int {
	return len(g.children)
}

// Find returns the child with the given ID, or nil.
func (g *Group) Find(id string) *Object {
	for _, c := range g.children {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// On registers h on every current child and records it for future children.
func (g *Group) On(typ EventType, h Handler) {
	g.handlers.on(typ, h)
	for _, c := range g.children {
		c.On(typ, h)
	}
}

// Update forwards to every child in order.
func (g *Group) Update(props ViewProps, cursor Vec3) {
	for _, c := range g.children {
		c.Update(props, cursor)
	}
}

// Draw forwards to every child in order.
func (g *Group) Draw(props ViewProps) {
	for _, c := range g.children {
		c.Draw(props)
	}
}
