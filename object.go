package vitrine

import "github.com/google/uuid"

// ViewProps is the per-frame state shared by every draw call.
type ViewProps struct {
	Projection Mat4
	View       Mat4
	// Time is the number of seconds since the loop started.
	Time float64
	// Velocity is the smoothed clip-space drag velocity.
	Velocity Vec2
	// Progress drives the vertex wave; 0 leaves geometry flat.
	Progress float64
}

// DrawProps is what an Object passes to its draw callback: the shared view
// state merged with the object's own model matrix and opacity.
type DrawProps struct {
	ViewProps
	Model   Mat4
	Opacity float64
	Object  *Object
}

// DrawFunc submits one object to the rendering backend.
type DrawFunc func(DrawProps)

// ObjectConfig configures NewObject.
type ObjectConfig struct {
	Position Vec3
	// Size holds per-axis scale factors. The zero value means (1, 1, 1).
	Size Vec3
	// Dimensions is the local bounding box, fixed for the object's lifetime.
	// A zero or negative extent leaves the object without a hit box.
	Dimensions Vec2
	Origin     Origin
	// Smoothing, when > 0, makes Transform set targets that position and size
	// approach by this fraction per Update instead of jumping.
	Smoothing float64
	Draw      DrawFunc
}

// TransformRequest is the argument to Object.Transform. Nil fields keep the
// object's current value.
type TransformRequest struct {
	Position *Vec3
	Size     *Vec3
	Origin   *Origin
}

// Object is a positionable, scalable, hit-testable leaf of the scene graph.
//
// The model matrix is always derived from position, size, origin and
// dimensions; it is recomputed by Transform and Update, never edited in place.
type Object struct {
	// ID is generated once at construction and never changes. Use it to key
	// state kept outside the graph.
	ID string

	position   Vec3
	size       Vec3
	dimensions Vec2
	origin     Origin
	opacity    float64
	model      Mat4

	mouseover bool
	hooks     []func()
	events    eventTable
	draw      DrawFunc

	smoothPos  *SmoothValue[Vec3]
	smoothSize *SmoothValue[Vec3]
}

// NewObject creates an object from cfg and computes its initial model matrix.
func NewObject(cfg ObjectConfig) *Object {
	size := cfg.Size
	if size == (Vec3{}) {
		size = Vec3{1, 1, 1}
	}
	o := &Object{
		ID:         uuid.NewString(),
		position:   cfg.Position,
		size:       size,
		dimensions: cfg.Dimensions,
		origin:     cfg.Origin,
		opacity:    1,
		draw:       cfg.Draw,
	}
	if cfg.Smoothing > 0 {
		o.smoothPos = NewSmoothValue(o.position, cfg.Smoothing)
		o.smoothSize = NewSmoothValue(o.size, cfg.Smoothing)
		o.AddUpdateHook(o.stepSmoothing)
	}
	o.recompute()
	return o
}

// Transform updates position, size and origin. Immediate objects recompute
// their model matrix at once; smoothed objects only retarget and move on the
// following Updates. An omitted position or size on a smoothed object
// retargets to its current value, halting any motion in progress.
func (o *Object) Transform(req TransformRequest) {
	if req.Origin != nil {
		o.origin = *req.Origin
	}
	if o.smoothPos != nil {
		pos, size := o.position, o.size
		if req.Position != nil {
			pos = *req.Position
		}
		if req.Size != nil {
			size = *req.Size
		}
		o.smoothPos.SetValue(pos)
		o.smoothSize.SetValue(size)
		return
	}
	if req.Position != nil {
		o.position = *req.Position
	}
	if req.Size != nil {
		o.size = *req.Size
	}
	o.recompute()
}

func (o *Object) stepSmoothing() {
	o.smoothPos.Update()
	o.smoothSize.Update()
	o.position = o.smoothPos.Value()
	o.size = o.smoothSize.Value()
}

func (o *Object) recompute() {
	o.model = modelMatrix(o.position, o.size, o.origin, o.dimensions)
}

// Collides reports whether point lies in the object's world rectangle,
// [translation, translation + dimensions*scale], on X and Y. Z is ignored
// and both edges are inclusive. Objects with a non-positive dimension never
// collide.
func (o *Object) Collides(point Vec3) bool {
	if o.dimensions.X() <= 0 || o.dimensions.Y() <= 0 {
		return false
	}
	t := Translation(o.model)
	s := Scaling(o.model)
	return point.Y() >= t.Y() &&
		point.Y() <= t.Y()+o.dimensions.Y()*s.Y() &&
		point.X() >= t.X() &&
		point.X() <= t.X()+o.dimensions.X()*s.X()
}

// Update runs hover detection against cursor, then the update hooks in
// registration order, then recomputes the model matrix so hook-driven changes
// show in the same frame.
//
// Hover is edge-triggered: EventHover fires only when the latch flips.
func (o *Object) Update(_ ViewProps, cursor Vec3) {
	over := o.Collides(cursor)
	if over != o.mouseover {
		o.mouseover = over
		o.Dispatch(HoverEvent{Object: o, Over: over})
	}
	for _, h := range o.hooks {
		h()
	}
	o.recompute()
}

// Draw invokes the draw callback with props merged with the model matrix and
// opacity. No-op when the object has no callback.
func (o *Object) Draw(props ViewProps) {
	if o.draw == nil {
		return
	}
	o.draw(DrawProps{
		ViewProps: props,
		Model:     o.model,
		Opacity:   o.opacity,
		Object:    o,
	})
}

// SetDrawFunc replaces the draw callback.
func (o *Object) SetDrawFunc(fn DrawFunc) {
	o.draw = fn
}

// AddUpdateHook appends fn to the hooks run once per Update.
func (o *Object) AddUpdateHook(fn func()) {
	o.hooks = append(o.hooks, fn)
}

// On registers h as the single handler for typ, replacing any previous one.
func (o *Object) On(typ EventType, h Handler) {
	o.events.on(typ, h)
}

// OnHover registers a typed hover handler.
func (o *Object) OnHover(fn func(HoverEvent)) {
	o.On(EventHover, HoverHandler(fn))
}

// OnClick registers a typed click handler.
func (o *Object) OnClick(fn func(ClickEvent)) {
	o.On(EventClick, ClickHandler(fn))
}

// Dispatch calls the handler registered for e's type, if any.
func (o *Object) Dispatch(e Event) {
	o.events.dispatch(e)
}

// --- Accessors ---
//
// Setters store the value without recomputing the model matrix; the rendered
// object moves on the next Update or Transform.

// SetPosition sets the position. Smoothed objects jump without easing.
func (o *Object) SetPosition(p Vec3) {
	o.position = p
	if o.smoothPos != nil {
		o.smoothPos.Snap(p)
	}
}

// Position returns the current position.
func (o *Object) Position() Vec3 {
	return o.position
}

// SetSize sets the per-axis scale. Smoothed objects jump without easing.
func (o *Object) SetSize(s Vec3) {
	o.size = s
	if o.smoothSize != nil {
		o.smoothSize.Snap(s)
	}
}

// Size returns the current per-axis scale.
func (o *Object) Size() Vec3 {
	return o.size
}

// SetOpacity sets the opacity, clamped to [0, 1].
func (o *Object) SetOpacity(a float64) {
	o.opacity = clamp01(a)
}

// Opacity returns the opacity.
func (o *Object) Opacity() float64 {
	return o.opacity
}

// Dimensions returns the local bounding box.
func (o *Object) Dimensions() Vec2 {
	return o.dimensions
}

// Origin returns the pivot mode.
func (o *Object) Origin() Origin {
	return o.origin
}

// Model returns the model matrix as of the last Transform or Update.
func (o *Object) Model() Mat4 {
	return o.model
}

// Hovered reports the latched hover state.
func (o *Object) Hovered() bool {
	return o.mouseover
}

// Smoothed reports whether Transform eases toward its targets.
func (o *Object) Smoothed() bool {
	return o.smoothPos != nil
}
