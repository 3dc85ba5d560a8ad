package vitrine

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Gallery is an ebiten.Game that lays images out on a grid, zooms them on
// hover, expands one to fill the view on click and pans the camera on drag.
//
// Each frame runs in a fixed order: input, camera smoothing, cursor
// unprojection, scene update, tweens. Draw clears, draws the scene, then the
// FPS overlay and any queued screenshots.
type Gallery struct {
	cfg      RunConfig
	scene    *Scene
	camera   *Camera
	renderer *Renderer
	queue    *InputQueue
	input    *EbitenInput
	runner   *TestRunner

	images []*Image
	byID   map[string]*Image
	open   map[string]bool
	tweens Tweens

	scale   float64
	canvasW int
	canvasH int
	// fill is the world-space size of the whole canvas; an open image is
	// scaled to its height.
	fill Vec3

	dragging   bool
	mouse      Vec2
	lastMouse  Vec2
	dragOffset Vec3
	camPos     *SmoothValue[Vec3]
	velocity   *SmoothValue[Vec2]
	cursor     Vec3

	ticks int
	props ViewProps

	screenshots []string
	fps         fpsOverlay
	stats       frameStats
	live        bool
	scriptDone  bool

	// OnFrame, if set, is called at the end of every Update. Use it to
	// drive per-frame work outside the gallery, such as processing ECS
	// events.
	OnFrame func()
}

// NewGallery builds a gallery showing textures in order. scale is the device
// pixel ratio; 0 means 1. Input comes only from the gallery's InputQueue
// until Run attaches the real mouse and touch input.
func NewGallery(cfg RunConfig, textures []*ebiten.Image, scale float64) (*Gallery, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(textures) == 0 {
		return nil, fmt.Errorf("new gallery: %w", ErrNoImages)
	}
	if scale <= 0 {
		scale = 1
	}

	depth := cfg.CameraDepth
	g := &Gallery{
		cfg:        cfg,
		scene:      NewScene(),
		renderer:   NewRenderer(),
		queue:      NewInputQueue(),
		byID:       make(map[string]*Image, len(textures)),
		open:       make(map[string]bool, len(textures)),
		scale:      scale,
		canvasW:    int(float64(cfg.Width) * scale),
		canvasH:    int(float64(cfg.Height) * scale),
		dragOffset: Vec3{0, 0, depth},
		camPos:     NewSmoothValue(Vec3{0, 0, depth}, cfg.Smoothing),
		velocity:   NewSmoothValue(Vec2{}, cfg.Smoothing),
	}
	g.camera = NewCamera(float64(g.canvasW), float64(g.canvasH), Vec3{0, 0, depth})
	g.scene.SetDebugMode(cfg.Debug)
	g.scene.Attach(g.queue)

	g.scene.OnPointer(EventPointerDown, g.pointerDown)
	g.scene.OnPointer(EventPointerMove, g.pointerMove)
	g.scene.OnPointer(EventPointerUp, g.pointerUp)
	g.scene.OnClick(g.toggle)

	g.build(textures)
	g.updateFill()
	g.props = g.viewProps()

	Logger().Info("gallery built",
		"images", len(g.images), "canvas", fmt.Sprintf("%dx%d", g.canvasW, g.canvasH))
	return g, nil
}

// Open loads the images named by cfg and builds a gallery sized for the
// current monitor. A configured test script is loaded as well.
func Open(ctx context.Context, cfg RunConfig) (*Gallery, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	paths := cfg.Images
	if len(paths) == 0 {
		var err error
		if paths, err = ListImages(cfg.ImageDir); err != nil {
			return nil, err
		}
	}
	textures, err := LoadTextures(ctx, paths)
	if err != nil {
		return nil, err
	}
	g, err := NewGallery(cfg, textures, deviceScale())
	if err != nil {
		return nil, err
	}
	if cfg.TestScript != "" {
		data, err := os.ReadFile(cfg.TestScript)
		if err != nil {
			return nil, fmt.Errorf("read test script: %w", err)
		}
		runner, err := LoadTestScript(data)
		if err != nil {
			return nil, err
		}
		g.SetTestRunner(runner)
	}
	return g, nil
}

// Run opens a gallery for cfg and blocks until its window closes.
func Run(cfg RunConfig) error {
	g, err := Open(context.Background(), cfg)
	if err != nil {
		return err
	}
	return g.Run()
}

// Run opens the window, attaches mouse and touch input and blocks until the
// window closes.
func (g *Gallery) Run() error {
	g.live = true
	g.input = NewEbitenInput()
	g.scene.Attach(g.input)

	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run gallery: %w", err)
	}
	return nil
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

// build lays the textures out and turns each layout rect into an Image.
func (g *Gallery) build(textures []*ebiten.Image) {
	sizes := make([]Vec2, len(textures))
	for i, t := range textures {
		b := t.Bounds()
		sizes[i] = Vec2{float64(b.Dx()), float64(b.Dy())}
	}
	layout := GridLayout{
		Columns: g.cfg.Columns,
		Gap:     g.cfg.Gap * g.scale,
		Margin:  g.cfg.Margin * g.scale,
	}
	rects := layout.Place(float64(g.canvasW), sizes)

	for i, tex := range textures {
		r := rects[i]
		pos := Vec3{r.X, r.Y, 0}
		size := Vec3{r.Width, r.Height, 1}
		world := g.camera.Unproject(UnprojectRequest{Position: &pos, Size: &size})

		img := NewImage(ImageConfig{
			Texture:       tex,
			Position:      world.Position,
			Dimensions:    Vec2{world.Size.X(), world.Size.Y()},
			SubdivisionsX: g.cfg.SubdivisionsX,
			SubdivisionsY: g.cfg.SubdivisionsY,
			Smoothing:     g.cfg.Smoothing,
			Zoom:          g.cfg.RestZoom,
			Renderer:      g.renderer,
		})
		img.OnHover(func(e HoverEvent) {
			if g.open[img.ID] {
				return
			}
			zoom := g.cfg.RestZoom
			if e.Over {
				zoom = g.cfg.HoverZoom
			}
			g.zoomTo(img, zoom)
		})
		g.images = append(g.images, img)
		g.byID[img.ID] = img
		g.open[img.ID] = false
		g.scene.Add(img.Object)
	}
}

func (g *Gallery) updateFill() {
	size := Vec3{float64(g.canvasW), float64(g.canvasH), 1}
	g.fill = g.camera.Unproject(UnprojectRequest{Size: &size}).Size
}

// toggle opens a closed image to fill the view height and fades the rest out,
// or closes an open one and fades everything back in.
func (g *Gallery) toggle(e ClickEvent) {
	obj := e.Object
	img := g.byID[obj.ID]
	if img == nil {
		return
	}
	pos := obj.Position()
	center := OriginCenter

	if g.open[obj.ID] {
		one := Vec3{1, 1, 1}
		g.zoomTo(img, g.cfg.RestZoom)
		obj.Transform(TransformRequest{Position: &pos, Size: &one, Origin: &center})
		g.open[obj.ID] = false
		for _, c := range g.scene.Children() {
			g.fadeTo(c, 1)
		}
		return
	}

	s := g.fill.Y() / obj.Dimensions().Y()
	size := Vec3{s, s, 1}
	g.zoomTo(img, 1)
	obj.Transform(TransformRequest{Position: &pos, Size: &size, Origin: &center})
	g.open[obj.ID] = true
	for _, c := range g.scene.Children() {
		if c.ID != obj.ID {
			g.fadeTo(c, 0)
		}
	}
}

func (g *Gallery) zoomTo(img *Image, zoom float64) {
	if g.cfg.ZoomDuration <= 0 {
		img.SetZoom(zoom)
		return
	}
	g.tweens.Start(img.ID+"/zoom", TweenZoom(img, zoom, g.cfg.ZoomDuration, ease.OutCubic))
}

func (g *Gallery) fadeTo(obj *Object, opacity float64) {
	if g.cfg.FadeDuration <= 0 {
		obj.SetOpacity(opacity)
		return
	}
	g.tweens.Start(obj.ID+"/opacity", TweenOpacity(obj, opacity, g.cfg.FadeDuration, ease.OutQuad))
}

func (g *Gallery) canvasSize() Vec2 {
	return Vec2{float64(g.canvasW), float64(g.canvasH)}
}

func (g *Gallery) pointerDown(e PointerEvent) {
	g.dragging = true
	g.mouse = ToClipspace(Vec2{e.X, e.Y}, g.canvasSize())
	g.lastMouse = g.mouse
}

func (g *Gallery) pointerMove(e PointerEvent) {
	if !g.dragging {
		return
	}
	m := ToClipspace(Vec2{e.X, e.Y}, g.canvasSize())
	d := m.Sub(g.mouse).Mul(g.cfg.DragSpeed)
	g.dragOffset = Vec3{
		g.dragOffset.X() - d.X(),
		g.dragOffset.Y() - d.Y(),
		g.cfg.CameraDepth,
	}
	g.lastMouse = g.mouse
	g.mouse = m
}

func (g *Gallery) pointerUp(PointerEvent) {
	g.dragging = false
	g.lastMouse = g.mouse
}

func (g *Gallery) viewProps() ViewProps {
	proj := g.camera.Project()
	return ViewProps{
		Projection: proj.Projection,
		View:       proj.View,
		Time:       float64(g.ticks) / float64(ebiten.TPS()),
		Velocity:   g.velocity.Value(),
	}
}

// Update implements ebiten.Game.
func (g *Gallery) Update() error {
	var start time.Time
	if g.cfg.Debug {
		start = time.Now()
	}

	if g.runner != nil {
		g.runner.step(g.queue, g.Screenshot)
	}
	g.scene.PollInput()

	g.camPos.SetValue(g.dragOffset)
	g.camPos.Update()
	cam := g.camPos.Value()
	g.velocity.SetValue(g.lastMouse.Sub(g.mouse))
	g.velocity.Update()
	g.camera.SetPosition(cam)
	g.camera.LookAt(Vec3{cam.X(), cam.Y(), 0})

	g.cursor = g.camera.ScreenToWorld(g.scene.Pointer())
	g.props = g.viewProps()
	g.scene.Update(g.props, g.cursor)

	dt := float32(1.0 / float64(ebiten.TPS()))
	g.tweens.Update(dt)
	g.fps.update(float64(dt))
	g.ticks++

	if g.live {
		ebiten.SetCursorShape(g.cursorShape())
	}
	if g.OnFrame != nil {
		g.OnFrame()
	}
	if g.cfg.Debug {
		g.stats.addUpdate(time.Since(start))
	}

	if g.runner != nil && g.runner.Done() && !g.scriptDone {
		g.scriptDone = true
		Logger().Info("test script finished")
	}
	// Queued screenshots are written by the next Draw; exit after that.
	if g.scriptDone && g.cfg.ExitAfterScript && len(g.screenshots) == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *Gallery) cursorShape() ebiten.CursorShapeType {
	if g.dragging {
		return ebiten.CursorShapeMove
	}
	for _, c := range g.scene.Children() {
		if c.Hovered() {
			return ebiten.CursorShapePointer
		}
	}
	return ebiten.CursorShapeDefault
}

// Draw implements ebiten.Game.
func (g *Gallery) Draw(screen *ebiten.Image) {
	var start time.Time
	if g.cfg.Debug {
		start = time.Now()
	}

	screen.Fill(g.cfg.Background.toRGBA())
	g.renderer.Begin(screen)
	g.scene.Draw(g.props)
	if g.cfg.ShowFPS {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)

	if g.cfg.Debug && g.stats.addDraw(time.Since(start), g.scene.Len(), g.renderer.Stats()) {
		g.stats.flush()
	}
}

// Layout implements ebiten.Game. The game runs in device pixels so that
// layout rects, pointer input and the render target share one unit.
func (g *Gallery) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.live {
		g.scale = deviceScale()
	}
	w := int(float64(outsideWidth) * g.scale)
	h := int(float64(outsideHeight) * g.scale)
	if w != g.canvasW || h != g.canvasH {
		g.canvasW, g.canvasH = w, h
		g.camera.SetCanvasSize(float64(w), float64(h))
		g.updateFill()
	}
	return w, h
}

// --- Accessors ---

// Scene returns the gallery's scene graph.
func (g *Gallery) Scene() *Scene {
	return g.scene
}

// Camera returns the gallery's camera.
func (g *Gallery) Camera() *Camera {
	return g.camera
}

// Images returns the gallery's images in layout order.
func (g *Gallery) Images() []*Image {
	return g.images
}

// InputQueue returns the queue that scripted input is injected through.
func (g *Gallery) InputQueue() *InputQueue {
	return g.queue
}

// IsOpen reports whether the image with the given ID is expanded.
func (g *Gallery) IsOpen(id string) bool {
	return g.open[id]
}

// Dragging reports whether a drag is in progress.
func (g *Gallery) Dragging() bool {
	return g.dragging
}

// Cursor returns the pointer position in world space as of the last Update.
func (g *Gallery) Cursor() Vec3 {
	return g.cursor
}

// DragOffset returns the camera position the drag is steering toward.
func (g *Gallery) DragOffset() Vec3 {
	return g.dragOffset
}

// SetTestRunner attaches a scripted input runner, stepped at the start of
// every Update.
func (g *Gallery) SetTestRunner(runner *TestRunner) {
	g.runner = runner
}

// SetEntityStore forwards interaction events to store.
func (g *Gallery) SetEntityStore(store EntityStore) {
	g.scene.SetEntityStore(store)
}
