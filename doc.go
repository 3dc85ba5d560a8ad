// Package vitrine is a 3D image-gallery scene graph and camera for
// [Ebitengine].
//
// Images laid out in device pixels are unprojected into a perspective world,
// drawn as subdivided textured quads, and react to hover, click and drag.
//
// # Quick start
//
// The simplest way to get started is [Run], which loads a directory of
// images and opens a window for you:
//
//	cfg := vitrine.DefaultRunConfig()
//	cfg.ImageDir = "photos"
//	if err := vitrine.Run(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// For more control, build the gallery with [Open] or [NewGallery], wire
// what you need, then call [Gallery.Run].
//
// # Scene graph
//
// An [Object] has a position, a per-axis size, fixed local dimensions and an
// [Origin] pivot; its model matrix is derived from those. A [Group] holds
// objects in insertion order and forwards Update and Draw to them. [Scene] is
// the root group: it receives pointer input from attached [InputSource]s,
// tells clicks apart from drags and dispatches [ClickEvent]s to hovered
// objects.
//
//	scene := vitrine.NewScene()
//	obj := vitrine.NewObject(vitrine.ObjectConfig{Dimensions: vitrine.Vec2{4, 3}})
//	obj.OnHover(func(e vitrine.HoverEvent) { ... })
//	scene.Add(obj)
//
// Handlers registered on a group apply to every child, including children
// added later.
//
// # Camera
//
// [Camera] converts device-pixel points and extents into world units with
// [Camera.Unproject] and produces the view and projection matrices with
// [Camera.Project]. World Y grows downward, matching screen layout.
//
// # Motion
//
// [SmoothValue] eases a value toward a target by a fixed fraction per
// frame. Objects created with Smoothing > 0 use it for position and size.
// Zoom and opacity changes use tweens (via [gween]).
//
// # Logging
//
// Nothing is logged by default. Install a logger with [SetLogger].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package vitrine
