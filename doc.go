// Package coverflow renders a horizontally scrolling row of covers as a
// pseudo-3D coverflow for [Ebitengine].
//
// Covers rotate, scale and shift as they move away from the center of the
// screen, following a circular path that fakes perspective. The center cover
// is always drawn on top, and when scrolling stops in between two covers the
// list snaps onto the nearest one with a short decelerating animation
// (via [gween]).
//
// # Quick start
//
//	covers, err := coverflow.LoadCovers("a.png", "b.webp", "c.tga")
//	if err != nil {
//		log.Fatal(err)
//	}
//	c, err := coverflow.NewCarousel(coverflow.NewImageSource(covers), nil,
//		coverflow.DefaultCarouselConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	log.Fatal(coverflow.Run(c, coverflow.RunConfig{
//		Title: "Covers", Width: 1280, Height: 480,
//	}))
//
// For full control, implement [ebiten.Game] yourself and call
// [Carousel.Update] and [Carousel.Draw] directly:
//
//	func (g *Game) Update() error        { g.c.Update(1.0 / 60); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.c.Draw(s) }
//
// # Pieces
//
// [Carousel] is the generic list: it owns the scroll position, recycles
// [Frame] values through a [RecycledPool], and asks a [Layout] for the pose
// and draw order of every visible item. [Engine] is the coverflow layout.
// Its geometry is also available as plain functions ([RotationAngle],
// [ScaleFactor], [CircleAngle] and friends) taking a [Config] and a [View].
//
// Input is up to the host. [Carousel.HandlePointer] turns raw pointer samples
// into drags and clicks; finer control is available through
// [Carousel.DragBy], [Carousel.EndDrag], [Carousel.ScrollBy],
// [Carousel.Click] and [Carousel.ScrollToItem].
//
// # Scripted tests
//
// A [TestRunner] loaded with [LoadTestScript] plays a JSON list of clicks,
// drags, navigation and screenshots, one step per update, for automated
// visual checks:
//
//	{"steps": [
//		{"action": "drag", "fromX": 640, "fromY": 240, "toX": 560, "toY": 240, "frames": 8},
//		{"action": "settle"},
//		{"action": "screenshot", "label": "after-drag"}
//	]}
//
// Everything runs on the render thread; nothing in this package is safe for
// concurrent use.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package coverflow
