package coverflow

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Carousel is a horizontally scrolling row of covers. It owns the scroll
// position, the touch state and the recycled frames, and delegates the look
// of the row to a Layout. When the layout is also an Aligner (the coverflow
// Engine is) the carousel snaps onto items when scrolling stops.
//
// Item i has its center at Width/2 + i*ItemWidth*Spacing in content pixels,
// so ScrollX = i*ItemWidth*Spacing centers item i.
type Carousel struct {
	cfg     CarouselConfig
	source  ItemSource
	pool    RecycledPool
	layout  Layout
	aligner Aligner

	width, height float64
	scrollX       float64
	state         TouchState
	selection     int

	frames  []*Frame // visible frames sorted by index
	spare   []*Frame
	items   []Item
	drawBuf []*Frame // visible frames back to front

	verts []ebiten.Vertex
	inds  []uint16

	// ClearColor fills the target before drawing when its alpha is > 0.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes its captures.
	ScreenshotDir string
	// ScreenshotFormat is "png" (default) or "webp".
	ScreenshotFormat string
	screenshotQueue  []string

	pointer      pointerState
	dragDeadZone float64
	injectQueue  []syntheticPointerEvent
	testRunner   *TestRunner

	sink  EventSink
	debug bool
}

var _ Host = alignHost{}

// alignHost is the carousel as its aligner sees it. Aligners move the list by
// half the reported item width per item, so it reports twice the distance
// between item centers.
type alignHost struct {
	*Carousel
}

func (h alignHost) ItemWidth() float64 {
	return 2 * h.step()
}

// NewCarousel creates a carousel over src. A nil layout gets a coverflow
// Engine with DefaultConfig.
func NewCarousel(src ItemSource, layout Layout, cfg CarouselConfig) (*Carousel, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Strips < 1 {
		cfg.Strips = defaultStrips
	}
	if layout == nil {
		e, err := NewEngine(DefaultConfig())
		if err != nil {
			return nil, err
		}
		layout = e
	}

	c := &Carousel{
		cfg:           cfg,
		source:        src,
		pool:          NewFramePool(),
		layout:        layout,
		ScreenshotDir: "screenshots",
		dragDeadZone:  defaultDragDeadZone,
	}
	if a, ok := layout.(Aligner); ok {
		c.aligner = a
	}
	c.selection = clampIndex(cfg.Selection, src.Count())
	c.scrollX = float64(c.selection) * c.step()
	return c, nil
}

// SetPool replaces the frame pool. Frames already on screen stay.
func (c *Carousel) SetPool(p RecycledPool) {
	c.pool = p
}

// SetEventSink sets the receiver of carousel events. nil disables events.
func (c *Carousel) SetEventSink(sink EventSink) {
	c.sink = sink
}

// SetDebugMode enables per-frame stats and alignment logging on stderr.
func (c *Carousel) SetDebugMode(enabled bool) {
	c.debug = enabled
	if d, ok := c.layout.(interface{ SetDebugMode(bool) }); ok {
		d.SetDebugMode(enabled)
	}
}

// Layout returns the layout the carousel draws with.
func (c *Carousel) Layout() Layout {
	return c.layout
}

// Config returns the carousel configuration.
func (c *Carousel) Config() CarouselConfig {
	return c.cfg
}

// SetSize sets the viewport size. Draw calls it with the target size.
func (c *Carousel) SetSize(w, h float64) {
	c.width = w
	c.height = h
}

// Size returns the viewport size.
func (c *Carousel) Size() (w, h float64) {
	return c.width, c.height
}

// View returns the geometry snapshot for the current frame.
func (c *Carousel) View() View {
	return View{Width: c.width, Height: c.height, ScrollX: c.scrollX, Spacing: c.cfg.Spacing}
}

// State returns the touch state.
func (c *Carousel) State() TouchState {
	return c.state
}

// SetState changes the touch state and reports alignment transitions to the
// event sink.
func (c *Carousel) SetState(s TouchState) {
	prev := c.state
	c.state = s
	switch {
	case prev != TouchAligning && s == TouchAligning:
		c.emit(EventAlignStarted, c.selection)
	case prev == TouchAligning && s == TouchResting:
		c.emit(EventAlignFinished, c.selection)
	}
}

// ScrollX returns the scroll position.
func (c *Carousel) ScrollX() float64 {
	return c.scrollX
}

// ScrollTo moves the list, clamped to the first and last item.
func (c *Carousel) ScrollTo(x float64) {
	c.scrollX = math.Max(0, math.Min(x, c.maxScroll()))
	c.updateSelection()
}

// ScrollBy moves the list by dx pixels, as a mouse wheel would. A running
// alignment is dropped; the next draw aligns again.
func (c *Carousel) ScrollBy(dx float64) {
	if c.state == TouchAligning {
		c.SetState(TouchResting)
	}
	c.ScrollTo(c.scrollX + dx)
}

// Selection returns the index of the item nearest the center.
func (c *Carousel) Selection() int {
	return c.selection
}

// ItemWidth returns the configured item width.
func (c *Carousel) ItemWidth() float64 {
	return c.cfg.ItemWidth
}

// Count returns the number of items.
func (c *Carousel) Count() int {
	return c.source.Count()
}

// SetSelection centers item i immediately.
func (c *Carousel) SetSelection(i int) {
	if c.state == TouchAligning {
		c.SetState(TouchResting)
	}
	c.ScrollTo(float64(clampIndex(i, c.Count())) * c.step())
}

// ScrollToItem animates item i into the center. Without an aligning layout it
// jumps like SetSelection.
func (c *Carousel) ScrollToItem(i int) {
	i = clampIndex(i, c.Count())
	if c.aligner == nil {
		c.SetSelection(i)
		return
	}
	c.aligner.ScrollToItem(alignHost{c}, i)
}

// BeginDrag marks the start of a pointer drag. A running alignment stops.
func (c *Carousel) BeginDrag() {
	c.SetState(TouchScrolling)
}

// DragBy follows the pointer by dx pixels: dragging right reveals items on
// the left.
func (c *Carousel) DragBy(dx float64) {
	if c.state != TouchScrolling {
		c.BeginDrag()
	}
	c.ScrollTo(c.scrollX - dx)
}

// EndDrag ends a drag and starts aligning onto the nearest item.
func (c *Carousel) EndDrag() {
	c.SetState(TouchResting)
	c.prepare(nil)
	if c.aligner != nil {
		c.aligner.CheckScrollPosition(alignHost{c})
	}
}

// Update advances the test runner, consumes one injected pointer event and
// advances the alignment animation by dt seconds. Call once per tick.
func (c *Carousel) Update(dt float32) {
	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	c.processInjectedInput()
	if c.aligner != nil {
		c.aligner.ComputeScroll(alignHost{c}, dt)
	}
}

// Draw lays out, poses and draws the visible covers onto screen, then lets
// the layout decide whether the list must align.
func (c *Carousel) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if w, h := float64(b.Dx()), float64(b.Dy()); w != c.width || h != c.height {
		c.SetSize(w, h)
	}
	if c.ClearColor.A > 0 {
		screen.Fill(c.ClearColor.toRGBA())
	}

	var stats debugStats
	c.prepare(&stats)

	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}
	opts := &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear}
	for _, f := range c.drawBuf {
		q := c.quad(f)
		img := coverImage(f.Cover())
		q.src = img.Bounds()
		c.verts, c.inds = buildCardMesh(&q, c.verts, c.inds)
		screen.DrawTriangles(c.verts, c.inds, img, opts)
	}
	if c.debug {
		stats.submitTime = time.Since(t0)
		c.debugLog(stats)
	}

	c.afterDraw()
	c.flushScreenshots(screen)
}

// Frames returns the visible frames back to front, as of the last draw.
// The returned slice MUST NOT be mutated.
func (c *Carousel) Frames() []*Frame {
	return c.drawBuf
}

// ItemAt returns the index of the topmost item drawn under (x, y).
func (c *Carousel) ItemAt(x, y float64) (int, bool) {
	for i := len(c.drawBuf) - 1; i >= 0; i-- {
		f := c.drawBuf[i]
		q := c.quad(f)
		if q.bounds().Contains(x, y) {
			return f.Index, true
		}
	}
	return -1, false
}

// Click scrolls the item under (x, y) into the center. It reports whether
// an item was hit.
func (c *Carousel) Click(x, y float64) bool {
	idx, ok := c.ItemAt(x, y)
	if !ok {
		return false
	}
	c.emit(EventItemClicked, idx)
	c.ScrollToItem(idx)
	return true
}

// --- internals ---

func (c *Carousel) step() float64 {
	return c.cfg.ItemWidth * c.cfg.Spacing
}

func (c *Carousel) itemCenter(i int) float64 {
	return c.width/2 + float64(i)*c.step()
}

func (c *Carousel) maxScroll() float64 {
	n := c.Count()
	if n < 1 {
		return 0
	}
	return float64(n-1) * c.step()
}

func (c *Carousel) updateSelection() {
	idx := clampIndex(int(math.Round(c.scrollX/c.step())), c.Count())
	if idx != c.selection {
		c.selection = idx
		c.emit(EventSelectionChanged, idx)
	}
}

func (c *Carousel) emit(t EventType, index int) {
	if c.debug && t == EventSelectionChanged {
		debugf("selection: %d", index)
	}
	if c.sink != nil {
		c.sink.EmitEvent(Event{Type: t, Index: index, ScrollX: c.scrollX})
	}
}

// prepare lays out the visible frames, resolves their draw order and applies
// their poses. stats may be nil.
func (c *Carousel) prepare(stats *debugStats) {
	var t0 time.Time
	timed := c.debug && stats != nil
	if timed {
		t0 = time.Now()
	}

	if c.scrollX > c.maxScroll() {
		c.ScrollTo(c.maxScroll())
	}
	c.layoutFrames()

	if timed {
		stats.layoutTime = time.Since(t0)
		t0 = time.Now()
	}

	v := c.View()
	c.items = c.items[:0]
	for _, f := range c.frames {
		c.items = append(c.items, Item{
			Index:  f.Index,
			Center: c.itemCenter(f.Index),
			Width:  f.Width,
			Height: f.Height,
		})
	}
	pass := c.layout.ResolveDrawOrder(v, c.items)
	for k, f := range c.frames {
		f.rank = pass.Ranks[k]
	}
	c.sortDrawBuf()

	if timed {
		stats.orderTime = time.Since(t0)
		t0 = time.Now()
	}

	for k, f := range c.frames {
		c.layout.Pose(v, c.items[k]).Apply(f)
	}

	if timed {
		stats.poseTime = time.Since(t0)
		stats.frameCount = len(c.frames)
		if fp, ok := c.pool.(*FramePool); ok {
			stats.pooled = fp.Len()
			stats.created = fp.Created()
			debugCheckPoolGrowth(stats.created)
		}
	}
}

// afterDraw runs the post-draw alignment check.
func (c *Carousel) afterDraw() {
	if c.aligner != nil {
		c.aligner.AfterDraw(alignHost{c})
	}
}

// visibleRange returns the index range of items that can reach the viewport.
// The margin of two item widths covers scaling and the spacing nudge.
func (c *Carousel) visibleRange(count int) (first, last int, ok bool) {
	if count < 1 || c.width <= 0 {
		return 0, -1, false
	}
	r := c.width/2 + 2*c.cfg.ItemWidth
	s := c.step()
	first = int(math.Ceil((c.scrollX - r) / s))
	last = int(math.Floor((c.scrollX + r) / s))
	first = max(first, 0)
	last = min(last, count-1)
	return first, last, first <= last
}

// layoutFrames recycles frames that left the viewport and fills in frames for
// items that entered it. Released frames go back to the pool before new ones
// are taken so they are reused within the same pass.
func (c *Carousel) layoutFrames() {
	first, last, ok := c.visibleRange(c.Count())

	kept := c.spare[:0]
	for _, f := range c.frames {
		if ok && f.Index >= first && f.Index <= last {
			kept = append(kept, f)
		} else {
			c.pool.Release(f)
		}
	}
	if !ok {
		c.spare = c.frames[:0]
		c.frames = kept
		return
	}

	next := c.frames[:0]
	k := 0
	for i := first; i <= last; i++ {
		var f *Frame
		if k < len(kept) && kept[k].Index == i {
			f = kept[k]
			k++
		} else {
			f = obtainFrame(c.source, c.pool, i)
		}
		if _, sized := f.Cover().(LayoutSizer); !sized || f.Width <= 0 || f.Height <= 0 {
			f.Width, f.Height = c.cfg.ItemWidth, c.cfg.ItemHeight
		}
		next = append(next, f)
	}
	c.spare = kept[:0]
	c.frames = next
}

// sortDrawBuf orders the visible frames by rank with a stable insertion sort.
// Ranks are nearly sorted already so this is close to linear.
func (c *Carousel) sortDrawBuf() {
	c.drawBuf = append(c.drawBuf[:0], c.frames...)
	buf := c.drawBuf
	for i := 1; i < len(buf); i++ {
		key := buf[i]
		j := i - 1
		for j >= 0 && buf[j].rank > key.rank {
			buf[j+1] = buf[j]
			j--
		}
		buf[j+1] = key
	}
}

// quad returns the screen placement of a frame's cover.
func (c *Carousel) quad(f *Frame) cardQuad {
	content := f.ContentRect()
	return cardQuad{
		cx:     c.itemCenter(f.Index) - c.scrollX + f.TranslationX,
		cy:     c.height / 2,
		w:      content.Width,
		h:      content.Height,
		rotY:   f.RotationY,
		sx:     f.ScaleX,
		sy:     f.ScaleY,
		camera: c.cfg.CameraDistance,
		strips: c.cfg.Strips,
		tint:   c.tint(f.Index),
	}
}

// tint dims every cover but the selected one when UnselectedAlpha is set.
func (c *Carousel) tint(index int) Color {
	a := c.cfg.UnselectedAlpha
	if a == 0 || index == c.selection {
		return ColorWhite
	}
	return Color{1, 1, 1, a}
}

func clampIndex(i, count int) int {
	if count < 1 || i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}
