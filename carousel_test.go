package coverflow

import (
	"errors"
	"testing"
)

// recordSink collects emitted events.
type recordSink struct {
	events []Event
}

func (s *recordSink) EmitEvent(e Event) { s.events = append(s.events, e) }

func (s *recordSink) count(t EventType) int {
	n := 0
	for _, e := range s.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// newTestCarousel builds a 1000x500 carousel of n items 300 wide at half
// spacing, so items are 150px apart.
func newTestCarousel(t *testing.T, n int) (*Carousel, *testSource) {
	t.Helper()
	cfg := DefaultCarouselConfig()
	cfg.ItemWidth, cfg.ItemHeight = 300, 400
	return newTestCarouselWith(t, n, cfg)
}

func newTestCarouselWith(t *testing.T, n int, cfg CarouselConfig) (*Carousel, *testSource) {
	t.Helper()
	src := &testSource{n: n}
	c, err := NewCarousel(src, nil, cfg)
	if err != nil {
		t.Fatalf("NewCarousel: %v", err)
	}
	c.SetSize(1000, 500)
	return c, src
}

// settle runs updates until the carousel stops aligning.
func settle(t *testing.T, c *Carousel) {
	t.Helper()
	for i := 0; c.State() == TouchAligning; i++ {
		if i > 120 {
			t.Fatal("carousel did not settle")
		}
		c.Update(1.0 / 60)
	}
}

// drawPass runs a draw without a render target.
func drawPass(c *Carousel) {
	c.prepare(nil)
	c.afterDraw()
}

func TestNewCarouselErrors(t *testing.T) {
	if _, err := NewCarousel(nil, nil, DefaultCarouselConfig()); !errors.Is(err, ErrNilSource) {
		t.Errorf("nil source err = %v, want ErrNilSource", err)
	}

	cfg := DefaultCarouselConfig()
	cfg.ItemHeight = 0
	if _, err := NewCarousel(&testSource{}, nil, cfg); !errors.Is(err, ErrInvalidItemSize) {
		t.Errorf("zero height err = %v, want ErrInvalidItemSize", err)
	}

	cfg = DefaultCarouselConfig()
	cfg.Spacing = 0
	if _, err := NewCarousel(&testSource{}, nil, cfg); !errors.Is(err, ErrInvalidSpacing) {
		t.Errorf("zero spacing err = %v, want ErrInvalidSpacing", err)
	}
}

func TestNewCarouselDefaults(t *testing.T) {
	cfg := DefaultCarouselConfig()
	cfg.Strips = 0
	c, _ := newTestCarouselWith(t, 3, cfg)

	if _, ok := c.Layout().(*Engine); !ok {
		t.Errorf("Layout() = %T, want *Engine", c.Layout())
	}
	if c.Config().Strips != defaultStrips {
		t.Errorf("Strips = %d, want %d", c.Config().Strips, defaultStrips)
	}
	if c.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q", c.ScreenshotDir)
	}
	if c.State() != TouchResting {
		t.Errorf("State() = %s, want resting", c.State())
	}
}

func TestNewCarouselInitialSelection(t *testing.T) {
	cfg := DefaultCarouselConfig()
	cfg.ItemWidth = 300
	cfg.Selection = 3
	c, _ := newTestCarouselWith(t, 5, cfg)
	if c.Selection() != 3 || c.ScrollX() != 450 {
		t.Errorf("selection %d at %v, want 3 at 450", c.Selection(), c.ScrollX())
	}

	cfg.Selection = 99
	c, _ = newTestCarouselWith(t, 5, cfg)
	if c.Selection() != 4 {
		t.Errorf("Selection() = %d, want clamped to 4", c.Selection())
	}
}

func TestCarouselScrollClamps(t *testing.T) {
	c, _ := newTestCarousel(t, 30)
	c.ScrollTo(-100)
	if c.ScrollX() != 0 {
		t.Errorf("ScrollX = %v, want 0", c.ScrollX())
	}
	c.ScrollTo(1e9)
	if c.ScrollX() != 29*150 {
		t.Errorf("ScrollX = %v, want %v", c.ScrollX(), 29*150)
	}
	if c.Selection() != 29 {
		t.Errorf("Selection() = %d, want 29", c.Selection())
	}
}

func TestCarouselVisibleFrames(t *testing.T) {
	c, src := newTestCarousel(t, 30)
	c.prepare(nil)

	// Items within half the width plus two item widths: 0..7.
	frames := c.Frames()
	if len(frames) != 8 {
		t.Fatalf("%d frames, want 8", len(frames))
	}
	if src.calls != 8 {
		t.Errorf("CoverAt called %d times, want 8", src.calls)
	}
	for _, f := range frames {
		if f.Width != 300 || f.Height != 400 {
			t.Errorf("frame %d size %vx%v, want 300x400", f.Index, f.Width, f.Height)
		}
	}
}

func TestCarouselRecyclesFrames(t *testing.T) {
	c, src := newTestCarousel(t, 30)
	pool := NewFramePool()
	c.SetPool(pool)

	c.ScrollTo(1500)
	c.prepare(nil)
	if len(c.Frames()) != 15 || pool.Created() != 15 {
		t.Fatalf("%d frames, %d created, want 15 and 15", len(c.Frames()), pool.Created())
	}

	// One step right: item 3 leaves and item 18 enters in its frame.
	c.ScrollTo(1650)
	c.prepare(nil)
	if pool.Created() != 15 {
		t.Errorf("Created() = %d, want 15", pool.Created())
	}
	if pool.Len() != 0 {
		t.Errorf("pool Len() = %d, want 0", pool.Len())
	}
	if src.lastRecycled() != (testCover{id: 3}) {
		t.Errorf("recycled cover = %v, want cover 3", src.lastRecycled())
	}
	seen := map[int]bool{}
	for _, f := range c.Frames() {
		seen[f.Index] = true
	}
	if seen[3] || !seen[18] {
		t.Errorf("visible items %v, want 4..18", seen)
	}
}

func TestCarouselCenterDrawnLast(t *testing.T) {
	c, _ := newTestCarousel(t, 30)
	c.SetSelection(10)
	c.prepare(nil)

	frames := c.Frames()
	top := frames[len(frames)-1]
	if top.Index != 10 {
		t.Errorf("top frame is item %d, want 10", top.Index)
	}
	assertNear(t, "center rotation", top.RotationY, 0)
	assertNear(t, "center scale", top.ScaleX, 1.2)

	for i := 1; i < len(frames)-1; i++ {
		if frames[i].Index < frames[i-1].Index {
			t.Errorf("non-center frames out of order: %d before %d", frames[i-1].Index, frames[i].Index)
		}
	}
}

func TestCarouselAlignsAfterDrift(t *testing.T) {
	tests := []struct {
		name   string
		scroll float64
		want   float64
	}{
		{"back onto item 10", 1540, 1500},
		{"forward onto item 11", 1600, 1650},
		{"already centered", 1500, 1500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCarousel(t, 30)
			sink := &recordSink{}
			c.SetEventSink(sink)
			c.ScrollTo(tt.scroll)

			drawPass(c)
			aligning := tt.scroll != tt.want
			if got := c.State() == TouchAligning; got != aligning {
				t.Fatalf("aligning = %v, want %v", got, aligning)
			}
			settle(t, c)

			if c.ScrollX() != tt.want {
				t.Errorf("ScrollX = %v, want %v", c.ScrollX(), tt.want)
			}
			if aligning {
				if sink.count(EventAlignStarted) != 1 || sink.count(EventAlignFinished) != 1 {
					t.Errorf("events = %v, want one start and one finish", sink.events)
				}
			}

			// A second pass on an aligned list does nothing.
			drawPass(c)
			if c.State() != TouchResting {
				t.Errorf("state = %s after aligned pass", c.State())
			}
		})
	}
}

func TestCarouselEndDragAligns(t *testing.T) {
	c, _ := newTestCarousel(t, 30)
	c.SetSelection(10)

	c.BeginDrag()
	c.DragBy(-40)
	if c.State() != TouchScrolling {
		t.Fatalf("state = %s, want scrolling", c.State())
	}
	if c.ScrollX() != 1540 {
		t.Fatalf("ScrollX = %v, want 1540", c.ScrollX())
	}

	c.EndDrag()
	if c.State() != TouchAligning {
		t.Fatalf("state = %s after EndDrag, want aligning", c.State())
	}
	settle(t, c)
	if c.ScrollX() != 1500 {
		t.Errorf("ScrollX = %v, want 1500", c.ScrollX())
	}
}

func TestCarouselDragCancelsAlignment(t *testing.T) {
	c, _ := newTestCarousel(t, 30)
	c.ScrollTo(1540)
	drawPass(c)
	c.Update(0.05)

	c.BeginDrag()
	x := c.ScrollX()
	c.Update(0.05)
	if c.ScrollX() != x {
		t.Errorf("ScrollX moved from %v to %v during drag", x, c.ScrollX())
	}
	if e := c.Layout().(*Engine); e.Aligning() {
		t.Error("alignment still running during drag")
	}
}

func TestCarouselScrollByDropsAlignment(t *testing.T) {
	c, _ := newTestCarousel(t, 30)
	c.ScrollTo(1540)
	drawPass(c)
	c.ScrollBy(20)
	if c.State() != TouchResting {
		t.Errorf("state = %s, want resting", c.State())
	}
	if c.ScrollX() != 1560 {
		t.Errorf("ScrollX = %v, want 1560", c.ScrollX())
	}
}

func TestCarouselScrollToItem(t *testing.T) {
	c, _ := newTestCarousel(t, 30)
	c.SetSelection(10)

	c.ScrollToItem(10)
	if c.State() != TouchResting {
		t.Errorf("ScrollToItem(selection) started aligning")
	}

	c.ScrollToItem(12)
	settle(t, c)
	if c.ScrollX() != 1800 || c.Selection() != 12 {
		t.Errorf("at %v selection %d, want 1800 selection 12", c.ScrollX(), c.Selection())
	}

	c.ScrollToItem(99)
	settle(t, c)
	if c.Selection() != 29 {
		t.Errorf("Selection() = %d, want clamped to 29", c.Selection())
	}
}

// poseOnly is a layout without alignment.
type poseOnly struct{ e *Engine }

func (p poseOnly) Pose(v View, it Item) Pose { return p.e.Pose(v, it) }

func (p poseOnly) ResolveDrawOrder(v View, items []Item) DrawPass {
	return p.e.ResolveDrawOrder(v, items)
}

func TestCarouselWithoutAligner(t *testing.T) {
	e := newTestEngine(t)
	cfg := DefaultCarouselConfig()
	cfg.ItemWidth = 300
	c, err := NewCarousel(&testSource{n: 30}, poseOnly{e}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	c.SetSize(1000, 500)

	c.ScrollToItem(4)
	if c.ScrollX() != 600 || c.State() != TouchResting {
		t.Errorf("ScrollX = %v state = %s, want an immediate jump to 600", c.ScrollX(), c.State())
	}

	c.ScrollTo(640)
	drawPass(c)
	c.Update(0.35)
	if c.ScrollX() != 640 {
		t.Errorf("ScrollX = %v, want 640 left alone", c.ScrollX())
	}
}

func TestCarouselSelectionEvents(t *testing.T) {
	c, _ := newTestCarousel(t, 30)
	sink := &recordSink{}
	c.SetEventSink(sink)

	c.SetSelection(3)
	if len(sink.events) != 1 {
		t.Fatalf("events = %v, want one", sink.events)
	}
	ev := sink.events[0]
	if ev.Type != EventSelectionChanged || ev.Index != 3 || ev.ScrollX != 450 {
		t.Errorf("event = %+v", ev)
	}

	c.SetSelection(3)
	if len(sink.events) != 1 {
		t.Errorf("re-selecting emitted %d events", len(sink.events)-1)
	}

	c.SetEventSink(nil)
	c.SetSelection(5)
}

func TestCarouselItemAt(t *testing.T) {
	c, _ := newTestCarousel(t, 30)
	c.SetSelection(10)
	c.prepare(nil)

	if idx, ok := c.ItemAt(500, 250); !ok || idx != 10 {
		t.Errorf("ItemAt(center) = %d, %v, want 10", idx, ok)
	}
	if _, ok := c.ItemAt(500, 5); ok {
		t.Error("ItemAt above the covers hit an item")
	}
}

func TestCarouselClickCentersItem(t *testing.T) {
	cfg := DefaultCarouselConfig()
	cfg.ItemWidth, cfg.ItemHeight = 200, 300
	cfg.Spacing = 1
	c, _ := newTestCarouselWith(t, 10, cfg)
	sink := &recordSink{}
	c.SetEventSink(sink)
	c.prepare(nil)

	// Item 1 sits right of center, pushed out by the position adjustment.
	if idx, ok := c.ItemAt(856, 250); !ok || idx != 1 {
		t.Fatalf("ItemAt = %d, %v, want item 1", idx, ok)
	}
	if !c.Click(856, 250) {
		t.Fatal("Click missed")
	}
	if sink.count(EventItemClicked) != 1 {
		t.Errorf("events = %v, want one click", sink.events)
	}

	settle(t, c)
	if c.ScrollX() != 200 || c.Selection() != 1 {
		t.Errorf("at %v selection %d, want 200 selection 1", c.ScrollX(), c.Selection())
	}

	if c.Click(5, 5) {
		t.Error("Click in an empty corner hit an item")
	}
}

func TestCarouselScrollToItemSpacing(t *testing.T) {
	tests := []struct {
		name     string
		spacing  float64
		from, to int
	}{
		{"full spacing back", 1, 3, 2},
		{"full spacing forward", 1, 3, 4},
		{"full spacing back two", 1, 3, 1},
		{"quarter spacing forward", 0.25, 3, 4},
		{"quarter spacing back", 0.25, 3, 2},
		{"half spacing back", 0.5, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCarouselConfig()
			cfg.ItemWidth, cfg.ItemHeight = 300, 400
			cfg.Spacing = tt.spacing
			cfg.Selection = tt.from
			c, _ := newTestCarouselWith(t, 6, cfg)
			drawPass(c)

			c.ScrollToItem(tt.to)
			settle(t, c)
			drawPass(c)
			settle(t, c)

			want := float64(tt.to) * 300 * tt.spacing
			if c.Selection() != tt.to {
				t.Errorf("Selection() = %d, want %d", c.Selection(), tt.to)
			}
			assertNear(t, "ScrollX", c.ScrollX(), want)
		})
	}
}

func TestCarouselDimsUnselected(t *testing.T) {
	cfg := DefaultCarouselConfig()
	cfg.ItemWidth, cfg.ItemHeight = 300, 400
	cfg.UnselectedAlpha = 0.5
	c, _ := newTestCarouselWith(t, 10, cfg)
	c.SetSelection(4)
	c.prepare(nil)

	if len(c.Frames()) < 2 {
		t.Fatalf("%d frames, want several", len(c.Frames()))
	}
	for _, f := range c.Frames() {
		want := 0.5
		if f.Index == 4 {
			want = 1
		}
		if got := c.quad(f).tint; got != (Color{1, 1, 1, want}) {
			t.Errorf("item %d tint = %+v, want alpha %v", f.Index, got, want)
		}
	}

	c.SetSelection(5)
	c.prepare(nil)
	for _, f := range c.Frames() {
		if f.Index == 5 && c.quad(f).tint != ColorWhite {
			t.Errorf("new selection tint = %+v, want white", c.quad(f).tint)
		}
	}
}

func TestCarouselNoDimByDefault(t *testing.T) {
	c, _ := newTestCarousel(t, 10)
	c.SetSelection(4)
	c.prepare(nil)
	for _, f := range c.Frames() {
		if c.quad(f).tint != ColorWhite {
			t.Errorf("item %d tint = %+v, want white", f.Index, c.quad(f).tint)
		}
	}
}

func TestCarouselEmptySource(t *testing.T) {
	c, _ := newTestCarousel(t, 0)
	drawPass(c)
	c.Update(0.1)
	if len(c.Frames()) != 0 {
		t.Errorf("%d frames for empty source", len(c.Frames()))
	}
	if _, ok := c.ItemAt(500, 250); ok {
		t.Error("ItemAt hit on empty carousel")
	}
	c.ScrollToItem(3)
	if c.ScrollX() != 0 {
		t.Errorf("ScrollX = %v, want 0", c.ScrollX())
	}
}

func TestCarouselUnsizedDrawsNothing(t *testing.T) {
	src := &testSource{n: 5}
	c, err := NewCarousel(src, nil, DefaultCarouselConfig())
	if err != nil {
		t.Fatal(err)
	}
	drawPass(c)
	if len(c.Frames()) != 0 || src.calls != 0 {
		t.Errorf("unsized carousel built %d frames", len(c.Frames()))
	}
}
