package coverflow

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Host is the list an Engine is attached to. It owns the scroll position and
// the touch state; the engine reads both and writes them only to run an
// alignment.
type Host interface {
	View() View
	State() TouchState
	SetState(TouchState)
	ScrollTo(x float64)
	Selection() int
	ItemWidth() float64
}

// Layout is the extension point of a Carousel: it decides how each visible
// item is posed and in which order the items are drawn.
type Layout interface {
	Pose(v View, it Item) Pose
	ResolveDrawOrder(v View, items []Item) DrawPass
}

// Aligner is implemented by layouts that snap the scroll position onto item
// boundaries. The carousel calls CheckScrollPosition when scrolling settles,
// ComputeScroll once per update, and AfterDraw at the end of every draw pass.
type Aligner interface {
	CheckScrollPosition(h Host) bool
	ComputeScroll(h Host, dt float32) bool
	AfterDraw(h Host) bool
	ScrollToItem(h Host, index int)
}

// Engine is the coverflow layout. It poses items on a circular path, draws
// the center item on top, and snaps the list onto the center item whenever
// scrolling stops in between two items.
//
// Engine is not safe for concurrent use; like the rest of the package it
// lives on the render thread.
type Engine struct {
	cfg    Config
	order  DrawOrder
	ranks  []int
	offset float64 // center offset of the last pass, or a pending ScrollToItem delta
	anim   *scrollAnim
	easing ease.TweenFunc
	debug  bool
}

var (
	_ Layout  = (*Engine)(nil)
	_ Aligner = (*Engine)(nil)
)

// NewEngine creates an engine with the given tuning.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, easing: AlignEase}, nil
}

// Config returns the current tuning.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetConfig replaces the whole tuning. Invalid configs are rejected and the
// previous one is kept.
func (e *Engine) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg
	return nil
}

// SetRotationThreshold sets where covers start to rotate into the center.
func (e *Engine) SetRotationThreshold(t float64) { e.cfg.RotationThreshold = t }

// SetScalingThreshold sets where covers start to zoom in.
func (e *Engine) SetScalingThreshold(t float64) { e.cfg.ScalingThreshold = t }

// SetAdjustPositionThreshold sets where covers start to widen their spacing.
func (e *Engine) SetAdjustPositionThreshold(t float64) { e.cfg.AdjustPositionThreshold = t }

// SetAdjustPositionMultiplier sets how much spacing is added near the center.
func (e *Engine) SetAdjustPositionMultiplier(m float64) { e.cfg.AdjustPositionMultiplier = m }

// SetMaxRotationAngle sets the rotation of covers at the edge, in degrees.
func (e *Engine) SetMaxRotationAngle(deg float64) { e.cfg.MaxRotationAngle = deg }

// SetMaxScaleFactor sets the scale of the center cover.
func (e *Engine) SetMaxScaleFactor(s float64) { e.cfg.MaxScaleFactor = s }

// SetPerspectiveMultiplier sets how strongly off-center covers shrink.
func (e *Engine) SetPerspectiveMultiplier(m float64) { e.cfg.PerspectiveMultiplier = m }

// SetAlignDuration sets the snap animation length in seconds.
func (e *Engine) SetAlignDuration(seconds float32) { e.cfg.AlignDuration = seconds }

// SetRadius sets the radius of the circular path. Radii below 1 are rejected.
func (e *Engine) SetRadius(r float64) error {
	if r < 1 || math.IsNaN(r) {
		return ErrInvalidRadius
	}
	e.cfg.Radius = r
	return nil
}

// SetTuningWidth sets the widget width the tuning was done at.
func (e *Engine) SetTuningWidth(w float64) error {
	if w <= 0 || math.IsNaN(w) {
		return ErrInvalidWidth
	}
	e.cfg.TuningWidth = w
	return nil
}

// SetDebugMode enables logging of alignment activity to stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// Pose computes the pose of one item for the current frame.
func (e *Engine) Pose(v View, it Item) Pose {
	return ComputePose(e.cfg, v, it)
}

// ResolveDrawOrder ranks items for drawing and records the center offset
// that AfterDraw uses to decide whether to align.
func (e *Engine) ResolveDrawOrder(v View, items []Item) DrawPass {
	pass := resolveInto(&e.order, v, items, e.ranks)
	e.ranks = pass.Ranks
	e.offset = pass.Offset
	return pass
}

// BeginPass starts a draw pass for hosts that ask for ranks one item at a
// time through DrawingOrder.
func (e *Engine) BeginPass() {
	e.order.Reset()
	e.offset = 0
}

// DrawingOrder returns the draw rank of item i out of count for the current
// pass and records the center offset once an item claims the center.
func (e *Engine) DrawingOrder(v View, count, i int, it Item) int {
	r := e.order.Rank(v, count, i, it)
	e.offset = e.order.CenterOffset()
	return r
}

// CenterOffset returns the offset recorded by the last pass.
func (e *Engine) CenterOffset() float64 {
	return e.offset
}

// Aligning reports whether an alignment animation is in flight.
func (e *Engine) Aligning() bool {
	return e.anim != nil
}

// CheckScrollPosition starts an alignment towards the recorded center offset.
// It returns false when the list is already aligned. A call while an
// alignment is running replaces its target.
func (e *Engine) CheckScrollPosition(h Host) bool {
	if math.Abs(e.offset) < alignSlop {
		return false
	}
	from := h.View().ScrollX
	e.anim = newScrollAnim(from, e.offset, e.cfg.AlignDuration, e.easing)
	h.SetState(TouchAligning)
	if e.debug {
		debugf("align: start %.1f -> %.1f over %.3fs", from, e.anim.target(), e.cfg.AlignDuration)
	}
	return true
}

// ComputeScroll advances a running alignment by dt seconds and applies the
// new scroll position. It returns true while more frames are needed. When the
// host has left the aligning state (a drag started) the animation is dropped.
func (e *Engine) ComputeScroll(h Host, dt float32) bool {
	if h.State() != TouchAligning {
		if e.anim != nil && e.debug {
			debugf("align: aborted by %s", h.State())
		}
		e.anim = nil
		return false
	}
	if e.anim == nil {
		h.SetState(TouchResting)
		return false
	}

	x, settled := e.anim.step(dt)
	h.ScrollTo(x)
	if !settled {
		return true
	}

	e.anim = nil
	e.offset = 0
	h.SetState(TouchResting)
	if e.debug {
		debugf("align: settled at %.1f", x)
	}
	return false
}

// AfterDraw is called once a draw pass is complete. A resting list that is
// off center starts aligning.
func (e *Engine) AfterDraw(h Host) bool {
	if h.State() != TouchResting {
		return false
	}
	return e.CheckScrollPosition(h)
}

// ScrollToItem animates the list so that item index ends up in the center.
// Each item between the current selection and index moves the list by half
// an item width. Scrolling to the current selection does nothing.
func (e *Engine) ScrollToItem(h Host, index int) {
	sel := h.Selection()
	if index == sel {
		return
	}
	step := h.ItemWidth() / 2
	if index > sel {
		e.offset = step * float64(index-sel)
	} else {
		e.offset = -step * float64(sel-index)
	}
	e.CheckScrollPosition(h)
}
