package coverflow

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// snapDistance is the remaining distance in pixels at which an
	// alignment stops interpolating and jumps to its target.
	snapDistance = 1.0
	// alignSlop is the largest center offset still considered aligned.
	alignSlop = 1e-3
)

// AlignEase is the easing used for alignment: a decelerating curve.
var AlignEase ease.TweenFunc = ease.OutQuad

// scrollAnim animates the scroll position from one value to another.
// The tween runs over the delta rather than absolute positions so float32
// precision holds far out along a long list.
type scrollAnim struct {
	tween    *gween.Tween
	from, to float64
	instant  bool
}

func newScrollAnim(from, delta float64, duration float32, fn ease.TweenFunc) *scrollAnim {
	a := &scrollAnim{from: from, to: from + delta}
	if duration <= 0 {
		a.instant = true
		return a
	}
	a.tween = gween.New(0, float32(delta), duration, fn)
	return a
}

// step advances the animation by dt seconds and returns the scroll position
// to apply. settled is true once the animation finished or came within
// snapDistance of its target; x is then exactly the target.
func (a *scrollAnim) step(dt float32) (x float64, settled bool) {
	if a.instant {
		return a.to, true
	}
	val, finished := a.tween.Update(dt)
	x = a.from + float64(val)
	if finished || math.Abs(a.to-x) < snapDistance {
		return a.to, true
	}
	return x, false
}

// target returns the scroll position the animation ends at.
func (a *scrollAnim) target() float64 {
	return a.to
}
