package coverflow

import "math"

// View is the per-frame snapshot of the hosting list that every geometry
// function reads. Positions are in content pixels: an item's center already
// includes the list layout, and ScrollX is the content offset of the
// viewport's left edge.
type View struct {
	Width, Height float64
	ScrollX       float64
	// Spacing is the item spacing factor of the list.
	Spacing float64
}

// Center returns the content-space x coordinate of the viewport center.
func (v View) Center() float64 {
	return v.ScrollX + v.Width/2
}

// sized reports whether the view has a usable width.
func (v View) sized() bool {
	return v.Width > 0
}

// RelativePosition returns the distance of center from the viewport center in
// units of half the viewport width. On-screen items map to [-1, 1]; items out
// of view exceed that range. An unsized view yields 0.
func RelativePosition(v View, center float64) float64 {
	half := v.Width / 2
	if half <= 0 {
		return 0
	}
	return (center - (v.ScrollX + half)) / half
}

// SizeMultiplier rescales thresholds tuned at cfg.TuningWidth to the current
// widget width.
func SizeMultiplier(cfg Config, v View) float64 {
	if !v.sized() {
		return 1
	}
	return cfg.TuningWidth / v.Width
}

// ClampedRelative maps pos linearly onto [-1, 1] inside ±threshold and
// saturates to exactly ±1 beyond it. A non-positive threshold degenerates to
// the sign of pos.
func ClampedRelative(pos, threshold float64) float64 {
	if threshold <= 0 {
		switch {
		case pos < 0:
			return -1
		case pos > 0:
			return 1
		default:
			return 0
		}
	}
	if pos <= -threshold {
		return -1
	}
	if pos >= threshold {
		return 1
	}
	return pos / threshold
}

// RotationAngle returns the linear rotation of an item in degrees. Items right
// of center get a negative angle so they turn to face the middle.
func RotationAngle(cfg Config, v View, center float64) float64 {
	t := cfg.RotationThreshold * SizeMultiplier(cfg, v)
	return -cfg.MaxRotationAngle * ClampedRelative(RelativePosition(v, center), t)
}

// circleRatio is the cosine of the item's angle on the circular path,
// clamped into the acos domain.
func circleRatio(cfg Config, v View, center float64) float64 {
	r := cfg.Radius
	if r < 1 {
		r = 1
	}
	x := RelativePosition(v, center) / r
	return math.Max(-1, math.Min(1, x))
}

// CircleAngle returns the angular position of an item on the circular path
// in degrees. The center item sits at 0 and the horizon at ±90.
func CircleAngle(cfg Config, v View, center float64) float64 {
	return radToDeg(math.Acos(circleRatio(cfg, v, center))) - 90
}

// ScaleFactor returns cfg.MaxScaleFactor for the center item, falling
// linearly to 1 at the scaling threshold.
func ScaleFactor(cfg Config, v View, center float64) float64 {
	t := cfg.ScalingThreshold * SizeMultiplier(cfg, v)
	crp := ClampedRelative(RelativePosition(v, center), t)
	return 1 + (cfg.MaxScaleFactor-1)*(1-math.Abs(crp))
}

// SpacingMultiplierOnCircle is 1 at the center and shrinks to 0 at the
// horizon of the circular path.
func SpacingMultiplierOnCircle(cfg Config, v View, center float64) float64 {
	return math.Sin(math.Acos(circleRatio(cfg, v, center)))
}

// DepthOffsetOnCircle returns how far an item has sunk behind the center
// along the circular path, scaled by cfg.PerspectiveMultiplier. It is
// subtracted from the item scale.
func DepthOffsetOnCircle(cfg Config, v View, center float64) float64 {
	return cfg.PerspectiveMultiplier * (1 - math.Sin(math.Acos(circleRatio(cfg, v, center))))
}

// PositionAdjustOffset returns the extra horizontal push in pixels that keeps
// neighbors from colliding while they rotate through the center. It reaches
// its full size at the adjust threshold and tapers along the circle.
func PositionAdjustOffset(cfg Config, v View, center, itemWidth float64) float64 {
	t := cfg.AdjustPositionThreshold * SizeMultiplier(cfg, v)
	crp := ClampedRelative(RelativePosition(v, center), t)
	return itemWidth * cfg.AdjustPositionMultiplier * v.Spacing * crp * SpacingMultiplierOnCircle(cfg, v, center)
}

func radToDeg(r float64) float64 { return r * 180 / math.Pi }

func degToRad(d float64) float64 { return d * math.Pi / 180 }
