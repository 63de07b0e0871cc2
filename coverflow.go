package coverflow

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied 8-bit color.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(math.Round(clamp01(c.R) * a * 255)),
		G: uint8(math.Round(clamp01(c.G) * a * 255)),
		B: uint8(math.Round(clamp01(c.B) * a * 255)),
		A: uint8(math.Round(a * 255)),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// TouchState is the interaction state of a carousel. The coverflow engine only
// ever writes TouchResting and TouchAligning; the drag states belong to
// whoever feeds input into the carousel.
type TouchState uint8

const (
	TouchResting   TouchState = iota // no input and no animation
	TouchAligning                    // snap-to-center animation in flight
	TouchScrolling                   // pointer drag in progress
	TouchFlinging                    // host-driven fling in progress
)

// String returns the state name.
func (s TouchState) String() string {
	switch s {
	case TouchResting:
		return "resting"
	case TouchAligning:
		return "aligning"
	case TouchScrolling:
		return "scrolling"
	case TouchFlinging:
		return "flinging"
	default:
		return "unknown"
	}
}
