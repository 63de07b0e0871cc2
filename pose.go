package coverflow

// Item is the geometry of one list item as seen by a layout.
type Item struct {
	Index int
	// Center is the content-space x coordinate of the item center.
	Center        float64
	Width, Height float64
}

// Pose is the visual placement of one item for one frame. It is derived from
// the item center, the view and the config alone and is never stored between
// frames.
type Pose struct {
	Rotation    float64 // linear rotation, degrees
	CircleAngle float64 // angle on the circular path, degrees
	Scale       float64 // zoom factor before perspective
	XOffset     float64 // horizontal spacing nudge, pixels
	Depth       float64 // perspective shrink subtracted from Scale
}

// NeutralPose leaves an item untouched.
var NeutralPose = Pose{Scale: 1}

// NetRotation returns the rotation about the vertical axis to draw with:
// the linear rotation with the circular path contribution removed.
func (p Pose) NetRotation() float64 {
	return p.Rotation - p.CircleAngle
}

// NetScale returns the uniform scale to draw with.
func (p Pose) NetScale() float64 {
	return p.Scale - p.Depth
}

// ComputePose evaluates the geometry kernel for one item. An unsized view
// returns NeutralPose.
func ComputePose(cfg Config, v View, it Item) Pose {
	if !v.sized() {
		return NeutralPose
	}
	c := it.Center
	return Pose{
		Rotation:    RotationAngle(cfg, v, c),
		CircleAngle: CircleAngle(cfg, v, c),
		Scale:       ScaleFactor(cfg, v, c),
		XOffset:     PositionAdjustOffset(cfg, v, c, it.Width),
		Depth:       DepthOffsetOnCircle(cfg, v, c),
	}
}

// Apply writes the pose onto a frame. Nothing else about the frame changes.
func (p Pose) Apply(f *Frame) {
	f.RotationY = p.NetRotation()
	f.TranslationX = p.XOffset
	s := p.NetScale()
	f.ScaleX = s
	f.ScaleY = s
}
