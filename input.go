package coverflow

import "math"

// defaultDragDeadZone is how far in pixels a press must travel before it
// becomes a drag. Anything shorter is a click.
const defaultDragDeadZone = 4.0 // pixels

// pointerState tracks the primary pointer between HandlePointer calls.
type pointerState struct {
	down     bool
	dragging bool
	startX   float64
	startY   float64
	lastX    float64
}

// HandlePointer feeds one sample of the primary pointer into the carousel.
// Call it once per tick with the pointer position and whether the button is
// held. A press that travels further than the drag dead zone drags the list and
// aligns it on release; a shorter one clicks the item it started on.
func (c *Carousel) HandlePointer(x, y float64, pressed bool) {
	p := &c.pointer
	switch {
	case pressed && !p.down:
		*p = pointerState{down: true, startX: x, startY: y, lastX: x}

	case pressed:
		if !p.dragging && math.Hypot(x-p.startX, y-p.startY) > c.dragDeadZone {
			p.dragging = true
			c.BeginDrag()
		}
		if p.dragging {
			c.DragBy(x - p.lastX)
			p.lastX = x
		}

	case p.down:
		if p.dragging {
			c.DragBy(x - p.lastX)
			c.EndDrag()
		} else {
			c.Click(p.startX, p.startY)
		}
		c.pointer = pointerState{}
	}
}

// Dragging reports whether a pointer drag is in progress.
func (c *Carousel) Dragging() bool {
	return c.pointer.dragging
}

// SetDragDeadZone sets the minimum movement in pixels before a press turns
// into a drag.
func (c *Carousel) SetDragDeadZone(pixels float64) {
	c.dragDeadZone = pixels
}
