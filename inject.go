package coverflow

// syntheticPointerEvent is one injected pointer sample in screen pixels.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at the given screen coordinates. Queued
// events are consumed one per Update, before real input would be.
func (c *Carousel) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (c *Carousel) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (c *Carousel) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two updates.
func (c *Carousel) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a full drag: a press at (fromX, fromY), frames-2 linearly
// interpolated moves and a release at (toX, toY). The sequence consumes
// frames updates; the minimum is 2.
func (c *Carousel) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// Injecting reports whether injected events are still pending. Hosts should
// skip real pointer input while it is true.
func (c *Carousel) Injecting() bool {
	return len(c.injectQueue) > 0
}

// processInjectedInput pops one event and feeds it through HandlePointer.
// It reports whether an event was consumed.
func (c *Carousel) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	c.HandlePointer(evt.x, evt.y, evt.pressed)
	return true
}
