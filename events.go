package coverflow

// EventType identifies a kind of carousel event.
type EventType uint8

const (
	EventSelectionChanged EventType = iota // the item nearest the center changed
	EventAlignStarted                      // a snap-to-center animation started
	EventAlignFinished                     // the list came to rest on an item
	EventItemClicked                       // an item was clicked via Carousel.Click
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventSelectionChanged:
		return "selection-changed"
	case EventAlignStarted:
		return "align-started"
	case EventAlignFinished:
		return "align-finished"
	case EventItemClicked:
		return "item-clicked"
	default:
		return "unknown"
	}
}

// Event carries carousel state changes to an EventSink.
type Event struct {
	Type    EventType
	Index   int
	ScrollX float64
}

// EventSink receives carousel events. It is called on the render thread
// while the carousel updates or draws.
type EventSink interface {
	EmitEvent(event Event)
}

// EventFunc adapts a plain function to an EventSink.
type EventFunc func(Event)

// EmitEvent calls f(event).
func (f EventFunc) EmitEvent(event Event) { f(event) }
