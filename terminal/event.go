package terminal

// EventType identifies what a watcher observed
type EventType uint8

const (
	EventResize EventType = iota
	EventInterrupt
)

// String returns the event type name
func (t EventType) String() string {
	switch t {
	case EventResize:
		return "resize"
	case EventInterrupt:
		return "interrupt"
	default:
		return "unknown"
	}
}

// Event is delivered by Watcher; Width and Height are set for EventResize only
type Event struct {
	Type   EventType
	Width  int
	Height int
}
