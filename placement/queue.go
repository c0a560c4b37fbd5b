package placement

// SelectKind is the kind of a discrete select input.
type SelectKind uint8

const (
	SelectStart SelectKind = iota + 1
	SelectEnd
	Select
)

func (k SelectKind) String() string {
	switch k {
	case SelectStart:
		return "selectstart"
	case SelectEnd:
		return "selectend"
	case Select:
		return "select"
	default:
		return "unknown"
	}
}

// SelectEvent is a queued select input with no payload beyond its kind.
type SelectEvent struct {
	Kind SelectKind
}

// QueueCapacity bounds pending select events between frames.
const QueueCapacity = 64

// Queue buffers select events from the input layer until the frame loop
// drains them. Push never blocks; events are dropped when the queue is full.
type Queue struct {
	ch chan SelectEvent
}

// NewQueue returns an empty queue with QueueCapacity slots.
func NewQueue() *Queue {
	return &Queue{ch: make(chan SelectEvent, QueueCapacity)}
}

// Push enqueues ev and reports whether it was accepted.
func (q *Queue) Push(ev SelectEvent) bool {
	select {
	case q.ch <- ev:
		return true
	default:
		return false
	}
}

// Drain hands every pending event to fn exactly once, in arrival order.
// Events pushed while draining are left for the next frame.
func (q *Queue) Drain(fn func(SelectEvent)) int {
	n := len(q.ch)
	for i := 0; i < n; i++ {
		select {
		case ev := <-q.ch:
			fn(ev)
		default:
			return i
		}
	}
	return n
}
