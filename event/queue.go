package event

import "sync"

// DefaultQueueCapacity bounds a queue when no capacity is given.
const DefaultQueueCapacity = 128

// Queue is a bounded FIFO hand-off for events produced outside the render
// goroutine. When full, the oldest pending event is dropped so the
// producer never blocks and the consumer never waits on it.
//
// The mutex is held only for constant-time bookkeeping, so neither side
// can stall the other for longer than a few instructions.
type Queue struct {
	mu      sync.Mutex
	ring    []Event
	head    int
	count   int
	dropped uint64
}

// NewQueue returns a queue holding at most capacity pending events.
// Non-positive capacities fall back to DefaultQueueCapacity.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{ring: make([]Event, capacity)}
}

// Push adds ev, dropping the oldest pending event when the queue is full.
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == len(q.ring) {
		q.head = (q.head + 1) % len(q.ring)
		q.count--
		q.dropped++
	}

	q.ring[(q.head+q.count)%len(q.ring)] = ev
	q.count++
}

// Pop removes and returns the oldest pending event.
func (q *Queue) Pop() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return Event{}, false
	}

	ev := q.ring[q.head]
	q.head = (q.head + 1) % len(q.ring)
	q.count--

	return ev, true
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Dropped returns the total number of events discarded due to overflow.
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
