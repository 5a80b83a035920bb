package queue

import "autostart/internal/desktop"

// Queue is the ordered collection of admitted descriptors. Insertion order
// is launch priority: directory order first, then file encounter order.
// The scan phase appends; the launch phase only reads. The two phases never
// overlap, so no locking is needed.
type Queue struct {
	entries []desktop.Entry
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Append adds an admitted entry at the tail.
func (q *Queue) Append(entry desktop.Entry) {
	q.entries = append(q.entries, entry)
}

// Len reports the number of queued entries.
func (q *Queue) Len() int {
	return len(q.entries)
}

// Entries returns the queued entries in launch order. The slice is shared;
// callers must treat it as read-only.
func (q *Queue) Entries() []desktop.Entry {
	return q.entries
}
