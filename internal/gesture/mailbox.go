package gesture

import "sync"

// Mailbox hands the most recent landmark frame from the tracker goroutine to
// the render tick. Publishing overwrites whatever was there; stale frames are
// never queued because only the newest observation matters. A nil frame means
// the tracker currently sees no hand.
type Mailbox struct {
	mu    sync.Mutex
	frame *Frame
}

func (m *Mailbox) Publish(f *Frame) {
	m.mu.Lock()
	m.frame = f
	m.mu.Unlock()
}

// Latest returns the most recently published frame, or nil when no hand is
// tracked.
func (m *Mailbox) Latest() *Frame {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frame
}
