package notify

import (
	"sync"
	"time"
)

const defaultCapacity = 256

// Hub is a bounded in-memory notification buffer. The ui-api polls Recent to
// fetch toasts for display; the oldest entries are dropped on overflow.
type Hub struct {
	mu       sync.Mutex
	buf      []Notification
	capacity int
}

func NewHub() *Hub {
	return &Hub{capacity: defaultCapacity}
}

func (h *Hub) Notify(n Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf = append(h.buf, n)
	if len(h.buf) > h.capacity {
		h.buf = h.buf[len(h.buf)-h.capacity:]
	}
}

// Recent returns all notifications created after the supplied time, oldest
// first. The returned slice is a copy and is never nil.
func (h *Hub) Recent(after time.Time) []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()

	recent := []Notification{}
	for _, n := range h.buf {
		if n.At.After(after) {
			recent = append(recent, n)
		}
	}
	return recent
}
