// Package mainloop runs callbacks on a single serialized goroutine.
package mainloop

import (
	"sync"

	"github.com/bnema/upgradewatch/internal/domain/entity"
)

// Coalescer queues detector events for a loop, keeping at most one pending
// delivery per event kind. An event arriving while its kind is still
// pending replaces the queued one unless it carries a lower stage.
type Coalescer struct {
	post    func(func()) bool
	deliver func(entity.Event)

	mu      sync.Mutex
	pending map[entity.EventKind]entity.Event
	merged  int
	closed  bool
}

// NewCoalescer creates a coalescer that schedules deliveries through post.
// post reports false when the loop refused the callback.
func NewCoalescer(post func(func()) bool, deliver func(entity.Event)) *Coalescer {
	if post == nil || deliver == nil {
		panic("mainloop.NewCoalescer: post and deliver are required")
	}
	return &Coalescer{
		post:    post,
		deliver: deliver,
		pending: make(map[entity.EventKind]entity.Event),
	}
}

// Post queues event. It returns false when the event was dropped because
// the coalescer is closed or the loop is full.
func (c *Coalescer) Post(event entity.Event) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	if queued, ok := c.pending[event.Kind]; ok {
		if event.Stage >= queued.Stage {
			c.pending[event.Kind] = event
		}
		c.merged++
		c.mu.Unlock()
		return true
	}
	c.pending[event.Kind] = event
	c.mu.Unlock()

	kind := event.Kind
	if c.post(func() { c.flush(kind) }) {
		return true
	}

	c.mu.Lock()
	delete(c.pending, kind)
	c.mu.Unlock()
	return false
}

func (c *Coalescer) flush(kind entity.EventKind) {
	c.mu.Lock()
	event, ok := c.pending[kind]
	delete(c.pending, kind)
	closed := c.closed
	c.mu.Unlock()

	if ok && !closed {
		c.deliver(event)
	}
}

// Merged returns how many events were folded into an already pending one.
func (c *Coalescer) Merged() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.merged
}

// Close drops pending deliveries and refuses new events.
func (c *Coalescer) Close() {
	c.mu.Lock()
	c.closed = true
	clear(c.pending)
	c.mu.Unlock()
}
