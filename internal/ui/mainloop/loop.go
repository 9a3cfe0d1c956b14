package mainloop

import (
	"context"
	"sync"

	"github.com/bnema/upgradewatch/internal/logging"
)

const defaultQueueSize = 32

// Loop executes posted callbacks one at a time on the goroutine that
// calls Run.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates a loop with room for queueSize pending callbacks.
func NewLoop(queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Loop{
		tasks: make(chan func(), queueSize),
		done:  make(chan struct{}),
	}
}

// Post queues fn. It blocks only while the queue is full and drops fn
// once the loop is closed.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	select {
	case <-l.done:
		return
	default:
	}
	select {
	case l.tasks <- fn:
	case <-l.done:
	}
}

// TryPost queues fn without waiting. It reports false when the queue is
// full or the loop is closed.
func (l *Loop) TryPost(fn func()) bool {
	if fn == nil {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.tasks <- fn:
		return true
	default:
		return false
	}
}

// Run processes callbacks until ctx is cancelled or Close is called.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			l.Close()
			return
		case <-l.done:
			return
		case fn := <-l.tasks:
			l.invoke(ctx, fn)
		}
	}
}

func (*Loop) invoke(ctx context.Context, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Error().Interface("panic", r).Msg("main loop callback panicked")
		}
	}()
	fn()
}

// Close stops the loop. Pending callbacks are discarded.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}
