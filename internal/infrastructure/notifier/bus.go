package notifier

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/logging"
	"github.com/bnema/upgradewatch/internal/ui/mainloop"
)

// Bus hands events to subscribers on a serialized loop. Bursts of the same
// event kind that arrive before the loop runs are merged; subscribers only
// see the highest stage and are expected to re-query the detector.
type Bus struct {
	coalescer *mainloop.Coalescer

	mu   sync.RWMutex
	subs []func(entity.Event)
}

// NewBus creates a bus that posts onto loop.
func NewBus(loop *mainloop.Loop) *Bus {
	b := &Bus{}
	b.coalescer = mainloop.NewCoalescer(loop.TryPost, b.dispatch)
	return b
}

// Subscribe registers fn. It runs on the loop goroutine.
func (b *Bus) Subscribe(fn func(entity.Event)) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	b.subs = append(b.subs, fn)
	b.mu.Unlock()
}

// Notify implements port.Notifier. It never waits for the loop.
func (b *Bus) Notify(ctx context.Context, event entity.Event) {
	if !b.coalescer.Post(event) {
		logging.FromContext(ctx).Debug().
			Str("event", event.Kind.String()).
			Msg("bus dropped event")
	}
}

func (b *Bus) dispatch(event entity.Event) {
	b.mu.RLock()
	subs := slices.Clone(b.subs)
	b.mu.RUnlock()
	for _, fn := range subs {
		fn(event)
	}
}

// Close drops pending deliveries.
func (b *Bus) Close() {
	b.coalescer.Close()
}
