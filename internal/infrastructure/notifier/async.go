package notifier

import (
	"context"

	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/logging"
	"github.com/bnema/upgradewatch/internal/ui/mainloop"
)

// Async hands events to a sink that may block (disk, subprocesses) on a
// separate loop, so the detector's control goroutine never waits on it.
// Events are delivered in order; when the loop is full they are dropped.
type Async struct {
	name string
	sink port.Notifier
	loop *mainloop.Loop
}

// NewAsync wraps sink. The caller runs loop.
func NewAsync(name string, sink port.Notifier, loop *mainloop.Loop) *Async {
	return &Async{name: name, sink: sink, loop: loop}
}

// Notify implements port.Notifier.
func (a *Async) Notify(ctx context.Context, event entity.Event) {
	// Queued writes outlive a detector shutdown.
	sinkCtx := context.WithoutCancel(ctx)
	if a.loop.TryPost(func() { a.sink.Notify(sinkCtx, event) }) {
		return
	}
	logging.FromContext(ctx).Warn().
		Str("sink", a.name).
		Str("event", event.Kind.String()).
		Msg("notifier queue full; event dropped")
}
