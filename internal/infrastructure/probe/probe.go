// Package probe reads the installed application version from disk and
// pairs it with the running version.
package probe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/logging"
)

// ErrNotApplicable is returned by a reader that has nothing to report on
// this system (for example, no staged update). The probe moves on to the
// next reader.
var ErrNotApplicable = errors.New("reader not applicable")

// SourceNone marks a result where no reader applied and the running
// version stood in for the installed one.
const SourceNone = "none"

// DefaultTimeout bounds a whole probe cycle.
const DefaultTimeout = 10 * time.Second

// Probe implements port.VersionProbe and port.EligibilityChecker.
type Probe struct {
	readers []port.InstalledVersionReader
	running string
	channel func() entity.Channel
	gate    func(context.Context) bool
	clock   clockwork.Clock
	timeout time.Duration
}

// Option customizes a Probe.
type Option func(*Probe)

// WithChannel sets the channel resolver, called once per cycle.
func WithChannel(resolve func() entity.Channel) Option {
	return func(p *Probe) {
		p.channel = resolve
	}
}

// WithGate adds an eligibility condition on top of the readers' own.
func WithGate(gate func(context.Context) bool) Option {
	return func(p *Probe) {
		p.gate = gate
	}
}

// WithTimeout bounds each probe cycle.
func WithTimeout(d time.Duration) Option {
	return func(p *Probe) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithClock sets the clock stamping ProbedAt.
func WithClock(clock clockwork.Clock) Option {
	return func(p *Probe) {
		p.clock = clock
	}
}

// New creates a probe that tries readers in order. running is the raw
// version string of this process.
func New(running string, readers []port.InstalledVersionReader, opts ...Option) *Probe {
	p := &Probe{
		readers: readers,
		running: running,
		channel: func() entity.Channel { return entity.ChannelStable },
		clock:   clockwork.NewRealClock(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe reads the installed version. Running and Channel are always set.
// When every reader fails, InstalledErr is set and the returned error
// wraps port.ErrInstalledVersionUnknown.
func (p *Probe) Probe(ctx context.Context) (entity.ProbeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	result := entity.ProbeResult{
		Running: p.running,
		Channel: p.channel(),
	}

	var errs []error
	for _, reader := range p.readers {
		rctx := logging.WithProbeSource(ctx, reader.Name())
		installed, err := reader.ReadInstalled(rctx)
		switch {
		case errors.Is(err, ErrNotApplicable):
			logging.FromContext(rctx).Trace().Msg("reader not applicable")
			continue
		case err != nil:
			logging.FromContext(rctx).Debug().Err(err).Msg("installed version read failed")
			errs = append(errs, fmt.Errorf("%s: %w", reader.Name(), err))
			continue
		}
		result.Installed = installed
		result.Source = reader.Name()
		result.ProbedAt = p.clock.Now()
		return result, nil
	}

	if len(errs) == 0 {
		// Nothing to compare against: the install is the running copy.
		result.Installed = p.running
		result.Source = SourceNone
		result.ProbedAt = p.clock.Now()
		return result, nil
	}

	err := fmt.Errorf("%w: %w", port.ErrInstalledVersionUnknown, errors.Join(errs...))
	result.InstalledErr = err
	result.ProbedAt = p.clock.Now()
	return result, err
}

// Eligible reports whether the probe can work here. Readers that do not
// implement port.EligibilityChecker count as eligible; at least one reader
// must be eligible.
func (p *Probe) Eligible(ctx context.Context) bool {
	if p.gate != nil && !p.gate(ctx) {
		return false
	}
	if len(p.readers) == 0 {
		return false
	}
	for _, reader := range p.readers {
		ec, ok := reader.(port.EligibilityChecker)
		if !ok || ec.Eligible(ctx) {
			return true
		}
	}
	return false
}
