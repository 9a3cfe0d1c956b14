// Package detector drives periodic upgrade detection and restart-severity
// escalation for a long-running process.
package detector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/application/usecase"
	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/domain/service"
	"github.com/bnema/upgradewatch/internal/logging"
)

const (
	// DefaultCheckInterval is how often the install is probed.
	DefaultCheckInterval = 2 * time.Hour
	// DefaultEscalationInterval is how often the stage is recomputed once an
	// upgrade has been detected.
	DefaultEscalationInterval = 20 * time.Minute
	// AcceleratedEscalationInterval replaces DefaultEscalationInterval when an
	// interval override is in effect.
	AcceleratedEscalationInterval = 500 * time.Millisecond
)

// Settings controls detector scheduling.
type Settings struct {
	// Disabled keeps the detector inert for the process lifetime.
	Disabled bool
	// CheckInterval is the detection ticker period.
	CheckInterval time.Duration
	// EscalationInterval is the escalation ticker period outside accelerated mode.
	EscalationInterval time.Duration
	// Accelerated switches escalation units from hours to seconds.
	Accelerated bool
}

// DefaultSettings returns production scheduling.
func DefaultSettings() Settings {
	return Settings{
		CheckInterval:      DefaultCheckInterval,
		EscalationInterval: DefaultEscalationInterval,
	}
}

func (s Settings) normalized() Settings {
	if s.CheckInterval <= 0 {
		s.CheckInterval = DefaultCheckInterval
	}
	if s.EscalationInterval <= 0 {
		s.EscalationInterval = DefaultEscalationInterval
	}
	if s.Accelerated {
		s.EscalationInterval = AcceleratedEscalationInterval
	}
	return s
}

// Option customizes a Detector.
type Option func(*Detector)

// WithClock replaces the real clock, mostly for tests.
func WithClock(clock clockwork.Clock) Option {
	return func(d *Detector) {
		d.clock = clock
	}
}

type probeOutcome struct {
	result entity.ProbeResult
	err    error
}

// Detector owns the detection and escalation tickers and the detection
// state. All state changes happen on a single control goroutine; probes run
// on a worker goroutine and report back to it. Queries are safe from any
// goroutine.
type Detector struct {
	detect   *usecase.DetectUpgradeUseCase
	probe    port.VersionProbe
	notifier port.Notifier
	clock    clockwork.Clock
	settings Settings

	checkNow chan struct{}
	results  chan probeOutcome

	// Owned by the control goroutine.
	inFlight   bool
	escalation clockwork.Ticker

	mu     sync.RWMutex
	state  entity.DetectionState
	cancel context.CancelFunc

	startOnce sync.Once
	wg        sync.WaitGroup
}

// New creates a detector. It does nothing until Start is called.
func New(probe port.VersionProbe, notifier port.Notifier, settings Settings, opts ...Option) *Detector {
	if notifier == nil {
		notifier = port.NotifierFunc(func(context.Context, entity.Event) {})
	}
	d := &Detector{
		detect:   usecase.NewDetectUpgradeUseCase(probe),
		probe:    probe,
		notifier: notifier,
		clock:    clockwork.NewRealClock(),
		settings: settings.normalized(),
		checkNow: make(chan struct{}, 1),
		results:  make(chan probeOutcome, 1),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Settings returns the effective scheduling settings.
func (d *Detector) Settings() Settings {
	return d.settings
}

// Start initializes the detector. When background checks are disabled or
// the probe reports itself ineligible, the detector stays inert and every
// query reports no upgrade. Calling Start more than once has no effect.
func (d *Detector) Start(ctx context.Context) {
	d.startOnce.Do(func() {
		ctx = logging.WithComponent(ctx, "upgrade-detector")
		log := logging.FromContext(ctx)

		if d.settings.Disabled {
			log.Info().Msg("background upgrade checks disabled")
			return
		}
		if ec, ok := d.probe.(port.EligibilityChecker); ok && !ec.Eligible(ctx) {
			log.Info().Msg("version probe not eligible on this system; upgrade checks disabled")
			return
		}

		runCtx, cancel := context.WithCancel(ctx)
		detectTicker := d.clock.NewTicker(d.settings.CheckInterval)

		d.mu.Lock()
		d.cancel = cancel
		d.state.Active = true
		d.mu.Unlock()

		log.Info().
			Dur("check_interval", d.settings.CheckInterval).
			Dur("escalation_interval", d.settings.EscalationInterval).
			Bool("accelerated", d.settings.Accelerated).
			Msg("upgrade detector started")

		d.wg.Add(1)
		go d.run(runCtx, detectTicker)
	})
}

// Stop cancels the control loop and waits for it and any in-flight probe.
func (d *Detector) Stop() {
	d.mu.Lock()
	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	d.wg.Wait()
	d.markStopped()
}

// markStopped clears the liveness flags once the control loop is gone,
// whether it ended through Stop or the caller's context.
func (d *Detector) markStopped() {
	d.mu.Lock()
	d.state.Active = false
	d.state.ProbeInFlight = false
	d.mu.Unlock()
}

// CheckNow requests a probe outside the detection schedule. It shares the
// in-flight guard with scheduled ticks and never blocks.
func (d *Detector) CheckNow() {
	select {
	case d.checkNow <- struct{}{}:
	default:
	}
}

func (d *Detector) run(ctx context.Context, detectTicker clockwork.Ticker) {
	defer d.wg.Done()
	defer detectTicker.Stop()
	defer d.stopEscalation()
	defer d.markStopped()

	for {
		select {
		case <-ctx.Done():
			return
		case <-detectTicker.Chan():
			d.dispatchProbe(ctx)
		case <-d.checkNow:
			d.dispatchProbe(ctx)
		case out := <-d.results:
			d.onProbeComplete(ctx, out)
		case <-d.escalationChan():
			d.onEscalationTick(ctx)
		}
	}
}

func (d *Detector) escalationChan() <-chan time.Time {
	if d.escalation == nil {
		return nil
	}
	return d.escalation.Chan()
}

func (d *Detector) stopEscalation() {
	if d.escalation != nil {
		d.escalation.Stop()
		d.escalation = nil
	}
}

// dispatchProbe starts a probe on a worker goroutine unless one is already
// outstanding.
func (d *Detector) dispatchProbe(ctx context.Context) {
	log := logging.FromContext(ctx)
	if d.inFlight {
		log.Debug().Msg("probe already in flight; ignoring check request")
		return
	}
	d.setInFlight(true)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		out := d.runProbe(ctx)
		select {
		case d.results <- out:
		case <-ctx.Done():
		}
	}()
}

func (d *Detector) runProbe(ctx context.Context) (out probeOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out.err = fmt.Errorf("version probe panicked: %v", r)
		}
	}()
	out.result, out.err = d.detect.Probe(ctx)
	return out
}

func (d *Detector) setInFlight(v bool) {
	d.inFlight = v
	d.mu.Lock()
	d.state.ProbeInFlight = v
	d.mu.Unlock()
}

func (d *Detector) onProbeComplete(ctx context.Context, out probeOutcome) {
	log := logging.FromContext(ctx)
	d.setInFlight(false)

	verdict := d.detect.Evaluate(ctx, out.result, out.err)
	log.Debug().
		Str("verdict", verdict.Kind.String()).
		Str("reason", verdict.Reason).
		Str("running", out.result.Running).
		Str("installed", out.result.Installed).
		Str("channel", verdict.Channel.String()).
		Msg("probe completed")

	if verdict.Kind != usecase.VerdictAvailable {
		return
	}

	d.mu.Lock()
	if d.state.UpgradeDetected {
		d.mu.Unlock()
		return
	}
	now := d.clock.Now()
	d.state.UpgradeDetected = true
	d.state.DetectedAt = now
	d.state.Unstable = verdict.Unstable
	d.mu.Unlock()

	log.Info().
		Str("running", verdict.Running.String()).
		Str("installed", out.result.Installed).
		Str("channel", verdict.Channel.String()).
		Msg("upgrade detected")

	d.notifier.Notify(ctx, entity.Event{
		Kind:       entity.EventUpgradeAvailable,
		Stage:      entity.StageNone,
		OccurredAt: now,
	})

	d.escalation = d.clock.NewTicker(d.settings.EscalationInterval)
}

func (d *Detector) onEscalationTick(ctx context.Context) {
	d.mu.Lock()
	if !d.state.UpgradeDetected {
		d.mu.Unlock()
		return
	}
	now := d.clock.Now()
	elapsed := now.Sub(d.state.DetectedAt)
	unstable := d.state.Unstable
	candidate := service.StageFor(elapsed, unstable, d.settings.Accelerated)
	if candidate <= d.state.Stage {
		d.mu.Unlock()
		return
	}

	d.state.Stage = candidate
	d.state.NotifyEnabled = true
	terminal := candidate.IsTerminalFor(unstable)
	if terminal {
		d.stopEscalation()
	}
	d.mu.Unlock()

	logging.FromContext(ctx).Info().
		Str("stage", candidate.String()).
		Dur("elapsed", elapsed).
		Bool("terminal", terminal).
		Msg("upgrade recommendation escalated")

	d.notifier.Notify(ctx, entity.Event{
		Kind:       entity.EventUpgradeRecommended,
		Stage:      candidate,
		OccurredAt: now,
	})
}

// Active reports whether the detector was started and is checking.
func (d *Detector) Active() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.Active
}

// Stage returns the current restart-recommendation stage.
func (d *Detector) Stage() entity.Stage {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.Stage
}

// NotifyEnabled reports whether at least one recommendation has fired.
func (d *Detector) NotifyEnabled() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.NotifyEnabled
}

// UpgradeDetected reports whether an upgrade has been detected.
func (d *Detector) UpgradeDetected() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.UpgradeDetected
}

// DetectedAt returns when the upgrade was first detected.
func (d *Detector) DetectedAt() (time.Time, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.DetectedAt, d.state.UpgradeDetected
}

// TerminalReached reports whether the stage can no longer escalate.
func (d *Detector) TerminalReached() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.TerminalReached()
}

// IconID returns the severity icon for the current stage.
func (d *Detector) IconID(t entity.IconType) entity.IconID {
	return entity.IconFor(d.Stage(), t)
}

// Snapshot returns a copy of the detection state.
func (d *Detector) Snapshot() entity.DetectionState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}
