package port

import (
	"context"
	"errors"

	"github.com/bnema/upgradewatch/internal/domain/entity"
)

var (
	// ErrInstalledVersionUnknown means the installed copy could not be read.
	// The detector treats it as "no installed version", which still counts
	// as an upgrade signal.
	ErrInstalledVersionUnknown = errors.New("installed version unknown")

	// ErrProbeUnavailable means the probe cannot run on this system at all
	// (for example the updater component is missing).
	ErrProbeUnavailable = errors.New("version probe unavailable")
)

// VersionProbe determines the installed and running versions.
// Probe may block on I/O and is only called off the control loop.
type VersionProbe interface {
	// Probe returns what it could learn even when it also returns an error;
	// Running and Channel should be filled whenever they are known.
	Probe(ctx context.Context) (entity.ProbeResult, error)
}

// EligibilityChecker is implemented by probes that only work when some
// platform component is present. A detector whose probe reports false stays
// inert for the process lifetime.
type EligibilityChecker interface {
	Eligible(ctx context.Context) bool
}

// InstalledVersionReader reads the version of the installed copy of the
// application, which may differ from the running one.
type InstalledVersionReader interface {
	// ReadInstalled returns the raw installed version string.
	ReadInstalled(ctx context.Context) (string, error)
	// Name identifies the reader in logs and probe results.
	Name() string
}

// Notifier receives detector events. Notify is called from the detector's
// control loop and must not block for long.
type Notifier interface {
	Notify(ctx context.Context, event entity.Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, event entity.Event)

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, event entity.Event) {
	f(ctx, event)
}
