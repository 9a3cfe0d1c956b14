package usecase

import (
	"context"
	"errors"

	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/logging"
)

// VerdictKind is the outcome of evaluating one probe cycle.
type VerdictKind int

const (
	// VerdictNone means the running version is current.
	VerdictNone VerdictKind = iota
	// VerdictAvailable means a restart would pick up a different install.
	VerdictAvailable
	// VerdictAborted means the cycle could not be judged (running version
	// unparsable) and must not change any state.
	VerdictAborted
)

// String returns the verdict name.
func (k VerdictKind) String() string {
	switch k {
	case VerdictAvailable:
		return "available"
	case VerdictAborted:
		return "aborted"
	default:
		return "none"
	}
}

// Verdict holds the result of evaluating a probe cycle.
type Verdict struct {
	Kind VerdictKind
	// Installed is nil when the installed version could not be determined.
	Installed *entity.Version
	Running   entity.Version
	Channel   entity.Channel
	// Unstable is the channel class snapshot taken for this cycle.
	Unstable bool
	// Reason is a short diagnostic explaining the verdict.
	Reason string
}

// DetectUpgradeUseCase runs the version probe and decides whether an upgrade
// has been installed behind the running process.
type DetectUpgradeUseCase struct {
	probe port.VersionProbe
}

// NewDetectUpgradeUseCase creates a new detect upgrade use case.
func NewDetectUpgradeUseCase(probe port.VersionProbe) *DetectUpgradeUseCase {
	return &DetectUpgradeUseCase{probe: probe}
}

// Probe runs the version probe. It may block and must not be called from the
// detector's control loop.
func (uc *DetectUpgradeUseCase) Probe(ctx context.Context) (entity.ProbeResult, error) {
	return uc.probe.Probe(ctx)
}

// Evaluate judges a probe result. It is pure apart from logging.
func (*DetectUpgradeUseCase) Evaluate(ctx context.Context, result entity.ProbeResult, probeErr error) Verdict {
	log := logging.FromContext(ctx)

	verdict := Verdict{
		Channel:  result.Channel,
		Unstable: result.Channel.IsUnstable(),
	}

	running, err := entity.ParseVersion(result.Running)
	if err != nil {
		log.Error().Err(err).Str("running", result.Running).Msg("cannot parse running version; skipping cycle")
		verdict.Kind = VerdictAborted
		verdict.Reason = "running version unparsable"
		return verdict
	}
	verdict.Running = running

	installed, reason := installedVersion(result, probeErr)
	if installed == nil {
		log.Debug().
			AnErr("probe_err", probeErr).
			AnErr("installed_err", result.InstalledErr).
			Str("installed", result.Installed).
			Str("reason", reason).
			Msg("installed version unknown; treating as upgrade")
	}
	verdict.Installed = installed

	if !entity.UpgradeAvailable(installed, running) {
		verdict.Kind = VerdictNone
		verdict.Reason = "installed version is not newer"
		return verdict
	}

	verdict.Kind = VerdictAvailable
	if installed == nil {
		verdict.Reason = reason
	} else {
		verdict.Reason = "installed version is newer"
	}
	return verdict
}

// Execute probes and evaluates in one call. Used by one-shot callers such
// as the CLI; the detector splits the two steps across goroutines.
func (uc *DetectUpgradeUseCase) Execute(ctx context.Context) Verdict {
	result, err := uc.Probe(ctx)
	return uc.Evaluate(ctx, result, err)
}

func installedVersion(result entity.ProbeResult, probeErr error) (*entity.Version, string) {
	switch {
	case probeErr != nil && errors.Is(probeErr, port.ErrInstalledVersionUnknown):
		return nil, "installed version unknown"
	case probeErr != nil:
		return nil, "probe failed"
	case result.InstalledErr != nil:
		return nil, "installed version unreadable"
	case result.Installed == "":
		return nil, "installed version missing"
	}

	v, err := entity.ParseVersion(result.Installed)
	if err != nil {
		return nil, "installed version unparsable"
	}
	return &v, ""
}
