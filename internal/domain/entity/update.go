// Package entity defines domain entities for upgradewatch.
package entity

import "time"

// ProbeResult holds what a single probe cycle learned about the install.
type ProbeResult struct {
	// Installed is the raw version string of the installed copy. Empty when
	// it could not be determined.
	Installed string
	// InstalledErr is set when reading the installed version failed.
	InstalledErr error
	// Running is the raw version string of the running process.
	Running string
	// Channel is the release track resolved during this cycle.
	Channel Channel
	// Source names the reader that produced Installed (exec, file, staged).
	Source string
	// ProbedAt is when the probe finished.
	ProbedAt time.Time
}

// EventKind identifies a notification emitted by the detector.
type EventKind int

const (
	// EventUpgradeAvailable fires exactly once, when an upgrade is first detected.
	EventUpgradeAvailable EventKind = iota + 1
	// EventUpgradeRecommended fires on every stage increase.
	EventUpgradeRecommended
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventUpgradeAvailable:
		return "upgrade-available"
	case EventUpgradeRecommended:
		return "upgrade-recommended"
	default:
		return "unknown"
	}
}

// ParseEventKind is the inverse of EventKind.String. It returns 0 for
// unknown names.
func ParseEventKind(s string) EventKind {
	switch s {
	case "upgrade-available":
		return EventUpgradeAvailable
	case "upgrade-recommended":
		return EventUpgradeRecommended
	default:
		return 0
	}
}

// Event is a notification as it is delivered to a Notifier. Consumers are
// expected to re-query the detector for the current stage; Stage is carried
// only for journaling and logs.
type Event struct {
	Kind       EventKind
	Stage      Stage
	OccurredAt time.Time
}

// DetectionState is a point-in-time copy of the detector state.
type DetectionState struct {
	Active          bool
	UpgradeDetected bool
	DetectedAt      time.Time
	Unstable        bool
	Stage           Stage
	NotifyEnabled   bool
	ProbeInFlight   bool
}

// TerminalReached reports whether the stage cannot escalate any further.
func (s DetectionState) TerminalReached() bool {
	return s.UpgradeDetected && s.Stage.IsTerminalFor(s.Unstable)
}

// UpgradeEvent is a journaled detector event.
type UpgradeEvent struct {
	ID         int64
	Kind       EventKind
	Stage      Stage
	Running    string
	OccurredAt time.Time
}
