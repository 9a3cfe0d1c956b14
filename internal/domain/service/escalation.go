// Package service holds pure domain logic shared by the application layer.
package service

import (
	"time"

	"github.com/bnema/upgradewatch/internal/domain/entity"
)

const (
	// NormalUnit is the escalation time unit in production.
	NormalUnit = time.Hour
	// AcceleratedUnit is the escalation time unit when an interval override is
	// in effect, so the whole progression fits in a short test run.
	AcceleratedUnit = time.Second
)

// threshold maps a minimum number of elapsed units to a stage.
type threshold struct {
	units int64
	stage entity.Stage
}

// Sorted highest first: the first match wins.
var (
	stableThresholds = []threshold{
		{units: 14, stage: entity.StageSevere},
		{units: 7, stage: entity.StageHigh},
		{units: 4, stage: entity.StageElevated},
		{units: 2, stage: entity.StageLow},
	}
	unstableThresholds = []threshold{
		{units: 1, stage: entity.StageLow},
	}
)

// Unit returns the escalation time unit for the given mode.
func Unit(accelerated bool) time.Duration {
	if accelerated {
		return AcceleratedUnit
	}
	return NormalUnit
}

// StageFor maps the time elapsed since detection to a stage. Elapsed time is
// floored to whole units. StageNone means no threshold has been crossed yet;
// callers must not regress a stage they already reached.
func StageFor(elapsed time.Duration, unstable, accelerated bool) entity.Stage {
	if elapsed < 0 {
		return entity.StageNone
	}
	units := int64(elapsed / Unit(accelerated))

	table := stableThresholds
	if unstable {
		table = unstableThresholds
	}
	for _, t := range table {
		if units >= t.units {
			return t.stage
		}
	}
	return entity.StageNone
}

// NextThreshold returns how much total elapsed time is needed to reach the
// next stage above current, and false when current is already terminal.
func NextThreshold(current entity.Stage, unstable, accelerated bool) (time.Duration, bool) {
	table := stableThresholds
	if unstable {
		table = unstableThresholds
	}
	for i := len(table) - 1; i >= 0; i-- {
		if table[i].stage > current {
			return time.Duration(table[i].units) * Unit(accelerated), true
		}
	}
	return 0, false
}
