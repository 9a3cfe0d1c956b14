package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/upgradewatch/internal/domain/entity"
)

func TestStageFor_StableHours(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    entity.Stage
	}{
		{"just detected", 0, entity.StageNone},
		{"one hour", time.Hour, entity.StageNone},
		{"just under two hours", 2*time.Hour - time.Second, entity.StageNone},
		{"two hours", 2 * time.Hour, entity.StageLow},
		{"three hours", 3 * time.Hour, entity.StageLow},
		{"four hours", 4 * time.Hour, entity.StageElevated},
		{"seven hours", 7 * time.Hour, entity.StageHigh},
		{"thirteen hours", 13*time.Hour + 59*time.Minute, entity.StageHigh},
		{"fourteen hours", 14 * time.Hour, entity.StageSevere},
		{"a month", 30 * 24 * time.Hour, entity.StageSevere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StageFor(tt.elapsed, false, false))
		})
	}
}

func TestStageFor_Unstable(t *testing.T) {
	assert.Equal(t, entity.StageNone, StageFor(30*time.Minute, true, false))
	assert.Equal(t, entity.StageLow, StageFor(time.Hour, true, false))
	assert.Equal(t, entity.StageLow, StageFor(14*time.Hour, true, false), "unstable never goes past low")
	assert.Equal(t, entity.StageLow, StageFor(365*24*time.Hour, true, false))
}

func TestStageFor_AcceleratedUsesSeconds(t *testing.T) {
	assert.Equal(t, entity.StageNone, StageFor(1500*time.Millisecond, false, true))
	assert.Equal(t, entity.StageLow, StageFor(2*time.Second, false, true))
	assert.Equal(t, entity.StageElevated, StageFor(4*time.Second, false, true))
	assert.Equal(t, entity.StageHigh, StageFor(7*time.Second, false, true))
	assert.Equal(t, entity.StageSevere, StageFor(14*time.Second, false, true))

	assert.Equal(t, entity.StageNone, StageFor(500*time.Millisecond, true, true))
	assert.Equal(t, entity.StageLow, StageFor(time.Second, true, true))
}

func TestStageFor_NegativeElapsed(t *testing.T) {
	assert.Equal(t, entity.StageNone, StageFor(-time.Hour, false, false))
}

func TestStageFor_MonotonicAndIdempotent(t *testing.T) {
	for _, unstable := range []bool{false, true} {
		prev := entity.StageNone
		for elapsed := time.Duration(0); elapsed <= 20*time.Hour; elapsed += 7 * time.Minute {
			got := StageFor(elapsed, unstable, false)
			assert.GreaterOrEqual(t, int(got), int(prev), "elapsed=%s unstable=%v", elapsed, unstable)
			assert.Equal(t, got, StageFor(elapsed, unstable, false), "recomputing must not change the stage")
			prev = got
		}
	}
}

func TestNextThreshold(t *testing.T) {
	d, ok := NextThreshold(entity.StageNone, false, false)
	assert.True(t, ok)
	assert.Equal(t, 2*time.Hour, d)

	d, ok = NextThreshold(entity.StageElevated, false, true)
	assert.True(t, ok)
	assert.Equal(t, 7*time.Second, d)

	_, ok = NextThreshold(entity.StageSevere, false, false)
	assert.False(t, ok)

	_, ok = NextThreshold(entity.StageLow, true, false)
	assert.False(t, ok)
}
