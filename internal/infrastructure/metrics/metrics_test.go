package metrics_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/application/port/mocks"
	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/infrastructure/metrics"
)

func TestNotify_TracksStageAndEvents(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	ctx := context.Background()

	assert.Equal(t, float64(0), testutil.ToFloat64(m.UpgradeDetected))

	m.Notify(ctx, entity.Event{Kind: entity.EventUpgradeAvailable})
	m.Notify(ctx, entity.Event{Kind: entity.EventUpgradeRecommended, Stage: entity.StageLow})
	m.Notify(ctx, entity.Event{Kind: entity.EventUpgradeRecommended, Stage: entity.StageHigh})

	assert.Equal(t, float64(1), testutil.ToFloat64(m.UpgradeDetected))
	assert.Equal(t, float64(entity.StageHigh), testutil.ToFloat64(m.Stage))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.EventsTotal.WithLabelValues("upgrade-available")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.EventsTotal.WithLabelValues("upgrade-recommended")))
}

func TestInstrumentProbe_CountsResults(t *testing.T) {
	m := metrics.New(nil)
	ctx := context.Background()

	probe := mocks.NewMockVersionProbe(t)
	probe.EXPECT().Probe(mock.Anything).Return(entity.ProbeResult{}, nil).Once()
	probe.EXPECT().Probe(mock.Anything).Return(entity.ProbeResult{}, fmt.Errorf("exec: %w", port.ErrInstalledVersionUnknown)).Once()
	probe.EXPECT().Probe(mock.Anything).Return(entity.ProbeResult{}, errors.New("boom")).Once()

	wrapped := m.InstrumentProbe(probe)
	for i := 0; i < 3; i++ {
		_, _ = wrapped.Probe(ctx)
	}

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ProbesTotal.WithLabelValues(metrics.ResultOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ProbesTotal.WithLabelValues(metrics.ResultUnknown)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ProbesTotal.WithLabelValues(metrics.ResultError)))

	_, isChecker := wrapped.(port.EligibilityChecker)
	assert.False(t, isChecker, "a plain probe must not gain an eligibility check")
}

type gatedProbe struct{ eligible bool }

func (gatedProbe) Probe(context.Context) (entity.ProbeResult, error) { return entity.ProbeResult{}, nil }
func (g gatedProbe) Eligible(context.Context) bool                   { return g.eligible }

func TestInstrumentProbe_KeepsEligibility(t *testing.T) {
	m := metrics.New(nil)

	wrapped := m.InstrumentProbe(gatedProbe{eligible: false})
	checker, ok := wrapped.(port.EligibilityChecker)
	require.True(t, ok)
	assert.False(t, checker.Eligible(context.Background()))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := metrics.New(nil)
	m.Notify(context.Background(), entity.Event{Kind: entity.EventUpgradeAvailable})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "upgradewatch_upgrade_detected 1")
	assert.Contains(t, body, `upgradewatch_events_total{kind="upgrade-available"} 1`)
}

func TestServe_StopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	m := metrics.New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- m.Serve(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return strings.Contains(string(body), "upgradewatch_stage")
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
