package probe_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/application/port/mocks"
	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/infrastructure/probe"
)

func newReader(t *testing.T, name, version string, err error) *mocks.MockInstalledVersionReader {
	t.Helper()
	r := mocks.NewMockInstalledVersionReader(t)
	r.EXPECT().Name().Return(name).Maybe()
	r.EXPECT().ReadInstalled(mock.Anything).Return(version, err).Maybe()
	return r
}

func TestProbe_FirstApplicableReaderWins(t *testing.T) {
	now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	staged := newReader(t, "staged", "", probe.ErrNotApplicable)
	exec := newReader(t, "exec", "2.0.0", nil)

	p := probe.New("1.9.0", []port.InstalledVersionReader{staged, exec},
		probe.WithChannel(func() entity.Channel { return entity.ChannelBeta }),
		probe.WithClock(clockwork.NewFakeClockAt(now)))

	got, err := p.Probe(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.ProbeResult{
		Installed: "2.0.0",
		Running:   "1.9.0",
		Channel:   entity.ChannelBeta,
		Source:    "exec",
		ProbedAt:  now,
	}, got)
}

func TestProbe_NoApplicableReaderMeansRunningIsInstalled(t *testing.T) {
	p := probe.New("1.0", []port.InstalledVersionReader{newReader(t, "staged", "", probe.ErrNotApplicable)})

	got, err := p.Probe(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0", got.Installed)
	assert.Equal(t, probe.SourceNone, got.Source)
	assert.Equal(t, entity.ChannelStable, got.Channel)
}

func TestProbe_AllReadersFail(t *testing.T) {
	boom := errors.New("boom")
	p := probe.New("1.0", []port.InstalledVersionReader{
		newReader(t, "file", "", boom),
		newReader(t, "exec", "", errors.New("exit 1")),
	})

	got, err := p.Probe(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrInstalledVersionUnknown)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, got.InstalledErr, port.ErrInstalledVersionUnknown)
	assert.Empty(t, got.Installed)
	assert.Equal(t, "1.0", got.Running, "running is reported even on failure")
}

func TestProbe_FailedReaderFallsThrough(t *testing.T) {
	p := probe.New("1.0", []port.InstalledVersionReader{
		newReader(t, "staged", "", errors.New("corrupt")),
		newReader(t, "exec", "1.0", nil),
	})

	got, err := p.Probe(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "exec", got.Source)
}

func TestProbe_TimeoutReachesReaders(t *testing.T) {
	r := mocks.NewMockInstalledVersionReader(t)
	r.EXPECT().Name().Return("slow").Maybe()
	r.EXPECT().ReadInstalled(mock.Anything).RunAndReturn(func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	p := probe.New("1.0", []port.InstalledVersionReader{r}, probe.WithTimeout(20*time.Millisecond))
	_, err := p.Probe(context.Background())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type eligibleReader struct {
	*mocks.MockInstalledVersionReader
	eligible bool
}

func (r eligibleReader) Eligible(context.Context) bool { return r.eligible }

func TestProbe_Eligible(t *testing.T) {
	ctx := context.Background()
	yes := eligibleReader{mocks.NewMockInstalledVersionReader(t), true}
	no := eligibleReader{mocks.NewMockInstalledVersionReader(t), false}
	plain := mocks.NewMockInstalledVersionReader(t)

	assert.False(t, probe.New("1", nil).Eligible(ctx), "no readers")
	assert.False(t, probe.New("1", []port.InstalledVersionReader{no}).Eligible(ctx))
	assert.True(t, probe.New("1", []port.InstalledVersionReader{no, yes}).Eligible(ctx))
	assert.True(t, probe.New("1", []port.InstalledVersionReader{plain}).Eligible(ctx))

	gated := probe.New("1", []port.InstalledVersionReader{yes},
		probe.WithGate(func(context.Context) bool { return false }))
	assert.False(t, gated.Eligible(ctx))
}
