package visits_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"gitlab.com/rogov-ks/library/library"
	"gitlab.com/rogov-ks/library/visits"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func quickConfig() visits.Config {
	cfg := visits.Default()
	cfg.Capacity = 2
	cfg.Readers = 5
	cfg.Writers = 2
	cfg.Visits = 3
	cfg.ReadTime = time.Millisecond
	cfg.WriteTime = time.Millisecond
	cfg.RestTime = time.Millisecond
	return cfg
}

func TestRun(t *testing.T) {
	cfg := quickConfig()

	var entered atomic.Int32
	lib := library.New(cfg.Capacity, library.WithSink(library.SinkFunc(func(tag library.Tag, _ string) {
		if tag == library.TagEntered {
			entered.Add(1)
		}
	})))

	require.NoError(t, visits.Run(context.Background(), lib, cfg))
	require.Equal(t, int32((cfg.Readers+cfg.Writers)*cfg.Visits), entered.Load())
	require.Equal(t, library.Snapshot{}, lib.Snapshot())
}

func TestRunUntilCancelled(t *testing.T) {
	cfg := quickConfig()
	cfg.Visits = 0
	lib := library.New(cfg.Capacity)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, visits.Run(ctx, lib, cfg))
	require.Equal(t, library.Snapshot{}, lib.Snapshot())
}

func TestRunFakeClock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cfg := visits.Config{Capacity: 1, Writers: 1, Visits: 1, WriteTime: time.Hour}
	lib := library.New(cfg.Capacity)

	done := make(chan error, 1)
	go func() {
		done <- visits.Run(context.Background(), lib, cfg, visits.WithClock(clock))
	}()

	clock.BlockUntil(1)
	require.Equal(t, library.Snapshot{WritersInRoom: 1}, lib.Snapshot())

	clock.Advance(time.Hour)
	require.NoError(t, <-done)
	require.Equal(t, library.Snapshot{}, lib.Snapshot())
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := quickConfig()
	cfg.Capacity = 0
	require.ErrorIs(t, visits.Run(context.Background(), library.New(1), cfg), visits.ErrInvalidConfig)
}

type brokenLibrary struct {
	*library.Library
}

func (brokenLibrary) Snapshot() library.Snapshot {
	return library.Snapshot{ReadersInRoom: 1, WritersInRoom: 1}
}

func TestRunStopsOnInvariantViolation(t *testing.T) {
	lib := brokenLibrary{library.New(2)}

	err := visits.Run(context.Background(), lib, quickConfig())
	require.ErrorIs(t, err, library.ErrInvariantViolated)
	require.Equal(t, library.Snapshot{}, lib.Library.Snapshot())
}
