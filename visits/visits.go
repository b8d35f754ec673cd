//go:build !solution

package visits

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"gitlab.com/rogov-ks/library/library"
)

// Library is the part of *library.Library used by visitors.
type Library interface {
	AcquireReader(ctx context.Context, id int) error
	ReleaseReader(id int)
	AcquireWriter(ctx context.Context, id int) error
	ReleaseWriter(id int)
	Snapshot() library.Snapshot
	Capacity() int
}

type runOptions struct {
	clock clockwork.Clock
}

type RunOption func(*runOptions)

// WithClock replaces the real clock used for reading, writing and resting.
func WithClock(c clockwork.Clock) RunOption {
	return func(o *runOptions) { o.clock = c }
}

type visitor struct {
	lib     Library
	clock   clockwork.Clock
	id      int
	acquire func(context.Context, int) error
	release func(int)
	hold    time.Duration
	rest    time.Duration
	visits  int
}

// Run lets cfg.Readers readers and cfg.Writers writers visit lib until each
// has made cfg.Visits visits or ctx is cancelled.
// Cancellation is a normal way to stop and is not reported as an error.
func Run(ctx context.Context, lib Library, cfg Config, opts ...RunOption) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	o := runOptions{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}

	g, ctx := errgroup.WithContext(ctx)
	spawn := func(v visitor) {
		g.Go(func() error { return v.run(ctx) })
	}
	for id := 1; id <= cfg.Readers; id++ {
		spawn(visitor{
			lib: lib, clock: o.clock, id: id,
			acquire: lib.AcquireReader, release: lib.ReleaseReader,
			hold: cfg.ReadTime, rest: cfg.RestTime, visits: cfg.Visits,
		})
	}
	for id := 1; id <= cfg.Writers; id++ {
		spawn(visitor{
			lib: lib, clock: o.clock, id: id,
			acquire: lib.AcquireWriter, release: lib.ReleaseWriter,
			hold: cfg.WriteTime, rest: cfg.RestTime, visits: cfg.Visits,
		})
	}
	return g.Wait()
}

func (v visitor) run(ctx context.Context) error {
	for i := 0; v.visits == 0 || i < v.visits; i++ {
		if i > 0 {
			v.sleep(ctx, v.rest)
		}
		if err := v.acquire(ctx, v.id); err != nil {
			if errors.Is(err, library.ErrInterrupted) {
				return nil
			}
			return err
		}
		err := v.lib.Snapshot().Validate(v.lib.Capacity())
		if err == nil {
			v.sleep(ctx, v.hold)
		}
		v.release(v.id)
		if err != nil {
			return err
		}
	}
	return nil
}

func (v visitor) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-v.clock.After(d):
	case <-ctx.Done():
	}
}
