//go:build !solution

package library

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

// DefaultCapacity is the number of seats in the library room.
const DefaultCapacity = 5

// ErrInterrupted is returned when a blocked acquire is cancelled through its context.
var ErrInterrupted = errors.New("library: acquire interrupted")

// Role is the kind of visitor.
type Role int

const (
	Reader Role = iota
	Writer
)

func (r Role) String() string {
	switch r {
	case Reader:
		return "Reader"
	case Writer:
		return "Writer"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Library is a readers-writers coordinator.
// The room can be held by up to Capacity readers or by a single writer.
//
// Readers take one unit of the room gate, a writer takes all of them at once.
// Every entry attempt first passes the admission gate, so a waiting writer
// is not overtaken by readers that arrived after it.
type Library struct {
	capacity int64
	room     *semaphore.Weighted
	queue    *semaphore.Weighted
	sink     Sink

	// mu guards only stats and is never held while waiting on a gate.
	mu    sync.Mutex
	stats Snapshot
}

// Option configures a Library.
type Option func(*Library)

// WithSink sets the sink that receives state change messages.
func WithSink(s Sink) Option {
	return func(l *Library) {
		if s != nil {
			l.sink = s
		}
	}
}

// New creates a library with the given room capacity.
// Non-positive capacity falls back to DefaultCapacity.
func New(capacity int, opts ...Option) *Library {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	l := &Library{
		capacity: int64(capacity),
		room:     semaphore.NewWeighted(int64(capacity)),
		queue:    semaphore.NewWeighted(1),
		sink:     nopSink{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Capacity returns the number of seats in the room.
func (l *Library) Capacity() int {
	return int(l.capacity)
}

// AcquireReader blocks until the reader gets a seat in the room.
// It fails with ErrInterrupted if ctx is done before the seat is granted.
func (l *Library) AcquireReader(ctx context.Context, id int) error {
	return l.enter(ctx, Reader, id)
}

// ReleaseReader gives the reader's seat back.
// It is a run-time error if no reader is inside.
func (l *Library) ReleaseReader(id int) {
	l.leave(Reader, id)
}

// AcquireWriter blocks until the writer holds the whole room.
// It fails with ErrInterrupted if ctx is done before the room is granted.
func (l *Library) AcquireWriter(ctx context.Context, id int) error {
	return l.enter(ctx, Writer, id)
}

// ReleaseWriter frees the room held by the writer.
// It is a run-time error if no writer is inside.
func (l *Library) ReleaseWriter(id int) {
	l.leave(Writer, id)
}

// Snapshot returns a copy of the occupancy counters.
func (l *Library) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

func (l *Library) weight(role Role) int64 {
	if role == Writer {
		return l.capacity
	}
	return 1
}

func (l *Library) enter(ctx context.Context, role Role, id int) error {
	l.mu.Lock()
	*l.stats.waiting(role)++
	l.sink.Log(TagWaiting, fmt.Sprintf("[...] %s %d is waiting for a permit", role, id))
	l.mu.Unlock()

	if err := l.queue.Acquire(ctx, 1); err != nil {
		return l.giveUp(role, id, err)
	}
	// Писатель держит очередь, пока не получит все места.
	if err := l.room.Acquire(ctx, l.weight(role)); err != nil {
		l.queue.Release(1)
		return l.giveUp(role, id, err)
	}
	l.queue.Release(1)

	l.mu.Lock()
	*l.stats.waiting(role)--
	*l.stats.inRoom(role)++
	l.sink.Log(TagEntered, fmt.Sprintf("[ + ] %s %d enters the library", role, id))
	l.sink.Log(TagInfo, l.stats.String())
	l.mu.Unlock()
	return nil
}

func (l *Library) giveUp(role Role, id int, err error) error {
	l.mu.Lock()
	*l.stats.waiting(role)--
	l.sink.Log(TagCancelled, fmt.Sprintf("[ x ] %s %d stops waiting: %v", role, id, err))
	l.mu.Unlock()
	return fmt.Errorf("%w: %s %d: %w", ErrInterrupted, role, id, err)
}

func (l *Library) leave(role Role, id int) {
	l.mu.Lock()
	inRoom := l.stats.inRoom(role)
	if *inRoom == 0 {
		l.mu.Unlock()
		panic(fmt.Sprintf("library: release of %s %d while no %s is inside", role, id, role))
	}
	// Счетчик уменьшаем до возврата мест, иначе снимок может показать
	// писателя и читателя одновременно.
	*inRoom--
	l.sink.Log(TagLeft, fmt.Sprintf("[ - ] %s %d leaves the library", role, id))
	l.mu.Unlock()

	l.room.Release(l.weight(role))
}
