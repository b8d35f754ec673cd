//go:build !solution

package library

import (
	"errors"
	"fmt"
)

// ErrInvariantViolated is returned by Snapshot.Validate.
var ErrInvariantViolated = errors.New("library: occupancy invariant violated")

// Snapshot is a point-in-time copy of the library counters.
// The counters only describe the state; they never decide who gets in.
type Snapshot struct {
	ReadersInRoom  int
	WritersInRoom  int
	ReadersWaiting int
	WritersWaiting int
}

func (s *Snapshot) inRoom(role Role) *int {
	if role == Writer {
		return &s.WritersInRoom
	}
	return &s.ReadersInRoom
}

func (s *Snapshot) waiting(role Role) *int {
	if role == Writer {
		return &s.WritersWaiting
	}
	return &s.ReadersWaiting
}

// Validate checks the occupancy invariants for a room of the given capacity.
func (s Snapshot) Validate(capacity int) error {
	switch {
	case s.ReadersInRoom < 0 || s.ReadersInRoom > capacity:
		return fmt.Errorf("%w: %d readers in a room for %d", ErrInvariantViolated, s.ReadersInRoom, capacity)
	case s.WritersInRoom < 0 || s.WritersInRoom > 1:
		return fmt.Errorf("%w: %d writers in room", ErrInvariantViolated, s.WritersInRoom)
	case s.WritersInRoom > 0 && s.ReadersInRoom > 0:
		return fmt.Errorf("%w: writer shares the room with %d readers", ErrInvariantViolated, s.ReadersInRoom)
	case s.ReadersWaiting < 0 || s.WritersWaiting < 0:
		return fmt.Errorf("%w: negative queue (readers %d, writers %d)",
			ErrInvariantViolated, s.ReadersWaiting, s.WritersWaiting)
	}
	return nil
}

// String renders the snapshot as a small table.
func (s Snapshot) String() string {
	return fmt.Sprintf("\n------------------------------\n"+
		"|    Readers in library: %-3d |\n"+
		"|    Writers in library: %-3d |\n"+
		"|    Readers in queue: %-5d |\n"+
		"|    Writers in queue: %-5d |\n"+
		"------------------------------\n",
		s.ReadersInRoom, s.WritersInRoom, s.ReadersWaiting, s.WritersWaiting)
}
