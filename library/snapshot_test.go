package library_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/rogov-ks/library/library"
)

func TestSnapshotValidate(t *testing.T) {
	for _, tc := range []struct {
		name  string
		s     library.Snapshot
		isErr bool
	}{
		{name: "empty", s: library.Snapshot{}},
		{name: "full of readers", s: library.Snapshot{ReadersInRoom: 5, ReadersWaiting: 3, WritersWaiting: 1}},
		{name: "writer", s: library.Snapshot{WritersInRoom: 1, ReadersWaiting: 2}},
		{name: "too many readers", s: library.Snapshot{ReadersInRoom: 6}, isErr: true},
		{name: "negative readers", s: library.Snapshot{ReadersInRoom: -1}, isErr: true},
		{name: "two writers", s: library.Snapshot{WritersInRoom: 2}, isErr: true},
		{name: "writer with readers", s: library.Snapshot{WritersInRoom: 1, ReadersInRoom: 1}, isErr: true},
		{name: "negative queue", s: library.Snapshot{WritersWaiting: -1}, isErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.s.Validate(5)
			if tc.isErr {
				require.ErrorIs(t, err, library.ErrInvariantViolated)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSnapshotString(t *testing.T) {
	s := library.Snapshot{ReadersInRoom: 3, WritersInRoom: 0, ReadersWaiting: 2, WritersWaiting: 1}.String()
	require.Contains(t, s, "Readers in library: 3")
	require.Contains(t, s, "Writers in library: 0")
	require.Contains(t, s, "Readers in queue: 2")
	require.Contains(t, s, "Writers in queue: 1")
}
