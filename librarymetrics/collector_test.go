package librarymetrics_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"gitlab.com/rogov-ks/library/library"
	"gitlab.com/rogov-ks/library/librarymetrics"
)

type fixedSource library.Snapshot

func (s fixedSource) Snapshot() library.Snapshot { return library.Snapshot(s) }
func (s fixedSource) Capacity() int              { return 5 }

func TestCollector(t *testing.T) {
	c := librarymetrics.NewCollector(fixedSource{ReadersInRoom: 3, ReadersWaiting: 2, WritersWaiting: 1})

	const want = `
# HELP library_capacity Number of seats in the library room.
# TYPE library_capacity gauge
library_capacity 5
# HELP library_readers_in_room Readers currently inside the library.
# TYPE library_readers_in_room gauge
library_readers_in_room 3
# HELP library_readers_waiting Readers waiting to enter the library.
# TYPE library_readers_waiting gauge
library_readers_waiting 2
# HELP library_writers_in_room Writers currently inside the library.
# TYPE library_writers_in_room gauge
library_writers_in_room 0
# HELP library_writers_waiting Writers waiting to enter the library.
# TYPE library_writers_waiting gauge
library_writers_waiting 1
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(want)))
	require.Equal(t, 5, testutil.CollectAndCount(c))
}

func TestCollectorFollowsLibrary(t *testing.T) {
	lib := library.New(4)
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(librarymetrics.NewCollector(lib,
		librarymetrics.WithNamespace("reading_room"),
		librarymetrics.WithConstLabels(prometheus.Labels{"room": "main"}),
	)))

	require.NoError(t, lib.AcquireWriter(context.Background(), 1))

	const want = `
# HELP reading_room_writers_in_room Writers currently inside the library.
# TYPE reading_room_writers_in_room gauge
reading_room_writers_in_room{room="main"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "reading_room_writers_in_room"))

	lib.ReleaseWriter(1)

	const after = `
# HELP reading_room_writers_in_room Writers currently inside the library.
# TYPE reading_room_writers_in_room gauge
reading_room_writers_in_room{room="main"} 0
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(after), "reading_room_writers_in_room"))
}
