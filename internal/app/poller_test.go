package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mkutlu/skylog/internal/journal"
	"github.com/mkutlu/skylog/internal/state"
)

func TestRefreshPopulatesSnapshot(t *testing.T) {
	store, err := journal.Open(filepath.Join(t.TempDir(), "logs"))
	require.NoError(t, err)

	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)
	_, err = store.Append(day, "Radar", "critical", "sweep stalled")
	require.NoError(t, err)

	snapshots := state.NewStore(day)
	refresh(store, snapshots)

	snap := snapshots.Snapshot()
	require.NoError(t, snap.LastError)
	require.Len(t, snap.Entries, 1)
	require.Equal(t, journal.SeverityCritical, snap.Entries[0].Status)
	require.Len(t, snap.Dates, 1)
	require.Equal(t, "2024-01-02", journal.DayKey(snap.Dates[0]))
}

func TestRefreshFollowsActiveDay(t *testing.T) {
	store, err := journal.Open(filepath.Join(t.TempDir(), "logs"))
	require.NoError(t, err)

	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	d2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)
	_, err = store.Append(d1, "Fuel", "normal", "on day one")
	require.NoError(t, err)
	_, err = store.Append(d2, "Fuel", "warning", "on day two")
	require.NoError(t, err)

	snapshots := state.NewStore(d1)
	refresh(store, snapshots)
	require.Equal(t, "on day one", snapshots.Snapshot().Entries[0].Message)

	snapshots.SetActiveDay(d2)
	refresh(store, snapshots)

	snap := snapshots.Snapshot()
	require.Len(t, snap.Entries, 1)
	require.Equal(t, "on day two", snap.Entries[0].Message)
	require.Len(t, snap.Dates, 2)
}

func TestRefreshEmptyDayIsNotAnError(t *testing.T) {
	store, err := journal.Open(filepath.Join(t.TempDir(), "logs"))
	require.NoError(t, err)

	snapshots := state.NewStore(time.Date(2030, 6, 15, 0, 0, 0, 0, time.Local))
	refresh(store, snapshots)

	snap := snapshots.Snapshot()
	require.NoError(t, snap.LastError)
	require.Empty(t, snap.Entries)
	require.Empty(t, snap.Dates)
	require.Zero(t, snap.ConsecutiveFailures)
}
