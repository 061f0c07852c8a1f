package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "logs"))
	require.NoError(t, err)
	return s
}

func TestAppendReadDayRoundTrip(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)

	before := time.Now()
	entry, err := s.Append(day, "Navigation", "warning", "drift detected")
	require.NoError(t, err)
	require.Equal(t, SeverityWarning, entry.Status)
	require.False(t, entry.Timestamp.Before(before))

	dl, err := s.ReadDay(day)
	require.NoError(t, err)
	require.Len(t, dl.Entries, 1)
	require.Zero(t, dl.Skipped)

	got := dl.Entries[0]
	require.Equal(t, "Navigation", got.System)
	require.Equal(t, SeverityWarning, got.Status)
	require.Equal(t, "drift detected", got.Message)
	require.False(t, got.Timestamp.Before(before))
}

func TestReadDayMissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)

	dl, err := s.ReadDay(time.Date(2030, 6, 15, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	require.Empty(t, dl.Entries)
	require.Zero(t, dl.Skipped)
}

func TestAppendPreservesOrder(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)

	clock := time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	for _, msg := range []string{"first", "second", "third"} {
		_, err := s.Append(day, "Radar", "normal", msg)
		require.NoError(t, err)
	}

	dl, err := s.ReadDay(day)
	require.NoError(t, err)
	require.Len(t, dl.Entries, 3)
	require.Equal(t, "first", dl.Entries[0].Message)
	require.Equal(t, "second", dl.Entries[1].Message)
	require.Equal(t, "third", dl.Entries[2].Message)
	require.True(t, dl.Entries[0].Timestamp.Before(dl.Entries[2].Timestamp))
}

func TestAppendInvalidStatusWritesNothing(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)

	_, err := s.Append(day, "Comms", "urgent", "nope")
	require.ErrorIs(t, err, ErrInvalidStatus)

	entries, err := os.ReadDir(s.Root())
	require.NoError(t, err)
	require.Empty(t, entries, "rejected append must not create a day file")
}

func TestDatesEnumeratesDayFiles(t *testing.T) {
	s := newTestStore(t)

	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	d2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)
	_, err := s.Append(d1, "Radar", "normal", "a")
	require.NoError(t, err)
	_, err = s.Append(d2, "Radar", "normal", "b")
	require.NoError(t, err)

	// Strays must not show up as dates.
	require.NoError(t, os.WriteFile(filepath.Join(s.Root(), "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.Root(), "broken.jsonl"), []byte("x"), 0o644))

	dates, err := s.Dates()
	require.NoError(t, err)
	require.Len(t, dates, 2)
	require.Equal(t, "2024-01-02", DayKey(dates[0]), "newest first")
	require.Equal(t, "2024-01-01", DayKey(dates[1]))
}

func TestReadDaySkipsMalformedLines(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)

	for _, msg := range []string{"one", "two"} {
		_, err := s.Append(day, "Fuel", "normal", msg)
		require.NoError(t, err)
	}

	path := filepath.Join(s.Root(), "2024-01-02.jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("{not json at all\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = s.Append(day, "Fuel", "critical", "three")
	require.NoError(t, err)

	dl, err := s.ReadDay(day)
	require.NoError(t, err)
	require.Len(t, dl.Entries, 3)
	require.Equal(t, 1, dl.Skipped)
	require.Equal(t, "three", dl.Entries[2].Message)
}

func TestReadDayAcceptsLegacyRecords(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)

	path := filepath.Join(s.Root(), "2024-01-02.jsonl")
	legacy := `{"time":"09:15:00","system":"Radar","severity":"Alert","message":"contact lost"}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	dl, err := s.ReadDay(day)
	require.NoError(t, err)
	require.Len(t, dl.Entries, 1)

	got := dl.Entries[0]
	require.Equal(t, SeverityWarning, got.Status)
	require.Equal(t, "contact lost", got.Message)
	require.Equal(t, 9, got.Timestamp.Hour())
	require.True(t, SameDay(got.Timestamp, day))
}

func TestReadDayParsesLooseTimestamps(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)

	path := filepath.Join(s.Root(), "2024-01-02.jsonl")
	loose := `{"timestamp":"2024-01-02 09:15:00","system":"Comms","status":"critical","message":"relay down"}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(loose), 0o644))

	dl, err := s.ReadDay(day)
	require.NoError(t, err)
	require.Len(t, dl.Entries, 1)
	require.Equal(t, SeverityCritical, dl.Entries[0].Status)
	require.Equal(t, 15, dl.Entries[0].Timestamp.Minute())
}

func TestReadDaySkipsBlankLines(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)

	path := filepath.Join(s.Root(), "2024-01-02.jsonl")
	content := "\n" + `{"timestamp":"2024-01-02T10:00:00+03:00","system":"Radar","status":"normal","message":"ok"}` + "\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	dl, err := s.ReadDay(day)
	require.NoError(t, err)
	require.Len(t, dl.Entries, 1)
	require.Zero(t, dl.Skipped, "blank lines are not malformed records")
}
