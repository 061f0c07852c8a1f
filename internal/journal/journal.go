package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/araddon/dateparse"
	"github.com/rs/zerolog/log"
)

const (
	dayKeyLayout  = "2006-01-02"
	fileExtension = ".jsonl"

	// Legacy records carry a bare wall-clock time instead of a timestamp.
	legacyTimeLayout = "15:04:05"
)

// DayLog is the snapshot of one calendar day's entries at read time.
// Skipped counts persisted lines that failed to parse and were dropped.
type DayLog struct {
	Date    time.Time
	Entries []Entry
	Skipped int
}

// Store persists entries as one JSONL file per calendar date under a single
// root directory. Appends from concurrent goroutines are serialized; there
// are no cross-process guarantees.
type Store struct {
	root string

	mu  sync.Mutex
	now func() time.Time
}

// Open prepares a store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("journal: root directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}
	return &Store{root: dir, now: time.Now}, nil
}

// Root returns the directory holding the day files.
func (s *Store) Root() string { return s.root }

// DayKey formats a date the way day files are named.
func DayKey(t time.Time) string { return t.Format(dayKeyLayout) }

// ParseDayKey parses a YYYY-MM-DD date in the local timezone.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, key, time.Local)
}

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool { return DayKey(a) == DayKey(b) }

func (s *Store) pathFor(day time.Time) string {
	return filepath.Join(s.root, DayKey(day)+fileExtension)
}

// Append validates status, stamps the entry with the store clock, and writes
// it to the collection for day, creating the file on first use. The entry is
// returned as persisted. Validation failures happen before any write.
func (s *Store) Append(day time.Time, system, status, message string) (Entry, error) {
	severity, err := ParseSeverity(status)
	if err != nil {
		return Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{
		Timestamp: s.now(),
		System:    strings.TrimSpace(system),
		Status:    severity,
		Message:   strings.TrimSpace(message),
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return Entry{}, fmt.Errorf("encode entry: %w", err)
	}

	file, err := os.OpenFile(s.pathFor(day), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return Entry{}, fmt.Errorf("open day file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(append(line, '\n')); err != nil {
		return Entry{}, fmt.Errorf("append entry: %w", err)
	}
	return entry, nil
}

// ReadDay returns all entries persisted for day, in append order. A missing
// file is an empty day, not an error. Malformed lines are skipped with a
// warning so one bad record cannot hide the rest of the day.
func (s *Store) ReadDay(day time.Time) (DayLog, error) {
	result := DayLog{Date: day}

	path := s.pathFor(day)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return result, fmt.Errorf("open day file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		entry, err := decodeRecord(day, []byte(raw))
		if err != nil {
			result.Skipped++
			log.Warn().Str("file", path).Int("line", lineNo).Err(err).
				Msg("skipping malformed record")
			continue
		}
		result.Entries = append(result.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("read day file: %w", err)
	}
	return result, nil
}

// Dates enumerates the calendar dates that have at least one persisted
// record, newest first. Files that do not look like day files are ignored.
func (s *Store) Dates() ([]time.Time, error) {
	dirEntries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list journal dir: %w", err)
	}

	var dates []time.Time
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), fileExtension) {
			continue
		}
		stem := strings.TrimSuffix(de.Name(), fileExtension)
		day, err := ParseDayKey(stem)
		if err != nil {
			continue
		}
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates, nil
}

// record is the on-disk shape. Besides the current fields it carries the
// legacy ones written by the original panel (a bare "time" plus a "severity"
// display label).
type record struct {
	Timestamp string `json:"timestamp"`
	System    string `json:"system"`
	Status    string `json:"status"`
	Message   string `json:"message"`

	LegacyTime     string `json:"time"`
	LegacySeverity string `json:"severity"`
}

func decodeRecord(day time.Time, line []byte) (Entry, error) {
	var rec record
	if err := json.Unmarshal(line, &rec); err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	status := rec.Status
	if status == "" {
		status = rec.LegacySeverity
	}

	ts, err := recordTimestamp(day, rec)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Timestamp: ts,
		System:    rec.System,
		Status:    NormalizeSeverity(status),
		Message:   rec.Message,
	}, nil
}

func recordTimestamp(day time.Time, rec record) (time.Time, error) {
	if rec.Timestamp != "" {
		if ts, err := time.Parse(time.RFC3339Nano, rec.Timestamp); err == nil {
			return ts, nil
		}
		// Hand-edited files show up with all sorts of timestamp spellings.
		ts, err := dateparse.ParseLocal(rec.Timestamp)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: bad timestamp %q", ErrMalformedRecord, rec.Timestamp)
		}
		return ts, nil
	}
	if rec.LegacyTime != "" {
		clock, err := time.Parse(legacyTimeLayout, rec.LegacyTime)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: bad time %q", ErrMalformedRecord, rec.LegacyTime)
		}
		return time.Date(day.Year(), day.Month(), day.Day(),
			clock.Hour(), clock.Minute(), clock.Second(), 0, time.Local), nil
	}
	// No time information at all; pin the record to the start of its day.
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local), nil
}
