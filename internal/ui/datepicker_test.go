package ui

import (
	"testing"
	"time"

	"github.com/mkutlu/skylog/internal/journal"
	"github.com/mkutlu/skylog/internal/state"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestOpenPickerOffersTodayWhenAbsent(t *testing.T) {
	m := New(Options{})
	m.snapshot = state.Snapshot{Dates: []time.Time{day(2024, 1, 2), day(2024, 1, 1)}}

	m.openPicker()

	if m.currentView != ViewPicker {
		t.Fatal("openPicker should switch to the picker view")
	}
	if len(m.picker.days) != 3 {
		t.Fatalf("picker has %d days, want 3 (today prepended)", len(m.picker.days))
	}
	if !journal.SameDay(m.picker.days[0], time.Now()) {
		t.Errorf("first offered day = %s, want today", journal.DayKey(m.picker.days[0]))
	}
}

func TestOpenPickerDoesNotDuplicateToday(t *testing.T) {
	m := New(Options{})
	today := time.Now()
	m.snapshot = state.Snapshot{Dates: []time.Time{today, day(2024, 1, 1)}}

	m.openPicker()

	if len(m.picker.days) != 2 {
		t.Fatalf("picker has %d days, want 2", len(m.picker.days))
	}
}

func TestOpenPickerCursorOnSelectedDay(t *testing.T) {
	m := New(Options{})
	m.selectedDay = day(2024, 1, 1)
	m.snapshot = state.Snapshot{Dates: []time.Time{day(2024, 1, 3), day(2024, 1, 1)}}

	m.openPicker()

	want := m.picker.days[m.picker.cursor]
	if journal.DayKey(want) != "2024-01-01" {
		t.Errorf("cursor on %s, want 2024-01-01", journal.DayKey(want))
	}
}

func TestAdjacentDayWalksDateList(t *testing.T) {
	m := New(Options{})
	m.selectedDay = day(2024, 1, 2)
	m.snapshot = state.Snapshot{
		Dates: []time.Time{day(2024, 1, 3), day(2024, 1, 2), day(2024, 1, 1)},
	}

	older, ok := m.adjacentDay(-1)
	if !ok || journal.DayKey(older) != "2024-01-01" {
		t.Errorf("older day = %v %v, want 2024-01-01", journal.DayKey(older), ok)
	}

	newer, ok := m.adjacentDay(+1)
	if !ok || journal.DayKey(newer) != "2024-01-03" {
		t.Errorf("newer day = %v %v, want 2024-01-03", journal.DayKey(newer), ok)
	}

	m.selectedDay = day(2024, 1, 3)
	if _, ok := m.adjacentDay(+1); ok {
		t.Error("no day newer than the newest should be offered")
	}

	m.snapshot = state.Snapshot{}
	if _, ok := m.adjacentDay(-1); ok {
		t.Error("empty date list should offer nothing")
	}
}
