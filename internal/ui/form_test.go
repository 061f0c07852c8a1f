package ui

import (
	"testing"

	"github.com/mkutlu/skylog/internal/journal"
)

func TestFormPreselectsLastSystem(t *testing.T) {
	systems := []string{"Radar", "Fuel", "Hydraulics"}

	f := newFormState(systems, "Fuel")
	if got := f.selectedSystem(); got != "Fuel" {
		t.Errorf("selectedSystem() = %q, want Fuel", got)
	}

	f = newFormState(systems, "Unknown")
	if got := f.selectedSystem(); got != "Radar" {
		t.Errorf("unknown last system should fall back to first, got %q", got)
	}

	f = newFormState(nil, "")
	if got := f.selectedSystem(); got == "" {
		t.Error("empty system list must still yield a selectable system")
	}
}

func TestFormCycleValueWraps(t *testing.T) {
	f := newFormState([]string{"A", "B"}, "A")

	f.field = fieldSystem
	f.cycleValue(-1)
	if got := f.selectedSystem(); got != "B" {
		t.Errorf("backward wrap: got %q, want B", got)
	}
	f.cycleValue(+1)
	if got := f.selectedSystem(); got != "A" {
		t.Errorf("forward wrap: got %q, want A", got)
	}

	f.field = fieldSeverity
	for range journal.Severities {
		f.cycleValue(+1)
	}
	if got := f.selectedSeverity(); got != journal.Severities[0] {
		t.Errorf("severity cycle did not wrap, got %q", got)
	}
}

func TestFormCycleFieldVisitsAll(t *testing.T) {
	f := newFormState([]string{"A"}, "A")
	f.field = fieldSystem

	seen := map[formField]bool{}
	for i := 0; i < 3; i++ {
		seen[f.field] = true
		f.cycleField(+1)
	}
	for _, field := range []formField{fieldSystem, fieldSeverity, fieldMessage} {
		if !seen[field] {
			t.Errorf("field %d never focused", field)
		}
	}
	if f.field != fieldSystem {
		t.Errorf("cycle did not wrap, ended on %d", f.field)
	}
}
