package journal

import (
	"errors"
	"testing"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Severity
		wantErr bool
	}{
		{"normal", "normal", SeverityNormal, false},
		{"warning", "warning", SeverityWarning, false},
		{"critical", "critical", SeverityCritical, false},
		{"mixed case", "Warning", SeverityWarning, false},
		{"padded", "  critical ", SeverityCritical, false},
		{"urgent rejected", "urgent", "", true},
		{"alert rejected", "alert", "", true},
		{"empty rejected", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStatus) {
					t.Fatalf("ParseSeverity(%q) err = %v, want ErrInvalidStatus", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSeverity(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseSeverity(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeSeverity(t *testing.T) {
	tests := []struct {
		input string
		want  Severity
	}{
		{"normal", SeverityNormal},
		{"Normal", SeverityNormal},
		{"OK", SeverityNormal},
		{"warning", SeverityWarning},
		{"WARN", SeverityWarning},
		{"Alert", SeverityWarning},
		{"critical", SeverityCritical},
		{"Critical", SeverityCritical},
		{"FATAL", SeverityCritical},
		{"error", SeverityCritical},
		{"", SeverityNormal},
		{"gibberish", SeverityNormal},
	}

	for _, tt := range tests {
		if got := NormalizeSeverity(tt.input); got != tt.want {
			t.Errorf("NormalizeSeverity(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
