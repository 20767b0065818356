package countdown

import (
	"testing"
	"time"
)

// TestClassify verifies the severity buckets and their boundaries.
func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		delta time.Duration
		want  Severity
	}{
		{"overdue", -time.Second, SeverityCritical},
		{"due now", 0, SeverityWarning},
		{"within warning window", 71 * time.Hour, SeverityWarning},
		{"at window boundary", 72 * time.Hour, SeverityNormal},
		{"far out", 30 * 24 * time.Hour, SeverityNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.delta); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.delta, got, tt.want)
			}
		})
	}
}

// TestRemaining verifies the signed time-to-due, including the absent-due
// default of one millisecond.
func TestRemaining(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	due := now.Add(48 * time.Hour)
	if got := Remaining(now, &due); got != 48*time.Hour {
		t.Errorf("Remaining = %v, want 48h", got)
	}

	past := now.Add(-time.Hour)
	if got := Remaining(now, &past); got != -time.Hour {
		t.Errorf("Remaining = %v, want -1h", got)
	}

	if got := Remaining(now, nil); got != time.Millisecond {
		t.Errorf("Remaining with nil due = %v, want 1ms", got)
	}
}

// TestProgress verifies elapsed-percentage computation with clamping and the
// degenerate-span handling.
func TestProgress(t *testing.T) {
	now := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)
		return &ts
	}

	tests := []struct {
		name  string
		start *time.Time
		due   *time.Time
		want  int
	}{
		{"halfway", at(-5 * 24 * time.Hour), at(5 * 24 * time.Hour), 50},
		{"not started", at(time.Hour), at(48 * time.Hour), 0},
		{"past due clamps to 100", at(-48 * time.Hour), at(-time.Hour), 100},
		{"due before start does not panic", at(time.Hour), at(-time.Hour), 0},
		{"absent start", nil, at(time.Hour), 0},
		{"absent due", at(-time.Hour), nil, 100},
		{"quarter", at(-6 * time.Hour), at(18 * time.Hour), 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(now, tt.start, tt.due); got != tt.want {
				t.Errorf("Progress = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestSplit verifies unit decomposition keeps the sign separate.
func TestSplit(t *testing.T) {
	delta := 26*time.Hour + 30*time.Minute + 45*time.Second
	p := Split(delta)
	want := Parts{Days: 1, Hours: 2, Minutes: 30, Seconds: 45}
	if p != want {
		t.Errorf("Split = %+v, want %+v", p, want)
	}

	n := Split(-delta)
	want.Neg = true
	if n != want {
		t.Errorf("Split negative = %+v, want %+v", n, want)
	}
}

// TestPartsString verifies the display forms: the most significant nonzero
// unit leads.
func TestPartsString(t *testing.T) {
	tests := []struct {
		name  string
		delta time.Duration
		want  string
	}{
		{"days form", 26*time.Hour + 30*time.Minute + 45*time.Second, "1d 02h 30m"},
		{"hours form", 3*time.Hour + 4*time.Minute + 5*time.Second, "3h 04m 05s"},
		{"minutes form", 9*time.Minute + 7*time.Second, "9m 07s"},
		{"zero", 0, "0m 00s"},
		{"overdue days", -(26*time.Hour + 30*time.Minute), "-1d 02h 30m"},
		{"overdue minutes", -90 * time.Second, "-1m 30s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Split(tt.delta).String(); got != tt.want {
				t.Errorf("Split(%v).String() = %q, want %q", tt.delta, got, tt.want)
			}
		})
	}
}
