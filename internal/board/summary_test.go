package board

import (
	"testing"
	"time"

	"duedash/internal/feed"
)

// TestSummarizeAggregates verifies the totals over a mixed set.
func TestSummarizeAggregates(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)
		return &ts
	}

	tasks := []feed.Task{
		{Key: "overdue", Gas: 100, Due: at(-time.Hour)},
		{Key: "soon", Gas: 200, Due: at(24 * time.Hour)},
		{Key: "later", Gas: 50, Due: at(30 * 24 * time.Hour)},
	}

	s := Summarize(tasks, now)
	if s.Total != 3 {
		t.Errorf("Total = %d, want 3", s.Total)
	}
	if s.TotalGas != 350 {
		t.Errorf("TotalGas = %g, want 350", s.TotalGas)
	}
	if s.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1", s.Overdue)
	}
	if s.DueSoon != 1 {
		t.Errorf("DueSoon = %d, want 1", s.DueSoon)
	}
}

// TestSummarizeBoundaries verifies a task due exactly now counts as due soon
// rather than overdue, and the window edge is inclusive.
func TestSummarizeBoundaries(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	exactlyNow := now
	atWindow := now.Add(72 * time.Hour)
	pastWindow := now.Add(72*time.Hour + time.Second)

	s := Summarize([]feed.Task{
		{Key: "now", Due: &exactlyNow},
		{Key: "edge", Due: &atWindow},
		{Key: "past-edge", Due: &pastWindow},
	}, now)

	if s.Overdue != 0 {
		t.Errorf("Overdue = %d, want 0", s.Overdue)
	}
	if s.DueSoon != 2 {
		t.Errorf("DueSoon = %d, want 2", s.DueSoon)
	}
}

// TestSummarizeUndated verifies a task without a due date is never overdue;
// it counts as due soon via the one-millisecond default.
func TestSummarizeUndated(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	s := Summarize([]feed.Task{{Key: "undated", Gas: 5}}, now)
	if s.Overdue != 0 {
		t.Errorf("undated task must not be overdue, Overdue = %d", s.Overdue)
	}
	if s.DueSoon != 1 {
		t.Errorf("undated task counts as due soon, DueSoon = %d", s.DueSoon)
	}
	if s.TotalGas != 5 {
		t.Errorf("TotalGas = %g, want 5", s.TotalGas)
	}
}

// TestSummarizeEmpty verifies the zero summary.
func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, time.Now())
	if s != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", s)
	}
}
