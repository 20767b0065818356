package board

import (
	"reflect"
	"testing"

	"duedash/internal/feed"
)

func filterFixture() []feed.Task {
	return []feed.Task{
		{Key: "LHR-1", Summary: "Payment channel", State: "Por Hacer", Assignee: "alice smith"},
		{Key: "LHR-2", Summary: "Broadcast test", State: "En Progreso", Assignee: "bob"},
		{Key: "LHR-3", Summary: "Leads generation", State: "Done", Assignee: "alice smith"},
		{Key: "LHR-4", Summary: "Fintech budgets", State: "Por Hacer", Assignee: "carol"},
	}
}

// TestFilterQuery verifies case-insensitive substring matching across key,
// summary, state and assignee.
func TestFilterQuery(t *testing.T) {
	tasks := filterFixture()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty matches all", "", []string{"LHR-1", "LHR-2", "LHR-3", "LHR-4"}},
		{"assignee uppercase", "ALICE", []string{"LHR-1", "LHR-3"}},
		{"key substring", "lhr-2", []string{"LHR-2"}},
		{"summary word", "budgets", []string{"LHR-4"}},
		{"state text", "progreso", []string{"LHR-2"}},
		{"whitespace trimmed", "  alice  ", []string{"LHR-1", "LHR-3"}},
		{"no match", "zebra", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, task := range Filter(tasks, tt.query, "") {
				got = append(got, task.Key)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

// TestFilterStatus verifies the status filter is an exact, case-sensitive
// match.
func TestFilterStatus(t *testing.T) {
	tasks := filterFixture()

	got := Filter(tasks, "", "Por Hacer")
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks with status Por Hacer, got %d", len(got))
	}

	if got := Filter(tasks, "", "done"); len(got) != 0 {
		t.Errorf("status match must be case-sensitive, got %d tasks", len(got))
	}
}

// TestFilterCombined verifies query and status compose.
func TestFilterCombined(t *testing.T) {
	got := Filter(filterFixture(), "alice", "Done")
	if len(got) != 1 || got[0].Key != "LHR-3" {
		t.Errorf("combined filter = %+v, want only LHR-3", got)
	}
}

// TestStates verifies distinct status values come back in first-seen order,
// skipping empties.
func TestStates(t *testing.T) {
	tasks := []feed.Task{
		{Key: "a", State: "Por Hacer"},
		{Key: "b", State: ""},
		{Key: "c", State: "Done"},
		{Key: "d", State: "Por Hacer"},
		{Key: "e", State: "En Progreso"},
	}

	got := States(tasks)
	want := []string{"Por Hacer", "Done", "En Progreso"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("States = %v, want %v", got, want)
	}
}
