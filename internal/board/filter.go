// Package board derives the visible dashboard state from the full task
// list: filtering, distinct status values, and summary aggregates.
package board

import (
	"strings"

	"duedash/internal/feed"
)

// Filter returns the tasks matching a free-text query and a status value.
// The query matches case-insensitively as a substring of key, summary, state
// or assignee; an empty query matches everything. The status filter is an
// exact, case-sensitive match against State; empty matches everything.
// Filtering is pure and recomputed in full on every call.
func Filter(tasks []feed.Task, query, status string) []feed.Task {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []feed.Task
	for _, t := range tasks {
		if q != "" && !matchesQuery(t, q) {
			continue
		}
		if status != "" && t.State != status {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesQuery(t feed.Task, q string) bool {
	for _, v := range []string{t.Key, t.Summary, t.State, t.Assignee} {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

// States returns the distinct State values in first-seen order, for the
// status selector.
func States(tasks []feed.Task) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range tasks {
		if t.State == "" || seen[t.State] {
			continue
		}
		seen[t.State] = true
		out = append(out, t.State)
	}
	return out
}
