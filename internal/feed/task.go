package feed

import "time"

// Task is one normalized unit of work from the feed. At least one of Key and
// Summary is non-empty; rows with neither are dropped during normalization.
type Task struct {
	Key      string
	Type     string
	Summary  string
	State    string
	Assignee string
	Start    *time.Time // nil when the source text was absent or unparsable
	Due      *time.Time // nil when the source text was absent or unparsable
	Color    string     // resolved display color, never empty
	Gas      float64    // cost, 0 when unparsable
}
