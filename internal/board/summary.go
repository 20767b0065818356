package board

import (
	"time"

	"duedash/internal/feed"
)

// dueSoonWindow matches the countdown warning window: due within three days.
const dueSoonWindow = 72 * time.Hour

// Summary holds the aggregates shown above the cards.
type Summary struct {
	Total    int
	TotalGas float64
	Overdue  int
	DueSoon  int
}

// Summarize reduces the filtered set from scratch. A task without a due date
// counts as due one millisecond from now, so it is never overdue. This
// deliberately differs from the sort-order default for undated tasks, which
// places them last.
func Summarize(tasks []feed.Task, now time.Time) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		s.TotalGas += t.Gas

		due := now.Add(time.Millisecond)
		if t.Due != nil {
			due = *t.Due
		}
		switch {
		case due.Before(now):
			s.Overdue++
		case !due.After(now.Add(dueSoonWindow)):
			s.DueSoon++
		}
	}
	return s
}
