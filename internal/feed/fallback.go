package feed

import "time"

func fallbackDate(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// FallbackTasks returns the built-in dataset shown when the feed cannot be
// retrieved. Callers get a fresh slice on every call.
func FallbackTasks() []Task {
	return []Task{
		{
			Key:     "LHR-70",
			Type:    "Epic",
			Summary: "Automatic change of device. Leads generation",
			State:   "Por Hacer",
			Start:   fallbackDate(2025, time.September, 6),
			Due:     fallbackDate(2025, time.September, 30),
			Color:   "#00d4aa",
			Gas:     3232,
		},
		{
			Key:     "LHR-71",
			Type:    "Epic",
			Summary: "250 people Broadcast test",
			State:   "Por Hacer",
			Start:   fallbackDate(2025, time.September, 28),
			Due:     fallbackDate(2025, time.October, 6),
			Color:   "#4a9eff",
			Gas:     4324,
		},
		{
			Key:     "LHR-72",
			Type:    "Epic",
			Summary: "Affill new payment channel integration",
			State:   "Por Hacer",
			Start:   fallbackDate(2025, time.September, 19),
			Due:     fallbackDate(2025, time.October, 2),
			Color:   "#a78bfa",
			Gas:     5454,
		},
		{
			Key:     "LHR-73",
			Type:    "Epic",
			Summary: "Lich Coding new version for Fintech and budgets",
			State:   "Por Hacer",
			Start:   fallbackDate(2025, time.October, 1),
			Due:     fallbackDate(2025, time.October, 14),
			Color:   "#a78bfa",
			Gas:     354,
		},
	}
}
