// Package countdown computes deadline progress, remaining-time breakdowns,
// and severity buckets for task display.
package countdown

import (
	"fmt"
	"math"
	"time"
)

// minSpan is the floor applied to start/due spans so progress never divides
// by zero. It is also the default distance of an absent due date from now.
const minSpan = time.Millisecond

// warningWindow is how far ahead of a due date a countdown turns to warning.
const warningWindow = 72 * time.Hour

// Severity classifies how urgent a countdown is.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityWarning:
		return "warning"
	default:
		return "normal"
	}
}

// Classify buckets a signed time-to-due: negative is critical, under three
// days is warning, anything later is normal.
func Classify(delta time.Duration) Severity {
	switch {
	case delta < 0:
		return SeverityCritical
	case delta < warningWindow:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}

// Remaining returns the signed duration until due at now. An absent due
// counts as one millisecond from now.
func Remaining(now time.Time, due *time.Time) time.Duration {
	d := now.Add(minSpan)
	if due != nil {
		d = *due
	}
	return d.Sub(now)
}

// Progress returns the elapsed percentage of the start-to-due span at now,
// rounded and clamped to [0,100]. An absent start defaults to now, an absent
// due to one millisecond past now, and a due before start degrades to a
// one-millisecond span rather than dividing by zero.
func Progress(now time.Time, start, due *time.Time) int {
	s := now
	if start != nil {
		s = *start
	}
	d := now.Add(minSpan)
	if due != nil {
		d = *due
	}

	span := d.Sub(s)
	if span < minSpan {
		span = minSpan
	}
	elapsed := now.Sub(s)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > span {
		elapsed = span
	}
	return int(math.Round(100 * float64(elapsed) / float64(span)))
}

// Parts is a signed duration broken into display units.
type Parts struct {
	Neg     bool
	Days    int
	Hours   int // 0-23
	Minutes int // 0-59
	Seconds int // 0-59
}

// Split decomposes a signed duration into whole days, hours, minutes and
// seconds, keeping the sign separate.
func Split(delta time.Duration) Parts {
	p := Parts{Neg: delta < 0}
	ms := delta.Milliseconds()
	if ms < 0 {
		ms = -ms
	}
	p.Days = int(ms / 86400000)
	ms -= int64(p.Days) * 86400000
	p.Hours = int(ms / 3600000)
	ms -= int64(p.Hours) * 3600000
	p.Minutes = int(ms / 60000)
	ms -= int64(p.Minutes) * 60000
	p.Seconds = int(ms / 1000)
	return p
}

// String renders the countdown the way the dashboard displays it: the most
// significant nonzero unit leads, with a minus prefix when overdue.
func (p Parts) String() string {
	sign := ""
	if p.Neg {
		sign = "-"
	}
	switch {
	case p.Days > 0:
		return fmt.Sprintf("%s%dd %02dh %02dm", sign, p.Days, p.Hours, p.Minutes)
	case p.Hours > 0:
		return fmt.Sprintf("%s%dh %02dm %02ds", sign, p.Hours, p.Minutes, p.Seconds)
	default:
		return fmt.Sprintf("%s%dm %02ds", sign, p.Minutes, p.Seconds)
	}
}
