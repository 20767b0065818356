// Package actions builds the outbound artifacts for the two card actions:
// calendar export links and invoice request mail drafts.
package actions

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"duedash/internal/feed"
	"duedash/internal/utils"
)

const calendarRenderURL = "https://calendar.google.com/calendar/render"

// googleDate formats a timestamp the way the calendar render endpoint
// expects: UTC, compact, trailing Z.
func googleDate(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// CalendarLink builds a calendar-event creation URL for a task: an all-day
// event spanning midnight to 23:59 of the due date in loc, titled
// "[key] summary" with a description carrying status, assignee and cost.
// Tasks without a due date get an error for the caller to surface.
func CalendarLink(task feed.Task, loc *time.Location) (string, error) {
	if task.Due == nil {
		return "", utils.ErrNoDueDate(task.Key)
	}
	if loc == nil {
		loc = time.Local
	}

	due := task.Due.In(loc)
	start := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, loc)
	end := time.Date(due.Year(), due.Month(), due.Day(), 23, 59, 0, 0, loc)

	var desc strings.Builder
	fmt.Fprintf(&desc, "Task: %s\n", task.Key)
	fmt.Fprintf(&desc, "Status: %s\n", task.State)
	if task.Assignee != "" {
		fmt.Fprintf(&desc, "Assigned to: %s\n", task.Assignee)
	}
	fmt.Fprintf(&desc, "Cost: $%.2f", task.Gas)

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", fmt.Sprintf("[%s] %s", task.Key, task.Summary))
	q.Set("dates", googleDate(start)+"/"+googleDate(end))
	q.Set("details", desc.String())
	q.Set("location", "Project Timeline")
	q.Set("trp", "false")

	return calendarRenderURL + "?" + q.Encode(), nil
}
