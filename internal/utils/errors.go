package utils

import (
	"fmt"
	"strings"
)

// ErrorWithSuggestion wraps an error with a user-friendly suggestion.
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface.
func (e *ErrorWithSuggestion) Error() string {
	return fmt.Sprintf("%s\n\nSuggestion: %s", e.Err.Error(), e.Suggestion)
}

// GetSuggestion returns the suggestion text.
func (e *ErrorWithSuggestion) GetSuggestion() string {
	return e.Suggestion
}

// Unwrap returns the underlying error for error chain support.
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// WrapWithSuggestion wraps an existing error with a suggestion.
func WrapWithSuggestion(err error, suggestion string) error {
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// ErrNoDueDate returns an error for a calendar export on a task without a
// due date.
func ErrNoDueDate(key string) error {
	label := key
	if label == "" {
		label = "this task"
	}
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("no due date set for %s", label),
		Suggestion: "Add a due date in the spreadsheet before exporting to the calendar",
	}
}

// ErrFeedUnavailable returns an error for an unreachable feed with smart
// suggestions based on the failure reason.
func ErrFeedUnavailable(reason string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("task feed is unavailable: %s", reason),
		Suggestion: getSmartSuggestion(reason),
	}
}

// getSmartSuggestion returns a context-aware suggestion based on the error reason.
func getSmartSuggestion(reason string) string {
	lowerReason := strings.ToLower(reason)

	if strings.Contains(lowerReason, "no such host") || strings.Contains(lowerReason, "dns") {
		return "Check your DNS settings and internet connection"
	}

	if strings.Contains(lowerReason, "connection refused") {
		return "Check if the feed URL is correct and the export is published"
	}

	if strings.Contains(lowerReason, "timeout") || strings.Contains(lowerReason, "i/o timeout") {
		return "The server may be slow or unreachable. Try again later"
	}

	return "Check your internet connection and try again"
}

// ErrInvalidFeedURL returns an error for a malformed feed URL.
func ErrInvalidFeedURL(rawURL string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid feed URL: %s", rawURL),
		Suggestion: "Use the full http(s) URL of the published spreadsheet export",
	}
}

// ErrInvalidTimezone returns an error for an unknown timezone name.
func ErrInvalidTimezone(tz string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid timezone: %s", tz),
		Suggestion: "Use an IANA timezone name (e.g., America/Tijuana)",
	}
}

// ErrInvalidDiscount returns an error for an out-of-range discount percent.
func ErrInvalidDiscount(percent float64) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid discount percent: %g", percent),
		Suggestion: "Discount must be between 0 and 100",
	}
}

// ErrInvalidRefresh returns an error for a non-positive refresh interval.
func ErrInvalidRefresh(seconds int) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid refresh interval: %d", seconds),
		Suggestion: "refresh_seconds must be a positive number of seconds",
	}
}
