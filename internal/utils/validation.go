package utils

import (
	"net/url"
	"time"
)

// ValidateFeedURL validates that a feed URL is an absolute http(s) URL.
func ValidateFeedURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidFeedURL(rawURL)
	}
	return nil
}

// ValidateTimezone validates that tz names a loadable IANA location.
func ValidateTimezone(tz string) error {
	if _, err := time.LoadLocation(tz); err != nil {
		return ErrInvalidTimezone(tz)
	}
	return nil
}

// ValidateDiscountPercent validates that a discount is within 0-100.
func ValidateDiscountPercent(percent float64) error {
	if percent < 0 || percent > 100 {
		return ErrInvalidDiscount(percent)
	}
	return nil
}

// ValidateRefreshSeconds validates that a refresh interval is positive.
func ValidateRefreshSeconds(seconds int) error {
	if seconds <= 0 {
		return ErrInvalidRefresh(seconds)
	}
	return nil
}
