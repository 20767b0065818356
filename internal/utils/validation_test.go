package utils

import "testing"

// TestValidateFeedURL verifies only absolute http(s) URLs pass
func TestValidateFeedURL(t *testing.T) {
	valid := []string{
		"https://docs.google.com/spreadsheets/d/abc/pub?output=csv",
		"http://localhost:8080/feed.csv",
	}
	for _, u := range valid {
		if err := ValidateFeedURL(u); err != nil {
			t.Errorf("ValidateFeedURL(%q) = %v, want nil", u, err)
		}
	}

	invalid := []string{
		"",
		"ftp://example.com/feed.csv",
		"file:///tmp/feed.csv",
		"not a url",
		"https://",
	}
	for _, u := range invalid {
		if err := ValidateFeedURL(u); err == nil {
			t.Errorf("ValidateFeedURL(%q) = nil, want error", u)
		}
	}
}

// TestValidateTimezone verifies IANA names load
func TestValidateTimezone(t *testing.T) {
	for _, tz := range []string{"UTC", "America/Tijuana", "Europe/Madrid"} {
		if err := ValidateTimezone(tz); err != nil {
			t.Errorf("ValidateTimezone(%q) = %v, want nil", tz, err)
		}
	}
	for _, tz := range []string{"Mars/Olympus", "not-a-zone"} {
		if err := ValidateTimezone(tz); err == nil {
			t.Errorf("ValidateTimezone(%q) = nil, want error", tz)
		}
	}
}

// TestValidateDiscountPercent verifies the 0-100 range is inclusive
func TestValidateDiscountPercent(t *testing.T) {
	for _, p := range []float64{0, 5, 100} {
		if err := ValidateDiscountPercent(p); err != nil {
			t.Errorf("ValidateDiscountPercent(%g) = %v, want nil", p, err)
		}
	}
	for _, p := range []float64{-0.1, 100.1} {
		if err := ValidateDiscountPercent(p); err == nil {
			t.Errorf("ValidateDiscountPercent(%g) = nil, want error", p)
		}
	}
}

// TestValidateRefreshSeconds verifies only positive intervals pass
func TestValidateRefreshSeconds(t *testing.T) {
	if err := ValidateRefreshSeconds(1); err != nil {
		t.Errorf("ValidateRefreshSeconds(1) = %v, want nil", err)
	}
	for _, s := range []int{0, -5} {
		if err := ValidateRefreshSeconds(s); err == nil {
			t.Errorf("ValidateRefreshSeconds(%d) = nil, want error", s)
		}
	}
}
