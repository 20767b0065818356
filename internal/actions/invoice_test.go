package actions

import (
	"strings"
	"testing"

	"duedash/internal/feed"
)

// TestNewQuote verifies the discount arithmetic.
func TestNewQuote(t *testing.T) {
	q := NewQuote(1000, 5)
	if q.Original != 1000 || q.Discount != 50 || q.Final != 950 || q.Percent != 5 {
		t.Errorf("NewQuote(1000, 5) = %+v", q)
	}

	zero := NewQuote(1000, 0)
	if zero.Discount != 0 || zero.Final != 1000 {
		t.Errorf("zero discount should keep the full amount: %+v", zero)
	}

	full := NewQuote(200, 100)
	if full.Discount != 200 || full.Final != 0 {
		t.Errorf("full discount should zero the amount: %+v", full)
	}
}

// TestMailtoLink verifies the draft structure and encoding.
func TestMailtoLink(t *testing.T) {
	task := feed.Task{Key: "LHR-70", Summary: "Automatic change of device"}
	q := NewQuote(3232, 5)

	link := MailtoLink(task, q, "billing@example.com")

	if !strings.HasPrefix(link, "mailto:billing@example.com?subject=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if !strings.Contains(link, "Invoice%20Request%3A%20LHR-70") {
		t.Errorf("subject not encoded as expected: %s", link)
	}
	for _, want := range []string{
		"Original%20Amount%3A%20%243232.00",
		"Discount%20%285%25%29%3A%20-%24161.60",
		"Final%20Amount%3A%20%243070.40",
		"Reference%3A",
	} {
		if !strings.Contains(link, want) {
			t.Errorf("body missing %q: %s", want, link)
		}
	}

	// Mail clients take "+" literally, so spaces must be %20.
	if strings.Contains(link, "+") {
		t.Errorf("link must not use + for spaces: %s", link)
	}
}

// TestMailtoLinkReferenceUnique verifies each draft gets its own reference.
func TestMailtoLinkReferenceUnique(t *testing.T) {
	task := feed.Task{Key: "LHR-70", Summary: "s"}
	q := NewQuote(100, 5)

	if MailtoLink(task, q, "a@b.c") == MailtoLink(task, q, "a@b.c") {
		t.Error("two drafts should carry different reference IDs")
	}
}
