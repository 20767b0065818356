package actions

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"duedash/internal/feed"
)

// Quote is the discounted amount presented for confirmation before an
// invoice request is sent.
type Quote struct {
	Original float64
	Discount float64
	Final    float64
	Percent  float64
}

// NewQuote applies a percentage discount to a task's cost.
func NewQuote(gas, discountPercent float64) Quote {
	discount := gas * (discountPercent / 100)
	return Quote{
		Original: gas,
		Discount: discount,
		Final:    gas - discount,
		Percent:  discountPercent,
	}
}

// MailtoLink builds a pre-filled mail draft requesting an invoice for the
// task. Each draft carries a generated reference ID so replies can be
// matched to the request.
func MailtoLink(task feed.Task, q Quote, recipient string) string {
	subject := fmt.Sprintf("Invoice Request: %s", task.Key)
	body := fmt.Sprintf(
		"Hi,\n\nI would like to request an invoice for the following task:\n\n"+
			"Task: %s - %s\n"+
			"Original Amount: $%.2f\n"+
			"Discount (%g%%): -$%.2f\n"+
			"Final Amount: $%.2f\n"+
			"Reference: %s\n\nThank you!",
		task.Key, task.Summary, q.Original, q.Percent, q.Discount, q.Final,
		uuid.NewString(),
	)
	return "mailto:" + recipient + "?subject=" + escapeMailto(subject) + "&body=" + escapeMailto(body)
}

// escapeMailto percent-encodes mailto parameter values. QueryEscape would
// emit "+" for spaces, which mail clients take literally.
func escapeMailto(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
