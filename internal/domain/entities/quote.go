package entities

import "time"

// QuoteStatus represents the quote-negotiation outcome.
//
// A quote is immutable once accepted or rejected; renegotiation requires a
// new quote. A proposed quote superseded by a newer proposal is marked
// expired, as is one rejected by the external expiry scheduler.

type QuoteStatus string

const (
	QuoteStatusProposed QuoteStatus = "proposed"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// LineItem is a single priced entry on a quote or a parts order.
//
// PhotoURI, VoiceURI and Notes are first-class optional attributes; they are
// never encoded into the item name.

type LineItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	PhotoURI  string  `json:"photo_uri,omitempty"`
	VoiceURI  string  `json:"voice_uri,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// ItemsTotal derives the sum of unit price times quantity, insertion order
// preserved for rendering elsewhere.
func ItemsTotal(items []LineItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}

// Quote is an offer owned by exactly one ServiceJob or PartsOrder.
type Quote struct {
	ID           string      `json:"id"`
	Items        []LineItem  `json:"items"`
	TotalAmount  float64     `json:"total_amount"`
	IssuedBy     string      `json:"issued_by"`
	IssuedByRole Role        `json:"issued_by_role"`
	IssuedAt     time.Time   `json:"issued_at"`
	Status       QuoteStatus `json:"status"`
	ValidUntil   *time.Time  `json:"valid_until,omitempty"`
}

// Resolved reports whether the quote reached a final status.
func (q Quote) Resolved() bool {
	return q.Status != QuoteStatusProposed
}

func (q Quote) Clone() Quote {
	out := q
	if q.Items != nil {
		out.Items = append([]LineItem(nil), q.Items...)
	}
	if q.ValidUntil != nil {
		t := *q.ValidUntil
		out.ValidUntil = &t
	}
	return out
}
