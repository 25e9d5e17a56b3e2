package model

import "time"

type TransactionType string

const (
	TransactionIn  TransactionType = "IN"
	TransactionOut TransactionType = "OUT"
)

// ProductRef is the populated product reference on a transaction. It may be
// missing entirely when the referenced product has been deleted.
type ProductRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// UserRef is the populated actor reference on a transaction.
type UserRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Transaction is one stock movement from the backend's /transactions endpoint.
// Quantity is the moved amount, not a running total.
type Transaction struct {
	ID              string          `json:"_id"`
	Product         *ProductRef     `json:"product"`
	Type            TransactionType `json:"type"`
	Quantity        int             `json:"quantity"`
	Notes           string          `json:"notes"`
	PerformedBy     *UserRef        `json:"performedBy"`
	TransactionDate string          `json:"transactionDate"`
}

// transactionDateLayouts, most specific first. The backend emits RFC 3339 with
// a trailing Z, but older records lack fractional seconds or a zone.
var transactionDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time parses the transaction timestamp permissively. ok is false when the
// field is absent or unparseable; callers skip such records when aggregating.
func (t *Transaction) Time() (ts time.Time, ok bool) {
	if t.TransactionDate == "" {
		return time.Time{}, false
	}
	for _, layout := range transactionDateLayouts {
		if parsed, err := time.Parse(layout, t.TransactionDate); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
