package models

import "time"

// draft status is always unsubmitted; a submitted draft becomes an Order
// and is deleted
const DraftStatusUnsubmitted = "unsubmitted"

// Draft is a recoverable in-progress checkout keyed by (phone, name).
// A new save for the same key overwrites the prior draft.
type Draft struct {
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	Quantity  int       `json:"quantity"`
	ProductID string    `json:"product_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FilledFields counts how many of the six captured form fields are
// non-empty.
func (d Draft) FilledFields() int {
	n := 0
	for _, s := range []string{d.Name, d.Phone, d.City, d.Address, d.ProductID} {
		if s != "" {
			n++
		}
	}
	if d.Quantity > 0 {
		n++
	}
	return n
}

// SameFields reports whether two drafts carry identical form fields,
// ignoring status and timestamps. Used for autosave dirty checks.
func (d Draft) SameFields(o Draft) bool {
	return d.Phone == o.Phone &&
		d.Name == o.Name &&
		d.City == o.City &&
		d.Address == o.Address &&
		d.Quantity == o.Quantity &&
		d.ProductID == o.ProductID
}
