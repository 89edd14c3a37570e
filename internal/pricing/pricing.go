// Package pricing resolves a concrete price for a catalog item and a
// requested quantity. The same resolution is used by the interactive
// checkout and the bulk import so that the same quantity of the same
// item always prices identically regardless of entry path.
package pricing

import (
	"fmt"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
)

// Resolution is the resolved price for one order line.
type Resolution struct {
	UnitPrice float64
	LineTotal float64
}

// Resolve returns the price for quantity units of item.
//
// An exact tier match wins: tier price is the bundle total for the
// tier's quantity, so the unit rate is recovered by division. Otherwise
// a supplied price (from an import row) is authoritative. Otherwise the
// item's current per-unit price applies linearly.
func Resolve(item models.CatalogItem, quantity int, supplied *float64) Resolution {
	for _, tier := range item.PricingTiers {
		if tier.Quantity == quantity && tier.Quantity > 0 {
			return Resolution{
				UnitPrice: tier.Price / float64(tier.Quantity),
				LineTotal: tier.Price,
			}
		}
	}

	if supplied != nil {
		return Resolution{
			UnitPrice: *supplied,
			LineTotal: *supplied * float64(quantity),
		}
	}

	return Resolution{
		UnitPrice: item.CurrentPrice,
		LineTotal: item.CurrentPrice * float64(quantity),
	}
}

// linear quantity choices offered when an item has no tiers
const linearOptionCount = 3

// QuantityOption is a selectable quantity for the order form.
type QuantityOption struct {
	Quantity int      `json:"quantity"`
	Total    float64  `json:"total"`
	Discount *float64 `json:"discount,omitempty"`
	Label    string   `json:"label"`
}

// QuantityOptions returns the selectable quantities for item: one option
// per pricing tier, or linear options for quantities 1..3 when the item
// has none.
func QuantityOptions(item models.CatalogItem) []QuantityOption {
	if len(item.PricingTiers) > 0 {
		opts := make([]QuantityOption, 0, len(item.PricingTiers))
		for _, tier := range item.PricingTiers {
			opt := QuantityOption{
				Quantity: tier.Quantity,
				Total:    tier.Price,
				Discount: tier.Discount,
				Label:    fmt.Sprintf("%d for %.2f", tier.Quantity, tier.Price),
			}
			if tier.Discount != nil {
				opt.Label = fmt.Sprintf("%d for %.2f (%.0f%% off)", tier.Quantity, tier.Price, *tier.Discount)
			}
			opts = append(opts, opt)
		}
		return opts
	}

	opts := make([]QuantityOption, 0, linearOptionCount)
	for q := 1; q <= linearOptionCount; q++ {
		total := item.CurrentPrice * float64(q)
		opts = append(opts, QuantityOption{
			Quantity: q,
			Total:    total,
			Label:    fmt.Sprintf("%d for %.2f", q, total),
		})
	}
	return opts
}
