package models

import (
	"encoding/json"
	"strings"
)

// Title is catalog item title. Older catalog rows carry a single plain
// string, newer ones a localized pair. The zero value is an empty legacy
// title.
type Title struct {
	Legacy    string
	Primary   string
	Secondary string
}

// Localized reports whether the title carries the localized pair.
func (t Title) Localized() bool {
	return t.Primary != "" || t.Secondary != ""
}

// Display returns the title to show and match against: the primary
// locale when localized, the legacy string otherwise.
func (t Title) Display() string {
	if t.Primary != "" {
		return t.Primary
	}
	return t.Legacy
}

// Alternate returns the secondary-locale title, empty for legacy rows.
func (t Title) Alternate() string {
	return t.Secondary
}

type localizedTitle struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
}

// MarshalJSON keeps the wire shape the storefront clients expect:
// a bare string for legacy rows, an object for localized ones.
func (t Title) MarshalJSON() ([]byte, error) {
	if !t.Localized() {
		return json.Marshal(t.Legacy)
	}
	return json.Marshal(localizedTitle{Primary: t.Primary, Secondary: t.Secondary})
}

// UnmarshalJSON accepts both title shapes.
func (t *Title) UnmarshalJSON(data []byte) error {
	if strings.HasPrefix(strings.TrimSpace(string(data)), `"`) {
		return json.Unmarshal(data, &t.Legacy)
	}
	var lt localizedTitle
	if err := json.Unmarshal(data, &lt); err != nil {
		return err
	}
	t.Primary = lt.Primary
	t.Secondary = lt.Secondary
	return nil
}

// PriceTier is a bundle price for an exact quantity. Price is the total
// for Quantity units, not a per-unit rate.
type PriceTier struct {
	Quantity int      `json:"quantity"`
	Price    float64  `json:"price"`
	Discount *float64 `json:"discount,omitempty"`
}

// CatalogItem is catalog entity. Tier quantities are unique within
// PricingTiers; tiers are optional.
type CatalogItem struct {
	ID           string      `json:"id"`
	Title        Title       `json:"title"`
	CurrentPrice float64     `json:"currentPrice"`
	PricingTiers []PriceTier `json:"pricingTiers,omitempty"`
}
