// Package matching maps free-text product names from imported order rows
// to catalog items. The policy is ordered: normalized-lowercase substring
// containment in either direction against the display title, then exact
// equality against the secondary-locale title.
package matching

import (
	"strings"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Matches reports whether name refers to item.
func Matches(item models.CatalogItem, name string) bool {
	n := normalize(name)
	if n == "" {
		return false
	}

	if title := normalize(item.Title.Display()); title != "" {
		if strings.Contains(title, n) || strings.Contains(n, title) {
			return true
		}
	}

	if alt := normalize(item.Title.Alternate()); alt != "" && alt == n {
		return true
	}

	return false
}

// FindItem returns the first catalog item matching name. The second
// return value is false when no item matches and the line should be
// treated as a custom, unlisted product.
func FindItem(items []models.CatalogItem, name string) (models.CatalogItem, bool) {
	for _, item := range items {
		if Matches(item, name) {
			return item, true
		}
	}
	return models.CatalogItem{}, false
}
