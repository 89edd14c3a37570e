package matching

import (
	"testing"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name  string
		item  models.CatalogItem
		query string
		want  bool
	}{
		{
			name:  "query_contained_in_title",
			item:  models.CatalogItem{Title: models.Title{Legacy: "Premium Basmati Rice 5kg Bag"}},
			query: "Basmati Rice",
			want:  true,
		},
		{
			name:  "title_contained_in_query",
			item:  models.CatalogItem{Title: models.Title{Legacy: "Basmati Rice"}},
			query: "premium basmati rice 5kg",
			want:  true,
		},
		{
			name:  "case_insensitive",
			item:  models.CatalogItem{Title: models.Title{Legacy: "BASMATI RICE"}},
			query: "basmati rice",
			want:  true,
		},
		{
			name:  "exact_secondary_locale_title",
			item:  models.CatalogItem{Title: models.Title{Primary: "Basmati Rice", Secondary: "باسمتی چاول"}},
			query: "باسمتی چاول",
			want:  true,
		},
		{
			name:  "secondary_locale_requires_exact_equality",
			item:  models.CatalogItem{Title: models.Title{Primary: "Basmati Rice", Secondary: "باسمتی چاول"}},
			query: "چاول",
			want:  false,
		},
		{
			name:  "localized_primary_used_for_containment",
			item:  models.CatalogItem{Title: models.Title{Primary: "Desi Ghee 1kg", Secondary: "دیسی گھی"}},
			query: "desi ghee",
			want:  true,
		},
		{
			name:  "no_match",
			item:  models.CatalogItem{Title: models.Title{Legacy: "Sugar 1kg"}},
			query: "basmati rice",
			want:  false,
		},
		{
			name:  "empty_query_never_matches",
			item:  models.CatalogItem{Title: models.Title{Legacy: "Sugar 1kg"}},
			query: "  ",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.item, tt.query))
		})
	}
}

func TestFindItem(t *testing.T) {
	items := []models.CatalogItem{
		{ID: "sugar", Title: models.Title{Legacy: "Sugar 1kg"}},
		{ID: "rice", Title: models.Title{Legacy: "Premium Basmati Rice 5kg Bag"}},
	}

	item, ok := FindItem(items, "Basmati Rice")
	assert.True(t, ok)
	assert.Equal(t, "rice", item.ID)

	_, ok = FindItem(items, "olive oil")
	assert.False(t, ok)
}
