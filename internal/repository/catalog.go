package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
)

const (
	selectCatalogItemQuery = `
						SELECT id, title_legacy, title_primary, title_secondary, current_price FROM catalog_items
						WHERE id = $1
`
	selectCatalogItemsQuery = `
						SELECT id, title_legacy, title_primary, title_secondary, current_price FROM catalog_items
						ORDER BY id
`
	selectTiersByItemQuery = `
						SELECT quantity, price, discount FROM price_tiers
						WHERE item_id = $1
						ORDER BY quantity
`
	selectAllTiersQuery = `
						SELECT item_id, quantity, price, discount FROM price_tiers
						ORDER BY item_id, quantity
`
)

// CatalogRepository implements CatalogRepository interface
type CatalogRepository struct {
	db Querier
}

// NewCatalogRepository creates new CatalogRepository instance
func NewCatalogRepository(db Querier) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetItemByID returns catalog item with its pricing tiers
func (cr *CatalogRepository) GetItemByID(ctx context.Context, id string) (*models.CatalogItem, error) {
	item := models.CatalogItem{}
	err := cr.db.QueryRow(ctx, selectCatalogItemQuery, id).
		Scan(&item.ID, &item.Title.Legacy, &item.Title.Primary, &item.Title.Secondary, &item.CurrentPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	rows, err := cr.db.Query(ctx, selectTiersByItemQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		tier := models.PriceTier{}
		err = rows.Scan(&tier.Quantity, &tier.Price, &tier.Discount)
		if err != nil {
			continue
		}
		item.PricingTiers = append(item.PricingTiers, tier)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &item, nil
}

// ListItems returns all catalog items with their pricing tiers
func (cr *CatalogRepository) ListItems(ctx context.Context) ([]models.CatalogItem, error) {
	rows, err := cr.db.Query(ctx, selectCatalogItemsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CatalogItem{}
	index := map[string]int{}

	for rows.Next() {
		item := models.CatalogItem{}
		err = rows.Scan(&item.ID, &item.Title.Legacy, &item.Title.Primary, &item.Title.Secondary, &item.CurrentPrice)
		if err != nil {
			continue
		}
		index[item.ID] = len(items)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	tierRows, err := cr.db.Query(ctx, selectAllTiersQuery)
	if err != nil {
		return nil, err
	}
	defer tierRows.Close()

	for tierRows.Next() {
		var itemID string
		tier := models.PriceTier{}
		err = tierRows.Scan(&itemID, &tier.Quantity, &tier.Price, &tier.Discount)
		if err != nil {
			continue
		}
		if i, ok := index[itemID]; ok {
			items[i].PricingTiers = append(items[i].PricingTiers, tier)
		}
	}

	if err := tierRows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
