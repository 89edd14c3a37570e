package service

import (
	"context"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/pricing"
)

// CatalogService exposes catalog reads to the storefront
type CatalogService struct {
	repo CatalogRepository
}

// NewCatalogService creates new CatalogService instance
func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// GetItem returns catalog item by id
func (cs *CatalogService) GetItem(ctx context.Context, id string) (*models.CatalogItem, error) {
	return cs.repo.GetItemByID(ctx, id)
}

// ListItems returns all catalog items
func (cs *CatalogService) ListItems(ctx context.Context) ([]models.CatalogItem, error) {
	return cs.repo.ListItems(ctx)
}

// QuantityOptions returns the selectable quantities for the item
func (cs *CatalogService) QuantityOptions(ctx context.Context, id string) ([]pricing.QuantityOption, error) {
	item, err := cs.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return pricing.QuantityOptions(*item), nil
}
