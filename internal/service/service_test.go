package service

import (
	"context"
	"time"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
)

// in-memory repositories for service tests

type memDraftRepo struct {
	drafts  map[string]models.Draft
	upserts int
}

func newMemDraftRepo() *memDraftRepo {
	return &memDraftRepo{drafts: map[string]models.Draft{}}
}

func draftKey(phone, name string) string { return phone + "|" + name }

func (r *memDraftRepo) UpsertDraft(_ context.Context, draft *models.Draft) (*models.Draft, error) {
	r.upserts++
	now := time.Now()
	if prev, ok := r.drafts[draftKey(draft.Phone, draft.Name)]; ok {
		draft.CreatedAt = prev.CreatedAt
	} else {
		draft.CreatedAt = now
	}
	draft.UpdatedAt = now
	r.drafts[draftKey(draft.Phone, draft.Name)] = *draft
	return draft, nil
}

func (r *memDraftRepo) GetDraft(_ context.Context, phone, name string) (*models.Draft, error) {
	draft, ok := r.drafts[draftKey(phone, name)]
	if !ok {
		return nil, models.ErrDataNotFound
	}
	return &draft, nil
}

func (r *memDraftRepo) DeleteDraft(_ context.Context, phone, name string) error {
	delete(r.drafts, draftKey(phone, name))
	return nil
}

type memOrderRepo struct {
	orders []models.Order
}

func (r *memOrderRepo) CreateOrder(_ context.Context, order *models.Order) (*models.Order, error) {
	for _, o := range r.orders {
		if o.ID == order.ID {
			return nil, models.ErrConflictData
		}
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	r.orders = append(r.orders, *order)
	return order, nil
}

func (r *memOrderRepo) GetOrdersByCustomer(_ context.Context, phone, customer string) ([]models.Order, error) {
	matched := []models.Order{}
	for _, o := range r.orders {
		if o.Phone == phone && o.Customer == customer {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (r *memOrderRepo) CountOrders(_ context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

type memCatalogRepo struct {
	items   []models.CatalogItem
	listErr error
}

func (r *memCatalogRepo) GetItemByID(_ context.Context, id string) (*models.CatalogItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, models.ErrDataNotFound
}

func (r *memCatalogRepo) ListItems(_ context.Context) ([]models.CatalogItem, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.items, nil
}
