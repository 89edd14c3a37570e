package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/pricing"
)

type CatalogService interface {
	// GetItem returns catalog item by id
	GetItem(ctx context.Context, id string) (*models.CatalogItem, error)
	// ListItems returns all catalog items
	ListItems(ctx context.Context) ([]models.CatalogItem, error)
	// QuantityOptions returns the selectable quantities for the item
	QuantityOptions(ctx context.Context, id string) ([]pricing.QuantityOption, error)
}

// CatalogHandler represents HTTP handler for catalog reads
type CatalogHandler struct {
	svc CatalogService
}

// NewCatalogHandler creates new CatalogHandler instance
func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListItems returns the catalog
// 200 — успешная обработка запроса;
// 500 — внутренняя ошибка сервера.
func (ch *CatalogHandler) ListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := ch.svc.ListItems(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(items); err != nil {
			return
		}
	}
}

// GetItem returns one catalog item
// 200 — успешная обработка запроса;
// 404 — товар не найден;
// 500 — внутренняя ошибка сервера.
func (ch *CatalogHandler) GetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := ch.svc.GetItem(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, models.ErrDataNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(item); err != nil {
			return
		}
	}
}

// QuantityOptions returns the selectable quantities for one item
// 200 — успешная обработка запроса;
// 404 — товар не найден;
// 500 — внутренняя ошибка сервера.
func (ch *CatalogHandler) QuantityOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := ch.svc.QuantityOptions(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, models.ErrDataNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(opts); err != nil {
			return
		}
	}
}
