package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/pricing"
	"go.uber.org/zap"
)

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// CreateOrder inserts new order and its line items to database
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// GetOrdersByCustomer gets orders for customer identity
	GetOrdersByCustomer(ctx context.Context, phone, customer string) ([]models.Order, error)
	// CountOrders returns total number of committed orders
	CountOrders(ctx context.Context) (int64, error)
}

// CatalogRepository is interface for reading the catalog
type CatalogRepository interface {
	// GetItemByID returns catalog item with its pricing tiers
	GetItemByID(ctx context.Context, id string) (*models.CatalogItem, error)
	// ListItems returns all catalog items with their pricing tiers
	ListItems(ctx context.Context) ([]models.CatalogItem, error)
}

// Submission is the validated checkout form payload
type Submission struct {
	Customer  string `json:"customer"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Address   string `json:"address"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderService implements order finalization, the duplicate guard and
// sequential identifier assignment
type OrderService struct {
	orders   OrderRepository
	catalog  CatalogRepository
	drafts   DraftRepository
	idPrefix string
	idWidth  int
	logger   *zap.Logger
}

// NewOrderService creates new OrderService instance
func NewOrderService(orders OrderRepository, catalog CatalogRepository, drafts DraftRepository, idPrefix string, idWidth int, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders:   orders,
		catalog:  catalog,
		drafts:   drafts,
		idPrefix: idPrefix,
		idWidth:  idWidth,
		logger:   logger,
	}
}

// HasCommittedOrder reports whether the customer identity already has a
// non-cancelled committed order. Used to gate draft writes.
func (os *OrderService) HasCommittedOrder(ctx context.Context, phone, name string) (bool, error) {
	orders, err := os.orders.GetOrdersByCustomer(ctx, phone, name)
	if err != nil {
		return false, err
	}

	for _, order := range orders {
		if order.Status != models.OrderStatusCancelled {
			return true, nil
		}
	}

	return false, nil
}

// NextID mints the next order identifier: prefix plus zero-padded row
// count. The count-then-format read is not transactionally isolated, so
// two concurrent callers can mint the same identifier. Accepted
// limitation for a low-concurrency storefront; collisions surface as
// ErrConflictData on insert and are not retried.
func (os *OrderService) NextID(ctx context.Context) (string, error) {
	count, err := os.orders.CountOrders(ctx)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%0*d", os.idPrefix, os.idWidth, count+1), nil
}

// Submit validates the checkout form, prices the selected item, deletes
// the matching draft and commits a pending order.
//
// markSubmitted, when non-nil, is invoked immediately after validation
// passes and before any further work, so late autosave triggers see the
// submitted state as early as possible.
func (os *OrderService) Submit(ctx context.Context, sub Submission, markSubmitted func()) (*models.Order, error) {
	required := []struct {
		field string
		value string
	}{
		{"name", sub.Customer},
		{"phone", sub.Phone},
		{"city", sub.City},
		{"address", sub.Address},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("%w: missing %s", models.ErrValidation, r.field)
		}
	}
	if sub.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", models.ErrValidation)
	}

	if markSubmitted != nil {
		markSubmitted()
	}

	item, err := os.catalog.GetItemByID(ctx, sub.ProductID)
	if err != nil {
		return nil, err
	}

	res := pricing.Resolve(*item, sub.Quantity, nil)

	// a late autosave landing after this delete is a harmless stray row:
	// the next submission for the same identity deletes it again
	if err := os.drafts.DeleteDraft(ctx, sub.Phone, sub.Customer); err != nil {
		os.logger.Warn("delete draft on submit", zap.String("phone", sub.Phone), zap.Error(err))
	}

	id, err := os.NextID(ctx)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:       id,
		Customer: sub.Customer,
		Phone:    sub.Phone,
		City:     sub.City,
		Address:  sub.Address,
		Items: []models.OrderItem{
			{
				Name:     item.Title.Display(),
				Quantity: sub.Quantity,
				Price:    res.UnitPrice,
			},
		},
		Total:     res.LineTotal,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
	}

	return os.orders.CreateOrder(ctx, order)
}

// ListByCustomer returns committed orders for customer identity
func (os *OrderService) ListByCustomer(ctx context.Context, phone, customer string) ([]models.Order, error) {
	return os.orders.GetOrdersByCustomer(ctx, phone, customer)
}
