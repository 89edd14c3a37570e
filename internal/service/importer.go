package service

import (
	"context"
	"fmt"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/matching"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/pricing"
	"go.uber.org/zap"
)

// IDSource mints order identifiers. Satisfied by OrderService so the
// import path assigns identifiers the same way live checkout does.
type IDSource interface {
	NextID(ctx context.Context) (string, error)
}

// ImportLine is one product line of an imported order row
type ImportLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ImportRow is one externally sourced order
type ImportRow struct {
	Customer string       `json:"customer"`
	Phone    string       `json:"phone"`
	City     string       `json:"city"`
	Address  string       `json:"address"`
	Products []ImportLine `json:"products"`
}

// ImportError records one failed row by its customer name
type ImportError struct {
	Customer string `json:"customer"`
	Message  string `json:"message"`
}

// ImportResult is the batch outcome. Imported + Failed == Total always.
type ImportResult struct {
	Imported int           `json:"imported"`
	Failed   int           `json:"failed"`
	Total    int           `json:"total"`
	Errors   []ImportError `json:"errors,omitempty"`
}

// ImportService reconciles bulk-imported order rows against the catalog
type ImportService struct {
	orders  OrderRepository
	catalog CatalogRepository
	ids     IDSource
	logger  *zap.Logger
}

// NewImportService creates new ImportService instance
func NewImportService(orders OrderRepository, catalog CatalogRepository, ids IDSource, logger *zap.Logger) *ImportService {
	return &ImportService{
		orders:  orders,
		catalog: catalog,
		ids:     ids,
		logger:  logger,
	}
}

// ImportBatch commits one pending order per row, pricing each product
// line against the catalog. Rows are processed sequentially; a failed
// row is recorded and never aborts the batch. A catalog read failure
// fails every row.
func (is *ImportService) ImportBatch(ctx context.Context, rows []ImportRow) ImportResult {
	result := ImportResult{Total: len(rows)}

	// without the catalog every line would silently price at the
	// row-supplied value, so the whole batch fails instead
	items, err := is.catalog.ListItems(ctx)
	if err != nil {
		is.logger.Error("catalog unavailable for import matching", zap.Error(err))
		for _, row := range rows {
			result.Failed++
			result.Errors = append(result.Errors, ImportError{
				Customer: row.Customer,
				Message:  fmt.Sprintf("catalog unavailable: %v", err),
			})
		}
		return result
	}

	for _, row := range rows {
		if err := is.importRow(ctx, items, row); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, ImportError{
				Customer: row.Customer,
				Message:  err.Error(),
			})
			is.logger.Warn("import row failed",
				zap.String("customer", row.Customer),
				zap.Error(err))
			continue
		}
		result.Imported++
	}

	return result
}

func (is *ImportService) importRow(ctx context.Context, items []models.CatalogItem, row ImportRow) error {
	if row.Customer == "" || row.Phone == "" {
		return fmt.Errorf("%w: missing customer fields", models.ErrValidation)
	}
	if len(row.Products) == 0 {
		return fmt.Errorf("%w: row has no product lines", models.ErrValidation)
	}

	order := models.Order{
		Customer: row.Customer,
		Phone:    row.Phone,
		City:     row.City,
		Address:  row.Address,
		Status:   models.OrderStatusPending,
	}

	for _, line := range row.Products {
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: non-positive quantity for %q", models.ErrValidation, line.Name)
		}

		// an unmatched name is a custom, unlisted item: the zero-value
		// catalog item routes resolution to the row-supplied price
		item, _ := matching.FindItem(items, line.Name)
		supplied := line.Price
		res := pricing.Resolve(item, line.Quantity, &supplied)

		order.Items = append(order.Items, models.OrderItem{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    res.UnitPrice,
		})
		order.Total += res.LineTotal
	}

	id, err := is.ids.NextID(ctx)
	if err != nil {
		return err
	}
	order.ID = id

	if _, err := is.orders.CreateOrder(ctx, &order); err != nil {
		return err
	}

	return nil
}
