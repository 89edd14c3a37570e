package repository

import (
	"context"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/repository/postgres"
)

const (
	insertOrderQuery = `
						INSERT INTO orders (id, customer, phone, city, address, total, status)
						VALUES ($1, $2, $3, $4, $5, $6, $7)
						RETURNING created_at
`
	insertOrderItemQuery = `
						INSERT INTO order_items (order_id, name, quantity, price)
						VALUES ($1, $2, $3, $4)
`
	selectOrdersByCustomerQuery = `
						SELECT id, customer, phone, city, address, total, status, created_at FROM orders
						WHERE phone = $1 AND customer = $2
						ORDER BY created_at DESC
`
	selectOrderItemsQuery = `
						SELECT name, quantity, price FROM order_items
						WHERE order_id = $1
						ORDER BY id
`
	countOrdersQuery = `
						SELECT COUNT(*) FROM orders
`
)

// OrderRepository implements OrderRepository interface
type OrderRepository struct {
	db Querier
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db Querier) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder inserts new order and its line items to database.
// The order row and its items commit in one transaction, an order
// never becomes visible with line items missing.
func (or *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	tx, err := or.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, insertOrderQuery,
		order.ID, order.Customer, order.Phone, order.City, order.Address, order.Total, order.Status).
		Scan(&order.CreatedAt)
	if err != nil {
		if postgres.ErrorCode(err) == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	for _, item := range order.Items {
		_, err := tx.Exec(ctx, insertOrderItemQuery, order.ID, item.Name, item.Quantity, item.Price)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrdersByCustomer gets orders for customer identity
func (or *OrderRepository) GetOrdersByCustomer(ctx context.Context, phone, customer string) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, selectOrdersByCustomerQuery, phone, customer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order := models.Order{}
		err = rows.Scan(&order.ID, &order.Customer, &order.Phone, &order.City, &order.Address, &order.Total, &order.Status, &order.CreatedAt)
		if err != nil {
			continue
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := or.getOrderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (or *OrderRepository) getOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	rows, err := or.db.Query(ctx, selectOrderItemsQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}

	for rows.Next() {
		item := models.OrderItem{}
		err = rows.Scan(&item.Name, &item.Quantity, &item.Price)
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// CountOrders returns total number of committed orders
func (or *OrderRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	if err := or.db.QueryRow(ctx, countOrdersQuery).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
