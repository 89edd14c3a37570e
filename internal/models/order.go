package models

import "time"

// order status
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem is a single order line
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is committed order entity
type Order struct {
	ID        string      `json:"id"`
	Customer  string      `json:"customer"`
	Phone     string      `json:"phone"`
	City      string      `json:"city"`
	Address   string      `json:"address"`
	Items     []OrderItem `json:"products"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
