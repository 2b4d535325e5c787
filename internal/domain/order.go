package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// OrderItem - snapshot of a cart line at checkout time, price in kopiykas
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type Order struct {
	ID            string
	OrderNumber   string
	Status        OrderStatus
	PaymentStatus PaymentStatus
	Total         int64
	Currency      string
	CustomerEmail string
	CustomerPhone string
	Items         []OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
