package domain

type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	GetOrderByNumber(orderNumber string) (*Order, error)
	UpdateOrderStatus(orderID string, newStatus OrderStatus) error
}
